package ports

import (
	"hash"
	"io"
)

// Hasher defines the interface for computing content digests.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashReader streams r and returns its lowercase hex digest.
	HashReader(r io.Reader) (string, error)

	// HashFile returns the lowercase hex digest of the file at path.
	HashFile(path string) (string, error)

	// NewDigest returns a fresh digest for callers hashing while they stream.
	NewDigest() hash.Hash

	// Fingerprint returns a digest of every relative path and file content under dir.
	Fingerprint(dir string) (string, error)
}
