package fs

import (
	"crypto/md5" //nolint:gosec // catalog hashes are MD5, not a security boundary
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports"
	"go.trai.ch/zerr"
)

// chunkSize bounds the memory used while streaming content through a digest.
const chunkSize = 64 * 1024

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes MD5 content digests and xxhash tree fingerprints.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// NewDigest returns a fresh MD5 digest.
func (h *Hasher) NewDigest() hash.Hash {
	return md5.New() //nolint:gosec // see import
}

// HashReader streams r through MD5 in bounded chunks.
func (h *Hasher) HashReader(r io.Reader) (string, error) {
	digest := h.NewDigest()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(digest, r, buf); err != nil {
		return "", zerr.Wrap(err, domain.ErrFileHashFailed.Error())
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}

// HashFile returns the MD5 digest of the file at path.
func (h *Hasher) HashFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", domain.Classify(domain.ErrFilesystem, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path))
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	sum, err := h.HashReader(f)
	if err != nil {
		return "", domain.Classify(domain.ErrFilesystem, zerr.With(err, "path", path))
	}
	return sum, nil
}

// Fingerprint hashes every relative path and file content under dir with
// xxhash. Two trees with the same files produce the same fingerprint.
func (h *Hasher) Fingerprint(dir string) (string, error) {
	hasher := xxhash.New()

	for rel, err := range h.walker.WalkFiles(dir) {
		if err != nil {
			return "", domain.Classify(domain.ErrFilesystem, zerr.With(zerr.Wrap(err, domain.ErrFingerprintFailed.Error()), "path", dir))
		}

		_, _ = hasher.WriteString(rel)
		_, _ = hasher.Write([]byte{0})

		if err := h.hashFileInto(filepath.Join(dir, filepath.FromSlash(rel)), hasher); err != nil {
			return "", domain.Classify(domain.ErrFilesystem, err)
		}
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func (h *Hasher) hashFileInto(path string, hasher *xxhash.Digest) error {
	f, err := os.Open(path) //nolint:gosec // Path is produced by the walker
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFingerprintFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(hasher, f); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFingerprintFailed.Error()), "path", path)
	}
	return nil
}
