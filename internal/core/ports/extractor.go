package ports

import "context"

// Extractor unpacks archives into a directory.
//
//go:generate mockgen -source=extractor.go -destination=mocks/mock_extractor.go -package=mocks
type Extractor interface {
	// Extract unpacks archivePath into dest. Entries escaping dest are skipped.
	Extract(ctx context.Context, archivePath, dest string) error
}
