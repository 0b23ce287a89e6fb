package ports

import "context"

// Downloader streams remote files to local storage and publishes them atomically.
//
//go:generate mockgen -source=downloader.go -destination=mocks/mock_downloader.go -package=mocks
type Downloader interface {
	// Download streams url into dest. When expectedSize is positive the byte
	// count must match it exactly, otherwise nothing is left at dest.
	Download(ctx context.Context, url string, expectedSize int64, dest string) error

	// DownloadVerified streams url into dest, publishing only when the content
	// hashes to expectedHash.
	DownloadVerified(ctx context.Context, url, expectedHash, dest string) error
}
