package ports

import (
	"context"

	"go.trai.ch/limbus/internal/core/domain"
)

// CatalogFetcher retrieves the list of available localizations from a source.
//
//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type CatalogFetcher interface {
	// Fetch issues a single request to sourceURL and decodes the catalog.
	Fetch(ctx context.Context, sourceURL string) (*domain.Catalog, error)
}

// ReleaseChecker reports the latest published version of the launcher.
type ReleaseChecker interface {
	// Latest returns the tag of the newest release.
	Latest(ctx context.Context) (string, error)
}
