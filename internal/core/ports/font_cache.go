package ports

import (
	"context"

	"go.trai.ch/limbus/internal/core/domain"
)

// FontCache maintains the content-addressed font cache of an install root.
//
//go:generate mockgen -source=font_cache.go -destination=mocks/mock_font_cache.go -package=mocks
type FontCache interface {
	// Ensure returns the path of a cache entry that hashes to font.Hash,
	// downloading or repairing it when needed.
	Ensure(ctx context.Context, root string, font domain.Font) (string, error)

	// Place ensures the cache entry and copies it into the font directory of
	// the localization id.
	Place(ctx context.Context, root, id string, font domain.Font) error
}
