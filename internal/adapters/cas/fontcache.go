// Package cas implements the content-addressed font cache.
//
// Fonts are stored once per install root under FontCache/<hash>.<ext> and
// copied into each localization that needs them, so two localizations that
// share a font download it only once.
package cas

import (
	"context"
	"errors"
	iofs "io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/limbus/internal/adapters/fs"
	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports"
	"go.trai.ch/zerr"
)

const defaultFontExt = "ttf"

var _ ports.FontCache = (*FontCache)(nil)

// FontCache implements ports.FontCache.
type FontCache struct {
	downloader ports.Downloader
	hasher     ports.Hasher
	logger     ports.Logger
}

// NewFontCache creates a new FontCache.
func NewFontCache(downloader ports.Downloader, hasher ports.Hasher, logger ports.Logger) *FontCache {
	return &FontCache{downloader: downloader, hasher: hasher, logger: logger}
}

// Ensure returns the cache entry for font, downloading it when it is missing
// or no longer hashes to font.Hash.
func (c *FontCache) Ensure(ctx context.Context, root string, font domain.Font) (string, error) {
	entry, err := entryPath(root, font)
	if err != nil {
		return "", err
	}

	ok, err := c.matches(entry, font.Hash)
	if err != nil {
		return "", err
	}
	if ok {
		return entry, nil
	}

	if err := c.downloader.DownloadVerified(ctx, font.URL, font.Hash, entry); err != nil {
		return "", err
	}
	return entry, nil
}

// Place copies the cached font into the font directory of localization id
// unless an identical file is already there.
func (c *FontCache) Place(ctx context.Context, root, id string, font domain.Font) error {
	if font.Name == "" || !filepath.IsLocal(font.Name) {
		return domain.Classify(domain.ErrConfiguration, domain.With(domain.ErrInvalidFontName, "name", font.Name))
	}

	entry, err := c.Ensure(ctx, root, font)
	if err != nil {
		return err
	}

	target := filepath.Join(domain.FontPath(root, id), font.Name)
	if existing, err := c.hasher.HashFile(target); err == nil && strings.EqualFold(existing, font.Hash) {
		if v, ok := ports.VertexFromContext(ctx); ok {
			v.Cached()
		}
		return nil
	}

	if err := fs.CopyFileAtomic(entry, target, domain.FilePerm); err != nil {
		return domain.Classify(domain.ErrFilesystem,
			zerr.With(zerr.Wrap(err, domain.ErrFontCacheFailed.Error()), "path", target))
	}
	return nil
}

// matches reports whether the entry exists with the expected hash. A stale
// entry is removed so it can be downloaded again.
func (c *FontCache) matches(entry, hash string) (bool, error) {
	if _, err := os.Stat(entry); errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	}

	sum, err := c.hasher.HashFile(entry)
	if err == nil && strings.EqualFold(sum, hash) {
		return true, nil
	}

	c.logger.Warn("font cache entry is stale, downloading again: " + filepath.Base(entry))
	if err := os.Remove(entry); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return false, domain.Classify(domain.ErrFilesystem,
			zerr.With(zerr.Wrap(err, domain.ErrFontCacheFailed.Error()), "path", entry))
	}
	return false, nil
}

func entryPath(root string, font domain.Font) (string, error) {
	hash := strings.ToLower(font.Hash)
	if hash == "" || strings.ContainsAny(hash, `/\.`) {
		return "", domain.Classify(domain.ErrConfiguration,
			zerr.With(domain.With(domain.ErrFontCacheFailed, "hash", font.Hash), "url", font.URL))
	}
	return filepath.Join(domain.FontCachePath(root), hash+"."+fontExt(font.URL)), nil
}

func fontExt(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return defaultFontExt
	}
	switch ext := strings.ToLower(strings.TrimPrefix(path.Ext(u.Path), ".")); ext {
	case "ttf", "otf":
		return ext
	default:
		return defaultFontExt
	}
}
