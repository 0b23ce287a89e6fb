package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/klauspost/compress/zip"
	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports"
	"go.trai.ch/zerr"
)

// creatorUnix is the "version made by" host id of archives written on unix.
const creatorUnix = 3

var _ ports.Extractor = (*Extractor)(nil)

// Extractor unpacks zip archives.
type Extractor struct {
	logger ports.Logger
}

// NewExtractor creates a new Extractor.
func NewExtractor(logger ports.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract unpacks every entry of archivePath into dest. Entries whose path
// would land outside dest are skipped with a warning. The first read or
// write failure aborts the extraction.
func (e *Extractor) Extract(ctx context.Context, archivePath, dest string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return domain.Classify(domain.ErrFilesystem,
			zerr.With(zerr.Wrap(err, domain.ErrArchiveOpenFailed.Error()), "path", archivePath))
	}
	defer r.Close() //nolint:errcheck // read-only archive

	if err := os.MkdirAll(dest, domain.DirPerm); err != nil {
		return domain.Classify(domain.ErrFilesystem,
			zerr.With(zerr.Wrap(err, domain.ErrArchiveEntryFailed.Error()), "path", dest))
	}

	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}

		target, ok := entryPath(dest, f.Name)
		if !ok {
			e.logger.Warn(fmt.Sprintf("skipping archive entry outside destination: %s", f.Name))
			continue
		}

		if strings.HasSuffix(f.Name, "/") {
			err = os.MkdirAll(target, domain.DirPerm)
		} else {
			err = extractFile(f, target)
		}
		if err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrArchiveEntryFailed.Error()), "entry", f.Name)
			return domain.Classify(domain.ErrFilesystem, zerr.With(err, "archive", archivePath))
		}
	}

	return nil
}

// entryPath confines an archive entry name to dest.
func entryPath(dest, name string) (string, bool) {
	rel := filepath.FromSlash(strings.TrimSuffix(name, "/"))
	if rel == "" || !filepath.IsLocal(rel) {
		return "", false
	}
	return filepath.Join(dest, rel), true
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close() //nolint:errcheck // read side

	//nolint:gosec // target is confined to the destination by entryPath
	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return err
	}

	//nolint:gosec // archive size is bounded by the size-checked download
	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if runtime.GOOS != "windows" && f.CreatorVersion>>8 == creatorUnix {
		if perm := f.Mode().Perm(); perm != 0 {
			return os.Chmod(target, perm)
		}
	}
	return nil
}
