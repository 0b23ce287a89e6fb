// Package installer runs the download, extract, resolve, commit and font
// pipeline for a single localization.
package installer

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports"
	"go.trai.ch/zerr"
)

const extractedDirName = "extracted"

// Installer installs and removes localizations in one install root.
// It does no locking; callers serialize work per localization.
type Installer struct {
	downloader ports.Downloader
	extractor  ports.Extractor
	resolver   ports.FormatResolver
	committer  ports.Committer
	fonts      ports.FontCache
	telemetry  ports.Telemetry
	logger     ports.Logger
	tempDir    string
}

// New creates an Installer. Scratch space is created under tempDir, or the
// system temp directory when tempDir is empty.
func New(
	downloader ports.Downloader,
	extractor ports.Extractor,
	resolver ports.FormatResolver,
	committer ports.Committer,
	fonts ports.FontCache,
	telemetry ports.Telemetry,
	logger ports.Logger,
	tempDir string,
) *Installer {
	return &Installer{
		downloader: downloader,
		extractor:  extractor,
		resolver:   resolver,
		committer:  committer,
		fonts:      fonts,
		telemetry:  telemetry,
		logger:     logger,
		tempDir:    tempDir,
	}
}

// Install puts loc into root, replacing any previous version. Running it
// again for the same record converges to the same tree.
func (i *Installer) Install(ctx context.Context, root string, loc domain.Localization) (err error) {
	ctx, vertex := i.telemetry.Record(ctx, "install "+loc.ID+" "+loc.Version)
	defer func() { vertex.Complete(err) }()

	if err := loc.Format.Validate(); err != nil {
		return zerr.With(err, "id", loc.ID)
	}

	work, err := os.MkdirTemp(i.tempDir, "limbus_loc_"+loc.ID+"_*")
	if err != nil {
		return domain.Classify(domain.ErrFilesystem,
			zerr.With(zerr.Wrap(err, domain.ErrStagingFailed.Error()), "id", loc.ID))
	}
	defer func() {
		if rmErr := os.RemoveAll(work); rmErr != nil {
			i.logger.Warn("failed to remove scratch directory " + work + ": " + rmErr.Error())
		}
	}()

	archive := filepath.Join(work, domain.ArchiveFileName)
	if err := i.step(ctx, "download "+loc.ID, func(ctx context.Context) error {
		return i.downloader.Download(ctx, loc.URL, loc.Size, archive)
	}); err != nil {
		return err
	}

	extracted := filepath.Join(work, extractedDirName)
	if err := i.step(ctx, "extract "+loc.ID, func(ctx context.Context) error {
		return i.extractor.Extract(ctx, archive, extracted)
	}); err != nil {
		return err
	}

	payload, err := i.resolver.Resolve(extracted, loc.Format)
	if err != nil {
		return zerr.With(err, "id", loc.ID)
	}

	if err := i.committer.Commit(root, loc.ID, payload); err != nil {
		return err
	}
	i.logger.Debug("committed " + loc.ID + " " + loc.Version)

	for _, font := range loc.Fonts {
		if err := i.step(ctx, "font "+font.Name, func(ctx context.Context) error {
			return i.fonts.Place(ctx, root, loc.ID, font)
		}); err != nil {
			return err
		}
	}

	return nil
}

// Uninstall removes the installed directory of id.
func (i *Installer) Uninstall(root, id string) error {
	return i.committer.Remove(root, id)
}

// Installed reports whether id has a directory in root.
func (i *Installer) Installed(root, id string) bool {
	return i.committer.Exists(root, id)
}

func (i *Installer) step(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	ctx, vertex := i.telemetry.Record(ctx, name)
	err := fn(ctx)
	vertex.Complete(err)
	return err
}
