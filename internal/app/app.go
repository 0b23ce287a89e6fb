// Package app implements the application layer for the limbus launcher.
package app

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"go.trai.ch/limbus/internal/adapters/catalog"
	"go.trai.ch/limbus/internal/adapters/events"
	"go.trai.ch/limbus/internal/build"
	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports"
	"go.trai.ch/limbus/internal/engine/orchestrator"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	orch     *orchestrator.Orchestrator
	releases ports.ReleaseChecker
	hasher   ports.Hasher
	bus      *events.Bus
	logger   ports.Logger

	loadOnce sync.Once
	loadErr  error
}

// New creates a new App instance.
func New(
	orch *orchestrator.Orchestrator,
	releases ports.ReleaseChecker,
	hasher ports.Hasher,
	bus *events.Bus,
	log ports.Logger,
) *App {
	return &App{
		orch:     orch,
		releases: releases,
		hasher:   hasher,
		bus:      bus,
		logger:   log,
	}
}

// load reads the persisted state once per process.
func (a *App) load() error {
	a.loadOnce.Do(func() {
		a.loadErr = a.orch.Load()
	})
	return a.loadErr
}

// Subscribe registers h for every event the engine emits.
func (a *App) Subscribe(h events.Handler) (unsubscribe func()) {
	return a.bus.Subscribe(h)
}

// ListEntry is one catalog entry annotated with its local state.
type ListEntry struct {
	Localization     domain.Localization
	InstalledVersion string
	Installed        bool
}

// Outdated reports whether the installed version differs from the catalog.
func (e ListEntry) Outdated() bool {
	return e.Installed && e.InstalledVersion != e.Localization.Version
}

// List fetches the catalog of the selected source and marks what is installed.
func (a *App) List(ctx context.Context) ([]ListEntry, error) {
	if err := a.load(); err != nil {
		return nil, err
	}

	cat, err := a.orch.RefreshCatalog(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to refresh catalog")
	}

	installed := a.orch.Snapshot().Installed
	entries := make([]ListEntry, 0, len(cat.Localizations))
	for _, loc := range cat.Localizations {
		entry := ListEntry{Localization: loc}
		if installed != nil {
			if rec, ok := installed.Installed[loc.ID]; ok {
				entry.Installed = true
				entry.InstalledVersion = rec.Version
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Install installs each id from the catalog of the selected source.
func (a *App) Install(ctx context.Context, ids []string) error {
	return a.each(ids, func(id string) error { return a.orch.InstallByID(ctx, id) })
}

// Repair reinstalls each id from the catalog of the selected source.
func (a *App) Repair(ctx context.Context, ids []string) error {
	return a.each(ids, func(id string) error { return a.orch.RepairByID(ctx, id) })
}

// Uninstall removes each id from the game.
func (a *App) Uninstall(ctx context.Context, ids []string) error {
	return a.each(ids, func(id string) error { return a.orch.Uninstall(ctx, id) })
}

// each runs fn for every id and stops at the first failure.
func (a *App) each(ids []string, fn func(id string) error) error {
	if err := a.load(); err != nil {
		return err
	}
	for _, id := range ids {
		if err := fn(id); err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("%s done", id))
	}
	return nil
}

// Update runs a batch update and, unless opts.NoLaunch is set, starts the game.
func (a *App) Update(ctx context.Context, opts orchestrator.Options) (*domain.BatchReport, error) {
	if err := a.load(); err != nil {
		return nil, err
	}
	return a.orch.UpdateAndPlay(ctx, opts)
}

// StatusOptions configures Status.
type StatusOptions struct {
	// Verify fingerprints every installed tree.
	Verify bool
}

// InstalledStatus describes one installed localization.
type InstalledStatus struct {
	ID      string
	Version string
	Source  string
	// Latest is empty when the id is not in the catalog.
	Latest      string
	Fingerprint string
}

// Status is a summary of the launcher and game state.
type Status struct {
	Source          string
	GameDirectory   string
	Installed       []InstalledStatus
	Version         string
	LatestRelease   string
	UpdateAvailable bool
}

// Status reports the installed localizations next to the catalog, and the
// launcher version next to the latest release. A failing release check is
// logged and left out of the report.
func (a *App) Status(ctx context.Context, opts StatusOptions) (*Status, error) {
	if err := a.load(); err != nil {
		return nil, err
	}

	var (
		cat    *domain.Catalog
		latest string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cat, err = a.orch.RefreshCatalog(gctx)
		return err
	})
	g.Go(func() error {
		tag, err := a.releases.Latest(gctx)
		if err != nil {
			a.logger.Warn(fmt.Sprintf("skipping release check: %v", err))
			return nil
		}
		latest = tag
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := a.orch.Snapshot()
	status := &Status{
		Source:          snap.Settings.SelectedSource,
		GameDirectory:   snap.InstallRoot,
		Version:         build.Version,
		LatestRelease:   latest,
		UpdateAvailable: latest != "" && catalog.IsNewer(build.Version, latest),
	}
	if snap.Installed == nil {
		return status, nil
	}

	for _, id := range slices.Sorted(maps.Keys(snap.Installed.Installed)) {
		rec := snap.Installed.Installed[id]
		item := InstalledStatus{ID: id, Version: rec.Version, Source: rec.Source}
		if loc, ok := cat.Find(id); ok {
			item.Latest = loc.Version
		}
		status.Installed = append(status.Installed, item)
	}

	if opts.Verify {
		if err := a.fingerprint(snap.InstallRoot, status.Installed); err != nil {
			return nil, err
		}
	}
	return status, nil
}

// fingerprint fills in the tree fingerprint of every item concurrently.
func (a *App) fingerprint(root string, items []InstalledStatus) error {
	var g errgroup.Group
	for i := range items {
		g.Go(func() error {
			sum, err := a.hasher.Fingerprint(domain.LocalizationPath(root, items[i].ID))
			if err != nil {
				return zerr.With(err, "id", items[i].ID)
			}
			items[i].Fingerprint = sum
			return nil
		})
	}
	return g.Wait()
}

// Sources returns the configured sources in name order and the selected one.
func (a *App) Sources() ([]domain.Source, string, error) {
	if err := a.load(); err != nil {
		return nil, "", err
	}
	settings := a.orch.Snapshot().Settings
	sources := make([]domain.Source, 0, len(settings.Sources))
	for _, name := range slices.Sorted(maps.Keys(settings.Sources)) {
		sources = append(sources, settings.Sources[name])
	}
	return sources, settings.SelectedSource, nil
}

// AddSource adds or replaces a named catalog source. The first source added
// becomes the selected one.
func (a *App) AddSource(ctx context.Context, name, url string) error {
	return a.editSettings(ctx, func(s *domain.Settings) error {
		if name == "" || url == "" {
			return domain.Classify(domain.ErrConfiguration,
				zerr.With(domain.With(domain.ErrInvalidSource, "source", name), "url", url))
		}
		s.Sources[name] = domain.Source{Name: name, URL: url}
		if s.SelectedSource == "" {
			s.SelectedSource = name
		}
		return nil
	})
}

// RemoveSource deletes a named source, clearing the selection if it pointed there.
func (a *App) RemoveSource(ctx context.Context, name string) error {
	return a.editSettings(ctx, func(s *domain.Settings) error {
		if _, ok := s.Sources[name]; !ok {
			return domain.Classify(domain.ErrConfiguration, domain.With(domain.ErrUnknownSource, "source", name))
		}
		delete(s.Sources, name)
		if s.SelectedSource == name {
			s.SelectedSource = ""
		}
		return nil
	})
}

// SelectSource makes name the selected source.
func (a *App) SelectSource(ctx context.Context, name string) error {
	return a.editSettings(ctx, func(s *domain.Settings) error {
		if _, ok := s.Sources[name]; !ok {
			return domain.Classify(domain.ErrConfiguration, domain.With(domain.ErrUnknownSource, "source", name))
		}
		s.SelectedSource = name
		return nil
	})
}

func (a *App) editSettings(ctx context.Context, edit func(*domain.Settings) error) error {
	if err := a.load(); err != nil {
		return err
	}
	settings := a.orch.Snapshot().Settings
	if err := edit(settings); err != nil {
		return err
	}
	return a.orch.UpdateSettings(ctx, settings)
}

// GameDirectory returns the resolved game install, or an empty string when
// none is configured or discoverable.
func (a *App) GameDirectory() (string, error) {
	if err := a.load(); err != nil {
		return "", err
	}
	return a.orch.Snapshot().InstallRoot, nil
}

// SetGameDirectory overrides the game install. An empty dir returns to discovery.
func (a *App) SetGameDirectory(ctx context.Context, dir string) error {
	if err := a.load(); err != nil {
		return err
	}
	return a.orch.SetGameDirectory(ctx, dir)
}

// CheckVersion returns the latest release tag and whether it is newer than
// the running build.
func (a *App) CheckVersion(ctx context.Context) (string, bool, error) {
	latest, err := a.releases.Latest(ctx)
	if err != nil {
		return "", false, err
	}
	return latest, catalog.IsNewer(build.Version, latest), nil
}
