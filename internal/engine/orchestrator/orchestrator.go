// Package orchestrator owns the application state and drives installs,
// removals and batch updates against one game install.
package orchestrator

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports"
	"go.trai.ch/limbus/internal/engine/installer"
	"go.trai.ch/limbus/internal/engine/keylock"
	"go.trai.ch/zerr"
)

// Snapshot is a consistent copy of the application state.
type Snapshot struct {
	Settings  *domain.Settings
	Installed *domain.InstalledMetadata
	Catalog   *domain.Catalog
	// CatalogSource names the source Catalog was fetched from.
	CatalogSource string
	// InstallRoot is empty when no game install could be resolved.
	InstallRoot string
}

// state is guarded by Orchestrator.mu. The lock is only held for a read or
// mutate step, never across a download or an emit. Published settings and
// metadata are replaced, not mutated, so readers may keep them after unlocking.
type state struct {
	settings      *domain.Settings
	installed     *domain.InstalledMetadata
	catalog       *domain.Catalog
	catalogSource string
	root          string
}

// Orchestrator coordinates the stores, the installer and the game runtime.
type Orchestrator struct {
	settings   ports.SettingsStore
	metadata   ports.MetadataStore
	catalogs   ports.CatalogFetcher
	locator    ports.GameLocator
	runtime    ports.GameRuntime
	gameConfig ports.GameConfig
	events     ports.EventSink
	installer  *installer.Installer
	locks      *keylock.Registry
	logger     ports.Logger

	mu    sync.Mutex
	state state
}

// New creates an Orchestrator. Call Load before using it.
func New(
	settings ports.SettingsStore,
	metadata ports.MetadataStore,
	catalogs ports.CatalogFetcher,
	locator ports.GameLocator,
	runtime ports.GameRuntime,
	gameConfig ports.GameConfig,
	events ports.EventSink,
	inst *installer.Installer,
	locks *keylock.Registry,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		settings:   settings,
		metadata:   metadata,
		catalogs:   catalogs,
		locator:    locator,
		runtime:    runtime,
		gameConfig: gameConfig,
		events:     events,
		installer:  inst,
		locks:      locks,
		logger:     logger,
	}
}

// Load reads the settings and, when a game install can be resolved, its
// installed metadata. A missing game install is not an error here; the
// operations that need one report it.
func (o *Orchestrator) Load() error {
	settings, err := o.settings.Load()
	if err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.state = state{settings: settings}
	if _, err := o.installedLocked(); err != nil {
		o.logger.Debug(fmt.Sprintf("installed metadata not loaded: %v", err))
	}
	return nil
}

// Snapshot returns a copy of the current state.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	snap := Snapshot{
		Settings:      o.state.settings.Clone(),
		Installed:     o.state.installed.Clone(),
		CatalogSource: o.state.catalogSource,
		InstallRoot:   o.state.root,
	}
	if o.state.catalog != nil {
		c := *o.state.catalog
		snap.Catalog = &c
	}
	return snap
}

// RefreshCatalog fetches the catalog of the selected source and caches it.
func (o *Orchestrator) RefreshCatalog(ctx context.Context) (*domain.Catalog, error) {
	o.mu.Lock()
	name, src, err := o.selectedLocked()
	o.mu.Unlock()
	if err != nil {
		return nil, err
	}

	return o.fetchCatalog(ctx, name, src)
}

func (o *Orchestrator) fetchCatalog(ctx context.Context, name string, src domain.Source) (*domain.Catalog, error) {
	catalog, err := o.catalogs.Fetch(ctx, src.URL)
	if err != nil {
		return nil, zerr.With(err, "source", name)
	}

	o.mu.Lock()
	// A source switch while fetching makes this result stale.
	current := o.state.settings.SelectedSource == name
	if current {
		o.state.catalog = catalog
		o.state.catalogSource = name
	}
	o.mu.Unlock()

	if current {
		o.emit(ctx, domain.Event{Name: domain.EventCatalogRefreshed})
	}
	return catalog, nil
}

// UpdateSettings persists settings. Switching the selected source drops the
// cached catalog; changing the game directory drops the resolved install.
func (o *Orchestrator) UpdateSettings(ctx context.Context, settings *domain.Settings) error {
	if err := o.updateSettings(settings); err != nil {
		return err
	}
	o.emit(ctx, domain.Event{Name: domain.EventStateChanged})
	return nil
}

func (o *Orchestrator) updateSettings(settings *domain.Settings) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	next := settings.Clone()
	next.ConfigVersion = domain.SettingsVersion
	if err := o.settings.Save(next); err != nil {
		return err
	}

	if next.SelectedSource != o.state.settings.SelectedSource {
		o.state.catalog = nil
		o.state.catalogSource = ""
	}
	if next.GameDirectory != o.state.settings.GameDirectory {
		o.state.root = ""
		o.state.installed = nil
	}
	o.state.settings = next
	return nil
}

// SetGameDirectory validates dir, loads its installed metadata and persists
// it as the game directory override. An empty dir clears the override and
// falls back to discovery.
func (o *Orchestrator) SetGameDirectory(ctx context.Context, dir string) error {
	if err := o.setGameDirectory(dir); err != nil {
		return err
	}
	o.emit(ctx, domain.Event{Name: domain.EventStateChanged})
	return nil
}

func (o *Orchestrator) setGameDirectory(dir string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	root := dir
	if dir == "" {
		located, err := o.locate()
		if err != nil {
			return err
		}
		root = located
	} else if err := o.locator.Validate(dir); err != nil {
		return err
	}

	installed, err := o.metadata.Load(root)
	if err != nil {
		return err
	}

	next := o.state.settings.Clone()
	next.GameDirectory = dir
	if err := o.settings.Save(next); err != nil {
		return err
	}

	o.state.settings = next
	o.state.root = root
	o.state.installed = installed
	return nil
}

// InstallByID installs the catalog entry id, fetching the catalog when none
// is cached.
func (o *Orchestrator) InstallByID(ctx context.Context, id string) error {
	loc, err := o.lookup(ctx, id)
	if err != nil {
		return err
	}
	return o.Install(ctx, loc)
}

// RepairByID reinstalls the catalog entry id.
func (o *Orchestrator) RepairByID(ctx context.Context, id string) error {
	loc, err := o.lookup(ctx, id)
	if err != nil {
		return err
	}
	return o.Repair(ctx, loc)
}

// Install installs loc into the game and records it.
func (o *Orchestrator) Install(ctx context.Context, loc domain.Localization) error {
	if err := o.ensureNotRunning(ctx); err != nil {
		return err
	}

	o.mu.Lock()
	source, _, err := o.selectedLocked()
	if err != nil {
		o.mu.Unlock()
		return err
	}
	root, err := o.rootLocked()
	o.mu.Unlock()
	if err != nil {
		return err
	}

	key := domain.LockKey{LocalizationID: loc.ID, InstallRoot: root}
	if err := o.locks.With(ctx, key, func() error {
		return o.installer.Install(ctx, root, loc)
	}); err != nil {
		return err
	}

	return o.record(ctx, root, func(m *domain.InstalledMetadata) {
		m.Installed[loc.ID] = domain.InstalledLocalization{ID: loc.ID, Version: loc.Version, Source: source}
	})
}

// Repair reinstalls loc. Installing over an existing tree replaces it as a
// whole, so repair needs nothing beyond install.
func (o *Orchestrator) Repair(ctx context.Context, loc domain.Localization) error {
	return o.Install(ctx, loc)
}

// Uninstall removes id from the game and from the installed metadata.
func (o *Orchestrator) Uninstall(ctx context.Context, id string) error {
	if err := o.ensureNotRunning(ctx); err != nil {
		return err
	}

	o.mu.Lock()
	installed, err := o.installedLocked()
	root := o.state.root
	o.mu.Unlock()
	if err != nil {
		return err
	}

	if _, ok := installed.Installed[id]; !ok && !o.installer.Installed(root, id) {
		return domain.Classify(domain.ErrNotFound, domain.With(domain.ErrNotInstalled, "id", id))
	}

	key := domain.LockKey{LocalizationID: id, InstallRoot: root}
	if err := o.locks.With(ctx, key, func() error {
		return o.installer.Uninstall(root, id)
	}); err != nil {
		return err
	}

	return o.record(ctx, root, func(m *domain.InstalledMetadata) {
		delete(m.Installed, id)
	})
}

// lookup finds id in the cached catalog, refreshing it when nothing is cached.
func (o *Orchestrator) lookup(ctx context.Context, id string) (domain.Localization, error) {
	o.mu.Lock()
	catalog := o.state.catalog
	o.mu.Unlock()

	if catalog == nil {
		var err error
		if catalog, err = o.RefreshCatalog(ctx); err != nil {
			return domain.Localization{}, err
		}
	}

	loc, ok := catalog.Find(id)
	if !ok {
		return domain.Localization{}, domain.Classify(domain.ErrNotFound,
			domain.With(domain.ErrLocalizationNotFound, "id", id))
	}
	return loc, nil
}

// record applies mutate to the current metadata of root, persists it and
// announces the change. Mutations always start from the live state, so
// concurrent operations on other keys are never overwritten.
func (o *Orchestrator) record(ctx context.Context, root string, mutate func(*domain.InstalledMetadata)) error {
	if err := o.apply(root, mutate); err != nil {
		return err
	}
	o.emit(ctx, domain.Event{Name: domain.EventStateChanged})
	return nil
}

func (o *Orchestrator) apply(root string, mutate func(*domain.InstalledMetadata)) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	var metadata *domain.InstalledMetadata
	if root == o.state.root && o.state.installed != nil {
		metadata = o.state.installed.Clone()
	} else {
		// The install root changed while the lock was held.
		loaded, err := o.metadata.Load(root)
		if err != nil {
			return err
		}
		metadata = loaded
	}

	mutate(metadata)
	if err := o.metadata.Save(root, metadata); err != nil {
		return err
	}
	if root == o.state.root {
		o.state.installed = metadata
	}
	return nil
}

func (o *Orchestrator) ensureNotRunning(ctx context.Context) error {
	running, err := o.runtime.IsRunning(ctx)
	if err != nil {
		return err
	}
	if running {
		return domain.ErrGameRunning
	}
	return nil
}

// selectedLocked returns the name and location of the selected source.
func (o *Orchestrator) selectedLocked() (string, domain.Source, error) {
	src, err := o.state.settings.Selected()
	if err != nil {
		return "", domain.Source{}, err
	}
	return o.state.settings.SelectedSource, src, nil
}

// rootLocked resolves the install root: the configured game directory, or
// the discovered Steam install.
func (o *Orchestrator) rootLocked() (string, error) {
	if o.state.root != "" {
		return o.state.root, nil
	}

	root := o.state.settings.GameDirectory
	if root == "" {
		located, err := o.locate()
		if err != nil {
			return "", err
		}
		root = located
	}

	o.state.root = root
	o.state.installed = nil
	return root, nil
}

// installedLocked returns the installed metadata of the current root,
// loading it on first use.
func (o *Orchestrator) installedLocked() (*domain.InstalledMetadata, error) {
	root, err := o.rootLocked()
	if err != nil {
		return nil, err
	}
	if o.state.installed == nil {
		installed, err := o.metadata.Load(root)
		if err != nil {
			return nil, err
		}
		o.state.installed = installed
	}
	return o.state.installed, nil
}

func (o *Orchestrator) locate() (string, error) {
	root, err := o.locator.Locate()
	if err != nil {
		return "", err
	}
	if err := o.locator.Validate(root); err != nil {
		return "", err
	}
	return root, nil
}

// emit delivers a notification. Handlers run synchronously, so it is never
// called with mu held. Failures are logged, never returned.
func (o *Orchestrator) emit(ctx context.Context, event domain.Event) {
	if err := o.events.Emit(ctx, event); err != nil {
		o.logger.Warn(fmt.Sprintf("failed to emit %s: %v", event.Name, err))
	}
}
