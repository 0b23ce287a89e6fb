package orchestrator

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/rs/xid"
	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/zerr"
)

// Options controls a batch update.
type Options struct {
	// NoLaunch skips starting the game after the update.
	NoLaunch bool
}

// UpdateAndPlay reconciles every installed localization with the catalog of
// the selected source, then starts the game. The first failed install aborts
// the batch; the returned report still lists what happened up to that point.
func (o *Orchestrator) UpdateAndPlay(ctx context.Context, opts Options) (*domain.BatchReport, error) {
	report := &domain.BatchReport{ID: xid.New().String()}
	batch := func(name domain.EventName, id, version string) domain.Event {
		return domain.Event{Name: name, BatchID: report.ID, LocalizationID: id, Version: version}
	}

	o.emit(ctx, batch(domain.EventPlayStarted, "", ""))

	running, err := o.runtime.IsRunning(ctx)
	if err != nil {
		return report, err
	}
	if running {
		o.emit(ctx, batch(domain.EventPlayGameRunning, "", ""))
		return report, domain.ErrGameRunning
	}

	o.mu.Lock()
	name, src, err := o.selectedLocked()
	if err != nil {
		o.mu.Unlock()
		return report, err
	}
	metadata, err := o.installedLocked()
	root := o.state.root
	o.mu.Unlock()
	if err != nil {
		return report, err
	}

	catalog, err := o.fetchCatalog(ctx, name, src)
	if err != nil {
		return report, err
	}

	queue := o.evaluate(ctx, root, catalog, metadata, report, batch)

	// Records are staged into the live state while their key is locked, so
	// installs and uninstalls of other ids that finish meanwhile stay in
	// place. pending only holds records for a root that was switched away.
	// Nothing is persisted when the batch aborts.
	pending := make(map[string]domain.InstalledLocalization)

	for _, i := range queue {
		item := &report.Items[i]
		loc, _ := catalog.Find(item.ID)

		item.State = domain.StateUpdating
		o.emit(ctx, batch(domain.EventPlayUpdating, loc.ID, loc.Version))

		rec := domain.InstalledLocalization{ID: loc.ID, Version: loc.Version, Source: name}
		key := domain.LockKey{LocalizationID: loc.ID, InstallRoot: root}
		if err := o.locks.With(ctx, key, func() error {
			if err := o.installer.Install(ctx, root, loc); err != nil {
				return err
			}
			if !o.stage(root, rec) {
				pending[rec.ID] = rec
			}
			return nil
		}); err != nil {
			item.State = domain.StateFailed
			return report, zerr.With(err, "batch", report.ID)
		}

		item.State = domain.StateInstalled
		o.emit(ctx, batch(domain.EventPlayUpdateFinished, loc.ID, loc.Version))
	}

	if err := o.record(ctx, root, func(m *domain.InstalledMetadata) {
		maps.Copy(m.Installed, pending)
	}); err != nil {
		return report, err
	}

	if err := o.gameConfig.Prune(root); err != nil {
		o.logger.Warn(fmt.Sprintf("failed to check game language config: %v", err))
	}

	if !opts.NoLaunch {
		o.emit(ctx, batch(domain.EventPlayStartingGame, "", ""))
		if err := o.runtime.Launch(ctx); err != nil {
			return report, err
		}
		report.Launched = true
	}

	o.emit(ctx, batch(domain.EventPlayFinished, "", ""))
	return report, nil
}

// evaluate compares each installed id with the catalog in id order and
// returns the report indices queued for reinstall.
func (o *Orchestrator) evaluate(
	ctx context.Context,
	root string,
	catalog *domain.Catalog,
	metadata *domain.InstalledMetadata,
	report *domain.BatchReport,
	batch func(domain.EventName, string, string) domain.Event,
) []int {
	ids := make([]string, 0, len(metadata.Installed))
	for id := range metadata.Installed {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var queue []int
	for _, id := range ids {
		rec := metadata.Installed[id]
		item := domain.BatchItem{ID: id, FromVersion: rec.Version, State: domain.StateEvaluated}

		loc, ok := catalog.Find(id)
		switch {
		case !ok:
			item.State = domain.StateUnknown
			o.emit(ctx, batch(domain.EventPlayUnknownLocalization, id, rec.Version))
		case loc.Version == rec.Version && o.installer.Installed(root, id):
			item.ToVersion = loc.Version
			item.State = domain.StateUpToDate
			o.emit(ctx, batch(domain.EventPlayUpToDate, id, loc.Version))
		default:
			item.ToVersion = loc.Version
			queue = append(queue, len(report.Items))
		}
		report.Items = append(report.Items, item)
	}
	return queue
}

// stage puts rec into the live metadata when root is still the current
// install root. The caller persists it later.
func (o *Orchestrator) stage(root string, rec domain.InstalledLocalization) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if root != o.state.root || o.state.installed == nil {
		return false
	}
	// Published metadata is never mutated in place; readers hold it unlocked.
	next := o.state.installed.Clone()
	next.Installed[rec.ID] = rec
	o.state.installed = next
	return true
}
