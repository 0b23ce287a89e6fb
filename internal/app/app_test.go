package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/limbus/internal/adapters/events"
	"go.trai.ch/limbus/internal/adapters/telemetry"
	"go.trai.ch/limbus/internal/app"
	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports/mocks"
	"go.trai.ch/limbus/internal/engine/installer"
	"go.trai.ch/limbus/internal/engine/keylock"
	"go.trai.ch/limbus/internal/engine/orchestrator"
	"go.uber.org/mock/gomock"
)

const (
	root      = "/games/limbus"
	sourceURL = "https://example.com/catalog.json"
)

type fixture struct {
	app      *app.App
	settings *mocks.MockSettingsStore
	metadata *mocks.MockMetadataStore
	catalogs *mocks.MockCatalogFetcher
	releases *mocks.MockReleaseChecker
	hasher   *mocks.MockHasher
	logger   *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		settings: mocks.NewMockSettingsStore(ctrl),
		metadata: mocks.NewMockMetadataStore(ctrl),
		catalogs: mocks.NewMockCatalogFetcher(ctrl),
		releases: mocks.NewMockReleaseChecker(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	inst := installer.New(
		mocks.NewMockDownloader(ctrl),
		mocks.NewMockExtractor(ctrl),
		mocks.NewMockFormatResolver(ctrl),
		mocks.NewMockCommitter(ctrl),
		mocks.NewMockFontCache(ctrl),
		telemetry.NewNoOpTelemetry(),
		f.logger,
		t.TempDir(),
	)
	bus := events.NewBus()
	orch := orchestrator.New(f.settings, f.metadata, f.catalogs, mocks.NewMockGameLocator(ctrl),
		mocks.NewMockGameRuntime(ctrl), mocks.NewMockGameConfig(ctrl), bus, inst, keylock.NewRegistry(), f.logger)

	f.app = app.New(orch, f.releases, f.hasher, bus, f.logger)
	return f
}

func (f *fixture) expectLoad(installed map[string]string) {
	f.settings.EXPECT().Load().Return(&domain.Settings{
		ConfigVersion:  domain.SettingsVersion,
		Sources:        map[string]domain.Source{"main": {Name: "main", URL: sourceURL}},
		SelectedSource: "main",
		GameDirectory:  root,
	}, nil)

	m := domain.NewInstalledMetadata()
	for id, v := range installed {
		m.Installed[id] = domain.InstalledLocalization{ID: id, Version: v, Source: "main"}
	}
	f.metadata.EXPECT().Load(root).Return(m, nil)
}

func catalogOf(versions ...string) *domain.Catalog {
	c := &domain.Catalog{FormatVersion: 1}
	for i := 0; i+1 < len(versions); i += 2 {
		c.Localizations = append(c.Localizations, domain.Localization{ID: versions[i], Version: versions[i+1]})
	}
	return c
}

func TestApp_List(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.expectLoad(map[string]string{"en": "1"})
	f.catalogs.EXPECT().Fetch(gomock.Any(), sourceURL).Return(catalogOf("en", "2", "kr", "1"), nil)

	entries, err := f.app.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.True(t, entries[0].Installed)
	assert.Equal(t, "1", entries[0].InstalledVersion)
	assert.True(t, entries[0].Outdated())
	assert.False(t, entries[1].Installed)
	assert.False(t, entries[1].Outdated())
}

func TestApp_List_LoadsStateOnce(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.expectLoad(nil)
	f.catalogs.EXPECT().Fetch(gomock.Any(), sourceURL).Return(catalogOf(), nil).Times(2)

	for range 2 {
		_, err := f.app.List(context.Background())
		require.NoError(t, err)
	}
}

func TestApp_Status(t *testing.T) {
	t.Parallel()

	t.Run("reports catalog and release", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.expectLoad(map[string]string{"en": "1", "gone": "4"})
		f.catalogs.EXPECT().Fetch(gomock.Any(), sourceURL).Return(catalogOf("en", "2"), nil)
		f.releases.EXPECT().Latest(gomock.Any()).Return("v1.4.0", nil)

		status, err := f.app.Status(context.Background(), app.StatusOptions{})
		require.NoError(t, err)

		assert.Equal(t, "main", status.Source)
		assert.Equal(t, root, status.GameDirectory)
		assert.Equal(t, "v1.4.0", status.LatestRelease)
		assert.True(t, status.UpdateAvailable)
		assert.Equal(t, []app.InstalledStatus{
			{ID: "en", Version: "1", Source: "main", Latest: "2"},
			{ID: "gone", Version: "4", Source: "main"},
		}, status.Installed)
	})

	t.Run("tolerates failed release check", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.expectLoad(nil)
		f.catalogs.EXPECT().Fetch(gomock.Any(), sourceURL).Return(catalogOf(), nil)
		f.releases.EXPECT().Latest(gomock.Any()).Return("", errors.New("rate limited"))
		f.logger.EXPECT().Warn(gomock.Any())

		status, err := f.app.Status(context.Background(), app.StatusOptions{})
		require.NoError(t, err)
		assert.Empty(t, status.LatestRelease)
		assert.False(t, status.UpdateAvailable)
	})

	t.Run("fails when catalog fails", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.expectLoad(nil)
		f.catalogs.EXPECT().Fetch(gomock.Any(), sourceURL).
			Return(nil, domain.Classify(domain.ErrNetwork, errors.New("offline")))
		f.releases.EXPECT().Latest(gomock.Any()).Return("v1.0.0", nil).AnyTimes()

		_, err := f.app.Status(context.Background(), app.StatusOptions{})
		require.ErrorIs(t, err, domain.ErrNetwork)
	})

	t.Run("verify fingerprints installed trees", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.expectLoad(map[string]string{"en": "1"})
		f.catalogs.EXPECT().Fetch(gomock.Any(), sourceURL).Return(catalogOf("en", "1"), nil)
		f.releases.EXPECT().Latest(gomock.Any()).Return("v0.1.0", nil)
		f.hasher.EXPECT().Fingerprint(domain.LocalizationPath(root, "en")).Return("00ff", nil)

		status, err := f.app.Status(context.Background(), app.StatusOptions{Verify: true})
		require.NoError(t, err)
		require.Len(t, status.Installed, 1)
		assert.Equal(t, "00ff", status.Installed[0].Fingerprint)
	})
}

func TestApp_Sources(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.expectLoad(nil)

	var saved []*domain.Settings
	f.settings.EXPECT().Save(gomock.Any()).DoAndReturn(func(s *domain.Settings) error {
		saved = append(saved, s)
		return nil
	}).Times(3)

	ctx := context.Background()
	require.NoError(t, f.app.AddSource(ctx, "mirror", "https://mirror.example.com/catalog.json"))
	require.NoError(t, f.app.SelectSource(ctx, "mirror"))
	require.NoError(t, f.app.RemoveSource(ctx, "main"))

	sources, selected, err := f.app.Sources()
	require.NoError(t, err)
	assert.Equal(t, "mirror", selected)
	assert.Equal(t, []domain.Source{{Name: "mirror", URL: "https://mirror.example.com/catalog.json"}}, sources)
	require.Len(t, saved, 3)
	assert.Equal(t, "main", saved[0].SelectedSource)

	err = f.app.SelectSource(ctx, "main")
	require.ErrorIs(t, err, domain.ErrConfiguration)
	require.ErrorIs(t, err, domain.ErrUnknownSource)

	err = f.app.AddSource(ctx, "", "")
	require.ErrorIs(t, err, domain.ErrConfiguration)
	require.ErrorIs(t, err, domain.ErrInvalidSource)
}

func TestApp_Subscribe(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.expectLoad(nil)
	f.settings.EXPECT().Save(gomock.Any()).Return(nil)

	var got []domain.EventName
	unsubscribe := f.app.Subscribe(func(_ context.Context, e domain.Event) error {
		got = append(got, e.Name)
		return nil
	})
	defer unsubscribe()

	require.NoError(t, f.app.AddSource(context.Background(), "mirror", "https://mirror.example.com"))
	assert.Equal(t, []domain.EventName{domain.EventStateChanged}, got)
}

func TestApp_CheckVersion(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.releases.EXPECT().Latest(gomock.Any()).Return("v2.0.0", nil)

	latest, newer, err := f.app.CheckVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v2.0.0", latest)
	assert.True(t, newer)
}
