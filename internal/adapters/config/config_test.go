package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/limbus/internal/adapters/config"
	"go.trai.ch/limbus/internal/core/domain"
)

func testDefaults() *domain.Settings {
	return &domain.Settings{
		ConfigVersion: domain.SettingsVersion,
		Sources: map[string]domain.Source{
			"main":   {Name: "Main", URL: "https://example.com/main.json"},
			"mirror": {Name: "Mirror", URL: "https://example.com/mirror.json"},
		},
	}
}

func TestSettingsStore_LoadInitialisesMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	store, err := config.NewSettingsStoreWithDefaults(path, testDefaults())
	require.NoError(t, err)

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.SettingsVersion, settings.ConfigVersion)
	assert.Len(t, settings.Sources, 2)
	assert.FileExists(t, path)

	again, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, settings, again)
}

func TestSettingsStore_SaveLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	store, err := config.NewSettingsStoreWithDefaults(path, testDefaults())
	require.NoError(t, err)

	settings := &domain.Settings{
		ConfigVersion:  domain.SettingsVersion,
		Sources:        map[string]domain.Source{"main": {Name: "Main", URL: "https://example.com/main.json"}},
		SelectedSource: "main",
		GameDirectory:  "/games/limbus",
		Language:       "en",
	}
	require.NoError(t, store.Save(settings))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, settings, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func TestSettingsStore_MigratesVersionZero(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	legacy := `sources:
  main:
    name: Custom
    url: https://custom.example.com/catalog.json
selected_source: main
`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	store, err := config.NewSettingsStoreWithDefaults(path, testDefaults())
	require.NoError(t, err)

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.SettingsVersion, settings.ConfigVersion)
	assert.Equal(t, "Custom", settings.Sources["main"].Name, "existing sources win")
	assert.Equal(t, "Mirror", settings.Sources["mirror"].Name)
	assert.Equal(t, "main", settings.SelectedSource)

	persisted, err := os.ReadFile(path) //nolint:gosec // test path
	require.NoError(t, err)
	reparsed, err := config.ParseSettings(persisted)
	require.NoError(t, err)
	assert.Equal(t, settings, reparsed)
}

func TestSettingsStore_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sources: [unterminated"), 0o600))

	store, err := config.NewSettingsStoreWithDefaults(path, testDefaults())
	require.NoError(t, err)

	_, err = store.Load()
	require.ErrorIs(t, err, domain.ErrDecode)
	assert.ErrorContains(t, err, domain.ErrSettingsDecodeFailed.Error())
}

func TestMigrate_CurrentVersionUntouched(t *testing.T) {
	t.Parallel()

	settings := &domain.Settings{ConfigVersion: domain.SettingsVersion}
	assert.False(t, config.Migrate(settings, testDefaults()))
	assert.Empty(t, settings.Sources)
}

func TestLoadRuntime(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		rt, err := config.LoadRuntime()
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, rt.CatalogTimeout)
		assert.Equal(t, 300*time.Second, rt.DownloadTimeout)
		assert.Equal(t, "Limbus Launcher", rt.UserAgent)
		assert.Contains(t, rt.ReleasesURL, "releases/latest")
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("LIMBUS_DOWNLOAD_TIMEOUT", "10m")
		t.Setenv("LIMBUS_USER_AGENT", "test-agent")
		t.Setenv("LIMBUS_TEMP_DIR", "/var/tmp/limbus")

		rt, err := config.LoadRuntime()
		require.NoError(t, err)
		assert.Equal(t, 10*time.Minute, rt.DownloadTimeout)
		assert.Equal(t, "test-agent", rt.UserAgent)
		assert.Equal(t, "/var/tmp/limbus", rt.TempDir)
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("LIMBUS_CATALOG_TIMEOUT", "soon")

		_, err := config.LoadRuntime()
		require.ErrorIs(t, err, domain.ErrConfiguration)
	})
}

func TestNewSettingsStore_EmbeddedDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	store, err := config.NewSettingsStore(path)
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.SettingsVersion, settings.ConfigVersion)
	assert.NotNil(t, settings.Sources)
}
