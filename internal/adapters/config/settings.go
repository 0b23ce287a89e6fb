// Package config provides the settings store and the runtime configuration.
package config

import (
	_ "embed"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"go.trai.ch/limbus/internal/adapters/fs"
	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultSettings []byte

var _ ports.SettingsStore = (*SettingsStore)(nil)

// SettingsStore keeps the application settings in a YAML document.
type SettingsStore struct {
	mu       sync.Mutex
	path     string
	defaults *domain.Settings
}

// NewSettingsStore creates a store for path using the embedded defaults.
// An empty path resolves to the user config directory.
func NewSettingsStore(path string) (*SettingsStore, error) {
	defaults, err := ParseSettings(defaultSettings)
	if err != nil {
		return nil, err
	}
	return NewSettingsStoreWithDefaults(path, defaults)
}

// NewSettingsStoreWithDefaults creates a store for path with explicit defaults.
func NewSettingsStoreWithDefaults(path string, defaults *domain.Settings) (*SettingsStore, error) {
	if path == "" {
		resolved, err := xdg.ConfigFile(filepath.Join(domain.AppDirName, domain.SettingsFileName))
		if err != nil {
			return nil, domain.Classify(domain.ErrFilesystem, zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()))
		}
		path = resolved
	}

	return &SettingsStore{
		path:     filepath.Clean(path),
		defaults: defaults,
	}, nil
}

// Path returns the location of the settings document.
func (s *SettingsStore) Path() string {
	return s.path
}

// Load reads the settings. A missing document is initialised from the
// defaults, an outdated one is migrated and saved back.
func (s *SettingsStore) Load() (*domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, iofs.ErrNotExist) {
		settings := s.defaults.Clone()
		settings.ConfigVersion = domain.SettingsVersion
		if err := s.write(settings); err != nil {
			return nil, err
		}
		return settings, nil
	}
	if err != nil {
		return nil, domain.Classify(domain.ErrFilesystem,
			zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", s.path))
	}

	settings, err := ParseSettings(data)
	if err != nil {
		return nil, zerr.With(err, "path", s.path)
	}

	if Migrate(settings, s.defaults) {
		if err := s.write(settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// Save replaces the settings document.
func (s *SettingsStore) Save(settings *domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(settings)
}

func (s *SettingsStore) write(settings *domain.Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return domain.Classify(domain.ErrDecode, zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error()))
	}

	if err := fs.WriteFileAtomic(s.path, data, domain.PrivateFilePerm); err != nil {
		return domain.Classify(domain.ErrFilesystem,
			zerr.With(zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error()), "path", s.path))
	}
	return nil
}

// ParseSettings decodes a settings document.
func ParseSettings(data []byte) (*domain.Settings, error) {
	var settings domain.Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, domain.Classify(domain.ErrDecode, zerr.Wrap(err, domain.ErrSettingsDecodeFailed.Error()))
	}
	if settings.Sources == nil {
		settings.Sources = make(map[string]domain.Source)
	}
	return &settings, nil
}

// Migrate upgrades settings to the current version and reports whether
// anything changed. Documents older than version 1 receive every default
// source they do not already define.
func Migrate(settings, defaults *domain.Settings) bool {
	if settings.ConfigVersion >= domain.SettingsVersion {
		return false
	}

	if settings.Sources == nil {
		settings.Sources = make(map[string]domain.Source)
	}
	for name, src := range defaults.Sources {
		if _, ok := settings.Sources[name]; !ok {
			settings.Sources[name] = src
		}
	}

	settings.ConfigVersion = domain.SettingsVersion
	return true
}
