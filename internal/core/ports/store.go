package ports

import "go.trai.ch/limbus/internal/core/domain"

// MetadataStore persists the installed metadata of an install root.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type MetadataStore interface {
	// Load reads the metadata of root, creating an empty document when none exists.
	Load(root string) (*domain.InstalledMetadata, error)

	// Save replaces the metadata document of root as a whole.
	Save(root string, metadata *domain.InstalledMetadata) error
}

// SettingsStore persists the application settings.
type SettingsStore interface {
	// Load reads the settings, initialising and migrating them when needed.
	Load() (*domain.Settings, error)

	// Save replaces the settings document.
	Save(settings *domain.Settings) error
}
