// Package metadata persists the installed localization metadata of a game directory.
package metadata

import (
	"errors"
	iofs "io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/limbus/internal/adapters/fs"
	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MetadataStore = (*Store)(nil)

// Store implements ports.MetadataStore with one TOML document per install root.
type Store struct{}

// NewStore creates a new metadata Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads <root>/llc_config.toml. A missing document is created empty.
func (s *Store) Load(root string) (*domain.InstalledMetadata, error) {
	path := domain.MetadataPath(root)

	//nolint:gosec // Path is derived from the validated install root
	data, err := os.ReadFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		metadata := domain.NewInstalledMetadata()
		if err := s.Save(root, metadata); err != nil {
			return nil, err
		}
		return metadata, nil
	}
	if err != nil {
		return nil, domain.Classify(domain.ErrFilesystem,
			zerr.With(zerr.Wrap(err, domain.ErrMetadataReadFailed.Error()), "path", path))
	}

	var metadata domain.InstalledMetadata
	if err := toml.Unmarshal(data, &metadata); err != nil {
		return nil, domain.Classify(domain.ErrDecode,
			zerr.With(zerr.Wrap(err, domain.ErrMetadataDecodeFailed.Error()), "path", path))
	}
	if metadata.Installed == nil {
		metadata.Installed = make(map[string]domain.InstalledLocalization)
	}

	return &metadata, nil
}

// Save replaces the metadata document of root as a whole.
func (s *Store) Save(root string, metadata *domain.InstalledMetadata) error {
	path := domain.MetadataPath(root)

	data, err := toml.Marshal(metadata)
	if err != nil {
		return domain.Classify(domain.ErrDecode, zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error()))
	}

	if err := fs.WriteFileAtomic(path, data, domain.FilePerm); err != nil {
		return domain.Classify(domain.ErrFilesystem,
			zerr.With(zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error()), "path", path))
	}

	return nil
}
