package domain_test

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag        string
		kind       domain.FormatKind
		recognized bool
	}{
		{tag: "compatible", kind: domain.FormatCompatible, recognized: true},
		{tag: "new", kind: domain.FormatNew, recognized: true},
		{tag: "auto", kind: domain.FormatAuto, recognized: true},
		{tag: "legacy", kind: domain.FormatUnrecognized, recognized: false},
		{tag: "", kind: domain.FormatUnrecognized, recognized: false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()
			f := domain.ParseFormat(tt.tag)
			assert.Equal(t, tt.kind, f.Kind)
			assert.Equal(t, tt.recognized, f.Recognized())
			assert.Equal(t, tt.tag, f.String())
			if tt.recognized {
				assert.NoError(t, f.Validate())
			}
		})
	}
}

func TestFormat_ValidateNamesUnknownTag(t *testing.T) {
	t.Parallel()

	err := domain.ParseFormat("legacy").Validate()
	require.ErrorIs(t, err, domain.ErrConfiguration)
	require.ErrorIs(t, err, domain.ErrUnrecognizedFormat)
	assert.ErrorContains(t, err, `unrecognized localization format "legacy"`)
}

func TestCatalog_Decode(t *testing.T) {
	t.Parallel()

	payload := `{
		"format_version": 7,
		"unknown_field": true,
		"localizations": [
			{
				"id": "en",
				"version": "2",
				"name": "English",
				"authors": ["a", "b"],
				"url": "https://example.com/en.zip",
				"size": 1000,
				"fonts": [{"url": "https://example.com/f.otf", "hash": "abc", "name": "f.otf"}],
				"format": "whatever"
			}
		]
	}`

	var catalog domain.Catalog
	require.NoError(t, json.Unmarshal([]byte(payload), &catalog))

	assert.Equal(t, uint32(7), catalog.FormatVersion)
	require.Len(t, catalog.Localizations, 1)

	loc, ok := catalog.Find("en")
	require.True(t, ok)
	assert.Equal(t, int64(1000), loc.Size)
	assert.Equal(t, domain.FormatUnrecognized, loc.Format.Kind)
	assert.Equal(t, "whatever", loc.Format.Name)
	assert.Equal(t, "f.otf", loc.Fonts[0].Name)

	_, ok = catalog.Find("missing")
	assert.False(t, ok)
}

func TestLayoutPaths(t *testing.T) {
	t.Parallel()

	root := filepath.Join("games", "limbus")
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{name: "LangPath", got: domain.LangPath(root), expected: filepath.Join(root, "LimbusCompany_Data", "Lang")},
		{name: "LocalizationPath", got: domain.LocalizationPath(root, "en"), expected: filepath.Join(root, "LimbusCompany_Data", "Lang", "en")},
		{name: "FontPath", got: domain.FontPath(root, "en"), expected: filepath.Join(root, "LimbusCompany_Data", "Lang", "en", "Font")},
		{name: "FontCachePath", got: domain.FontCachePath(root), expected: filepath.Join(root, "FontCache")},
		{name: "MetadataPath", got: domain.MetadataPath(root), expected: filepath.Join(root, "llc_config.toml")},
		{name: "GameConfigPath", got: domain.GameConfigPath(root), expected: filepath.Join(root, "LimbusCompany_Data", "Lang", "config.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.NoError(t, domain.Classify(domain.ErrNetwork, nil))

	cause := errors.New("connection reset")
	err := domain.Classify(domain.ErrNetwork, zerr.Wrap(cause, domain.ErrCatalogRequestFailed.Error()))

	require.ErrorIs(t, err, domain.ErrNetwork)
	require.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, domain.ErrIntegrity)
	assert.Equal(t, domain.ErrNetwork, domain.KindOf(err))
	assert.ErrorContains(t, err, domain.ErrCatalogRequestFailed.Error())
	assert.Nil(t, domain.KindOf(cause))
}

func TestWith_KeepsSentinelMatchable(t *testing.T) {
	t.Parallel()

	detail := zerr.With(domain.With(domain.ErrSizeMismatch, "expected", 10), "actual", 7)
	err := domain.Classify(domain.ErrIntegrity, detail)

	require.ErrorIs(t, err, domain.ErrIntegrity)
	require.ErrorIs(t, err, domain.ErrSizeMismatch)
	assert.NotErrorIs(t, err, domain.ErrHashMismatch)
	assert.ErrorContains(t, err, domain.ErrSizeMismatch.Error())

	var zErr *zerr.Error
	require.ErrorAs(t, detail, &zErr)
	assert.Equal(t, map[string]any{"expected": 10, "actual": 7}, zErr.Metadata())
}

func TestSettings_Selected(t *testing.T) {
	t.Parallel()

	s := &domain.Settings{
		Sources: map[string]domain.Source{
			"main": {Name: "main", URL: "https://example.com/catalog.json"},
		},
	}

	_, err := s.Selected()
	require.ErrorIs(t, err, domain.ErrConfiguration)
	require.ErrorIs(t, err, domain.ErrNoSourceSelected)

	s.SelectedSource = "other"
	_, err = s.Selected()
	require.ErrorIs(t, err, domain.ErrConfiguration)
	require.ErrorIs(t, err, domain.ErrUnknownSource)

	s.SelectedSource = "main"
	src, err := s.Selected()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/catalog.json", src.URL)
}

func TestClones(t *testing.T) {
	t.Parallel()

	meta := domain.NewInstalledMetadata()
	meta.Installed["en"] = domain.InstalledLocalization{ID: "en", Version: "1", Source: "main"}
	clone := meta.Clone()
	clone.Installed["fr"] = domain.InstalledLocalization{ID: "fr"}
	assert.Len(t, meta.Installed, 1)

	settings := &domain.Settings{Sources: map[string]domain.Source{"a": {Name: "a"}}}
	sc := settings.Clone()
	delete(sc.Sources, "a")
	assert.Len(t, settings.Sources, 1)
}
