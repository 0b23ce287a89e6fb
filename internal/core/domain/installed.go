package domain

// MetadataFormatVersion is the current version of the installed metadata document.
const MetadataFormatVersion = 1

// InstalledLocalization records one localization present in the game tree.
type InstalledLocalization struct {
	ID      string `toml:"id"`
	Version string `toml:"version"`
	Source  string `toml:"source"`
}

// InstalledMetadata is the durable record of installed localizations for one install root.
type InstalledMetadata struct {
	FormatVersion uint32                           `toml:"format_version"`
	Installed     map[string]InstalledLocalization `toml:"installed"`
}

// NewInstalledMetadata returns an empty metadata document at the current format version.
func NewInstalledMetadata() *InstalledMetadata {
	return &InstalledMetadata{
		FormatVersion: MetadataFormatVersion,
		Installed:     make(map[string]InstalledLocalization),
	}
}

// Clone returns a deep copy of the metadata.
func (m *InstalledMetadata) Clone() *InstalledMetadata {
	if m == nil {
		return nil
	}
	out := &InstalledMetadata{
		FormatVersion: m.FormatVersion,
		Installed:     make(map[string]InstalledLocalization, len(m.Installed)),
	}
	for id, rec := range m.Installed {
		out.Installed[id] = rec
	}
	return out
}
