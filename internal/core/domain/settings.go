package domain

import "maps"

// SettingsVersion is the current version of the settings document.
const SettingsVersion = 1

// Source is a named catalog location.
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Settings are the application's own preferences.
type Settings struct {
	ConfigVersion  int               `yaml:"config_version"`
	Sources        map[string]Source `yaml:"sources"`
	SelectedSource string            `yaml:"selected_source,omitempty"`
	GameDirectory  string            `yaml:"game_directory,omitempty"`
	Language       string            `yaml:"language,omitempty"`
}

// Clone returns a deep copy of the settings.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	out := *s
	out.Sources = maps.Clone(s.Sources)
	if out.Sources == nil {
		out.Sources = make(map[string]Source)
	}
	return &out
}

// Selected returns the currently selected source.
func (s *Settings) Selected() (Source, error) {
	if s.SelectedSource == "" {
		return Source{}, Classify(ErrConfiguration, ErrNoSourceSelected)
	}
	src, ok := s.Sources[s.SelectedSource]
	if !ok {
		return Source{}, Classify(ErrConfiguration, With(ErrUnknownSource, "source", s.SelectedSource))
	}
	return src, nil
}
