package domain

// Font describes a font file a localization needs next to its payload.
// Its identity for caching purposes is Hash, not Name.
type Font struct {
	URL  string `json:"url"`
	Hash string `json:"hash"`
	Name string `json:"name"`
}

// Localization is a catalog entry describing one installable localization.
type Localization struct {
	ID          string   `json:"id"`
	Version     string   `json:"version"`
	Name        string   `json:"name"`
	Flag        string   `json:"flag"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Authors     []string `json:"authors"`
	URL         string   `json:"url"`
	Size        int64    `json:"size"`
	Fonts       []Font   `json:"fonts"`
	Format      Format   `json:"format"`
}

// Catalog is the document served by a localization source.
type Catalog struct {
	FormatVersion uint32         `json:"format_version"`
	Localizations []Localization `json:"localizations"`
}

// Find returns the localization with the given id.
func (c Catalog) Find(id string) (Localization, bool) {
	for _, l := range c.Localizations {
		if l.ID == id {
			return l, true
		}
	}
	return Localization{}, false
}
