package domain

import "fmt"

// FormatKind enumerates the archive layouts a localization can declare.
type FormatKind int

const (
	// FormatUnrecognized carries a tag this version does not understand.
	FormatUnrecognized FormatKind = iota
	// FormatCompatible archives wrap the payload in a nested tree marked by StoryData.
	FormatCompatible
	// FormatNew archives have the payload at their root.
	FormatNew
	// FormatAuto archives are searched the same way as compatible ones.
	FormatAuto
)

const (
	formatCompatibleTag = "compatible"
	formatNewTag        = "new"
	formatAutoTag       = "auto"
)

// Format is the layout declared by a localization. Unknown tags are kept
// verbatim in Name so they can be reported instead of silently defaulted.
type Format struct {
	Kind FormatKind
	Name string
}

// ParseFormat maps a catalog tag to a Format.
func ParseFormat(tag string) Format {
	switch tag {
	case formatCompatibleTag:
		return Format{Kind: FormatCompatible, Name: tag}
	case formatNewTag:
		return Format{Kind: FormatNew, Name: tag}
	case formatAutoTag:
		return Format{Kind: FormatAuto, Name: tag}
	default:
		return Format{Kind: FormatUnrecognized, Name: tag}
	}
}

// String returns the catalog tag of the format.
func (f Format) String() string {
	return f.Name
}

// Recognized reports whether the format is one of the known layouts.
func (f Format) Recognized() bool {
	return f.Kind != FormatUnrecognized
}

// Validate returns a configuration error naming the tag when the format is
// not one of the known layouts.
func (f Format) Validate() error {
	if f.Recognized() {
		return nil
	}
	return Classify(ErrConfiguration, With(fmt.Errorf("%w %q", ErrUnrecognizedFormat, f.Name), "format", f.Name))
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.Name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	*f = ParseFormat(string(text))
	return nil
}
