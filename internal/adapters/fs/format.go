package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FormatResolver = (*FormatResolver)(nil)

// FormatResolver locates the payload directory of an extracted archive.
type FormatResolver struct{}

// NewFormatResolver creates a new FormatResolver.
func NewFormatResolver() *FormatResolver {
	return &FormatResolver{}
}

// Resolve returns extractedRoot for the new layout and searches for the
// StoryData marker for the compatible and auto layouts.
func (r *FormatResolver) Resolve(extractedRoot string, format domain.Format) (string, error) {
	switch format.Kind {
	case domain.FormatNew:
		return extractedRoot, nil
	case domain.FormatCompatible, domain.FormatAuto:
		return findPayload(extractedRoot)
	default:
		return "", format.Validate()
	}
}

// findPayload walks depth-first, visiting siblings in lexical order, and
// returns the first directory that directly contains the marker directory.
func findPayload(root string) (string, error) {
	stack := []string{root}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return "", domain.Classify(domain.ErrFilesystem,
				zerr.With(zerr.Wrap(err, "failed to read extracted directory"), "path", dir))
		}

		children := make([]string, 0, len(entries))
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if entry.Name() == domain.PayloadMarkerDirName {
				return dir, nil
			}
			children = append(children, filepath.Join(dir, entry.Name()))
		}

		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return "", domain.Classify(domain.ErrNotFound, domain.With(domain.ErrPayloadNotFound, "path", root))
}
