// Package steam discovers, observes and launches the Steam install of the game.
package steam

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	libraryFoldersFile = "libraryfolders.vdf"
	defaultInstallDir  = "Limbus Company"
)

var _ ports.GameLocator = (*Locator)(nil)

// Locator implements ports.GameLocator over Steam library folders.
type Locator struct {
	roots func() []string
}

// NewLocator creates a Locator searching the platform's Steam roots.
func NewLocator() *Locator {
	return &Locator{roots: steamRoots}
}

// NewLocatorWithRoots creates a Locator searching the given Steam roots.
func NewLocatorWithRoots(roots ...string) *Locator {
	return &Locator{roots: func() []string { return roots }}
}

// Locate returns the first valid game install found in any Steam library.
func (l *Locator) Locate() (string, error) {
	for _, root := range l.roots() {
		if !isDir(root) {
			continue
		}
		for _, library := range libraries(root) {
			if dir, ok := installDir(library); ok {
				return dir, nil
			}
		}
	}
	return "", domain.Classify(domain.ErrNotFound, domain.ErrGameNotFound)
}

// Validate checks that dir holds the game executable and its data directory.
func (l *Locator) Validate(dir string) error {
	if dir == "" {
		return domain.Classify(domain.ErrNotFound, domain.ErrInvalidGameDirectory)
	}
	exe := filepath.Join(dir, domain.GameExecutableName)
	if _, err := os.Stat(exe); err != nil {
		return domain.Classify(domain.ErrNotFound,
			zerr.With(zerr.Wrap(err, domain.ErrInvalidGameDirectory.Error()), "path", dir))
	}
	if !isDir(filepath.Join(dir, domain.GameDataDirName)) {
		return domain.Classify(domain.ErrNotFound,
			zerr.With(domain.With(domain.ErrInvalidGameDirectory, "path", dir), "missing", domain.GameDataDirName))
	}
	return nil
}

// libraries returns the steamapps directories of root and of every library
// listed in its libraryfolders.vdf.
func libraries(root string) []string {
	steamapps := filepath.Join(root, "steamapps")
	out := []string{steamapps}
	seen := map[string]struct{}{filepath.Clean(steamapps): {}}

	for _, p := range quotedValues(filepath.Join(steamapps, libraryFoldersFile), "path") {
		lib := filepath.Join(unescapeVDF(p), "steamapps")
		if _, ok := seen[filepath.Clean(lib)]; ok {
			continue
		}
		seen[filepath.Clean(lib)] = struct{}{}
		out = append(out, lib)
	}
	return out
}

// installDir resolves the game directory inside one steamapps directory.
func installDir(steamapps string) (string, bool) {
	manifest := filepath.Join(steamapps, "appmanifest_"+domain.SteamAppID+".acf")
	if dirs := quotedValues(manifest, "installdir"); len(dirs) > 0 {
		dir := filepath.Join(steamapps, "common", unescapeVDF(dirs[0]))
		if isDir(dir) {
			return dir, true
		}
	}

	fallback := filepath.Join(steamapps, "common", defaultInstallDir)
	if _, err := os.Stat(filepath.Join(fallback, domain.GameExecutableName)); err == nil {
		return fallback, true
	}
	return "", false
}

// quotedValues returns the values of every `"key" "value"` line in a
// KeyValues file. Unreadable files have no values.
func quotedValues(path, key string) []string {
	f, err := os.Open(path) //nolint:gosec // Steam paths are discovered, not user input
	if err != nil {
		return nil
	}
	defer f.Close() //nolint:errcheck // read side

	var values []string
	needle := `"` + key + `"`
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, needle) {
			continue
		}
		// "key"  "value" splits into ["", key, ws, value, ""]
		if parts := strings.Split(line, `"`); len(parts) > 3 && parts[1] == key {
			values = append(values, parts[3])
		}
	}
	return values
}

func unescapeVDF(s string) string {
	return strings.ReplaceAll(s, `\\`, `\`)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
