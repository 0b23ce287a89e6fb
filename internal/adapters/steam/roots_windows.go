//go:build windows

package steam

import (
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

// steamRoots reads the Steam install path the client records for the current user.
func steamRoots() []string {
	key, err := registry.OpenKey(registry.CURRENT_USER, `Software\Valve\Steam`, registry.QUERY_VALUE)
	if err != nil {
		return nil
	}
	defer key.Close() //nolint:errcheck // read only

	path, _, err := key.GetStringValue("SteamPath")
	if err != nil || path == "" {
		return nil
	}
	return []string{filepath.FromSlash(path)}
}
