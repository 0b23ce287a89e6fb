//go:build !windows

package steam

import (
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

func steamRoots() []string {
	if runtime.GOOS == "darwin" {
		return []string{filepath.Join(xdg.Home, "Library", "Application Support", "Steam")}
	}
	return []string{
		filepath.Join(xdg.Home, ".steam", "steam"),
		filepath.Join(xdg.Home, ".local", "share", "Steam"),
	}
}
