package fs

import (
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.GameConfig = (*GameConfig)(nil)

// gameLanguage is the document the game keeps in Lang/config.json.
type gameLanguage struct {
	Lang string `json:"lang"`
}

// GameConfig keeps the game's active language selection consistent with
// the installed localizations.
type GameConfig struct {
	logger ports.Logger
}

// NewGameConfig creates a new GameConfig.
func NewGameConfig(logger ports.Logger) *GameConfig {
	return &GameConfig{logger: logger}
}

// Prune deletes Lang/config.json when it cannot be parsed, names no
// language, or names a localization directory that does not exist. The game
// recreates the file with its default language on next start.
func (g *GameConfig) Prune(root string) error {
	path := domain.GameConfigPath(root)

	info, err := os.Stat(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return gameConfigErr(err, path)
	}
	if !info.Mode().IsRegular() {
		return gameConfigErr(zerr.New("language config is not a regular file"), path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the install root
	if err != nil {
		return gameConfigErr(err, path)
	}

	var cfg gameLanguage
	if err := json.Unmarshal(data, &cfg); err != nil {
		g.logger.Debug(fmt.Sprintf("language config is unreadable, removing it: %v", err))
		return g.remove(path)
	}

	if cfg.Lang == "" || !filepath.IsLocal(cfg.Lang) {
		g.logger.Debug(fmt.Sprintf("language config names an invalid language %q, removing it", cfg.Lang))
		return g.remove(path)
	}

	if _, err := os.Stat(filepath.Join(domain.LangPath(root), cfg.Lang)); errors.Is(err, iofs.ErrNotExist) {
		g.logger.Info(fmt.Sprintf("active language %s is no longer installed, resetting game language", cfg.Lang))
		return g.remove(path)
	}

	return nil
}

func (g *GameConfig) remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return gameConfigErr(err, path)
	}
	return nil
}

func gameConfigErr(err error, path string) error {
	return domain.Classify(domain.ErrFilesystem,
		zerr.With(zerr.Wrap(err, domain.ErrGameConfigFailed.Error()), "path", path))
}
