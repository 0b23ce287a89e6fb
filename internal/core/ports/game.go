package ports

import "context"

// GameLocator finds and validates game installations.
//
//go:generate mockgen -source=game.go -destination=mocks/mock_game.go -package=mocks
type GameLocator interface {
	// Locate discovers the install root of the game.
	Locate() (string, error)

	// Validate checks that dir contains the game executable and data directory.
	Validate(dir string) error
}

// GameRuntime observes and starts the game process.
type GameRuntime interface {
	// IsRunning reports whether a game process is alive.
	IsRunning(ctx context.Context) (bool, error)

	// Launch starts the game through its launcher.
	Launch(ctx context.Context) error
}

// GameConfig maintains the game's own language selection.
type GameConfig interface {
	// Prune removes the language selection when it is unreadable or points
	// at a localization that is no longer installed.
	Prune(root string) error
}
