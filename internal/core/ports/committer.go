package ports

// Committer owns the localization directories inside the game tree.
//
//go:generate mockgen -source=committer.go -destination=mocks/mock_committer.go -package=mocks
type Committer interface {
	// Commit replaces the installed directory of id with the contents of payloadDir.
	Commit(root, id, payloadDir string) error

	// Remove deletes the installed directory of id. A missing directory is not an error.
	Remove(root, id string) error

	// Exists reports whether the installed directory of id is present.
	Exists(root, id string) bool
}
