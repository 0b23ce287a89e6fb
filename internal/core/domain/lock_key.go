package domain

// LockKey scopes mutual exclusion to one localization inside one install root.
type LockKey struct {
	LocalizationID string
	InstallRoot    string
}
