package domain

// EventName identifies a notification emitted to collaborators.
type EventName string

const (
	// EventCatalogRefreshed fires after a catalog was fetched and cached.
	EventCatalogRefreshed EventName = "remote_localizations_updated"
	// EventStateChanged fires after settings or installed metadata changed.
	EventStateChanged EventName = "app_state_updated"

	// EventPlayStarted fires when a batch update begins.
	EventPlayStarted EventName = "play:started"
	// EventPlayGameRunning fires when a batch update is refused because the game runs.
	EventPlayGameRunning EventName = "play:game_running"
	// EventPlayUnknownLocalization fires for an installed id missing from the catalog.
	EventPlayUnknownLocalization EventName = "play:unknown_localization"
	// EventPlayUpToDate fires for an installed id that needs no work.
	EventPlayUpToDate EventName = "play:up_to_date"
	// EventPlayUpdating fires before an installed id is reinstalled.
	EventPlayUpdating EventName = "play:updating"
	// EventPlayUpdateFinished fires after an installed id was reinstalled.
	EventPlayUpdateFinished EventName = "play:update_finished"
	// EventPlayStartingGame fires right before the game is launched.
	EventPlayStartingGame EventName = "play:starting_game"
	// EventPlayFinished fires when a batch update completes.
	EventPlayFinished EventName = "play:finished"
)

// Event is a fire-and-forget notification.
type Event struct {
	Name           EventName
	BatchID        string
	LocalizationID string
	Version        string
}
