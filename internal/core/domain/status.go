package domain

// ItemState is the per-localization state during a batch update.
type ItemState int

const (
	// StateUnseen has not been compared against the catalog yet.
	StateUnseen ItemState = iota
	// StateEvaluated was compared against the catalog.
	StateEvaluated
	// StateUpToDate matches the catalog version and is present on disk.
	StateUpToDate
	// StateUpdating is being reinstalled.
	StateUpdating
	// StateInstalled was reinstalled successfully.
	StateInstalled
	// StateFailed failed to reinstall and aborted the batch.
	StateFailed
	// StateUnknown is installed but absent from the catalog.
	StateUnknown
)

var itemStateNames = [...]string{
	StateUnseen:    "unseen",
	StateEvaluated: "evaluated",
	StateUpToDate:  "up_to_date",
	StateUpdating:  "updating",
	StateInstalled: "installed",
	StateFailed:    "failed",
	StateUnknown:   "unknown",
}

// String returns the lowercase name of the state.
func (s ItemState) String() string {
	if int(s) < len(itemStateNames) {
		return itemStateNames[s]
	}
	return "invalid"
}

// BatchItem reports what a batch update did with one installed localization.
type BatchItem struct {
	ID          string
	FromVersion string
	ToVersion   string
	State       ItemState
}

// BatchReport summarises a batch update.
type BatchReport struct {
	ID       string
	Items    []BatchItem
	Launched bool
}
