package store

import (
	"time"

	"github.com/willsoar-boundare/working-time-around/internal/domain"
)

// Action is a tagged state-transition request handled by Reduce.
// Implementations carry the data for exactly one kind of mutation.
type Action interface {
	// Kind names the action for logging.
	Kind() string
}

// Start logs a session start at the given instant on that day's record.
// Rejected silently when the day's last session is still open.
type Start struct {
	At time.Time
}

func (Start) Kind() string { return "start" }

// Stop closes the day's open session at the given instant.
// Rejected silently when no session is open.
type Stop struct {
	At time.Time
}

func (Stop) Kind() string { return "stop" }

// UpdateMemo sets the memo slot of the current (last) session of the
// day containing At. Appends while the memo sequence lags behind the
// starts, overwrites the last memo otherwise. Rejected when the day has
// no sessions at all, so a memo can never create a phantom session.
type UpdateMemo struct {
	At   time.Time
	Text string
}

func (UpdateMemo) Kind() string { return "update_memo" }

// DeleteEntry removes the start/stop/memo entries at Index from the
// record under Key, dropping the key entirely once all three sequences
// are empty. Out-of-range indexes are rejected silently.
type DeleteEntry struct {
	Key   string
	Index int
}

func (DeleteEntry) Kind() string { return "delete_entry" }

// UpdateSettings replaces the persisted settings.
type UpdateSettings struct {
	Settings domain.Settings
}

func (UpdateSettings) Kind() string { return "update_settings" }

// Replace swaps in a freshly loaded state, e.g. after deserializing the
// persisted blob at startup.
type Replace struct {
	State State
}

func (Replace) Kind() string { return "replace" }
