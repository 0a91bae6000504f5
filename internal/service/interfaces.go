package service

import (
	"context"

	"github.com/willsoar-boundare/working-time-around/internal/store"
)

// Tracker owns the application state: it loads the persisted blob at
// startup, applies reducer actions, and persists every successful
// transition. Notification of state changes is a caller-side concern;
// the tracker never performs network I/O.
type Tracker interface {
	// Load reads and migrates the persisted blob into the current
	// state. A corrupt blob yields an empty state together with the
	// corruption error so the caller can surface it once; Load never
	// fails fatally on corruption.
	Load(ctx context.Context) (store.State, error)

	// Dispatch reduces the action into the state and persists the
	// result. The boolean reports whether the action changed anything;
	// rejected transitions return the unchanged state with false.
	Dispatch(ctx context.Context, a store.Action) (store.State, bool, error)

	// Current returns the last committed state.
	Current() store.State
}
