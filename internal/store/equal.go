package store

import "reflect"

// Equal reports whether two states hold the same records and settings.
// Used to detect rejected transitions, which return the input state
// unchanged. State stays small (one user's days), so a deep comparison
// is acceptable on every dispatch.
func Equal(a, b State) bool {
	return reflect.DeepEqual(a, b)
}
