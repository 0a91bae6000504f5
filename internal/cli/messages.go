package cli

import "time"

// tickMsg advances the TUI wall clock once per second.
type tickMsg time.Time

// noticeExpiredMsg clears the snackbar notice with the matching id.
type noticeExpiredMsg struct {
	id string
}

// notifyDoneMsg carries the outcome of a fire-and-forget notification.
type notifyDoneMsg struct {
	notice string
}
