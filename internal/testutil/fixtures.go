package testutil

import (
	"time"

	"github.com/willsoar-boundare/working-time-around/internal/domain"
)

// Day constructs a UTC timestamp on the given date at hour:min.
// Fixtures use UTC throughout so serialized and re-hydrated values
// compare equal in assertions.
func Day(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

// RecordOption mutates a DailyRecord under construction.
type RecordOption func(*domain.DailyRecord)

func WithStops(stops ...time.Time) RecordOption {
	return func(r *domain.DailyRecord) {
		r.Stops = stops
	}
}

func WithMemos(memos ...string) RecordOption {
	return func(r *domain.DailyRecord) {
		r.Memos = memos
	}
}

func WithBreak(minutes int) RecordOption {
	return func(r *domain.DailyRecord) {
		r.BreakMinutes = &minutes
	}
}

// NewRecord builds a DailyRecord with the given starts and options.
func NewRecord(starts []time.Time, opts ...RecordOption) *domain.DailyRecord {
	r := &domain.DailyRecord{Starts: starts}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
