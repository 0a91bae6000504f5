// Package store models the application state as an explicit value
// transformed by pure reducer functions. All record mutations flow
// through Reduce; persistence and notification are side effects layered
// on top by the service, never performed here.
package store

import (
	"github.com/willsoar-boundare/working-time-around/internal/domain"
)

// State is the full reducible application state.
type State struct {
	Records  domain.Records
	Settings domain.Settings
}

// NewState returns an empty state ready for dispatching.
func NewState() State {
	return State{Records: domain.Records{}}
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	return State{
		Records:  s.Records.Clone(),
		Settings: s.Settings.Clone(),
	}
}

// Reduce applies an action to the state and returns the resulting
// state. The input state is never mutated. Invalid transitions
// (double start, stop without an open session, out-of-range delete)
// return the input state unchanged rather than an error; the UI
// disables those controls instead of surfacing failures.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Start:
		return reduceStart(s, a)
	case Stop:
		return reduceStop(s, a)
	case UpdateMemo:
		return reduceUpdateMemo(s, a)
	case DeleteEntry:
		return reduceDeleteEntry(s, a)
	case UpdateSettings:
		next := s.Clone()
		next.Settings = a.Settings.Clone()
		return next
	case Replace:
		return a.State.Clone()
	default:
		return s
	}
}

func reduceStart(s State, a Start) State {
	key := domain.KeyForDate(a.At)
	if s.Records[key].Open() {
		return s
	}
	next := s.Clone()
	if next.Records == nil {
		next.Records = domain.Records{}
	}
	rec := next.Records[key]
	if rec == nil {
		rec = &domain.DailyRecord{}
		next.Records[key] = rec
	}
	rec.Starts = append(rec.Starts, a.At)
	return next
}

func reduceStop(s State, a Stop) State {
	key := domain.KeyForDate(a.At)
	if !s.Records[key].Open() {
		return s
	}
	next := s.Clone()
	rec := next.Records[key]
	rec.Stops = append(rec.Stops, a.At)
	return next
}

func reduceUpdateMemo(s State, a UpdateMemo) State {
	key := domain.KeyForDate(a.At)
	rec := s.Records[key]
	if rec == nil || len(rec.Starts) == 0 {
		return s
	}
	next := s.Clone()
	rec = next.Records[key]
	if len(rec.Memos) < len(rec.Starts) {
		rec.Memos = append(rec.Memos, a.Text)
	} else {
		rec.Memos[len(rec.Memos)-1] = a.Text
	}
	return next
}

func reduceDeleteEntry(s State, a DeleteEntry) State {
	rec := s.Records[a.Key]
	if rec == nil || a.Index < 0 {
		return s
	}
	// The index must address at least one of the three sequences.
	if a.Index >= len(rec.Starts) && a.Index >= len(rec.Stops) && a.Index >= len(rec.Memos) {
		return s
	}
	next := s.Clone()
	rec = next.Records[a.Key]
	if a.Index < len(rec.Starts) {
		rec.Starts = append(rec.Starts[:a.Index], rec.Starts[a.Index+1:]...)
	}
	if a.Index < len(rec.Stops) {
		rec.Stops = append(rec.Stops[:a.Index], rec.Stops[a.Index+1:]...)
	}
	if a.Index < len(rec.Memos) {
		rec.Memos = append(rec.Memos[:a.Index], rec.Memos[a.Index+1:]...)
	}
	if rec.Empty() {
		delete(next.Records, a.Key)
	}
	return next
}
