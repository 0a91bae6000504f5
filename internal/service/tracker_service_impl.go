package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/willsoar-boundare/working-time-around/internal/persist"
	"github.com/willsoar-boundare/working-time-around/internal/repository"
	"github.com/willsoar-boundare/working-time-around/internal/store"
)

// StateKey is the storage key holding the serialized state blob.
const StateKey = "working-time-around"

type trackerService struct {
	repo     repository.StateRepo
	observer Observer
	state    store.State
}

// NewTracker creates a Tracker backed by the given state repository.
func NewTracker(repo repository.StateRepo, observers ...Observer) Tracker {
	return &trackerService{
		repo:     repo,
		observer: observerOrNoop(observers),
		state:    store.NewState(),
	}
}

func (s *trackerService) Load(ctx context.Context) (store.State, error) {
	started := time.Now()
	state, err := s.load(ctx)
	s.state = state
	s.observe(ctx, "load", started, err, false, len(state.Records))
	return state, err
}

func (s *trackerService) load(ctx context.Context) (store.State, error) {
	text, err := s.repo.Get(ctx, StateKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// First run: nothing persisted yet.
			return store.NewState(), nil
		}
		return store.NewState(), fmt.Errorf("loading state: %w", err)
	}

	records, settings, err := persist.Decode(text)
	if err != nil {
		// Corrupt blob: start over with whatever settings survived,
		// and let the caller report the corruption once.
		fallback := store.NewState()
		fallback.Settings = settings
		return fallback, err
	}

	state := store.State{Records: records, Settings: settings}
	return state, nil
}

func (s *trackerService) Dispatch(ctx context.Context, a store.Action) (store.State, bool, error) {
	started := time.Now()
	next := store.Reduce(s.state, a)
	if store.Equal(s.state, next) {
		s.observe(ctx, a.Kind(), started, nil, true, len(s.state.Records))
		return s.state, false, nil
	}

	blob, err := persist.Encode(next.Records, next.Settings)
	if err == nil {
		err = s.repo.Put(ctx, StateKey, blob)
	}
	if err != nil {
		err = fmt.Errorf("persisting state after %s: %w", a.Kind(), err)
		s.observe(ctx, a.Kind(), started, err, false, len(s.state.Records))
		return s.state, false, err
	}

	s.state = next
	s.observe(ctx, a.Kind(), started, nil, false, len(next.Records))
	return next, true, nil
}

func (s *trackerService) Current() store.State {
	return s.state
}

func (s *trackerService) observe(ctx context.Context, action string, started time.Time, err error, rejected bool, days int) {
	s.observer.ObserveDispatch(ctx, DispatchEvent{
		Action:    action,
		Duration:  time.Since(started),
		Rejected:  rejected,
		Days:      days,
		Err:       err,
		StartedAt: started,
	})
}
