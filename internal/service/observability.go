package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// DispatchEvent describes one tracker operation: the initial load or a
// dispatched action, how long it took, and what it did to the state.
type DispatchEvent struct {
	// Action is the action kind, or "load" for the startup load.
	Action   string
	Duration time.Duration
	// Rejected is set when the reducer declined the transition and
	// nothing was persisted.
	Rejected bool
	// Days is the number of days with records after the operation.
	Days      int
	Err       error
	StartedAt time.Time
}

// Observer receives tracker events. The tracker calls it synchronously
// on every dispatch, so implementations must not block.
type Observer interface {
	ObserveDispatch(ctx context.Context, event DispatchEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveDispatch(context.Context, DispatchEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes tracker events to w as slog text lines.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) ObserveDispatch(ctx context.Context, event DispatchEvent) {
	attrs := []any{
		"action", event.Action,
		"duration_ms", event.Duration.Milliseconds(),
		"rejected", event.Rejected,
		"days", event.Days,
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "tracker_dispatch", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "tracker_dispatch", attrs...)
}

func observerOrNoop(observers []Observer) Observer {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopObserver{}
}
