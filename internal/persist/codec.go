// Package persist serializes application state across the storage
// boundary. Records travel as a JSON document whose timestamps are
// plain strings; deserialization re-hydrates every start and stop back
// into time values and fails loudly on the first malformed one.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/willsoar-boundare/working-time-around/internal/domain"
)

// ErrCorrupt marks a persisted payload that cannot be decoded:
// malformed structure, an unparsable timestamp, or an unknown schema
// version. Callers fall back to an empty state after reporting it once.
var ErrCorrupt = errors.New("persisted state is corrupt")

// timeLayout is the wire form of every start/stop timestamp.
const timeLayout = time.RFC3339Nano

// wireRecord mirrors domain.DailyRecord with timestamps as strings.
type wireRecord struct {
	Starts       []string `json:"starts"`
	Stops        []string `json:"stops"`
	Memos        []string `json:"memos"`
	BreakMinutes *int     `json:"breakTimeLengthMin,omitempty"`
}

// SerializeRecords encodes the full mapping. Timestamps keep their
// zone offset on the wire so the wall-clock time the user saw survives
// a reload.
func SerializeRecords(records domain.Records) (string, error) {
	wire := make(map[string]wireRecord, len(records))
	for key, rec := range records {
		w := wireRecord{Memos: append([]string(nil), rec.Memos...)}
		for _, t := range rec.Starts {
			w.Starts = append(w.Starts, t.Format(timeLayout))
		}
		for _, t := range rec.Stops {
			w.Stops = append(w.Stops, t.Format(timeLayout))
		}
		if rec.BreakMinutes != nil {
			v := *rec.BreakMinutes
			w.BreakMinutes = &v
		}
		wire[key] = w
	}
	data, err := json.Marshal(wire)
	if err != nil {
		return "", fmt.Errorf("encoding records: %w", err)
	}
	return string(data), nil
}

// DeserializeRecords decodes text produced by SerializeRecords,
// re-hydrating the starts and stops (and only those two sequences)
// into time values. Memos pass through as plain strings. Any parse
// failure fails the whole call with ErrCorrupt.
func DeserializeRecords(text string) (domain.Records, error) {
	var wire map[string]wireRecord
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return nil, fmt.Errorf("%w: decoding records: %v", ErrCorrupt, err)
	}
	records := make(domain.Records, len(wire))
	for key, w := range wire {
		rec := &domain.DailyRecord{
			Memos: append([]string(nil), w.Memos...),
		}
		for _, s := range w.Starts {
			t, err := time.Parse(timeLayout, s)
			if err != nil {
				return nil, fmt.Errorf("%w: start timestamp %q in %s: %v", ErrCorrupt, s, key, err)
			}
			rec.Starts = append(rec.Starts, t)
		}
		for _, s := range w.Stops {
			t, err := time.Parse(timeLayout, s)
			if err != nil {
				return nil, fmt.Errorf("%w: stop timestamp %q in %s: %v", ErrCorrupt, s, key, err)
			}
			rec.Stops = append(rec.Stops, t)
		}
		if w.BreakMinutes != nil {
			v := *w.BreakMinutes
			rec.BreakMinutes = &v
		}
		records[key] = rec
	}
	return records, nil
}
