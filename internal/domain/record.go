package domain

import "time"

// DailyRecord holds every start, stop, and memo entry logged for one
// calendar day. The three sequences are appended independently: a day
// with an open session has one more start than stops, and memos may lag
// behind starts until the user writes one. The n-th element of each
// sequence belongs to the n-th session of the day.
type DailyRecord struct {
	Starts []time.Time
	Stops  []time.Time
	Memos  []string

	// BreakMinutes is a per-day override of the default break length.
	// Nil means "use the caller's default".
	BreakMinutes *int
}

// Records maps a date key (see KeyForDate) to the day's record.
// Absence of a key means no activity was logged that day.
type Records map[string]*DailyRecord

// LatestSession is the derived "what to show now" view of a day:
// the most recent start, the matching stop if the session is closed,
// the current memo, and the effective break length.
type LatestSession struct {
	Start        *time.Time
	Stop         *time.Time
	Memo         string
	BreakMinutes *int
}

// Open reports whether the record's last session has been started but
// not yet stopped.
func (r *DailyRecord) Open() bool {
	return r != nil && len(r.Starts) > len(r.Stops)
}

// Empty reports whether the record holds no entries at all.
func (r *DailyRecord) Empty() bool {
	return r == nil || (len(r.Starts) == 0 && len(r.Stops) == 0 && len(r.Memos) == 0)
}

// Clone returns a deep copy of the record.
func (r *DailyRecord) Clone() *DailyRecord {
	if r == nil {
		return nil
	}
	c := &DailyRecord{
		Starts: append([]time.Time(nil), r.Starts...),
		Stops:  append([]time.Time(nil), r.Stops...),
		Memos:  append([]string(nil), r.Memos...),
	}
	if r.BreakMinutes != nil {
		v := *r.BreakMinutes
		c.BreakMinutes = &v
	}
	return c
}

// Clone returns a deep copy of the mapping.
func (rs Records) Clone() Records {
	if rs == nil {
		return nil
	}
	c := make(Records, len(rs))
	for k, r := range rs {
		c[k] = r.Clone()
	}
	return c
}

// Latest derives the latest session view from a day's record.
//
// A nil record yields an all-empty session carrying only the default
// break length. Otherwise the start is the last logged start, and the
// stop is reported only when every started session has been closed
// (len(stops) >= len(starts)); an open session shows start without
// stop. A record with stops but no starts is treated as having neither:
// a stop is never shown without a matching start.
func Latest(r *DailyRecord, defaultBreakMinutes *int) LatestSession {
	s := LatestSession{BreakMinutes: CoalesceIntPtr(nil, defaultBreakMinutes)}
	if r == nil {
		return s
	}
	s.BreakMinutes = CoalesceIntPtr(r.BreakMinutes, defaultBreakMinutes)
	if len(r.Memos) > 0 {
		s.Memo = r.Memos[len(r.Memos)-1]
	}
	if len(r.Starts) == 0 {
		return s
	}
	start := r.Starts[len(r.Starts)-1]
	s.Start = &start
	if len(r.Stops) >= len(r.Starts) {
		stop := r.Stops[len(r.Stops)-1]
		s.Stop = &stop
	}
	return s
}
