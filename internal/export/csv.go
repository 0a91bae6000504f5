// Package export formats a month of attendance records for CSV and
// mailto export. Both variants derive each day through domain.Latest so
// the exported row always matches what the UI shows for that day.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/willsoar-boundare/working-time-around/internal/domain"
)

const timeOfDayLayout = "15:04"

// MonthCSV returns one quoted CSV row per calendar day of the month
// containing firstDay, in ascending day order:
// date, start, stop, memo, break length. Days without activity produce
// a row with empty time fields.
func MonthCSV(firstDay time.Time, records domain.Records, defaultBreakMinutes *int) []string {
	return monthRows(firstDay, records, defaultBreakMinutes, true)
}

// MailBodyCSV is the 4-column variant (no break length) used as the
// body of a mailto export.
func MailBodyCSV(firstDay time.Time, records domain.Records, defaultBreakMinutes *int) []string {
	return monthRows(firstDay, records, defaultBreakMinutes, false)
}

func monthRows(firstDay time.Time, records domain.Records, defaultBreakMinutes *int, withBreak bool) []string {
	first := domain.FirstOfMonth(firstDay)
	days := domain.DaysInMonth(first)

	rows := make([]string, 0, days)
	for day := 0; day < days; day++ {
		date := first.AddDate(0, 0, day)
		latest := domain.Latest(records[domain.KeyForDate(date)], defaultBreakMinutes)

		fields := []string{
			date.Format("2006-01-02"),
			formatTimeOfDay(latest.Start),
			formatTimeOfDay(latest.Stop),
			latest.Memo,
		}
		if withBreak {
			fields = append(fields, formatBreak(latest))
		}
		rows = append(rows, joinQuoted(fields))
	}
	return rows
}

// formatBreak renders the effective break length, but only for days
// that actually have a completed or running session to subtract it
// from.
func formatBreak(latest domain.LatestSession) string {
	if latest.Start == nil || latest.BreakMinutes == nil {
		return ""
	}
	m := *latest.BreakMinutes
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func formatTimeOfDay(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timeOfDayLayout)
}

// joinQuoted wraps every field in double quotes, doubling any inner
// quotes, and joins with commas. Every field is quoted regardless of
// content, which is what the mail-import tooling on the receiving end
// expects.
func joinQuoted(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
