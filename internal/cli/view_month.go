package cli

import (
	"fmt"
	"strings"

	"github.com/willsoar-boundare/working-time-around/internal/cli/formatter"
	"github.com/willsoar-boundare/working-time-around/internal/domain"
)

// viewMonth renders one row per calendar day of the displayed month,
// derived the same way the exporters derive their rows.
func (m appModel) viewMonth() string {
	state := m.app.Tracker.Current()
	days := domain.DaysInMonth(m.month)
	defaultBreak := m.app.defaultBreak()

	var b strings.Builder
	b.WriteString(formatter.Header(m.month.Format("January 2006")))
	b.WriteString("\n")

	for day := 0; day < days; day++ {
		date := m.month.AddDate(0, 0, day)
		latest := domain.Latest(state.Records[domain.KeyForDate(date)], defaultBreak)

		cursor := "  "
		if day == m.monthCursor {
			cursor = formatter.StyleBlue.Render("> ")
		}

		memo := latest.Memo
		if len(memo) > 30 {
			memo = memo[:27] + "..."
		}

		row := fmt.Sprintf("%s%s  %s  %s  %s",
			cursor,
			date.Format("02 Mon"),
			formatter.ClockTime(latest.Start),
			formatter.ClockTime(latest.Stop),
			memo,
		)
		if day == m.monthCursor {
			b.WriteString(formatter.Bold(row))
		} else if latest.Start == nil {
			b.WriteString(formatter.Dim(row))
		} else {
			b.WriteString(row)
		}
		b.WriteString("\n")
	}
	return b.String()
}
