package cli

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/willsoar-boundare/working-time-around/internal/domain"
	"github.com/willsoar-boundare/working-time-around/internal/store"
)

// deleteConfirmState holds the confirmation dialog for removing the
// selected day's last entry.
type deleteConfirmState struct {
	form    *huh.Form
	confirm bool
	key     string
	index   int
	day     time.Time
}

func (m appModel) openDeleteConfirm() (tea.Model, tea.Cmd) {
	day := m.month.AddDate(0, 0, m.monthCursor)
	key := domain.KeyForDate(day)
	rec := m.app.Tracker.Current().Records[key]
	if rec == nil {
		return m.showNotice("Nothing recorded on " + day.Format("2006-01-02"))
	}

	// The last entry of the day: usually the last start, but a record
	// with more stops than starts targets the dangling stop instead.
	index := len(rec.Starts) - 1
	if n := len(rec.Stops); n > len(rec.Starts) {
		index = n - 1
	}
	if index < 0 {
		index = 0
	}

	dc := &deleteConfirmState{confirm: true, key: key, index: index, day: day}
	dc.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete the last entry of " + day.Format("2006-01-02") + "?").
				Affirmative("Delete").
				Negative("Keep").
				Value(&dc.confirm),
		),
	).WithTheme(wtaHuhTheme()).WithShowHelp(false)

	m.deleteConfirm = dc
	return m, dc.form.Init()
}

func (m appModel) updateDeleteConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m.deleteConfirm = nil
		return m, nil
	}

	form, cmd := m.deleteConfirm.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.deleteConfirm.form = f
	}

	if m.deleteConfirm.form.State == huh.StateCompleted {
		dc := m.deleteConfirm
		m.deleteConfirm = nil
		if !dc.confirm {
			return m, nil
		}
		return m.deleteEntry(dc.key, dc.index, dc.day)
	}
	if m.deleteConfirm.form.State == huh.StateAborted {
		m.deleteConfirm = nil
		return m, nil
	}
	return m, cmd
}

func (m appModel) deleteEntry(key string, index int, day time.Time) (tea.Model, tea.Cmd) {
	_, changed, err := m.app.Tracker.Dispatch(context.Background(), store.DeleteEntry{Key: key, Index: index})
	if err != nil {
		return m.showNotice(err.Error())
	}
	if !changed {
		return m.showNotice("Nothing to delete")
	}
	return m.showNotice("Deleted entry of " + day.Format("2006-01-02"))
}
