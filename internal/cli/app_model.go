package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/willsoar-boundare/working-time-around/internal/cli/formatter"
	"github.com/willsoar-boundare/working-time-around/internal/domain"
	"github.com/willsoar-boundare/working-time-around/internal/notify"
	"github.com/willsoar-boundare/working-time-around/internal/store"
)

// tuiMode selects which screen the TUI is showing.
type tuiMode int

const (
	modeToday tuiMode = iota
	modeMonth
	modeSettings
)

// noticeDuration is how long a snackbar notice stays visible.
const noticeDuration = 3 * time.Second

// appModel is the root bubbletea Model. Update is the only writer of
// the tracker state: every mutation is a dispatched reducer action,
// and notification/persistence side effects ride on tea.Cmds so the
// update loop itself stays synchronous.
type appModel struct {
	app *App

	mode  tuiMode
	now   time.Time
	month time.Time // first day of the displayed month

	memoInput   textinput.Model
	memoEditing bool

	monthCursor   int
	deleteConfirm *deleteConfirmState

	settingsForm *settingsFormState

	// Snackbar notice; the uuid guards against a stale expiry timer
	// clearing a newer notice.
	notice   string
	noticeID string

	width    int
	height   int
	quitting bool
}

func newAppModel(app *App) appModel {
	ti := textinput.New()
	ti.Placeholder = "memo"
	ti.CharLimit = 200

	now := app.now()
	return appModel{
		app:       app,
		now:       now,
		month:     domain.FirstOfMonth(now),
		memoInput: ti,
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return tickOncePerSecond()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		if m.quitting {
			// View is being torn down: let the timer chain end here.
			return m, nil
		}
		return m, tickOncePerSecond()

	case noticeExpiredMsg:
		if msg.id == m.noticeID {
			m.notice = ""
			m.noticeID = ""
		}
		return m, nil

	case notifyDoneMsg:
		if msg.notice == "" {
			return m, nil
		}
		return m.showNotice(msg.notice)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == modeSettings && m.settingsForm != nil {
		return m.updateSettingsForm(msg)
	}
	if m.deleteConfirm != nil {
		return m.updateDeleteConfirm(msg)
	}
	if m.memoEditing {
		var cmd tea.Cmd
		m.memoInput, cmd = m.memoInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.mode == modeSettings && m.settingsForm != nil {
		return m.updateSettingsForm(msg)
	}
	if m.deleteConfirm != nil {
		return m.updateDeleteConfirm(msg)
	}

	if m.memoEditing {
		switch msg.Type {
		case tea.KeyEnter:
			return m.commitMemo()
		case tea.KeyEsc:
			m.memoEditing = false
			m.memoInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.memoInput, cmd = m.memoInput.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		if m.mode == modeToday {
			m.mode = modeMonth
			m.month = domain.FirstOfMonth(m.now)
			m.monthCursor = m.now.Day() - 1
		} else {
			m.mode = modeToday
		}
		return m, nil
	case "g":
		return m.openSettings()
	}

	switch m.mode {
	case modeToday:
		return m.handleTodayKey(msg)
	case modeMonth:
		return m.handleMonthKey(msg)
	}
	return m, nil
}

// ── today screen ─────────────────────────────────────────────────────────────

func (m appModel) handleTodayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		return m.dispatchStart()
	case "x":
		return m.dispatchStop()
	case "m":
		latest := domain.Latest(m.todayRecord(), m.app.defaultBreak())
		m.memoInput.SetValue(latest.Memo)
		m.memoEditing = true
		return m, m.memoInput.Focus()
	}
	return m, nil
}

func (m appModel) dispatchStart() (tea.Model, tea.Cmd) {
	at := m.now
	_, changed, err := m.app.Tracker.Dispatch(context.Background(), store.Start{At: at})
	if err != nil {
		return m.showNotice(err.Error())
	}
	if !changed {
		return m.showNotice("Already started")
	}
	model, noticeCmd := m.showNotice("Started " + at.Format("15:04"))
	return model, tea.Batch(noticeCmd, notifyCmd(m.app, notify.StartMessage(at)))
}

func (m appModel) dispatchStop() (tea.Model, tea.Cmd) {
	at := m.now
	state, changed, err := m.app.Tracker.Dispatch(context.Background(), store.Stop{At: at})
	if err != nil {
		return m.showNotice(err.Error())
	}
	if !changed {
		return m.showNotice("Not started yet")
	}
	latest := domain.Latest(state.Records[domain.KeyForDate(at)], m.app.defaultBreak())
	model, noticeCmd := m.showNotice("Stopped " + at.Format("15:04"))
	return model, tea.Batch(noticeCmd, notifyCmd(m.app, notify.StopMessage(at, latest.Memo)))
}

func (m appModel) commitMemo() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.memoInput.Value())
	m.memoEditing = false
	m.memoInput.Blur()

	_, changed, err := m.app.Tracker.Dispatch(context.Background(), store.UpdateMemo{At: m.now, Text: text})
	if err != nil {
		return m.showNotice(err.Error())
	}
	if !changed {
		return m.showNotice("Start a session before writing a memo")
	}
	model, noticeCmd := m.showNotice("Memo saved")
	return model, tea.Batch(noticeCmd, notifyCmd(m.app, notify.MemoMessage(text)))
}

func (m appModel) todayRecord() *domain.DailyRecord {
	return m.app.Tracker.Current().Records[domain.KeyForDate(m.now)]
}

// ── month screen ─────────────────────────────────────────────────────────────

func (m appModel) handleMonthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	days := domain.DaysInMonth(m.month)
	switch msg.String() {
	case "up", "k":
		if m.monthCursor > 0 {
			m.monthCursor--
		}
	case "down", "j":
		if m.monthCursor < days-1 {
			m.monthCursor++
		}
	case "[":
		m.month = m.month.AddDate(0, -1, 0)
		m.monthCursor = 0
	case "]":
		m.month = m.month.AddDate(0, 1, 0)
		m.monthCursor = 0
	case "d":
		return m.openDeleteConfirm()
	}
	return m, nil
}

// ── notices ──────────────────────────────────────────────────────────────────

func (m appModel) showNotice(text string) (appModel, tea.Cmd) {
	m.notice = text
	m.noticeID = uuid.New().String()
	id := m.noticeID
	return m, tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

// notifyCmd delivers the notification off the update loop and reports
// the outcome as a transient notice.
func notifyCmd(app *App, text string) tea.Cmd {
	return func() tea.Msg {
		return notifyDoneMsg{notice: sendNotification(context.Background(), app, text)}
	}
}

func tickOncePerSecond() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.mode {
	case modeMonth:
		body = m.viewMonth()
		if m.deleteConfirm != nil {
			body += "\n" + m.deleteConfirm.form.View()
		}
	case modeSettings:
		body = m.viewSettings()
	default:
		body = m.viewToday()
	}

	footer := formatter.Dim(m.keyHints())
	if m.notice != "" {
		footer = formatter.StyleYellow.Render(m.notice)
	}
	return body + "\n" + footer + "\n"
}

func (m appModel) viewToday() string {
	latest := domain.Latest(m.todayRecord(), m.app.defaultBreak())
	rec := m.todayRecord()

	lines := []string{
		formatter.StyleHeader.Render(m.now.Format("Mon 2006-01-02")) + "  " +
			formatter.Bold(m.now.Format("15:04:05")),
		"",
		"Start " + formatter.StyleGreen.Render(formatter.ClockTime(latest.Start)) +
			"   Stop " + formatter.StyleRed.Render(formatter.ClockTime(latest.Stop)),
	}
	if rec.Open() {
		lines = append(lines, formatter.Dim("running ")+formatter.Elapsed(*latest.Start, m.now))
	}
	if latest.BreakMinutes != nil {
		lines = append(lines, formatter.Dim("break ")+formatter.FormatMinutes(*latest.BreakMinutes))
	}
	if m.memoEditing {
		lines = append(lines, "", m.memoInput.View())
	} else if latest.Memo != "" {
		lines = append(lines, "", formatter.Dim("memo ")+latest.Memo)
	}

	return formatter.RenderBox("today", strings.Join(lines, "\n"))
}

func (m appModel) keyHints() string {
	if m.memoEditing {
		return "enter save · esc cancel"
	}
	switch m.mode {
	case modeMonth:
		if m.deleteConfirm != nil {
			return "enter confirm · esc cancel"
		}
		return "↑/↓ day · [/] month · d delete · tab today · q quit"
	case modeSettings:
		return "enter next · esc cancel"
	default:
		return "s start · x stop · m memo · tab month · g settings · q quit"
	}
}
