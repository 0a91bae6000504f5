package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/willsoar-boundare/working-time-around/internal/cli/formatter"
	"github.com/willsoar-boundare/working-time-around/internal/store"
)

// settingsFormState holds the huh form and its bound values while the
// settings screen is open.
type settingsFormState struct {
	form         *huh.Form
	webhookURL   string
	mailAddress  string
	breakMinutes string
}

func wtaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func (m appModel) openSettings() (tea.Model, tea.Cmd) {
	settings := m.app.Tracker.Current().Settings

	fs := &settingsFormState{
		webhookURL:  settings.WebhookURL,
		mailAddress: settings.MailAddress,
	}
	if settings.DefaultBreakMinutes != nil {
		fs.breakMinutes = strconv.Itoa(*settings.DefaultBreakMinutes)
	}

	fs.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Webhook URL").
				Description("Start/stop/memo changes are posted here; empty disables").
				Value(&fs.webhookURL),
			huh.NewInput().
				Title("Mail address").
				Description("Recipient of the mailto export").
				Value(&fs.mailAddress),
			huh.NewInput().
				Title("Default break (minutes)").
				Placeholder(strconv.Itoa(m.app.Config.DefaultBreakMinutes)).
				Value(&fs.breakMinutes).
				Validate(validateOptionalNonNegativeInt),
		),
	).WithTheme(wtaHuhTheme()).WithShowHelp(false)

	m.mode = modeSettings
	m.settingsForm = fs
	return m, fs.form.Init()
}

func (m appModel) updateSettingsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m.mode = modeToday
		m.settingsForm = nil
		return m, nil
	}

	form, cmd := m.settingsForm.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.settingsForm.form = f
	}

	if m.settingsForm.form.State == huh.StateCompleted {
		return m.commitSettings()
	}
	if m.settingsForm.form.State == huh.StateAborted {
		m.mode = modeToday
		m.settingsForm = nil
		return m, nil
	}
	return m, cmd
}

func (m appModel) commitSettings() (tea.Model, tea.Cmd) {
	fs := m.settingsForm
	settings := m.app.Tracker.Current().Settings.Clone()
	settings.WebhookURL = strings.TrimSpace(fs.webhookURL)
	settings.MailAddress = strings.TrimSpace(fs.mailAddress)

	if v := strings.TrimSpace(fs.breakMinutes); v != "" {
		minutes, _ := strconv.Atoi(v)
		settings.DefaultBreakMinutes = &minutes
	} else {
		settings.DefaultBreakMinutes = nil
	}

	m.mode = modeToday
	m.settingsForm = nil

	_, _, err := m.app.Tracker.Dispatch(context.Background(), store.UpdateSettings{Settings: settings})
	if err != nil {
		return m.showNotice(err.Error())
	}
	return m.showNotice("Settings saved")
}

func (m appModel) viewSettings() string {
	if m.settingsForm == nil {
		return ""
	}
	return formatter.Header("settings") + "\n" + m.settingsForm.form.View()
}

func validateOptionalNonNegativeInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}
