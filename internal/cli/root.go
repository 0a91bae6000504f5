package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/willsoar-boundare/working-time-around/internal/config"
	"github.com/willsoar-boundare/working-time-around/internal/domain"
	"github.com/willsoar-boundare/working-time-around/internal/notify"
	"github.com/willsoar-boundare/working-time-around/internal/service"
)

// App holds the wired dependencies used by CLI commands and the TUI.
type App struct {
	Tracker service.Tracker
	Config  *config.Config

	// NewNotifier builds a notifier for the currently configured
	// webhook URL. Swapped in tests.
	NewNotifier func(url string) notify.Notifier

	// Online reports connectivity; checked before each notification.
	Online func() bool

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool

	// Now is the clock; swapped in tests.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// defaultBreak returns the effective default break length: the
// persisted setting when present, otherwise the ambient config value.
func (a *App) defaultBreak() *int {
	settings := a.Tracker.Current().Settings
	fallback := a.Config.DefaultBreakMinutes
	return domain.CoalesceIntPtr(settings.DefaultBreakMinutes, &fallback)
}

// NewRootCmd creates the top-level "wta" command and registers all
// subcommands against the provided App. Running without a subcommand
// on an interactive terminal launches the TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "wta",
		Short: "Record daily working hours around start and stop times",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newMemoCmd(app),
		newStatusCmd(app),
		newDeleteCmd(app),
		newExportCmd(app),
		newSettingsCmd(app),
		newTUICmd(app),
	)

	return root
}
