package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/willsoar-boundare/working-time-around/internal/cli/formatter"
	"github.com/willsoar-boundare/working-time-around/internal/domain"
	"github.com/willsoar-boundare/working-time-around/internal/store"
)

func newSettingsCmd(app *App) *cobra.Command {
	var webhookURL, mailAddress string
	var breakMinutes int

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, changed, err := applySettingsFlags(cmd.Flags(),
				app.Tracker.Current().Settings, webhookURL, mailAddress, breakMinutes)
			if err != nil {
				return err
			}

			if changed {
				if _, _, err := app.Tracker.Dispatch(context.Background(), store.UpdateSettings{Settings: settings}); err != nil {
					return err
				}
				fmt.Println("Settings updated.")
				return nil
			}

			fmt.Printf("Webhook URL:   %s\n", orUnset(settings.WebhookURL))
			fmt.Printf("Mail address:  %s\n", orUnset(settings.MailAddress))
			if settings.DefaultBreakMinutes != nil {
				fmt.Printf("Default break: %s\n", formatter.FormatMinutes(*settings.DefaultBreakMinutes))
			} else {
				fmt.Printf("Default break: %s (config default)\n", formatter.FormatMinutes(app.Config.DefaultBreakMinutes))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&webhookURL, "webhook-url", "", "Webhook URL notified on start/stop/memo ('' to disable)")
	cmd.Flags().StringVar(&mailAddress, "mail-address", "", "Address used by 'export --mailto'")
	cmd.Flags().IntVar(&breakMinutes, "break-minutes", 0, "Default break length in minutes")
	return cmd
}

// applySettingsFlags overlays explicitly set flags onto a copy of the
// current settings. Unchanged flags leave their setting untouched, so
// "wta settings --webhook-url ''" clears the URL while a bare
// "wta settings" shows it.
func applySettingsFlags(flags *pflag.FlagSet, current domain.Settings, webhookURL, mailAddress string, breakMinutes int) (domain.Settings, bool, error) {
	settings := current.Clone()
	changed := false

	if flags.Changed("webhook-url") {
		settings.WebhookURL = webhookURL
		changed = true
	}
	if flags.Changed("mail-address") {
		settings.MailAddress = mailAddress
		changed = true
	}
	if flags.Changed("break-minutes") {
		if breakMinutes < 0 {
			return domain.Settings{}, false, fmt.Errorf("--break-minutes must not be negative")
		}
		settings.DefaultBreakMinutes = &breakMinutes
		changed = true
	}
	return settings, changed, nil
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
