package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/willsoar-boundare/working-time-around/internal/export"
)

func newExportCmd(app *App) *cobra.Command {
	var month string
	var asMailto bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a month of records as CSV or a mailto link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := parseMonthFlag(month, app)
			if err != nil {
				return err
			}
			state := app.Tracker.Current()

			if asMailto {
				if state.Settings.MailAddress == "" {
					return fmt.Errorf("no mail address configured; set one with 'wta settings --mail-address'")
				}
				lines := export.MailBodyCSV(first, state.Records, app.defaultBreak())
				fmt.Println(export.MailtoURI(state.Settings.MailAddress, first, lines))
				return nil
			}

			for _, row := range export.MonthCSV(first, state.Records, app.defaultBreak()) {
				fmt.Println(row)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to export (YYYY-MM, default current)")
	cmd.Flags().BoolVar(&asMailto, "mailto", false, "Print a mailto: link instead of CSV rows")
	return cmd
}

// parseMonthFlag parses a --month value, defaulting to the current month.
func parseMonthFlag(value string, app *App) (time.Time, error) {
	if value == "" {
		return app.now(), nil
	}
	t, err := time.ParseInLocation("2006-01", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --month %q: expected YYYY-MM", value)
	}
	return t, nil
}
