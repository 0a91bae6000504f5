package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/willsoar-boundare/working-time-around/internal/cli/formatter"
	"github.com/willsoar-boundare/working-time-around/internal/domain"
	"github.com/willsoar-boundare/working-time-around/internal/notify"
	"github.com/willsoar-boundare/working-time-around/internal/store"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a work session for today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			at := app.now()

			_, changed, err := app.Tracker.Dispatch(ctx, store.Start{At: at})
			if err != nil {
				return err
			}
			if !changed {
				fmt.Println("A session is already running; stop it first.")
				return nil
			}

			fmt.Printf("Started at %s\n", at.Format("15:04"))
			printNotice(sendNotification(ctx, app, notify.StartMessage(at)))
			return nil
		},
	}
}

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			at := app.now()

			state, changed, err := app.Tracker.Dispatch(ctx, store.Stop{At: at})
			if err != nil {
				return err
			}
			if !changed {
				fmt.Println("No session is running.")
				return nil
			}

			latest := domain.Latest(state.Records[domain.KeyForDate(at)], app.defaultBreak())
			fmt.Printf("Stopped at %s\n", at.Format("15:04"))
			printNotice(sendNotification(ctx, app, notify.StopMessage(at, latest.Memo)))
			return nil
		},
	}
}

func newMemoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "memo <text>",
		Short: "Set the memo of today's current session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			text := strings.Join(args, " ")

			_, changed, err := app.Tracker.Dispatch(ctx, store.UpdateMemo{At: app.now(), Text: text})
			if err != nil {
				return err
			}
			if !changed {
				fmt.Println("Nothing recorded today; start a session first.")
				return nil
			}

			fmt.Println("Memo updated.")
			printNotice(sendNotification(ctx, app, notify.MemoMessage(text)))
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's latest session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			state := app.Tracker.Current()
			rec := state.Records[domain.KeyForDate(now)]
			latest := domain.Latest(rec, app.defaultBreak())

			fmt.Printf("Date:  %s\n", now.Format("2006-01-02"))
			fmt.Printf("Start: %s\n", formatter.ClockTime(latest.Start))
			fmt.Printf("Stop:  %s\n", formatter.ClockTime(latest.Stop))
			if latest.Memo != "" {
				fmt.Printf("Memo:  %s\n", latest.Memo)
			}
			if latest.BreakMinutes != nil {
				fmt.Printf("Break: %s\n", formatter.FormatMinutes(*latest.BreakMinutes))
			}
			if rec.Open() {
				fmt.Printf("Running for %s\n", formatter.Elapsed(*latest.Start, now))
			}
			return nil
		},
	}
}

func newDeleteCmd(app *App) *cobra.Command {
	var date string
	var index int

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete one start/stop/memo entry of a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateFlag(date, app)
			if err != nil {
				return err
			}
			key := domain.KeyForDate(day)

			_, changed, err := app.Tracker.Dispatch(context.Background(), store.DeleteEntry{Key: key, Index: index})
			if err != nil {
				return err
			}
			if !changed {
				fmt.Printf("No entry %d recorded on %s.\n", index, day.Format("2006-01-02"))
				return nil
			}
			fmt.Printf("Deleted entry %d of %s.\n", index, day.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to edit (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&index, "index", 0, "Entry index within the day")
	return cmd
}
