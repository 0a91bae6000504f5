package cli

import (
	"context"
	"fmt"
	"time"
)

// sendNotification delivers a state-change notification when a webhook
// is configured and the network is reachable. Best-effort: the returned
// string is a one-line notice for the user ("" when nothing needs
// saying), never an error that affects the already-committed state.
func sendNotification(ctx context.Context, app *App, text string) string {
	settings := app.Tracker.Current().Settings
	if settings.WebhookURL == "" {
		return ""
	}
	if app.Online != nil && !app.Online() {
		return "Offline: notification skipped"
	}
	n := app.NewNotifier(settings.WebhookURL)
	if err := n.Send(ctx, text); err != nil {
		return fmt.Sprintf("Notification failed: %v", err)
	}
	return ""
}

func printNotice(notice string) {
	if notice != "" {
		fmt.Println(notice)
	}
}

// parseDateFlag parses a --date value, defaulting to today.
func parseDateFlag(value string, app *App) (time.Time, error) {
	if value == "" {
		return app.now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", value)
	}
	return t, nil
}
