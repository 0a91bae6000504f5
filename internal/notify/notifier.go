// Package notify delivers best-effort, fire-and-forget text
// notifications of state changes to a user-configured webhook. A
// failure is reported once as a short message and discarded; it never
// blocks or reverts the state mutation that triggered it.
package notify

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

// Notifier sends a plain-text notification to an external endpoint.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// webhookNotifier POSTs the text to a fixed webhook URL.
type webhookNotifier struct {
	url    string
	client *http.Client
}

// NewWebhookNotifier creates a Notifier that POSTs to the given URL.
func NewWebhookNotifier(url string, timeout time.Duration) Notifier {
	return &webhookNotifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Send posts the text as the request body. Success is any response
// without a transport error and a 2xx status.
func (n *webhookNotifier) Send(ctx context.Context, text string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, strings.NewReader(text))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting to webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// Online checks connectivity by attempting a TCP dial to a public DNS
// server. Used to skip notification attempts while offline.
func Online() bool {
	conn, err := net.DialTimeout("tcp", "8.8.8.8:53", 3*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
