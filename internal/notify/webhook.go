package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// Discord message limit is 2000 chars
	maxContentChars = 2000

	postTimeout = 10 * time.Second
)

// ErrNotConfigured is returned when no webhook URL is set.
var ErrNotConfigured = errors.New("webhook URL not configured")

// DeliveryError reports that the webhook endpoint rejected the request.
type DeliveryError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("Discord webhook failed (%s): %s", e.Status, e.Body)
}

// Webhook posts messages to a Discord webhook.
type Webhook struct {
	url    string
	client *http.Client
}

// NewWebhook creates a webhook poster. Stray whitespace in the URL (a common
// secret copy-paste mistake) is trimmed.
func NewWebhook(url string) *Webhook {
	return &Webhook{
		url:    strings.TrimSpace(url),
		client: &http.Client{Timeout: postTimeout},
	}
}

type webhookMessage struct {
	Content string `json:"content"`
}

// Post sends content as a single best-effort POST; there is no retry.
// Content over the Discord limit is truncated with a trailing ellipsis.
func (wh *Webhook) Post(ctx context.Context, content string) error {
	if wh.url == "" {
		return ErrNotConfigured
	}

	if runes := []rune(content); len(runes) > maxContentChars {
		content = string(runes[:maxContentChars-3]) + "..."
	}

	body, err := json.Marshal(webhookMessage{Content: content})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, wh.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "GitHub-Actions-Discord-Webhook/1.0")

	resp, err := wh.client.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &DeliveryError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(respBody),
		}
	}
	return nil
}
