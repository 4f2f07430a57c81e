// commit-notify is a one-shot CI helper. Run without arguments it reads the
// push event payload from GITHUB_EVENT_PATH and prints a formatted commit
// list; run as "commit-notify post" it posts CONTENT to DISCORD_WEBHOOK_URL.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/soitun/tts-backend/internal/notify"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "post" {
		if err := postContent(); err != nil {
			fmt.Fprintf(os.Stderr, "::error::%v\n", err)

			var dErr *notify.DeliveryError
			if errors.As(err, &dErr) {
				fmt.Fprintln(os.Stderr, "::notice::Check: 1) Webhook URL is valid (no extra spaces/newlines in secret) 2) Webhook was not deleted 3) Discord server still exists")
			}
			os.Exit(1)
		}
		return
	}

	if err := printCommits(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "::error::%v\n", err)
		os.Exit(1)
	}
}

func printCommits(w io.Writer) error {
	path := os.Getenv("GITHUB_EVENT_PATH")
	if path == "" {
		fmt.Fprintln(w, notify.FormatCommits(notify.PushEvent{}))
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read event payload: %w", err)
	}

	var ev notify.PushEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return fmt.Errorf("parse event payload: %w", err)
	}

	fmt.Fprintln(w, notify.FormatCommits(ev))
	return nil
}

func postContent() error {
	wh := notify.NewWebhook(os.Getenv("DISCORD_WEBHOOK_URL"))

	err := wh.Post(context.Background(), os.Getenv("CONTENT"))
	if errors.Is(err, notify.ErrNotConfigured) {
		return errors.New("DISCORD_WEBHOOK_URL secret not set")
	}
	return err
}
