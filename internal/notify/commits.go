// Package notify formats push-event commit lists and delivers them to a
// Discord webhook.
package notify

import (
	"fmt"
	"strings"
)

const (
	// Discord renders at most a handful of lines nicely; the notifier caps
	// the list at five commits like the original workflow message.
	maxCommits      = 5
	maxMessageChars = 120

	noCommitsLine = "- (no commits found)"
)

// PushEvent is the subset of a GitHub push event payload the notifier reads.
type PushEvent struct {
	Commits []Commit `json:"commits"`
}

// Commit is one commit record from the event payload.
type Commit struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// FormatCommits renders up to five commits as markdown list lines, one
// commit per line, in payload order. Zero commits yields a placeholder line.
func FormatCommits(ev PushEvent) string {
	commits := ev.Commits
	if len(commits) > maxCommits {
		commits = commits[:maxCommits]
	}

	if len(commits) == 0 {
		return noCommitsLine
	}

	lines := make([]string, 0, len(commits))
	for _, c := range commits {
		lines = append(lines, formatCommit(c))
	}
	return strings.Join(lines, "\n")
}

func formatCommit(c Commit) string {
	msg, _, _ := strings.Cut(c.Message, "\n")
	if runes := []rune(msg); len(runes) > maxMessageChars {
		msg = string(runes[:maxMessageChars])
	}

	sha := c.ID
	if len(sha) > 7 {
		sha = sha[:7]
	}

	return fmt.Sprintf("- [`%s`](%s) %s", sha, browseURL(c.URL), msg)
}

// browseURL rewrites an API commit URL to the public browsable form.
func browseURL(u string) string {
	u = strings.ReplaceAll(u, "api.github.com/repos", "github.com")
	return strings.ReplaceAll(u, "/commits/", "/commit/")
}
