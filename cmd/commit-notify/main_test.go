package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrintCommits_NoEventPath(t *testing.T) {
	os.Unsetenv("GITHUB_EVENT_PATH")

	var out bytes.Buffer
	if err := printCommits(&out); err != nil {
		t.Fatalf("printCommits: %v", err)
	}
	if got := out.String(); got != "- (no commits found)\n" {
		t.Errorf("output = %q, want placeholder line", got)
	}
}

func TestPrintCommits_FromEventFile(t *testing.T) {
	payload := `{
		"commits": [
			{"id": "0123456789abcdef", "message": "First commit\nbody", "url": "https://api.github.com/repos/o/r/commits/0123456789abcdef"},
			{"id": "fedcba9876543210", "message": "Second commit", "url": "https://api.github.com/repos/o/r/commits/fedcba9876543210"}
		]
	}`
	path := filepath.Join(t.TempDir(), "event.json")
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	os.Setenv("GITHUB_EVENT_PATH", path)
	defer os.Unsetenv("GITHUB_EVENT_PATH")

	var out bytes.Buffer
	if err := printCommits(&out); err != nil {
		t.Fatalf("printCommits: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "[`0123456`](https://github.com/o/r/commit/0123456789abcdef)") {
		t.Errorf("line 0 = %q, want rewritten link with short hash", lines[0])
	}
	if strings.Contains(lines[0], "body") {
		t.Errorf("line 0 = %q, should only use the first message line", lines[0])
	}
}

func TestPrintCommits_BadPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	os.Setenv("GITHUB_EVENT_PATH", path)
	defer os.Unsetenv("GITHUB_EVENT_PATH")

	var out bytes.Buffer
	if err := printCommits(&out); err == nil {
		t.Error("expected error for malformed payload")
	}
}
