package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/amonks/judo/event"
)

func TestRenderEventTOML(t *testing.T) {
	done := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	content, err := RenderEventTOML(DataFromEvent(event.Event{
		ID:       7,
		Title:    `say "hi"`,
		Subject:  "home",
		TimeSpec: "tonight",
		DoneAt:   &done,
	}))
	if err != nil {
		t.Fatalf("RenderEventTOML failed: %v", err)
	}

	for _, want := range []string{
		"# event 7",
		`title = "say \"hi\""`,
		`subject = "home"`,
		`time = "tonight"`,
		"done = true",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in:\n%s", want, content)
		}
	}
}

func TestRenderedEventParsesBack(t *testing.T) {
	data := EventData{ID: 3, Title: "wash dishes", Subject: "home"}
	content, err := RenderEventTOML(data)
	if err != nil {
		t.Fatalf("RenderEventTOML failed: %v", err)
	}

	parsed, err := ParseEventTOML(content)
	if err != nil {
		t.Fatalf("ParseEventTOML failed: %v", err)
	}
	if parsed.Title != "wash dishes" || parsed.Subject != "home" || parsed.Time != "" {
		t.Fatalf("unexpected parse result: %+v", parsed)
	}
	if parsed.Done == nil || *parsed.Done {
		t.Fatalf("expected done=false, got %v", parsed.Done)
	}
}

func TestParseEventTOML(t *testing.T) {
	cases := []struct {
		name    string
		content string
		title   string
		time    string
		wantErr string
	}{
		{name: "normalizes whitespace", content: "title = \"  wash   dishes \"\ntime = \" mon  9am \"\n", title: "wash dishes", time: "mon 9am"},
		{name: "missing done", content: "title = \"x\"\n", title: "x"},
		{name: "empty title", content: "title = \"   \"\n", wantErr: "title cannot be empty"},
		{name: "invalid toml", content: "title = \n", wantErr: "parse TOML"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseEventTOML(tc.content)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEventTOML failed: %v", err)
			}
			if parsed.Title != tc.title {
				t.Errorf("expected title %q, got %q", tc.title, parsed.Title)
			}
			if parsed.Time != tc.time {
				t.Errorf("expected time %q, got %q", tc.time, parsed.Time)
			}
		})
	}
}

func TestCommandPrefersVisual(t *testing.T) {
	t.Setenv("VISUAL", "nano -w")
	t.Setenv("EDITOR", "vim")
	if got := Command(); got != "nano -w" {
		t.Fatalf("expected VISUAL, got %q", got)
	}

	t.Setenv("VISUAL", "")
	if got := Command(); got != "vim" {
		t.Fatalf("expected EDITOR, got %q", got)
	}

	t.Setenv("EDITOR", "")
	if got := Command(); got != "vi" {
		t.Fatalf("expected vi fallback, got %q", got)
	}
}

func TestEditEventRunsEditor(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "fake-editor")
	body := "#!/bin/sh\nprintf 'title = \"edited\"\\nsubject = \"work\"\\ndone = true\\n' > \"$1\"\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("write fake editor: %v", err)
	}
	t.Setenv("VISUAL", script)

	parsed, err := EditEvent(event.Event{ID: 1, Title: "original", Subject: "home"})
	if err != nil {
		t.Fatalf("EditEvent failed: %v", err)
	}
	if parsed.Title != "edited" || parsed.Subject != "work" {
		t.Fatalf("unexpected result: %+v", parsed)
	}
	if parsed.Done == nil || !*parsed.Done {
		t.Fatal("expected done=true")
	}
}
