package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newSetTestCmd(t *testing.T, flags ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "set"}
	cmd.Flags().StringVar(&setTitle, "title", "", "")
	cmd.Flags().StringVarP(&setSubject, "subject", "s", "", "")
	cmd.Flags().StringVarP(&setTime, "time", "t", "", "")
	cmd.Flags().BoolVar(&setDone, "done", false, "")
	cmd.Flags().BoolVar(&setUndone, "undone", false, "")
	if err := cmd.ParseFlags(flags); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd
}

func TestParseSetRequest(t *testing.T) {
	cases := []struct {
		name       string
		flags      []string
		words      []string
		title      string
		subject    string
		timeSpec   string
		completion completionChange
	}{
		{name: "title words", words: []string{"wash", "the", "car"}, title: "wash the car"},
		{name: "subject only", flags: []string{"-s", "Chores"}, subject: "Chores"},
		{name: "time only", flags: []string{"-t", "next  week"}, timeSpec: "next week"},
		{name: "done keyword", words: []string{"done"}, completion: completionDone},
		{name: "undone keyword", words: []string{"undone"}, completion: completionUndone},
		{name: "done keyword with flags is a title", flags: []string{"-s", "home"}, words: []string{"done"}, title: "done", subject: "home"},
		{name: "done flag", flags: []string{"--done"}, completion: completionDone},
		{name: "undone flag with title", flags: []string{"--undone", "--title", "retry"}, title: "retry", completion: completionUndone},
		{name: "title flag", flags: []string{"--title", "done"}, title: "done"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := newSetTestCmd(t, tc.flags...)
			req, err := parseSetRequest(cmd, tc.words)
			if err != nil {
				t.Fatalf("parseSetRequest failed: %v", err)
			}

			if got := deref(req.update.Title); got != tc.title {
				t.Errorf("expected title %q, got %q", tc.title, got)
			}
			if got := deref(req.update.Subject); got != tc.subject {
				t.Errorf("expected subject %q, got %q", tc.subject, got)
			}
			if got := deref(req.update.TimeSpec); got != tc.timeSpec {
				t.Errorf("expected time %q, got %q", tc.timeSpec, got)
			}
			if req.completion != tc.completion {
				t.Errorf("expected completion %v, got %v", tc.completion, req.completion)
			}
		})
	}
}

func TestParseSetRequestErrors(t *testing.T) {
	cases := []struct {
		name  string
		flags []string
		words []string
		want  string
	}{
		{name: "nothing", want: "nothing to change"},
		{name: "title twice", flags: []string{"--title", "a"}, words: []string{"b"}, want: "not both"},
		{name: "blank title", flags: []string{"--title", "  "}, want: "title cannot be empty"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := newSetTestCmd(t, tc.flags...)
			_, err := parseSetRequest(cmd, tc.words)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestParseEventID(t *testing.T) {
	if id, err := parseEventID(" 12 "); err != nil || id != 12 {
		t.Fatalf("expected 12, got %d (%v)", id, err)
	}
	for _, value := range []string{"0", "-1", "abc", "1.5", ""} {
		if _, err := parseEventID(value); err == nil {
			t.Errorf("expected error for %q", value)
		}
	}
}

func TestResolveListSubject(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		flag    string
		want    string
		wantErr bool
	}{
		{name: "none", want: ""},
		{name: "flag", flag: "home", want: "home"},
		{name: "positional", args: []string{"home"}, want: "home"},
		{name: "colon positional", args: []string{":home"}, want: "home"},
		{name: "same both ways", args: []string{":Home"}, flag: "home", want: "Home"},
		{name: "conflict", args: []string{"home"}, flag: "class", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveListSubject(tc.args, tc.flag)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestExportWriterRejectsUnknownFormat(t *testing.T) {
	if _, err := exportWriter("csv"); err == nil {
		t.Fatal("expected error for unknown format")
	}
	for _, format := range []string{"json", "yaml", "ics"} {
		if _, err := exportWriter(format); err != nil {
			t.Errorf("expected %s to be supported, got %v", format, err)
		}
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
