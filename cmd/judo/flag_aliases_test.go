package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestEventFlagAliasesResolveToDefinedFlags(t *testing.T) {
	var subject, when string
	cmd := &cobra.Command{Use: "add"}
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "")
	cmd.Flags().StringVarP(&when, "time", "t", "", "")
	addEventFlagAliases(cmd)

	if err := cmd.ParseFlags([]string{"--topic", "home", "--when", "tonight"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if subject != "home" {
		t.Errorf("expected subject %q, got %q", "home", subject)
	}
	if when != "tonight" {
		t.Errorf("expected time %q, got %q", "tonight", when)
	}
}

func TestEventFlagAliasesSkipMissingTargets(t *testing.T) {
	var subject string
	cmd := &cobra.Command{Use: "ls"}
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "")
	addEventFlagAliases(cmd)

	if err := cmd.ParseFlags([]string{"--topic", "home"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if subject != "home" {
		t.Errorf("expected subject %q, got %q", "home", subject)
	}

	err := cmd.ParseFlags([]string{"--when", "tonight"})
	if err == nil {
		t.Fatal("expected unknown flag error")
	}
	if !strings.Contains(err.Error(), "--when") || strings.Contains(err.Error(), "--time") {
		t.Fatalf("expected error to name --when, got %v", err)
	}
}
