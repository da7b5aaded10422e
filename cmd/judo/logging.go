package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/amonks/judo/internal/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))

// debugLogger returns a logger that writes to stderr when --debug is set.
func debugLogger(cmd *cobra.Command) *log.Logger {
	if !rootDebug {
		return log.New(io.Discard, "", 0)
	}
	return log.New(cmd.ErrOrStderr(), "debug: ", 0)
}

// warnf prints a recoverable problem to stderr.
func warnf(cmd *cobra.Command, format string, args ...any) {
	w := cmd.ErrOrStderr()
	prefix := "warning:"
	if w == os.Stderr && ui.ColorEnabled(os.Stderr) {
		prefix = warningStyle.Render(prefix)
	}
	fmt.Fprintf(w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// reportf prints an informational outcome to stdout.
func reportf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}

// colorOutput reports whether command output should be styled.
func colorOutput(cmd *cobra.Command) bool {
	return cmd.OutOrStdout() == os.Stdout && ui.ColorEnabled(os.Stdout)
}
