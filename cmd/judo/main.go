// Package main implements the judo CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "judo",
	Short: "Judo - time- and topic-based todo lists",
	Long: `Judo tracks events grouped by subject.

Completed events are kept for a while (one week by default) so they can be
listed with --all, then discarded automatically.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debugLogger(cmd).Printf("%s args=%q", cmd.CommandPath(), args)
	},
}

var (
	rootConfigPath string
	rootDebug      bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Config file (default $JUDO_CONFIG or ~/.config/judo/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Log debugging information to stderr")
}
