package main

import (
	"fmt"

	"github.com/amonks/judo/event"
	"github.com/spf13/cobra"
)

// connect
var connectCmd = &cobra.Command{
	Use:   "connect [server]",
	Short: "Connect to a sync server (not implemented yet)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConnect,
}

// sync
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync events with the server (not implemented yet)",
	Args:  cobra.NoArgs,
	RunE:  runSync,
}

func init() {
	rootCmd.AddCommand(connectCmd, syncCmd)
}

func runConnect(cmd *cobra.Command, args []string) error {
	server := ""
	if len(args) > 0 {
		server = args[0]
	}
	debugLogger(cmd).Printf("connect server=%q", server)
	return notImplemented(cmd, "connect")
}

func runSync(cmd *cobra.Command, args []string) error {
	return notImplemented(cmd, "sync")
}

// notImplemented still runs the usual load, prune, and save cycle.
func notImplemented(cmd *cobra.Command, name string) error {
	return withStore(cmd, func(s *session, store *event.Store) error {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: server sync is not implemented yet\n", name)
		return nil
	})
}
