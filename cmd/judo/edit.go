package main

import (
	"fmt"

	"github.com/amonks/judo/event"
	"github.com/amonks/judo/internal/editor"
	"github.com/amonks/judo/internal/ui"
	"github.com/spf13/cobra"
)

// edit
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an event in $EDITOR",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseEventID(args[0])
	if err != nil {
		return err
	}
	if !editor.IsInteractive() {
		return fmt.Errorf("edit requires a terminal; use judo set instead")
	}

	var (
		original event.Event
		found    bool
	)
	if err := withStore(cmd, func(s *session, store *event.Store) error {
		original, found = store.Get(id)
		if !found {
			reportf(cmd, "No event with id %d found.", id)
		}
		return nil
	}); err != nil || !found {
		return err
	}

	// The store is not locked while the editor is open.
	parsed, err := editor.EditEvent(original)
	if err != nil {
		return err
	}

	return withStore(cmd, func(s *session, store *event.Store) error {
		updated, err := store.Update(id, parsed.ToUpdateOptions())
		if err != nil {
			return reportLookupError(cmd, id, err)
		}
		reportf(cmd, "Updated %s: %s [%s]", ui.HighlightID(updated.ID, colorOutput(cmd)), updated.Title, updated.Subject)

		switch {
		case parsed.Done == nil || *parsed.Done == updated.Done():
			return nil
		case *parsed.Done:
			return markDone(cmd, store, id)
		default:
			return markUndone(cmd, store, id)
		}
	})
}
