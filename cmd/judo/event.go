package main

import (
	"fmt"

	"github.com/amonks/judo/event"
	internalstrings "github.com/amonks/judo/internal/strings"
	"github.com/amonks/judo/internal/ui"
	"github.com/spf13/cobra"
)

// add
var addCmd = &cobra.Command{
	Use:     "add <title>...",
	Aliases: []string{"a", "schedule"},
	Short:   "Add a new event",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runAdd,
}

var (
	addSubject string
	addTime    string
)

// rm
var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove"},
	Short:   "Remove an event (not the same as marking it done)",
	Args:    cobra.ExactArgs(1),
	RunE:    runRm,
}

// set
var setCmd = &cobra.Command{
	Use:   "set <id> [title...]",
	Short: "Change an event's title, subject, time, or completion state",
	Long: `Change an event.

Trailing words replace the title. Use --subject and --time to change those
fields, and --done or --undone to change the completion state. As a shortcut,
"judo set <id> done" and "judo set <id> undone" toggle completion when no
other changes are given; use --title to set a title of "done" literally.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSet,
}

var (
	setTitle   string
	setSubject string
	setTime    string
	setDone    bool
	setUndone  bool
)

// do
var doCmd = &cobra.Command{
	Use:   "do <id>",
	Short: "Mark an event as done",
	Args:  cobra.ExactArgs(1),
	RunE:  runDo,
}

// undo
var undoCmd = &cobra.Command{
	Use:   "undo <id>",
	Short: "Mark a done event as not done",
	Args:  cobra.ExactArgs(1),
	RunE:  runUndo,
}

func init() {
	rootCmd.AddCommand(addCmd, rmCmd, setCmd, doCmd, undoCmd)

	// add flags
	addCmd.Flags().StringVarP(&addSubject, "subject", "s", "", "Subject (defaults to the configured default subject)")
	addCmd.Flags().StringVarP(&addTime, "time", "t", "", "When the event is due (free text)")

	// set flags
	setCmd.Flags().StringVar(&setTitle, "title", "", "New title")
	setCmd.Flags().StringVarP(&setSubject, "subject", "s", "", "New subject")
	setCmd.Flags().StringVarP(&setTime, "time", "t", "", "New time (free text)")
	setCmd.Flags().BoolVar(&setDone, "done", false, "Mark the event as done")
	setCmd.Flags().BoolVar(&setUndone, "undone", false, "Mark the event as not done")
	setCmd.MarkFlagsMutuallyExclusive("done", "undone")

	addEventFlagAliases(addCmd, setCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := internalstrings.JoinWords(args)
	if err := event.ValidateTitle(title); err != nil {
		return err
	}

	return withStore(cmd, func(s *session, store *event.Store) error {
		created := store.Create(title, event.CreateOptions{
			Subject:  addSubject,
			TimeSpec: internalstrings.NormalizeWhitespace(addTime),
		})
		reportf(cmd, "Added %s: %s [%s]", ui.HighlightID(created.ID, colorOutput(cmd)), created.Title, created.Subject)
		return nil
	})
}

func runRm(cmd *cobra.Command, args []string) error {
	id, err := parseEventID(args[0])
	if err != nil {
		return err
	}

	return withStore(cmd, func(s *session, store *event.Store) error {
		removed, err := store.Remove(id)
		if err != nil {
			return reportLookupError(cmd, id, err)
		}
		reportf(cmd, "Removed %s: %s", ui.HighlightID(removed.ID, colorOutput(cmd)), removed.Title)
		return nil
	})
}

// completionChange is the requested change to an event's done state.
type completionChange int

const (
	completionUnchanged completionChange = iota
	completionDone
	completionUndone
)

// setRequest is a parsed "set" invocation.
type setRequest struct {
	update     event.UpdateOptions
	completion completionChange
}

func (r setRequest) empty() bool {
	return r.update.Title == nil && r.update.Subject == nil && r.update.TimeSpec == nil &&
		r.completion == completionUnchanged
}

// parseSetRequest resolves the field and completion changes of "set".
// A lone "done" or "undone" word toggles completion unless field flags are
// also present, in which case it is treated as the new title.
func parseSetRequest(cmd *cobra.Command, words []string) (setRequest, error) {
	var req setRequest

	switch {
	case setDone:
		req.completion = completionDone
	case setUndone:
		req.completion = completionUndone
	case len(words) == 1 && !hasChangedFlags(cmd, "title", "subject", "time"):
		switch words[0] {
		case "done":
			req.completion = completionDone
			words = nil
		case "undone":
			req.completion = completionUndone
			words = nil
		}
	}

	if len(words) > 0 && cmd.Flags().Changed("title") {
		return setRequest{}, fmt.Errorf("give the new title either as arguments or with --title, not both")
	}
	if len(words) > 0 {
		title := internalstrings.JoinWords(words)
		req.update.Title = &title
	}
	if cmd.Flags().Changed("title") {
		title := internalstrings.NormalizeWhitespace(setTitle)
		req.update.Title = &title
	}
	if cmd.Flags().Changed("subject") {
		subject := setSubject
		req.update.Subject = &subject
	}
	if cmd.Flags().Changed("time") {
		timeSpec := internalstrings.NormalizeWhitespace(setTime)
		req.update.TimeSpec = &timeSpec
	}

	if req.update.Title != nil {
		if err := event.ValidateTitle(*req.update.Title); err != nil {
			return setRequest{}, err
		}
	}
	if req.empty() {
		return setRequest{}, fmt.Errorf("nothing to change: give a new title, --subject, --time, --done, or --undone")
	}
	return req, nil
}

func runSet(cmd *cobra.Command, args []string) error {
	id, err := parseEventID(args[0])
	if err != nil {
		return err
	}
	req, err := parseSetRequest(cmd, args[1:])
	if err != nil {
		return err
	}

	return withStore(cmd, func(s *session, store *event.Store) error {
		color := colorOutput(cmd)
		if req.update.Title != nil || req.update.Subject != nil || req.update.TimeSpec != nil {
			updated, err := store.Update(id, req.update)
			if err != nil {
				return reportLookupError(cmd, id, err)
			}
			reportf(cmd, "Updated %s: %s [%s]", ui.HighlightID(updated.ID, color), updated.Title, updated.Subject)
		}

		switch req.completion {
		case completionDone:
			return markDone(cmd, store, id)
		case completionUndone:
			return markUndone(cmd, store, id)
		}
		return nil
	})
}

func runDo(cmd *cobra.Command, args []string) error {
	id, err := parseEventID(args[0])
	if err != nil {
		return err
	}

	return withStore(cmd, func(s *session, store *event.Store) error {
		return markDone(cmd, store, id)
	})
}

func runUndo(cmd *cobra.Command, args []string) error {
	id, err := parseEventID(args[0])
	if err != nil {
		return err
	}

	return withStore(cmd, func(s *session, store *event.Store) error {
		return markUndone(cmd, store, id)
	})
}

func markDone(cmd *cobra.Command, store *event.Store, id int) error {
	evt, changed, err := store.MarkDone(id)
	if err != nil {
		return reportLookupError(cmd, id, err)
	}
	if !changed {
		reportf(cmd, "Event %d already done.", id)
		return nil
	}
	reportf(cmd, "Done %s: %s", ui.HighlightID(evt.ID, colorOutput(cmd)), evt.Title)
	return nil
}

func markUndone(cmd *cobra.Command, store *event.Store, id int) error {
	evt, changed, err := store.MarkUndone(id)
	if err != nil {
		return reportLookupError(cmd, id, err)
	}
	if !changed {
		reportf(cmd, "Event %d already not done.", id)
		return nil
	}
	reportf(cmd, "Reopened %s: %s", ui.HighlightID(evt.ID, colorOutput(cmd)), evt.Title)
	return nil
}
