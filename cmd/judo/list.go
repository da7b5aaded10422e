package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/amonks/judo/event"
	"github.com/amonks/judo/internal/listflags"
	"github.com/amonks/judo/internal/ui"
	"github.com/spf13/cobra"
)

// ls
var lsCmd = &cobra.Command{
	Use:     "ls [subject]",
	Aliases: []string{"list"},
	Short:   "List events grouped by subject",
	Long: `List events grouped by subject.

Without a subject, only subjects in the configured list are shown, and only
their pending events. --all shows every subject and completed events too.
A subject may be given as an argument (optionally written :subject) or with
--subject; it is shown regardless of the configured list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLs,
}

var (
	lsAll     bool
	lsSubject string
)

// subjects
var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "Show subjects with their pending and done counts",
	Args:  cobra.NoArgs,
	RunE:  runSubjects,
}

func init() {
	rootCmd.AddCommand(lsCmd, subjectsCmd)

	listflags.AddAllFlag(lsCmd, &lsAll)
	lsCmd.Flags().StringVarP(&lsSubject, "subject", "s", "", "Only list this subject")
	addEventFlagAliases(lsCmd)
}

// resolveListSubject merges the positional and flag forms of the subject filter.
func resolveListSubject(args []string, flagValue string) (string, error) {
	subject := strings.TrimSpace(flagValue)
	if len(args) == 0 {
		return subject, nil
	}

	positional := strings.TrimPrefix(strings.TrimSpace(args[0]), ":")
	if subject != "" && !strings.EqualFold(subject, positional) {
		return "", fmt.Errorf("conflicting subjects %q and %q", positional, subject)
	}
	return positional, nil
}

func runLs(cmd *cobra.Command, args []string) error {
	subject, err := resolveListSubject(args, lsSubject)
	if err != nil {
		return err
	}

	return withStore(cmd, func(s *session, store *event.Store) error {
		listing, err := store.List(event.ListOptions{
			All:       lsAll,
			Subject:   subject,
			AllowList: s.cfg.ListSubjects,
		})
		if errors.Is(err, event.ErrSubjectNotFound) {
			reportf(cmd, "Subject %s not found in active events.", event.NormalizeSubject(subject, ""))
			return nil
		}
		if err != nil {
			return err
		}

		width := 0
		if cmd.OutOrStdout() == os.Stdout {
			width = ui.TerminalWidth(os.Stdout)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), ui.RenderListing(listing, ui.ListingOptions{
			Color: colorOutput(cmd),
			Width: width,
			Now:   s.now(),
		}))
		return err
	})
}

func runSubjects(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(s *session, store *event.Store) error {
		listed := make(map[string]bool, len(s.cfg.ListSubjects))
		for _, subject := range s.cfg.ListSubjects {
			listed[subject] = true
		}

		groups := event.GroupBySubject(store.Events())
		table := ui.NewTableBuilder([]string{"SUBJECT", "PENDING", "DONE", "LISTED"}, len(groups))
		for _, subject := range store.Subjects() {
			pending, done := 0, 0
			for _, evt := range groups[subject] {
				if evt.Done() {
					done++
				} else {
					pending++
				}
			}
			mark := ""
			if listed[subject] {
				mark = "yes"
			}
			table.AddRow(subject, strconv.Itoa(pending), strconv.Itoa(done), mark)
		}

		_, err := fmt.Fprint(cmd.OutOrStdout(), table.String())
		return err
	})
}
