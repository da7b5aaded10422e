package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/amonks/judo/internal/markdown"
	"github.com/amonks/judo/internal/ui"
	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Help about any command",
	Args:  cobra.ArbitraryArgs,
	RunE:  runHelp,
}

var helpUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show a guide to everyday use",
	Args:  cobra.NoArgs,
	RunE:  runHelpUsage,
}

const usageGuide = `# Using judo

Events have a **title**, a **subject**, an optional **time**, and are either
pending or done.

## Adding and changing events

- ` + "`judo add take a bath -s self-care -t 'tomorrow 3pm'`" + `
- ` + "`judo set 3 -s chores`" + ` moves event 3 to another subject
- ` + "`judo set 3 wash the car`" + ` replaces its title
- ` + "`judo edit 3`" + ` opens it in your editor
- ` + "`judo do 3`" + ` and ` + "`judo undo 3`" + ` change whether it is done
- ` + "`judo rm 3`" + ` deletes it outright

Ids are small numbers; the smallest free id is reused by the next event.

## Listing

- ` + "`judo ls`" + ` shows pending events for the subjects in your list
- ` + "`judo ls -a`" + ` shows every subject and done events too
- ` + "`judo ls :home`" + ` shows a single subject

Done events are discarded automatically once they are older than the
configured timeout (one week by default).

## Configuration

Settings live in ` + "`~/.config/judo/config.toml`" + `:

    [subjects]
    default = "other"
    list = ["class", "home"]

    [events]
    file = "~/.local/state/judo/events.json"
    done-timeout = 604800
`

func init() {
	rootCmd.SetHelpCommand(helpCmd)
	helpCmd.AddCommand(helpUsageCmd)
}

func runHelp(cmd *cobra.Command, args []string) error {
	root := cmd.Root()
	if len(args) == 0 {
		return root.Help()
	}

	target, _, err := root.Find(args)
	if err != nil || target == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Unknown help topic %q\n", strings.Join(args, " "))
		return root.Help()
	}

	return target.Help()
}

func runHelpUsage(cmd *cobra.Command, args []string) error {
	width := 0
	if cmd.OutOrStdout() == os.Stdout {
		width = ui.TerminalWidth(os.Stdout)
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), markdown.Render(width, usageGuide))
	return err
}
