package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/amonks/judo/event"
	"github.com/amonks/judo/internal/validation"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// export
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all events to stdout as JSON, YAML, or iCalendar",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var exportFormat string

// errUnknownExportFormat is returned for an unsupported --format value.
var errUnknownExportFormat = errors.New("unknown export format")

var exportFormats = []string{"json", "yaml", "ics"}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format ("+validation.FormatValidValues(exportFormats)+")")
}

func runExport(cmd *cobra.Command, args []string) error {
	write, err := exportWriter(exportFormat)
	if err != nil {
		return err
	}

	return withStore(cmd, func(s *session, store *event.Store) error {
		return write(cmd.OutOrStdout(), store, s)
	})
}

type exportFunc func(w io.Writer, store *event.Store, s *session) error

func exportWriter(format string) (exportFunc, error) {
	switch format {
	case "json":
		return func(w io.Writer, store *event.Store, s *session) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(store.Events())
		}, nil
	case "yaml", "yml":
		return func(w io.Writer, store *event.Store, s *session) error {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(store.Events()); err != nil {
				return fmt.Errorf("encode yaml: %w", err)
			}
			return enc.Close()
		}, nil
	case "ics", "ical":
		return func(w io.Writer, store *event.Store, s *session) error {
			return event.WriteICS(w, store.Events(), s.now())
		}, nil
	default:
		return nil, validation.FormatInvalidValueError(errUnknownExportFormat, format, exportFormats)
	}
}
