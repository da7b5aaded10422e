package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amonks/judo/event"
	"github.com/amonks/judo/internal/config"
	"github.com/spf13/cobra"
)

// session bundles the resolved config and events file for one invocation.
type session struct {
	cfg  *config.Config
	file *event.File
	now  func() time.Time
}

// openSession resolves and loads the config, reporting recoverable warnings.
func openSession(cmd *cobra.Command) (*session, error) {
	logger := debugLogger(cmd)

	path, err := config.ResolvePath(rootConfigPath)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	for _, warning := range cfg.Warnings {
		warnf(cmd, "%s", warning)
	}
	logger.Printf("config=%s events=%s subject=%s timeout=%s", cfg.Path, cfg.EventsFile, cfg.DefaultSubject, cfg.DoneTimeout)

	return &session{
		cfg:  cfg,
		file: event.NewFile(cfg.EventsFile, event.StoreOptions{DefaultSubject: cfg.DefaultSubject}),
		now:  time.Now,
	}, nil
}

// withStore runs fn against the pruned store and saves the result.
// fn's error aborts the invocation without saving.
func withStore(cmd *cobra.Command, fn func(s *session, store *event.Store) error) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	return s.file.Update(func(store *event.Store) error {
		pruned := store.Prune(s.now(), s.cfg.DoneTimeout)
		debugLogger(cmd).Printf("pruned %d completed events", len(pruned))
		return fn(s, store)
	})
}

// parseEventID parses a positive integer event id.
func parseEventID(value string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid event id %q: must be a positive integer", value)
	}
	return id, nil
}

// reportLookupError prints not-found errors and swallows them so the
// invocation still saves and exits successfully.
func reportLookupError(cmd *cobra.Command, id int, err error) error {
	if errors.Is(err, event.ErrEventNotFound) {
		reportf(cmd, "No event with id %d found.", id)
		return nil
	}
	return err
}
