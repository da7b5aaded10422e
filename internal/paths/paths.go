package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultStateDir returns the default judo state directory.
func DefaultStateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "state", "judo"), nil
}

// DefaultEventsFile returns the default path of the persisted events file.
func DefaultEventsFile() (string, error) {
	dir, err := DefaultStateDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "events.json"), nil
}

// DefaultConfigDir returns the directory holding judo's config file.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "judo"), nil
}

// ExpandHome expands a leading "~" and returns an absolute, cleaned path.
func ExpandHome(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", path, err)
	}
	return abs, nil
}
