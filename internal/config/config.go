// Package config handles loading judo's configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/amonks/judo/event"
	"github.com/amonks/judo/internal/paths"
	"gopkg.in/yaml.v3"
)

// PathEnvVar overrides the config file location.
const PathEnvVar = "JUDO_CONFIG"

// DefaultListSubjects is the allow-list used when none is configured.
var DefaultListSubjects = []string{"electra", "uts", "wesley", "class", "simech", "other"}

// Config is the resolved configuration consumed by the event store and listing.
type Config struct {
	// Path is the config file that was read, or would have been read.
	Path string

	// DefaultSubject is assigned to events created without a subject.
	DefaultSubject string

	// ListSubjects is the allow-list of subjects shown by a plain listing.
	ListSubjects []string

	// DoneTimeout is how long completed events survive before pruning.
	DoneTimeout time.Duration

	// EventsFile is the absolute path of the persisted events file.
	EventsFile string

	// Warnings collects recoverable problems found while loading.
	Warnings []string
}

// fileConfig is the on-disk shape of the config file.
type fileConfig struct {
	Subjects subjectsConfig `toml:"subjects" yaml:"subjects"`
	Events   eventsConfig   `toml:"events" yaml:"events"`
}

type subjectsConfig struct {
	// Default is the subject used when none is given.
	Default string `toml:"default" yaml:"default"`

	// List adds subjects to the default listing.
	List []string `toml:"list" yaml:"list"`
}

type eventsConfig struct {
	// File is the events file path; "~" is expanded.
	File string `toml:"file" yaml:"file"`

	// DoneTimeout is the prune timeout in seconds.
	DoneTimeout any `toml:"done-timeout" yaml:"done-timeout"`
}

// ResolvePath returns the config file path: explicit if set, then
// $JUDO_CONFIG, then config.toml (or config.yaml when only that exists)
// under ~/.config/judo.
func ResolvePath(explicit string) (string, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return paths.ExpandHome(explicit)
	}
	if fromEnv := strings.TrimSpace(os.Getenv(PathEnvVar)); fromEnv != "" {
		return paths.ExpandHome(fromEnv)
	}

	dir, err := paths.DefaultConfigDir()
	if err != nil {
		return "", err
	}

	tomlPath := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath, nil
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return tomlPath, nil
}

// Load reads the config file at path and applies defaults.
// Returns the default config if the file doesn't exist.
func Load(path string) (*Config, error) {
	raw, listDefined, err := loadConfigFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Path:           path,
		DefaultSubject: event.NormalizeSubject(raw.Subjects.Default, event.DefaultSubject),
		DoneTimeout:    event.DefaultDoneTimeout,
	}

	if listDefined {
		cfg.ListSubjects = event.NormalizeSubjects(append([]string{cfg.DefaultSubject}, raw.Subjects.List...))
	} else {
		cfg.ListSubjects = append([]string(nil), DefaultListSubjects...)
	}

	if raw.Events.DoneTimeout != nil {
		timeout, err := parseDoneTimeout(raw.Events.DoneTimeout)
		if err != nil {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("malformed done-timeout in %s: %v; using %d seconds",
				path, err, int64(event.DefaultDoneTimeout/time.Second)))
		} else {
			cfg.DoneTimeout = timeout
		}
	}

	if strings.TrimSpace(raw.Events.File) != "" {
		cfg.EventsFile, err = paths.ExpandHome(raw.Events.File)
	} else {
		cfg.EventsFile, err = paths.DefaultEventsFile()
	}
	if err != nil {
		return nil, fmt.Errorf("resolve events file: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(path string) (fileConfig, bool, error) {
	var raw fileConfig
	if path == "" {
		return raw, false, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return raw, false, nil
	}
	if err != nil {
		return raw, false, fmt.Errorf("read config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return raw, false, fmt.Errorf("parse config file %s: %w", path, err)
		}
		if len(doc.Content) == 0 {
			return raw, false, nil
		}
		if err := doc.Decode(&raw); err != nil {
			return raw, false, fmt.Errorf("parse config file %s: %w", path, err)
		}
		return raw, yamlDefined(&doc, "subjects", "list"), nil
	default:
		meta, err := toml.Decode(string(data), &raw)
		if err != nil {
			return raw, false, fmt.Errorf("parse config file %s: %w", path, err)
		}
		return raw, meta.IsDefined("subjects", "list"), nil
	}
}

// yamlDefined reports whether the mapping path exists in a YAML document.
func yamlDefined(doc *yaml.Node, keys ...string) bool {
	node := doc
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return false
		}
		node = node.Content[0]
	}
	for _, key := range keys {
		if node.Kind != yaml.MappingNode {
			return false
		}
		var next *yaml.Node
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == key {
				next = node.Content[i+1]
				break
			}
		}
		if next == nil {
			return false
		}
		node = next
	}
	return true
}

func parseDoneTimeout(value any) (time.Duration, error) {
	var seconds int64
	switch v := value.(type) {
	case int64:
		seconds = v
	case int:
		seconds = int64(v)
	case uint64:
		if v > uint64(1<<62) {
			return 0, fmt.Errorf("%d is too large", v)
		}
		seconds = int64(v)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a whole number of seconds", v)
		}
		seconds = parsed
	default:
		return 0, fmt.Errorf("%v is not a whole number of seconds", v)
	}

	if seconds < 0 {
		return 0, fmt.Errorf("%d is negative", seconds)
	}
	if seconds > int64(1<<62)/int64(time.Second) {
		return 0, fmt.Errorf("%d is too large", seconds)
	}
	return time.Duration(seconds) * time.Second, nil
}
