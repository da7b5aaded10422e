package event

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/google/uuid"
)

// FileVersion is the snapshot format version written by Save.
const FileVersion = 1

// File persists a Store as a single JSON snapshot.
type File struct {
	path string
	opts StoreOptions
}

// snapshot is the on-disk representation of a store.
type snapshot struct {
	Version int               `json:"version"`
	Events  map[string]*Event `json:"events"`
}

// NewFile returns a File backed by path. Stores loaded from it use opts.
func NewFile(path string, opts StoreOptions) *File {
	return &File{path: path, opts: opts}
}

// Path returns the path of the events file.
func (f *File) Path() string {
	return f.path
}

func (f *File) lockPath() string {
	return f.path + ".lock"
}

// Load reads the store from disk. Returns an empty store if the file doesn't exist.
func (f *File) Load() (*Store, error) {
	store := NewStore(f.opts)

	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read events file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return store, nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal events: %w", err)
	}
	if snap.Version > FileVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, snap.Version)
	}

	for key, evt := range snap.Events {
		id, err := strconv.Atoi(key)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("unmarshal events: invalid event id %q", key)
		}
		if evt == nil {
			return nil, fmt.Errorf("unmarshal events: event %d is null", id)
		}
		evt.ID = id
		if evt.Subject == "" {
			evt.Subject = store.defaultSubject
		}
		if evt.UID == "" {
			evt.UID = uuid.NewString()
		}
		store.insert(*evt)
	}

	return store, nil
}

// Save writes the store to disk, replacing the previous snapshot.
func (f *File) Save(store *Store) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create events dir: %w", err)
	}

	snap := snapshot{
		Version: FileVersion,
		Events:  make(map[string]*Event, store.Len()),
	}
	for _, evt := range store.Events() {
		snap.Events[strconv.Itoa(evt.ID)] = &evt
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal events: %w", err)
	}
	data = append(data, '\n')

	if existing, err := os.ReadFile(f.path); err == nil {
		if bytes.Equal(existing, data) {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read events file: %w", err)
	}

	// Write atomically via temp file
	tmpFile, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp events file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp events file: %w", err)
	}

	if err := os.Rename(name, f.path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename events file: %w", err)
	}

	return nil
}

// Update loads the store, applies fn, and saves the result while holding an
// exclusive lock on the events file. Nothing is saved when fn fails.
func (f *File) Update(fn func(store *Store) error) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("create events dir: %w", err)
	}

	lockFile, err := os.OpenFile(f.lockPath(), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	store, err := f.Load()
	if err != nil {
		return err
	}

	if err := fn(store); err != nil {
		return err
	}

	return f.Save(store)
}
