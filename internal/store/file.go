package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store persisted as a single JSON object mapping day keys to
// statuses. The file is read once on open and rewritten on every change.
type File struct {
	path     string
	mu       sync.RWMutex
	statuses map[string]string
}

// OpenFile opens the JSON status file at path. A missing file is an empty
// store; it is created on the first write.
func OpenFile(path string) (*File, error) {
	f := &File{path: path, statuses: make(map[string]string)}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading status file: %w", err)
	}
	if len(data) == 0 {
		return f, nil
	}

	if err := json.Unmarshal(data, &f.statuses); err != nil {
		return nil, fmt.Errorf("parsing status file %s: %w", path, err)
	}
	if f.statuses == nil {
		f.statuses = make(map[string]string)
	}
	return f, nil
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

func (f *File) Get(_ context.Context, day string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	s, ok := f.statuses[day]
	return s, ok, nil
}

func (f *File) Set(_ context.Context, day, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.statuses[day]
	f.statuses[day] = status
	if err := f.writeLocked(); err != nil {
		if had {
			f.statuses[day] = prev
		} else {
			delete(f.statuses, day)
		}
		return err
	}
	return nil
}

func (f *File) Delete(_ context.Context, day string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.statuses[day]
	if !had {
		return nil
	}
	delete(f.statuses, day)
	if err := f.writeLocked(); err != nil {
		f.statuses[day] = prev
		return err
	}
	return nil
}

func (f *File) List(_ context.Context) ([]Record, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return sortedRecords(f.statuses), nil
}

func (f *File) Close() error { return nil }

// writeLocked writes the map through a temp file and rename so readers never
// see a half-written file. Callers hold f.mu.
func (f *File) writeLocked() error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(f.statuses, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".statuses-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, f.path)
}
