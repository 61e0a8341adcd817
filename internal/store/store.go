// Package store persists the single active pomodoro run.
//
// The store is a single slot: at most one run exists at a time, held in
// one YAML file under the state directory. Every write goes through a
// temp file and an atomic rename, so a concurrently polling reader never
// observes a torn record.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/pomoctl/internal/timer"
)

var (
	// ErrAlreadyRunning reports a start while a run is active.
	ErrAlreadyRunning = errors.New("pomoctl: a pomodoro is already running")

	// ErrNotRunning reports an operation that needs an active run.
	ErrNotRunning = errors.New("pomoctl: no pomodoro is running")
)

const stateFile = "current.yaml"

// Store reads and writes the active run under a state directory.
type Store struct {
	dir string
}

// New opens a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the state directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the location of the run file.
func (s *Store) Path() string { return filepath.Join(s.dir, stateFile) }

// Load reads the active run. Returns ErrNotRunning when the slot is
// empty.
func (s *Store) Load() (*timer.State, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotRunning
	}
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}

	var rec record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return rec.state()
}

// Create persists a new run. Returns ErrAlreadyRunning when the slot is
// taken.
func (s *Store) Create(st *timer.State) error {
	if _, err := os.Stat(s.Path()); err == nil {
		return ErrAlreadyRunning
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat state: %w", err)
	}
	return s.write(st)
}

// Update rewrites the active run. Returns ErrNotRunning when the slot is
// empty.
func (s *Store) Update(st *timer.State) error {
	if _, err := os.Stat(s.Path()); errors.Is(err, os.ErrNotExist) {
		return ErrNotRunning
	} else if err != nil {
		return fmt.Errorf("stat state: %w", err)
	}
	return s.write(st)
}

// Replace persists st regardless of slot occupancy and returns the prior
// run, nil when the slot was empty.
func (s *Store) Replace(st *timer.State) (*timer.State, error) {
	prior, err := s.Load()
	if err != nil && !errors.Is(err, ErrNotRunning) {
		return nil, err
	}
	if err := s.write(st); err != nil {
		return nil, err
	}
	return prior, nil
}

// Delete removes the active run and returns its final state. Returns
// ErrNotRunning when the slot is empty.
func (s *Store) Delete() (*timer.State, error) {
	st, err := s.Load()
	if err != nil {
		return nil, err
	}
	if err := os.Remove(s.Path()); err != nil {
		return nil, fmt.Errorf("remove state: %w", err)
	}
	return st, nil
}

// write serializes through a temp file in the same directory and renames
// it over the slot.
func (s *Store) write(st *timer.State) error {
	data, err := yaml.Marshal(newRecord(st))
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	tmp := s.Path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp, s.Path()); err != nil {
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}
