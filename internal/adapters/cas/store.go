// Package cas implements the lockfile store that persists the last resolved dependency graph.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/zerr"
)

// LockfileName is the file name of the lockfile inside the build directory.
const LockfileName = "recipe.lock.json"

var _ ports.LockfileStore = (*Store)(nil)

// Store implements ports.LockfileStore using a JSON file per build directory.
type Store struct {
	mu sync.RWMutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Path returns the lockfile path inside dir.
func Path(dir string) string {
	return filepath.Join(filepath.Clean(dir), LockfileName)
}

// Get reads the lockfile in dir. It returns nil without an error when none exists.
func (s *Store) Get(dir string) (*domain.Lockfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := Path(dir)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read lockfile"), "path", path)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var lock domain.Lockfile
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal lockfile"), "path", path)
	}

	if lock.Version != domain.LockfileVersion {
		err := zerr.With(zerr.New("unsupported lockfile version"), "path", path)
		return nil, zerr.With(err, "version", lock.Version)
	}

	return &lock, nil
}

// Put writes lock into dir, replacing any previous lockfile.
func (s *Store) Put(dir string, lock domain.Lockfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lock.Version == 0 {
		lock.Version = domain.LockfileVersion
	}

	data, err := json.MarshalIndent(lock, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal lockfile")
	}

	path := Path(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for lockfile"), "path", path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write lockfile"), "path", path)
	}

	return nil
}
