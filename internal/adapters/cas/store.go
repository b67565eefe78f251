// Package cas implements a content-addressed checksum cache.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/nixcrate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ChecksumCache = (*Store)(nil)

// Store implements ports.ChecksumCache using a flat JSON file.
type Store struct {
	mu    sync.RWMutex
	path  string
	cache map[string]string
}

// NewStore creates an empty in-memory Store. Load attaches it to a file.
func NewStore() *Store {
	return &Store{cache: make(map[string]string)}
}

// Key returns the cache key of a git source.
func Key(url, rev string) string {
	return url + "@" + rev
}

// Load reads the store at path, replacing the in-memory entries. A missing
// file yields an empty store.
func (s *Store) Load(path string) error {
	path = filepath.Clean(path)
	cache := make(map[string]string)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return zerr.With(zerr.Wrap(err, "failed to read checksum cache"), "path", path)
	case len(data) > 0:
		if err := json.Unmarshal(data, &cache); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to unmarshal checksum cache"), "path", path)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
	s.cache = cache
	return nil
}

// Get retrieves the checksum stored under key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	checksum, ok := s.cache[key]
	return checksum, ok
}

// Put stores the checksum and writes the store to disk when it is backed by a file.
func (s *Store) Put(key, checksum string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[key] = checksum
	if s.path == "" {
		return nil
	}
	return s.save()
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal checksum cache")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for checksum cache")
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write checksum cache"), "path", s.path)
	}
	return nil
}
