// Package history keeps a log of generated projects.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/phravins/kivagen/pkg/utils"
)

type Entry struct {
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

// Store reads and writes the history file at Path.
type Store struct {
	Path string

	now func() time.Time
}

// DefaultStore returns the store under ~/.kivagen.
func DefaultStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewStore(filepath.Join(home, ".kivagen", "history.json")), nil
}

func NewStore(path string) *Store {
	return &Store{Path: path, now: time.Now}
}

// Load returns all entries, newest first. A missing or corrupt file reads as
// an empty history.
func (s *Store) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return []Entry{}, nil
	}
	return entries, nil
}

func (s *Store) Save(entries []Entry) error {
	if err := utils.EnsureDir(filepath.Dir(s.Path)); err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0644)
}

func (s *Store) Add(name, version, path string) error {
	entries, err := s.Load()
	if err != nil {
		return err
	}
	// Prepend new entry
	newEntry := Entry{
		Name:      name,
		Version:   version,
		Path:      path,
		CreatedAt: s.now(),
	}
	entries = append([]Entry{newEntry}, entries...)
	return s.Save(entries)
}

// DeleteOld drops entries older than days and returns how many were removed.
func (s *Store) DeleteOld(days int) (int, error) {
	entries, err := s.Load()
	if err != nil {
		return 0, err
	}
	cutoff := s.now().AddDate(0, 0, -days)
	kept := []Entry{}
	for _, e := range entries {
		if !e.CreatedAt.Before(cutoff) {
			kept = append(kept, e)
		}
	}
	return len(entries) - len(kept), s.Save(kept)
}
