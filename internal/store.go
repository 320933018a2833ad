package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store holds the full ordered collection of entries for the duration of one
// command. Append order is chronological order; nothing ever re-sorts it.
// The backing file is rewritten wholesale on save.
type Store struct {
	path    string
	entries []Entry
}

// LoadStore materializes the store from its JSON file. A missing file yields
// an empty store; malformed JSON is an error with no salvage attempted.
func LoadStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Store{path: path}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse store %s (manually repair or reset it): %w", path, err)
	}

	return &Store{path: path, entries: entries}, nil
}

// Save rewrites the whole backing file.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}

	return nil
}

// Append adds an entry to the in-memory sequence, assigning the next ID.
// The caller decides when to Save.
func (s *Store) Append(e Entry) Entry {
	e.ID = len(s.entries) + 1
	s.entries = append(s.entries, e)
	return e
}

// Entries returns the full sequence in chronological order.
func (s *Store) Entries() []Entry {
	return s.entries
}

func (s *Store) Len() int {
	return len(s.entries)
}

// FilterOptions are combined with logical AND; zero values mean "no
// constraint". Tags match when the entry has at least one of them.
type FilterOptions struct {
	Category string
	Tags     []string
	Limit    int
}

// Filter returns the entries matching all supplied criteria, in chronological
// order. Limit keeps the most recent Limit matches. No match yields an empty
// slice, never an error.
func (s *Store) Filter(opts FilterOptions) []Entry {
	matched := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if opts.Category != "" && e.Category != opts.Category {
			continue
		}
		if len(opts.Tags) > 0 && !e.HasAnyTag(opts.Tags) {
			continue
		}
		matched = append(matched, e)
	}
	return tail(matched, opts.Limit)
}

// Search returns the entries whose text contains query, case-insensitively,
// with the same limit semantics as Filter.
func (s *Store) Search(query string, limit int) []Entry {
	q := strings.ToLower(query)

	matched := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Text), q) {
			matched = append(matched, e)
		}
	}
	return tail(matched, limit)
}

func tail(entries []Entry, limit int) []Entry {
	if limit > 0 && len(entries) > limit {
		return entries[len(entries)-limit:]
	}
	return entries
}
