package internal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// JournalService handles append, filter, search and stats over the entry
// store. Each call loads the store from disk; a command makes exactly one
// call, so the file stays the sole source of truth between invocations.
type JournalService struct {
	paths  Paths
	cfg    *Config
	logger *zap.Logger
}

func NewJournalService(paths Paths, cfg *Config, logger *zap.Logger) *JournalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JournalService{paths: paths, cfg: cfg, logger: logger}
}

// Append records a new entry. Hashtags are derived from text unless explicit
// tags override them; an absent category resolves to the configured default.
// The backing file is rewritten before Append returns.
func (s *JournalService) Append(ctx context.Context, text, category string, tags []string) (*Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	if category == "" {
		category = s.cfg.DefaultCategory
	}

	var resolved []string
	if s.cfg.TagsEnabled {
		if len(tags) > 0 {
			resolved = NormalizeTags(tags, s.cfg.MaxTags)
		} else {
			resolved = ExtractTags(text, s.cfg.MaxTags)
		}
	}

	store, err := s.load()
	if err != nil {
		return nil, err
	}

	entry := store.Append(Entry{
		Timestamp: time.Now().Truncate(time.Second),
		Text:      text,
		Category:  category,
		Tags:      resolved,
	})

	if err := store.Save(); err != nil {
		return nil, err
	}

	s.logger.Debug("entry appended",
		zap.Int("id", entry.ID),
		zap.String("category", entry.Category),
		zap.Strings("tags", entry.Tags))

	return &entry, nil
}

// List returns entries matching the filter, in chronological order.
func (s *JournalService) List(ctx context.Context, opts FilterOptions) ([]Entry, error) {
	store, err := s.load()
	if err != nil {
		return nil, err
	}
	return store.Filter(opts), nil
}

// Search returns entries whose text contains query, case-insensitively.
func (s *JournalService) Search(ctx context.Context, query string, limit int) ([]Entry, error) {
	store, err := s.load()
	if err != nil {
		return nil, err
	}
	return store.Search(query, limit), nil
}

// Stats aggregates the whole store relative to now.
func (s *JournalService) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	store, err := s.load()
	if err != nil {
		return nil, err
	}
	return ComputeStats(store.Entries(), now), nil
}

// StorePath exposes the backing file location for the open and watch
// commands.
func (s *JournalService) StorePath() string {
	return s.paths.StorePath()
}

func (s *JournalService) load() (*Store, error) {
	store, err := LoadStore(s.paths.StorePath())
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	s.logger.Debug("store loaded",
		zap.String("path", s.paths.StorePath()),
		zap.Int("entries", store.Len()))
	return store, nil
}
