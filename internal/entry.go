package internal

import (
	"errors"
	"regexp"
	"time"
)

var (
	ErrEmptyText         = errors.New("entry text is empty")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrNoChanges         = errors.New("no changes to snapshot")
	ErrUnknownRevision   = errors.New("unknown revision")
)

var tagPattern = regexp.MustCompile(`#(\w+)`)

// Entry is one journaled record. Entries are never mutated after creation.
type Entry struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
}

// Day returns the calendar day of the entry as YYYY-MM-DD.
func (e Entry) Day() string {
	return e.Timestamp.Format("2006-01-02")
}

// HasAnyTag reports whether the entry carries at least one of the given tags.
func (e Entry) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range e.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

// ExtractTags collects #hashtag tokens from text, without the leading '#',
// deduplicated in first-appearance order and capped at max. Tags are kept as
// typed; the text itself is left untouched.
func ExtractTags(text string, max int) []string {
	if max <= 0 {
		return nil
	}

	matches := tagPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = appendTag(tags, m[1])
		if len(tags) == max {
			break
		}
	}
	return tags
}

// NormalizeTags deduplicates explicit tags in first-appearance order and caps
// them at max, mirroring ExtractTags for tags given on the command line.
func NormalizeTags(tags []string, max int) []string {
	if max <= 0 || len(tags) == 0 {
		return nil
	}

	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		out = appendTag(out, t)
		if len(out) == max {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func appendTag(tags []string, tag string) []string {
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(tags, tag)
}
