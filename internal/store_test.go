package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testEntry(id int, day string, category, text string, tags ...string) Entry {
	ts, _ := time.Parse("2006-01-02 15:04", day)
	return Entry{ID: id, Timestamp: ts, Text: text, Category: category, Tags: tags}
}

func seedStore(t *testing.T, entries ...Entry) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs.json")
	store := &Store{path: path, entries: entries}
	if err := store.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	return store
}

func TestLoadStoreMissingFile(t *testing.T) {
	store, err := LoadStore(filepath.Join(t.TempDir(), "logs.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("expected empty store, got %d entries", store.Len())
	}
}

func TestLoadStoreMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadStore(path); err == nil {
		t.Error("expected error for malformed store")
	}
}

func TestAppendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.json")
	store, err := LoadStore(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	appended := store.Append(Entry{
		Timestamp: time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC),
		Text:      "wired up the session cache",
		Category:  "coding",
		Tags:      []string{"cache"},
	})
	if appended.ID != 1 {
		t.Errorf("ID = %d, want 1", appended.ID)
	}
	if err := store.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := LoadStore(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Len() != 1 {
		t.Fatalf("reloaded %d entries, want 1", reloaded.Len())
	}

	got := reloaded.Entries()[0]
	if got.ID != appended.ID || !got.Timestamp.Equal(appended.Timestamp) ||
		got.Text != appended.Text || got.Category != appended.Category {
		t.Errorf("round-trip mismatch: %+v != %+v", got, appended)
	}
}

func TestFilterByCategory(t *testing.T) {
	store := seedStore(t,
		testEntry(1, "2025-01-01 09:00", "coding", "a"),
		testEntry(2, "2025-01-01 10:00", "debugging", "b"),
		testEntry(3, "2025-01-02 09:00", "coding", "c"),
		testEntry(4, "2025-01-02 10:00", "debugging", "d"),
		testEntry(5, "2025-01-03 09:00", "coding", "e"),
	)

	got := store.Filter(FilterOptions{Category: "coding"})
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	for i, want := range []int{1, 3, 5} {
		if got[i].ID != want {
			t.Errorf("entry %d has ID %d, want %d (chronological order)", i, got[i].ID, want)
		}
	}
}

func TestFilterByTagsIsOrAcrossTags(t *testing.T) {
	store := seedStore(t,
		testEntry(1, "2025-01-01 09:00", "coding", "a", "bug"),
		testEntry(2, "2025-01-01 10:00", "coding", "b", "ui"),
		testEntry(3, "2025-01-01 11:00", "coding", "c", "db"),
	)

	got := store.Filter(FilterOptions{Tags: []string{"bug", "db"}})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("tag filter = %v", got)
	}
}

func TestFilterCombinesCriteriaWithAnd(t *testing.T) {
	store := seedStore(t,
		testEntry(1, "2025-01-01 09:00", "coding", "a", "bug"),
		testEntry(2, "2025-01-01 10:00", "debugging", "b", "bug"),
		testEntry(3, "2025-01-01 11:00", "coding", "c", "ui"),
	)

	got := store.Filter(FilterOptions{Category: "coding", Tags: []string{"bug"}})
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("combined filter = %v", got)
	}
}

func TestFilterLimitKeepsMostRecent(t *testing.T) {
	store := seedStore(t,
		testEntry(1, "2025-01-01 09:00", "coding", "a"),
		testEntry(2, "2025-01-01 10:00", "coding", "b"),
		testEntry(3, "2025-01-01 11:00", "coding", "c"),
	)

	got := store.Filter(FilterOptions{Limit: 2})
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Errorf("limit filter = %v, want last two in chronological order", got)
	}
}

func TestFilterNoMatchReturnsEmpty(t *testing.T) {
	store := seedStore(t, testEntry(1, "2025-01-01 09:00", "coding", "a"))

	got := store.Filter(FilterOptions{Category: "meeting"})
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	store := seedStore(t,
		testEntry(1, "2025-01-01 09:00", "coding", "reworked the authentication flow"),
		testEntry(2, "2025-01-01 10:00", "coding", "lunch break"),
	)

	got := store.Search("AUTH", 0)
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("Search(AUTH) = %v", got)
	}
}

func TestSearchLimit(t *testing.T) {
	store := seedStore(t,
		testEntry(1, "2025-01-01 09:00", "coding", "fix one"),
		testEntry(2, "2025-01-01 10:00", "coding", "fix two"),
		testEntry(3, "2025-01-01 11:00", "coding", "fix three"),
	)

	got := store.Search("fix", 2)
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Errorf("Search limit = %v", got)
	}
}
