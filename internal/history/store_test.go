package history

import (
	"database/sql"
	_ "embed"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed testdata/schema.sql
var testSchema string

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

func ptr[T any](v T) *T { return &v }

func TestStore_Record(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	subID := "sub-1"
	item := &Item{
		Title:          "Newest Video",
		Author:         "Veritasium",
		SourceURL:      "https://www.youtube.com/watch?v=abc123",
		Status:         StatusSuccess,
		SubscriptionID: &subID,
	}
	if err := store.Record(item); err != nil {
		t.Fatalf("Record: %v", err)
	}

	if item.ID == "" {
		t.Error("ID should be set after Record")
	}
	if item.FinishedAt.IsZero() {
		t.Error("FinishedAt should be set after Record")
	}
}

func TestStore_List_Filters(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	base := time.Now()
	records := []*Item{
		{Title: "one", SourceURL: "u1", Status: StatusSuccess, SubscriptionID: ptr("sub-1"), FinishedAt: base.Add(-3 * time.Minute)},
		{Title: "two", SourceURL: "u2", Status: StatusFailed, Error: "network timeout", SubscriptionID: ptr("sub-1"), FinishedAt: base.Add(-2 * time.Minute)},
		{Title: "three", SourceURL: "u3", Status: StatusSkipped, TaskID: ptr("task-1"), FinishedAt: base.Add(-time.Minute)},
	}
	for _, r := range records {
		if err := store.Record(r); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	items, total, err := store.List(Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(items) != 3 {
		t.Fatalf("total = %d, len = %d, want 3", total, len(items))
	}
	// Most recent first.
	if items[0].Title != "three" {
		t.Errorf("first item = %q, want three", items[0].Title)
	}

	items, total, err = store.List(Filter{Status: ptr(StatusFailed)})
	if err != nil {
		t.Fatalf("List failed filter: %v", err)
	}
	if total != 1 || items[0].Error != "network timeout" {
		t.Errorf("failed filter: total=%d items=%v", total, items)
	}

	items, _, err = store.List(Filter{TaskID: ptr("task-1")})
	if err != nil {
		t.Fatalf("List task filter: %v", err)
	}
	if len(items) != 1 || items[0].Title != "three" {
		t.Errorf("task filter returned %v", items)
	}

	items, total, err = store.List(Filter{SubscriptionID: ptr("sub-1"), Limit: 1})
	if err != nil {
		t.Fatalf("List paged: %v", err)
	}
	if total != 2 || len(items) != 1 {
		t.Errorf("paged: total=%d len=%d, want total 2 len 1", total, len(items))
	}
}

func TestStore_Search_Fuzzy(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	titles := []string{
		"Música Ligera en Vivo",
		"The Quantum Experiment Explained",
		"Cooking Pasta at Home",
	}
	for _, title := range titles {
		if err := store.Record(&Item{Title: title, Author: "Someone", SourceURL: "u", Status: StatusSuccess}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	// Accent- and case-insensitive substring match.
	items, err := store.Search("musica ligera", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Música Ligera en Vivo" {
		t.Fatalf("Search returned %v", items)
	}

	// Partial word still finds the long title.
	items, err = store.Search("quantum", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(items) != 1 || items[0].Title != "The Quantum Experiment Explained" {
		t.Fatalf("Search quantum returned %v", items)
	}

	// Nothing close.
	items, err = store.Search("zzzzzz", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Search zzzzzz returned %v", items)
	}
}

func TestRankByTitle_OrdersBestFirst(t *testing.T) {
	items := []*Item{
		{Title: "pasta recipes"},
		{Title: "quantum experiments"},
		{Title: "quantum experiment"},
	}
	got := rankByTitle(items, "quantum experiment", 0)
	if len(got) < 2 {
		t.Fatalf("matched %d items, want at least 2", len(got))
	}
	if got[0].Title != "quantum experiment" {
		t.Errorf("best match = %q", got[0].Title)
	}
}
