package subscription

import (
	"database/sql"
	_ "embed"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/vodarr/vodarr/pkg/platform"
)

//go:embed testdata/schema.sql
var testSchema string

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("creating schema: %v", err)
	}
	return db
}

func ptr[T any](v T) *T { return &v }

func newTestSub(author, url string) *Subscription {
	return &Subscription{
		ID:        uuid.NewString(),
		Author:    author,
		AuthorURL: url,
		Platform:  platform.YouTube,
		Interval:  60,
		Type:      TypeAuthor,
		CreatedAt: time.Now().UTC(),
	}
}

func TestStore_InsertAndGet(t *testing.T) {
	store := NewStore(setupTestDB(t))

	sub := newTestSub("Tech Channel", "https://www.youtube.com/@techchannel")
	sub.LastVideoLink = "https://www.youtube.com/watch?v=abc"
	sub.DownloadShorts = true
	sub.CollectionID = ptr("col-1")

	if err := store.Insert(sub); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := store.Get(sub.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Author != "Tech Channel" {
		t.Errorf("Author = %q, want %q", got.Author, "Tech Channel")
	}
	if got.AuthorURL != sub.AuthorURL {
		t.Errorf("AuthorURL = %q, want %q", got.AuthorURL, sub.AuthorURL)
	}
	if got.LastVideoLink != "https://www.youtube.com/watch?v=abc" {
		t.Errorf("LastVideoLink = %q", got.LastVideoLink)
	}
	if !got.DownloadShorts {
		t.Error("DownloadShorts not persisted")
	}
	if got.CollectionID == nil || *got.CollectionID != "col-1" {
		t.Errorf("CollectionID = %v, want col-1", got.CollectionID)
	}
	if got.LastCheck != 0 {
		t.Errorf("LastCheck = %d, want 0", got.LastCheck)
	}
}

func TestStore_GetNotFound(t *testing.T) {
	store := NewStore(setupTestDB(t))

	_, err := store.Get("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing = %v, want ErrNotFound", err)
	}
}

func TestStore_GetByAuthorURL(t *testing.T) {
	store := NewStore(setupTestDB(t))

	sub := newTestSub("Tech Channel", "https://www.youtube.com/@techchannel")
	if err := store.Insert(sub); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := store.GetByAuthorURL("https://www.youtube.com/@techchannel")
	if err != nil {
		t.Fatalf("GetByAuthorURL: %v", err)
	}
	if got.ID != sub.ID {
		t.Errorf("ID = %q, want %q", got.ID, sub.ID)
	}

	if _, err := store.GetByAuthorURL("https://www.youtube.com/@other"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByAuthorURL missing = %v, want ErrNotFound", err)
	}
}

func TestStore_InsertDuplicateURL(t *testing.T) {
	store := NewStore(setupTestDB(t))

	if err := store.Insert(newTestSub("One", "https://www.youtube.com/@chan")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	err := store.Insert(newTestSub("Two", "https://www.youtube.com/@chan"))
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate Insert = %v, want ErrDuplicate", err)
	}
}

func TestStore_ListOrdersByCreation(t *testing.T) {
	store := NewStore(setupTestDB(t))

	older := newTestSub("First", "https://www.youtube.com/@first")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := newTestSub("Second", "https://www.youtube.com/@second")

	if err := store.Insert(newer); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := store.Insert(older); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	subs, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("List returned %d subs, want 2", len(subs))
	}
	if subs[0].Author != "First" || subs[1].Author != "Second" {
		t.Errorf("List order = %q, %q; want First, Second", subs[0].Author, subs[1].Author)
	}
}

func TestStore_UpdateLastCheck(t *testing.T) {
	store := NewStore(setupTestDB(t))

	sub := newTestSub("Chan", "https://www.youtube.com/@chan")
	sub.LastVideoLink = "https://www.youtube.com/watch?v=old"
	sub.LastShortVideoLink = "https://www.youtube.com/watch?v=oldshort"
	if err := store.Insert(sub); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	now := time.Now().UnixMilli()
	rows, err := store.UpdateLastCheck(sub.ID, ptr("https://www.youtube.com/watch?v=new"), nil, now)
	if err != nil {
		t.Fatalf("UpdateLastCheck: %v", err)
	}
	if rows != 1 {
		t.Fatalf("rows = %d, want 1", rows)
	}

	got, err := store.Get(sub.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.LastCheck != now {
		t.Errorf("LastCheck = %d, want %d", got.LastCheck, now)
	}
	if got.LastVideoLink != "https://www.youtube.com/watch?v=new" {
		t.Errorf("LastVideoLink = %q, want new link", got.LastVideoLink)
	}
	// nil pointer leaves the shorts link untouched
	if got.LastShortVideoLink != "https://www.youtube.com/watch?v=oldshort" {
		t.Errorf("LastShortVideoLink = %q, want old link", got.LastShortVideoLink)
	}
}

func TestStore_UpdateLastCheckDeletedRow(t *testing.T) {
	store := NewStore(setupTestDB(t))

	rows, err := store.UpdateLastCheck("gone", ptr("x"), nil, time.Now().UnixMilli())
	if err != nil {
		t.Fatalf("UpdateLastCheck: %v", err)
	}
	if rows != 0 {
		t.Fatalf("rows = %d, want 0 for deleted subscription", rows)
	}
}

func TestStore_SetPaused(t *testing.T) {
	store := NewStore(setupTestDB(t))

	sub := newTestSub("Chan", "https://www.youtube.com/@chan")
	if err := store.Insert(sub); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	rows, err := store.SetPaused(sub.ID, true)
	if err != nil {
		t.Fatalf("SetPaused: %v", err)
	}
	if rows != 1 {
		t.Fatalf("rows = %d, want 1", rows)
	}

	got, _ := store.Get(sub.ID)
	if !got.Paused {
		t.Error("subscription not paused")
	}

	rows, err = store.SetPaused("missing", true)
	if err != nil {
		t.Fatalf("SetPaused missing: %v", err)
	}
	if rows != 0 {
		t.Fatalf("rows = %d, want 0 for missing subscription", rows)
	}
}

func TestStore_IncrementDownloadCount(t *testing.T) {
	store := NewStore(setupTestDB(t))

	sub := newTestSub("Chan", "https://www.youtube.com/@chan")
	if err := store.Insert(sub); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := store.IncrementDownloadCount(sub.ID); err != nil {
		t.Fatalf("IncrementDownloadCount: %v", err)
	}
	if err := store.IncrementDownloadCount(sub.ID); err != nil {
		t.Fatalf("IncrementDownloadCount: %v", err)
	}

	got, _ := store.Get(sub.ID)
	if got.DownloadCount != 2 {
		t.Errorf("DownloadCount = %d, want 2", got.DownloadCount)
	}
}

func TestStore_DeleteAndVerify(t *testing.T) {
	store := NewStore(setupTestDB(t))

	sub := newTestSub("Chan", "https://www.youtube.com/@chan")
	if err := store.Insert(sub); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	gone, err := store.DeleteAndVerify(sub.ID)
	if err != nil {
		t.Fatalf("DeleteAndVerify: %v", err)
	}
	if !gone {
		t.Error("DeleteAndVerify reported the row still present")
	}

	if _, err := store.Get(sub.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete = %v, want ErrNotFound", err)
	}
}

func TestStore_DeleteAndVerifySurvivingRow(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	sub := newTestSub("Chan", "https://www.youtube.com/@chan")
	if err := store.Insert(sub); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	// A trigger that swallows deletes simulates a row the delete statement
	// failed to remove.
	if _, err := db.Exec(`
		CREATE TRIGGER keep_rows BEFORE DELETE ON subscriptions
		BEGIN SELECT RAISE(IGNORE); END`); err != nil {
		t.Fatalf("creating trigger: %v", err)
	}

	gone, err := store.DeleteAndVerify(sub.ID)
	if err != nil {
		t.Fatalf("DeleteAndVerify: %v", err)
	}
	if gone {
		t.Error("DeleteAndVerify = true for a row the delete did not remove")
	}
}

func TestSubscription_Due(t *testing.T) {
	now := time.Now().UnixMilli()

	tests := []struct {
		name string
		sub  Subscription
		want bool
	}{
		{"never checked", Subscription{Interval: 60}, true},
		{"just checked", Subscription{Interval: 60, LastCheck: now}, false},
		{"interval elapsed", Subscription{Interval: 60, LastCheck: now - 61*60_000}, true},
		{"interval not elapsed", Subscription{Interval: 60, LastCheck: now - 30*60_000}, false},
		{"paused never due", Subscription{Interval: 60, Paused: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sub.Due(now); got != tt.want {
				t.Errorf("Due = %v, want %v", got, tt.want)
			}
		})
	}
}
