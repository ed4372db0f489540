package settings

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(`CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

func TestStore_Defaults(t *testing.T) {
	store := NewStore(setupTestDB(t))

	got, err := store.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.SaveAuthorFilesToCollection {
		t.Error("SaveAuthorFilesToCollection default should be false")
	}
	if store.SaveAuthorFilesToCollection() {
		t.Error("flag accessor default should be false")
	}
}

func TestStore_UpdateRoundtrip(t *testing.T) {
	store := NewStore(setupTestDB(t))

	if err := store.Update(&Settings{SaveAuthorFilesToCollection: true}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := store.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.SaveAuthorFilesToCollection {
		t.Error("SaveAuthorFilesToCollection should be true after update")
	}
	if !store.SaveAuthorFilesToCollection() {
		t.Error("flag accessor should be true after update")
	}

	// Toggling back overwrites the same row.
	if err := store.Update(&Settings{SaveAuthorFilesToCollection: false}); err != nil {
		t.Fatalf("Update back: %v", err)
	}
	if store.SaveAuthorFilesToCollection() {
		t.Error("flag accessor should be false after second update")
	}
}
