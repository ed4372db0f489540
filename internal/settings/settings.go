// Package settings persists runtime-mutable flags as key/value rows.
package settings

import (
	"database/sql"
	"fmt"
)

const keySaveAuthorFilesToCollection = "save_author_files_to_collection"

// Settings are the user-tunable runtime flags.
type Settings struct {
	// SaveAuthorFilesToCollection files every subscription download into a
	// collection named after the author. While active, the channel-playlists
	// watcher skips per-playlist collection auto-creation.
	SaveAuthorFilesToCollection bool `json:"saveAuthorFilesToCollection"`
}

// Store reads and writes settings rows.
type Store struct {
	db *sql.DB
}

// NewStore creates a settings store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the current settings, with defaults for unset keys.
func (s *Store) Get() (*Settings, error) {
	out := &Settings{}
	v, err := s.get(keySaveAuthorFilesToCollection)
	if err != nil {
		return nil, err
	}
	out.SaveAuthorFilesToCollection = v == "true"
	return out, nil
}

// Update persists all settings.
func (s *Store) Update(v *Settings) error {
	return s.set(keySaveAuthorFilesToCollection, boolValue(v.SaveAuthorFilesToCollection))
}

// SaveAuthorFilesToCollection reports the flag consulted during
// channel-playlists refresh. Read failures fall back to the default (false).
func (s *Store) SaveAuthorFilesToCollection() bool {
	v, err := s.get(keySaveAuthorFilesToCollection)
	if err != nil {
		return false
	}
	return v == "true"
}

func (s *Store) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

func boolValue(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
