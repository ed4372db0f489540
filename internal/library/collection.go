package library

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Collection groups videos under a user-visible name.
type Collection struct {
	ID         string
	Name       string
	CreatedAt  time.Time
	VideoCount int
}

// CreateCollection inserts a new collection.
// Returns ErrDuplicate if the name is already taken.
func (s *Store) CreateCollection(name string) (*Collection, error) {
	c := &Collection{ID: uuid.NewString(), Name: name, CreatedAt: time.Now()}
	_, err := s.db.Exec(`INSERT INTO collections (id, name, created_at) VALUES (?, ?, ?)`,
		c.ID, c.Name, c.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert collection: %w", mapSQLiteError(err))
	}
	return c, nil
}

// EnsureCollection returns the collection with this name, creating it if needed.
func (s *Store) EnsureCollection(name string) (*Collection, error) {
	existing, err := s.GetCollectionByName(name)
	if err == nil {
		return existing, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	c, err := s.CreateCollection(name)
	if err == ErrDuplicate {
		// Lost a create race; the row exists now.
		return s.GetCollectionByName(name)
	}
	return c, err
}

// GetCollection retrieves a collection by ID.
func (s *Store) GetCollection(id string) (*Collection, error) {
	return scanCollection(s.db.QueryRow(collectionColumns+" WHERE c.id = ? GROUP BY c.id", id))
}

// GetCollectionByName retrieves a collection by its unique name.
func (s *Store) GetCollectionByName(name string) (*Collection, error) {
	return scanCollection(s.db.QueryRow(collectionColumns+" WHERE c.name = ? GROUP BY c.id", name))
}

// ListCollections returns all collections with their video counts, newest first.
func (s *Store) ListCollections() ([]*Collection, error) {
	rows, err := s.db.Query(collectionColumns + " GROUP BY c.id ORDER BY c.created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Collection
	for rows.Next() {
		c := &Collection{}
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.VideoCount); err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

// AddToCollection places a video in a collection. Adding an existing member
// is a no-op.
func (s *Store) AddToCollection(collectionID, videoID string) error {
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO collection_videos (collection_id, video_id, added_at)
		VALUES (?, ?, ?)`,
		collectionID, videoID, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("add to collection: %w", mapSQLiteError(err))
	}
	return nil
}

// RemoveFromCollection takes a video out of a collection.
// Returns ErrNotFound if the video was not a member.
func (s *Store) RemoveFromCollection(collectionID, videoID string) error {
	result, err := s.db.Exec(`DELETE FROM collection_videos WHERE collection_id = ? AND video_id = ?`,
		collectionID, videoID,
	)
	if err != nil {
		return fmt.Errorf("remove from collection: %w", mapSQLiteError(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

const collectionColumns = `
	SELECT c.id, c.name, c.created_at, COUNT(cv.video_id)
	FROM collections c
	LEFT JOIN collection_videos cv ON cv.collection_id = c.id`

func scanCollection(row *sql.Row) (*Collection, error) {
	c := &Collection{}
	err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.VideoCount)
	if err != nil {
		return nil, mapSQLiteError(err)
	}
	return c, nil
}
