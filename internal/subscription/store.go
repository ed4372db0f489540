package subscription

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Store persists subscriptions in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a subscription store backed by db.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const columns = `id, author, author_url, platform, interval_minutes, last_check,
	last_video_link, last_short_video_link, subscription_type, playlist_id,
	playlist_title, collection_id, paused, download_shorts, download_count, created_at`

// Insert stores a new subscription. The author URL must be unique.
func (s *Store) Insert(sub *Subscription) error {
	_, err := s.db.Exec(`
		INSERT INTO subscriptions (`+columns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Author, sub.AuthorURL, sub.Platform, sub.Interval, sub.LastCheck,
		sub.LastVideoLink, sub.LastShortVideoLink, sub.Type, sub.PlaylistID,
		sub.PlaylistTitle, sub.CollectionID, sub.Paused, sub.DownloadShorts,
		sub.DownloadCount, sub.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting subscription: %w", mapSQLiteError(err))
	}
	return nil
}

// Get retrieves a subscription by ID.
func (s *Store) Get(id string) (*Subscription, error) {
	row := s.db.QueryRow(`SELECT `+columns+` FROM subscriptions WHERE id = ?`, id)
	sub, err := scanSubscription(row)
	if err != nil {
		return nil, fmt.Errorf("getting subscription %s: %w", id, mapSQLiteError(err))
	}
	return sub, nil
}

// GetByAuthorURL retrieves a subscription by its normalized author URL.
func (s *Store) GetByAuthorURL(url string) (*Subscription, error) {
	row := s.db.QueryRow(`SELECT `+columns+` FROM subscriptions WHERE author_url = ?`, url)
	sub, err := scanSubscription(row)
	if err != nil {
		return nil, fmt.Errorf("getting subscription for %s: %w", url, mapSQLiteError(err))
	}
	return sub, nil
}

// List returns all subscriptions ordered by creation time.
func (s *Store) List() ([]*Subscription, error) {
	rows, err := s.db.Query(`SELECT ` + columns + ` FROM subscriptions ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []*Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// UpdateLastCheck records a completed poll at now (epoch ms) and advances
// whichever content pointers are non-nil. It returns the number of rows
// updated; zero means the subscription was deleted out from under the poll.
func (s *Store) UpdateLastCheck(id string, videoLink, shortLink *string, now int64) (int64, error) {
	result, err := s.db.Exec(`
		UPDATE subscriptions
		SET last_check = ?,
		    last_video_link = COALESCE(?, last_video_link),
		    last_short_video_link = COALESCE(?, last_short_video_link)
		WHERE id = ?`,
		now, videoLink, shortLink, id)
	if err != nil {
		return 0, fmt.Errorf("updating last check for %s: %w", id, err)
	}
	return result.RowsAffected()
}

// SetPaused updates the paused flag and returns the number of rows updated.
func (s *Store) SetPaused(id string, paused bool) (int64, error) {
	result, err := s.db.Exec(`UPDATE subscriptions SET paused = ? WHERE id = ?`, paused, id)
	if err != nil {
		return 0, fmt.Errorf("updating paused for %s: %w", id, err)
	}
	return result.RowsAffected()
}

// IncrementDownloadCount bumps the per-subscription download counter.
func (s *Store) IncrementDownloadCount(id string) error {
	_, err := s.db.Exec(`
		UPDATE subscriptions SET download_count = download_count + 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("incrementing download count for %s: %w", id, err)
	}
	return nil
}

// Delete removes a subscription and returns the number of rows deleted.
func (s *Store) Delete(id string) (int64, error) {
	result, err := s.db.Exec(`DELETE FROM subscriptions WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting subscription %s: %w", id, err)
	}
	return result.RowsAffected()
}

// DeleteAndVerify deletes a subscription and re-reads the row to confirm it
// is gone. It reports true only when no row with the ID remains.
func (s *Store) DeleteAndVerify(id string) (bool, error) {
	if _, err := s.Delete(id); err != nil {
		return false, err
	}
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM subscriptions WHERE id = ?`, id).Scan(&n); err != nil {
		return false, fmt.Errorf("verifying deletion of %s: %w", id, err)
	}
	return n == 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubscription(s scanner) (*Subscription, error) {
	var sub Subscription
	err := s.Scan(&sub.ID, &sub.Author, &sub.AuthorURL, &sub.Platform, &sub.Interval,
		&sub.LastCheck, &sub.LastVideoLink, &sub.LastShortVideoLink, &sub.Type,
		&sub.PlaylistID, &sub.PlaylistTitle, &sub.CollectionID, &sub.Paused,
		&sub.DownloadShorts, &sub.DownloadCount, &sub.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// mapSQLiteError converts SQLite driver errors to domain errors.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicate
	}
	return err
}
