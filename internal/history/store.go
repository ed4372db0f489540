// Package history keeps the append-only ledger of download outcomes.
package history

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the outcome of one download attempt.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
	StatusDeleted Status = "deleted"
)

// Item is one history record. SubscriptionID and TaskID are provenance tags:
// they identify which automated process produced the entry, so manual,
// subscription and backlog downloads stay distinguishable.
type Item struct {
	ID             string
	Title          string
	Author         string
	SourceURL      string
	Status         Status
	Error          string
	VideoID        *string
	SubscriptionID *string
	TaskID         *string
	FinishedAt     time.Time
}

// Filter specifies criteria for listing history.
type Filter struct {
	Status         *Status
	SubscriptionID *string
	TaskID         *string
	Limit          int
	Offset         int
}

// Store persists history records.
type Store struct {
	db *sql.DB
}

// NewStore creates a history store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record appends a history item. Fills ID and FinishedAt when unset.
func (s *Store) Record(item *Item) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.FinishedAt.IsZero() {
		item.FinishedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO history (id, title, author, source_url, status, error, video_id, subscription_id, task_id, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Title, item.Author, item.SourceURL, item.Status, item.Error,
		item.VideoID, item.SubscriptionID, item.TaskID, item.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

// List returns history items matching the filter, most recent first,
// plus the unpaged total.
func (s *Store) List(f Filter) ([]*Item, int, error) {
	var conditions []string
	var args []any

	if f.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *f.Status)
	}
	if f.SubscriptionID != nil {
		conditions = append(conditions, "subscription_id = ?")
		args = append(args, *f.SubscriptionID)
	}
	if f.TaskID != nil {
		conditions = append(conditions, "task_id = ?")
		args = append(args, *f.TaskID)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM history"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count history: %w", err)
	}

	query := itemColumns + whereClause + " ORDER BY finished_at DESC, id"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items, err := scanItems(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// searchWindow bounds how many recent rows a fuzzy search scans.
const searchWindow = 500

// Search returns recent items whose titles fuzzily match the query,
// best match first.
func (s *Store) Search(query string, limit int) ([]*Item, error) {
	rows, err := s.db.Query(itemColumns+" ORDER BY finished_at DESC LIMIT ?", searchWindow)
	if err != nil {
		return nil, fmt.Errorf("search history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items, err := scanItems(rows)
	if err != nil {
		return nil, err
	}
	return rankByTitle(items, query, limit), nil
}

const itemColumns = `SELECT id, title, author, source_url, status, error, video_id, subscription_id, task_id, finished_at FROM history`

func scanItems(rows *sql.Rows) ([]*Item, error) {
	var items []*Item
	for rows.Next() {
		item := &Item{}
		err := rows.Scan(&item.ID, &item.Title, &item.Author, &item.SourceURL, &item.Status, &item.Error,
			&item.VideoID, &item.SubscriptionID, &item.TaskID, &item.FinishedAt)
		if err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
