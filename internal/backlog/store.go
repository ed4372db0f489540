package backlog

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store persists tasks in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a task store backed by db.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const taskColumns = `id, subscription_id, collection_id, author_url, author, platform,
	status, total_videos, downloaded_count, skipped_count, failed_count,
	current_video_index, error, created_at, updated_at, completed_at`

// Create stores a new task. Missing ID and status are filled in.
func (s *Store) Create(t *Task) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = StatusActive
	}
	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now

	_, err := s.db.Exec(`
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.SubscriptionID, t.CollectionID, t.AuthorURL, t.Author, t.Platform,
		t.Status, t.TotalVideos, t.DownloadedCount, t.SkippedCount, t.FailedCount,
		t.CurrentVideoIndex, t.Error, t.CreatedAt, t.UpdatedAt, t.CompletedAt)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

// Get retrieves a task by ID.
func (s *Store) Get(id string) (*Task, error) {
	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("getting task %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting task %s: %w", id, err)
	}
	return t, nil
}

// List returns tasks matching the filter, newest first, plus the total
// matching count for pagination.
func (s *Store) List(f Filter) ([]*Task, int, error) {
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

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM tasks`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting tasks: %w", err)
	}

	query := `SELECT ` + taskColumns + ` FROM tasks` + where + ` ORDER BY created_at DESC, id`
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, total, rows.Err()
}

// NextActive returns the oldest active task, or ErrNotFound when the queue
// is drained.
func (s *Store) NextActive() (*Task, error) {
	row := s.db.QueryRow(`
		SELECT ` + taskColumns + ` FROM tasks
		WHERE status = 'active'
		ORDER BY created_at, id
		LIMIT 1`)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("claiming next task: %w", err)
	}
	return t, nil
}

// SetTotal records the discovered upload count. The first discovery wins;
// later calls against a non-zero total are no-ops.
func (s *Store) SetTotal(id string, total int64) error {
	_, err := s.db.Exec(`
		UPDATE tasks SET total_videos = ?, updated_at = ?
		WHERE id = ? AND total_videos = 0`,
		total, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("setting total for task %s: %w", id, err)
	}
	return nil
}

// Advance applies per-video counter deltas and moves the resume cursor. A
// pause or cancel landing mid-download still gets its in-flight video
// recorded; only completion freezes the counters. The counters never exceed
// totalVideos. Returns the number of rows updated; zero tells the caller to
// stop processing.
func (s *Store) Advance(id string, downloaded, skipped, failed, index int64) (int64, error) {
	result, err := s.db.Exec(`
		UPDATE tasks
		SET downloaded_count = downloaded_count + ?,
		    skipped_count = skipped_count + ?,
		    failed_count = failed_count + ?,
		    current_video_index = MAX(current_video_index, ?),
		    updated_at = ?
		WHERE id = ? AND status != 'completed'
		  AND downloaded_count + skipped_count + failed_count + ? <= total_videos`,
		downloaded, skipped, failed, index, time.Now().UTC(),
		id, downloaded+skipped+failed)
	if err != nil {
		return 0, fmt.Errorf("advancing task %s: %w", id, err)
	}
	return result.RowsAffected()
}

// Transition moves a task to a new status, guarding against concurrent
// changes: the update applies only if the task still has the status t was
// loaded with. Terminal timestamps are maintained, and resuming clears any
// recorded error.
func (s *Store) Transition(t *Task, to Status) error {
	return s.transition(t, to, t.Error)
}

// Cancel transitions a task to cancelled and records the reason.
func (s *Store) Cancel(t *Task, reason string) error {
	return s.transition(t, StatusCancelled, reason)
}

func (s *Store) transition(t *Task, to Status, errMsg string) error {
	if !t.Status.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, to)
	}

	now := time.Now().UTC()
	var completedAt *time.Time
	if to.IsTerminal() {
		completedAt = &now
	}
	if to == StatusActive {
		errMsg = ""
	}

	result, err := s.db.Exec(`
		UPDATE tasks SET status = ?, error = ?, updated_at = ?, completed_at = ?
		WHERE id = ? AND status = ?`,
		to, errMsg, now, completedAt, t.ID, t.Status)
	if err != nil {
		return fmt.Errorf("updating task %s: %w", t.ID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("transition task %s to %s: %w", t.ID, to, ErrStale)
	}

	t.Status = to
	t.Error = errMsg
	t.UpdatedAt = now
	t.CompletedAt = completedAt
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (*Task, error) {
	var t Task
	err := s.Scan(&t.ID, &t.SubscriptionID, &t.CollectionID, &t.AuthorURL, &t.Author,
		&t.Platform, &t.Status, &t.TotalVideos, &t.DownloadedCount, &t.SkippedCount,
		&t.FailedCount, &t.CurrentVideoIndex, &t.Error, &t.CreatedAt, &t.UpdatedAt,
		&t.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
