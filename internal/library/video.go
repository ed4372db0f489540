package library

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vodarr/vodarr/pkg/platform"
)

// Video is one downloaded video's metadata row.
type Video struct {
	ID           string
	SourceID     string // platform-native video id
	Platform     platform.Platform
	Title        string
	Author       string
	SourceURL    string
	FilePath     string
	DurationSecs float64
	DownloadedAt time.Time
}

// VideoFilter specifies criteria for listing videos.
type VideoFilter struct {
	Author       *string
	Platform     *platform.Platform
	CollectionID *string
	Limit        int
	Offset       int
}

// SaveVideo inserts a video row.
// Idempotent: if a video with the same (platform, source_id) already exists,
// the existing row is loaded into v instead of creating a duplicate.
func (s *Store) SaveVideo(v *Video) error {
	existing, err := s.GetVideoBySourceID(v.Platform, v.SourceID)
	if err == nil {
		*v = *existing
		return nil
	}
	if err != ErrNotFound {
		return fmt.Errorf("check existing video: %w", err)
	}

	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	now := time.Now()
	_, err = s.db.Exec(`
		INSERT INTO videos (id, source_id, platform, title, author, source_url, file_path, duration_secs, downloaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.SourceID, v.Platform, v.Title, v.Author, v.SourceURL, v.FilePath, v.DurationSecs, now,
	)
	if err != nil {
		return fmt.Errorf("insert video: %w", mapSQLiteError(err))
	}
	v.DownloadedAt = now
	return nil
}

// GetVideo retrieves a video by ID. Returns ErrNotFound if missing.
func (s *Store) GetVideo(id string) (*Video, error) {
	return scanVideo(s.db.QueryRow(videoColumns+" WHERE id = ?", id))
}

// GetVideoBySourceID retrieves a video by its platform-native id.
func (s *Store) GetVideoBySourceID(p platform.Platform, sourceID string) (*Video, error) {
	return scanVideo(s.db.QueryRow(videoColumns+" WHERE platform = ? AND source_id = ?", p, sourceID))
}

// HasVideo reports whether a video with this platform-native id exists.
// This is the dedup-ledger check used by the backlog runner.
func (s *Store) HasVideo(p platform.Platform, sourceID string) (bool, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM videos WHERE platform = ? AND source_id = ?`, p, sourceID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check video: %w", err)
	}
	return n > 0, nil
}

// ListVideos returns videos matching the filter plus the unpaged total.
func (s *Store) ListVideos(f VideoFilter) ([]*Video, int, error) {
	var conditions []string
	var args []any

	if f.Author != nil {
		conditions = append(conditions, "author = ?")
		args = append(args, *f.Author)
	}
	if f.Platform != nil {
		conditions = append(conditions, "platform = ?")
		args = append(args, *f.Platform)
	}
	if f.CollectionID != nil {
		conditions = append(conditions, "id IN (SELECT video_id FROM collection_videos WHERE collection_id = ?)")
		args = append(args, *f.CollectionID)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM videos"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count videos: %w", err)
	}

	query := videoColumns + whereClause + " ORDER BY downloaded_at DESC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list videos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Video
	for rows.Next() {
		v, err := scanVideoRow(rows)
		if err != nil {
			return nil, 0, err
		}
		results = append(results, v)
	}
	return results, total, rows.Err()
}

// DeleteVideo removes a video row. Returns ErrNotFound if it doesn't exist.
func (s *Store) DeleteVideo(id string) error {
	result, err := s.db.Exec(`DELETE FROM videos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete video: %w", mapSQLiteError(err))
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

const videoColumns = `SELECT id, source_id, platform, title, author, source_url, file_path, duration_secs, downloaded_at FROM videos`

func scanVideo(row *sql.Row) (*Video, error) {
	v := &Video{}
	err := row.Scan(&v.ID, &v.SourceID, &v.Platform, &v.Title, &v.Author, &v.SourceURL, &v.FilePath, &v.DurationSecs, &v.DownloadedAt)
	if err != nil {
		return nil, mapSQLiteError(err)
	}
	return v, nil
}

func scanVideoRow(rows *sql.Rows) (*Video, error) {
	v := &Video{}
	err := rows.Scan(&v.ID, &v.SourceID, &v.Platform, &v.Title, &v.Author, &v.SourceURL, &v.FilePath, &v.DurationSecs, &v.DownloadedAt)
	if err != nil {
		return nil, fmt.Errorf("scan video: %w", err)
	}
	return v, nil
}
