package v1

import (
	"encoding/json"
	"time"

	"github.com/vodarr/vodarr/internal/download"
)

// subscriptionResponse is the API representation of a subscription.
type subscriptionResponse struct {
	ID                 string    `json:"id"`
	Author             string    `json:"author"`
	AuthorURL          string    `json:"authorUrl"`
	Platform           string    `json:"platform"`
	Type               string    `json:"type"`
	Interval           int64     `json:"interval"`
	LastCheck          int64     `json:"lastCheck"`
	LastVideoLink      string    `json:"lastVideoLink,omitempty"`
	LastShortVideoLink string    `json:"lastShortVideoLink,omitempty"`
	PlaylistID         string    `json:"playlistId,omitempty"`
	PlaylistTitle      string    `json:"playlistTitle,omitempty"`
	CollectionID       *string   `json:"collectionId,omitempty"`
	Paused             bool      `json:"paused"`
	DownloadShorts     bool      `json:"downloadShorts"`
	DownloadCount      int64     `json:"downloadCount"`
	CreatedAt          time.Time `json:"createdAt"`
}

// listSubscriptionsResponse is the response for GET /subscriptions.
type listSubscriptionsResponse struct {
	Items []subscriptionResponse `json:"items"`
	Total int                    `json:"total"`
}

// addSubscriptionRequest is the body for POST /subscriptions.
type addSubscriptionRequest struct {
	URL            string  `json:"url"`
	Interval       int64   `json:"interval,omitempty"`
	Title          string  `json:"title,omitempty"`
	DownloadShorts bool    `json:"downloadShorts,omitempty"`
	CollectionID   *string `json:"collectionId,omitempty"`
}

// taskResponse is the API representation of a backlog task.
type taskResponse struct {
	ID                string     `json:"id"`
	SubscriptionID    *string    `json:"subscriptionId,omitempty"`
	CollectionID      *string    `json:"collectionId,omitempty"`
	AuthorURL         string     `json:"authorUrl"`
	Author            string     `json:"author"`
	Platform          string     `json:"platform"`
	Status            string     `json:"status"`
	TotalVideos       int64      `json:"totalVideos"`
	DownloadedCount   int64      `json:"downloadedCount"`
	SkippedCount      int64      `json:"skippedCount"`
	FailedCount       int64      `json:"failedCount"`
	CurrentVideoIndex int64      `json:"currentVideoIndex"`
	Error             string     `json:"error,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
}

// listTasksResponse is the response for GET /tasks.
type listTasksResponse struct {
	Items  []taskResponse `json:"items"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// createTaskRequest is the body for POST /tasks.
type createTaskRequest struct {
	URL            string  `json:"url"`
	Author         string  `json:"author,omitempty"`
	SubscriptionID *string `json:"subscriptionId,omitempty"`
	CollectionID   *string `json:"collectionId,omitempty"`
}

// cancelTaskRequest is the optional body for POST /tasks/{id}/cancel.
type cancelTaskRequest struct {
	Reason string `json:"reason,omitempty"`
}

// historyItemResponse is the API representation of a history record.
type historyItemResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title,omitempty"`
	Author         string    `json:"author,omitempty"`
	SourceURL      string    `json:"sourceUrl"`
	Status         string    `json:"status"`
	Error          string    `json:"error,omitempty"`
	VideoID        *string   `json:"videoId,omitempty"`
	SubscriptionID *string   `json:"subscriptionId,omitempty"`
	TaskID         *string   `json:"taskId,omitempty"`
	FinishedAt     time.Time `json:"finishedAt"`
}

// listHistoryResponse is the response for GET /history.
type listHistoryResponse struct {
	Items  []historyItemResponse `json:"items"`
	Total  int                   `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

// videoResponse is the API representation of a library video.
type videoResponse struct {
	ID           string    `json:"id"`
	SourceID     string    `json:"sourceId"`
	Platform     string    `json:"platform"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	SourceURL    string    `json:"sourceUrl"`
	FilePath     string    `json:"filePath,omitempty"`
	DurationSecs float64   `json:"durationSecs,omitempty"`
	DownloadedAt time.Time `json:"downloadedAt"`
}

// listVideosResponse is the response for GET /videos.
type listVideosResponse struct {
	Items  []videoResponse `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// collectionResponse is the API representation of a collection.
type collectionResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	VideoCount int       `json:"videoCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// createCollectionRequest is the body for POST /collections.
type createCollectionRequest struct {
	Name string `json:"name"`
}

// startDownloadRequest is the body for POST /downloads.
type startDownloadRequest struct {
	URL string `json:"url"`
}

// listActiveDownloadsResponse is the response for GET /downloads/active.
type listActiveDownloadsResponse struct {
	Items []*download.Active `json:"items"`
	Total int                `json:"total"`
}

// eventResponse is the API representation of a logged event.
type eventResponse struct {
	ID         int64           `json:"id"`
	EventType  string          `json:"eventType"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt string          `json:"occurredAt"`
}

// listEventsResponse is the response for GET /events.
type listEventsResponse struct {
	Items []eventResponse `json:"items"`
	Total int             `json:"total"`
}

// statusResponse is the response for GET /status.
type statusResponse struct {
	Status          string `json:"status"`
	Version         string `json:"version,omitempty"`
	Subscriptions   int    `json:"subscriptions"`
	ActiveTasks     int    `json:"activeTasks"`
	ActiveDownloads int    `json:"activeDownloads"`
}
