// Package backlog runs continuous-download tasks that drain a source's full
// upload list, newest first, one video at a time.
package backlog

import (
	"time"

	"github.com/vodarr/vodarr/pkg/platform"
)

// Task is one continuous-download job over an author or playlist URL.
type Task struct {
	ID string

	// SubscriptionID links the task to the subscription that spawned it;
	// nil for manually queued tasks.
	SubscriptionID *string

	// CollectionID, when set, files every downloaded video into that
	// collection.
	CollectionID *string

	AuthorURL string
	Author    string
	Platform  platform.Platform
	Status    Status

	// TotalVideos is the upload count snapshotted at first discovery and
	// never rewritten; progress counters stay within it.
	TotalVideos       int64
	DownloadedCount   int64
	SkippedCount      int64
	FailedCount       int64
	CurrentVideoIndex int64

	Error       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// Processed returns how many videos the task has accounted for.
func (t *Task) Processed() int64 {
	return t.DownloadedCount + t.SkippedCount + t.FailedCount
}

// Filter specifies criteria for listing tasks.
type Filter struct {
	Status         *Status
	SubscriptionID *string
	Limit          int
	Offset         int
}
