package backlog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/vodarr/vodarr/internal/download"
	"github.com/vodarr/vodarr/internal/events"
	"github.com/vodarr/vodarr/internal/history"
	"github.com/vodarr/vodarr/internal/ytdlp"
	"github.com/vodarr/vodarr/pkg/platform"
)

// defaultPollInterval is how often the runner checks for work when idle;
// Notify short-circuits the wait.
const defaultPollInterval = 15 * time.Second

// Library is the subset of the library store the runner needs.
type Library interface {
	HasVideo(p platform.Platform, sourceID string) (bool, error)
	AddToCollection(collectionID, videoID string) error
}

// HistorySink records per-video outcomes.
type HistorySink interface {
	Record(item *history.Item) error
}

// Discoverer enumerates a source's uploads. *ytdlp.Runner satisfies it.
type Discoverer interface {
	FlatPlaylist(ctx context.Context, url string, limit int) (*ytdlp.Playlist, error)
}

// Runner is the single backlog worker. It claims the oldest active task,
// walks its upload list from the persisted cursor, and downloads one video
// at a time. Pause and cancel take effect between videos.
type Runner struct {
	store      *Store
	gateway    download.Gateway
	library    Library
	history    HistorySink
	discoverer Discoverer
	bus        *events.Bus
	logger     *slog.Logger

	interval time.Duration
	wake     chan struct{}
}

// NewRunner creates a backlog runner.
func NewRunner(store *Store, gw download.Gateway, lib Library, hist HistorySink, disc Discoverer, bus *events.Bus, logger *slog.Logger) *Runner {
	return &Runner{
		store:      store,
		gateway:    gw,
		library:    lib,
		history:    hist,
		discoverer: disc,
		bus:        bus,
		logger:     logger.With("component", "backlog"),
		interval:   defaultPollInterval,
		wake:       make(chan struct{}, 1),
	}
}

// Notify wakes the runner without waiting for the next poll.
func (r *Runner) Notify() {
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Run processes tasks until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Info("backlog runner started")
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		task, err := r.store.NextActive()
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				r.logger.Error("claiming task failed", "error", err)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-r.wake:
			case <-time.After(r.interval):
			}
			continue
		}

		r.process(ctx, task)
	}
}

// process drains one task. It returns when the task leaves active, the
// video list is exhausted, or ctx is cancelled.
func (r *Runner) process(ctx context.Context, t *Task) {
	r.logger.Info("processing task", "task_id", t.ID, "author", t.Author, "url", t.AuthorURL)

	entries, err := r.discover(ctx, t)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		// A task whose source cannot be enumerated can never finish.
		r.logger.Error("discovery failed", "task_id", t.ID, "url", t.AuthorURL, "error", err)
		if cErr := r.store.Cancel(t, err.Error()); cErr != nil {
			r.logger.Error("cancelling task failed", "task_id", t.ID, "error", cErr)
			return
		}
		r.publish(&events.TaskCancelled{
			BaseEvent: events.NewBaseEvent(events.EventTaskCancelled, events.EntityTask, t.ID),
			Reason:    err.Error(),
		})
		return
	}

	// Uploads prepended after the first discovery are the subscription
	// poller's job; the task stays within its snapshot.
	limit := len(entries)
	if t.TotalVideos > 0 && int(t.TotalVideos) < limit {
		limit = int(t.TotalVideos)
	}

	for i := int(t.CurrentVideoIndex); i < limit; i++ {
		if ctx.Err() != nil {
			return
		}
		cur, err := r.store.Get(t.ID)
		if err != nil {
			r.logger.Error("rereading task failed", "task_id", t.ID, "error", err)
			return
		}
		if cur.Status != StatusActive {
			return
		}
		if !r.processVideo(ctx, cur, entries[i], int64(i+1)) {
			return
		}
	}

	cur, err := r.store.Get(t.ID)
	if err != nil || cur.Status != StatusActive {
		return
	}
	if err := r.store.Transition(cur, StatusCompleted); err != nil {
		r.logger.Error("completing task failed", "task_id", t.ID, "error", err)
		return
	}
	r.publish(&events.TaskCompleted{
		BaseEvent:  events.NewBaseEvent(events.EventTaskCompleted, events.EntityTask, cur.ID),
		Downloaded: cur.DownloadedCount,
		Skipped:    cur.SkippedCount,
		Failed:     cur.FailedCount,
	})
	r.logger.Info("task completed", "task_id", cur.ID,
		"downloaded", cur.DownloadedCount, "skipped", cur.SkippedCount, "failed", cur.FailedCount)
}

// processVideo handles one entry and advances the cursor. It returns false
// when the runner should stop working on this task.
func (r *Runner) processVideo(ctx context.Context, t *Task, entry ytdlp.Entry, index int64) bool {
	url := entry.URL
	if url == "" {
		url = platform.WatchURL(t.Platform, entry.ID)
	}

	has, err := r.library.HasVideo(t.Platform, entry.ID)
	if err != nil {
		r.logger.Error("dedup check failed", "task_id", t.ID, "source_id", entry.ID, "error", err)
		return false
	}

	var downloaded, skipped, failed int64
	item := &history.Item{
		Title:          entry.Title,
		Author:         t.Author,
		SourceURL:      url,
		TaskID:         &t.ID,
		SubscriptionID: t.SubscriptionID,
	}

	if has {
		skipped = 1
		item.Status = history.StatusSkipped
		r.publish(&events.DownloadSkipped{
			BaseEvent: events.NewBaseEvent(events.EventDownloadSkipped, events.EntityVideo, entry.ID),
			SourceURL: url,
			TaskID:    t.ID,
		})
	} else {
		v, err := r.gateway.Download(ctx, download.Request{
			URL:            url,
			TaskID:         t.ID,
			SubscriptionID: derefString(t.SubscriptionID),
		})
		switch {
		case err != nil && ctx.Err() != nil:
			// Shutdown mid-download; the cursor stays put so the video is
			// retried on restart.
			return false
		case err != nil:
			failed = 1
			item.Status = history.StatusFailed
			item.Error = err.Error()
			r.logger.Warn("video download failed", "task_id", t.ID, "url", url, "error", err)
		default:
			downloaded = 1
			item.Status = history.StatusSuccess
			item.VideoID = &v.ID
			if t.CollectionID != nil {
				if err := r.library.AddToCollection(*t.CollectionID, v.ID); err != nil {
					r.logger.Error("filing video into collection failed",
						"task_id", t.ID, "collection_id", *t.CollectionID, "error", err)
				}
			}
		}
	}

	if err := r.history.Record(item); err != nil {
		r.logger.Error("recording history failed", "task_id", t.ID, "error", err)
	}

	rows, err := r.store.Advance(t.ID, downloaded, skipped, failed, index)
	if err != nil {
		r.logger.Error("advancing task failed", "task_id", t.ID, "error", err)
		return false
	}
	return rows == 1
}

// discover enumerates the full upload list and snapshots totalVideos on the
// first discovery.
func (r *Runner) discover(ctx context.Context, t *Task) ([]ytdlp.Entry, error) {
	feed := t.AuthorURL
	if _, kind, err := platform.Classify(t.AuthorURL); err == nil && kind == platform.KindAuthor {
		feed = platform.VideosURL(t.Platform, t.AuthorURL)
	}

	pl, err := r.discoverer.FlatPlaylist(ctx, feed, 0)
	if err != nil {
		return nil, err
	}

	if t.TotalVideos == 0 && len(pl.Entries) > 0 {
		if err := r.store.SetTotal(t.ID, int64(len(pl.Entries))); err != nil {
			return nil, err
		}
		cur, err := r.store.Get(t.ID)
		if err != nil {
			return nil, err
		}
		t.TotalVideos = cur.TotalVideos
	}
	return pl.Entries, nil
}

func (r *Runner) publish(e events.Event) {
	if err := r.bus.Publish(context.Background(), e); err != nil {
		r.logger.Error("failed to publish event", "type", e.EventType(), "error", err)
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
