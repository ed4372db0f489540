// Package download fetches single videos through yt-dlp and files them in
// the library. Callers never deal with the subprocess directly.
package download

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vodarr/vodarr/internal/events"
	"github.com/vodarr/vodarr/internal/library"
	"github.com/vodarr/vodarr/internal/ytdlp"
	"github.com/vodarr/vodarr/pkg/platform"
)

// Request identifies what to download and on whose behalf. SubscriptionID
// and TaskID are provenance for events and the active-downloads view; both
// may be empty for manual downloads.
type Request struct {
	URL            string
	SubscriptionID string
	TaskID         string
}

// Gateway downloads one video and returns its library record.
type Gateway interface {
	Download(ctx context.Context, req Request) (*library.Video, error)
}

// VideoFetcher runs the actual media download. *ytdlp.Runner satisfies it.
type VideoFetcher interface {
	Download(ctx context.Context, url string) (*ytdlp.Video, error)
}

// Manager is the yt-dlp backed Gateway. A successful download is recorded
// in the library before the call returns.
type Manager struct {
	fetcher VideoFetcher
	library *library.Store
	tracker *Tracker
	bus     *events.Bus
	logger  *slog.Logger
}

// NewManager creates a download manager.
func NewManager(fetcher VideoFetcher, lib *library.Store, tracker *Tracker, bus *events.Bus, logger *slog.Logger) *Manager {
	return &Manager{
		fetcher: fetcher,
		library: lib,
		tracker: tracker,
		bus:     bus,
		logger:  logger.With("component", "download"),
	}
}

// Download fetches the video at req.URL and saves it to the library.
// Re-downloading a video the library already has returns the existing
// record.
func (m *Manager) Download(ctx context.Context, req Request) (*library.Video, error) {
	p, err := platform.Detect(req.URL)
	if err != nil {
		return nil, err
	}

	entry := m.tracker.Begin(req)
	defer m.tracker.End(entry)

	m.logger.Info("downloading", "url", req.URL)
	dl, err := m.fetcher.Download(ctx, req.URL)
	if err != nil {
		m.publish(&events.DownloadFailed{
			BaseEvent:      events.NewBaseEvent(events.EventDownloadFailed, events.EntityVideo, ""),
			SourceURL:      req.URL,
			Reason:         err.Error(),
			SubscriptionID: req.SubscriptionID,
			TaskID:         req.TaskID,
		})
		return nil, fmt.Errorf("downloading %s: %w", req.URL, err)
	}

	sourceURL := dl.WebpageURL
	if sourceURL == "" {
		sourceURL = req.URL
	}
	author := dl.Channel
	if author == "" {
		author = dl.Uploader
	}

	v := &library.Video{
		SourceID:     dl.ID,
		Platform:     p,
		Title:        dl.Title,
		Author:       author,
		SourceURL:    sourceURL,
		FilePath:     dl.Filename,
		DurationSecs: dl.Duration,
	}
	if err := m.library.SaveVideo(v); err != nil {
		return nil, fmt.Errorf("saving video for %s: %w", req.URL, err)
	}

	m.publish(&events.VideoDownloaded{
		BaseEvent:      events.NewBaseEvent(events.EventVideoDownloaded, events.EntityVideo, v.ID),
		Title:          v.Title,
		Author:         v.Author,
		SourceURL:      v.SourceURL,
		FilePath:       v.FilePath,
		SubscriptionID: req.SubscriptionID,
		TaskID:         req.TaskID,
	})
	m.logger.Info("downloaded", "title", v.Title, "author", v.Author, "path", v.FilePath)
	return v, nil
}

func (m *Manager) publish(e events.Event) {
	if err := m.bus.Publish(context.Background(), e); err != nil {
		m.logger.Error("failed to publish event", "type", e.EventType(), "error", err)
	}
}
