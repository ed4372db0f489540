package v1

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vodarr/vodarr/internal/backlog"
	"github.com/vodarr/vodarr/internal/download"
	"github.com/vodarr/vodarr/internal/events"
	"github.com/vodarr/vodarr/internal/history"
	"github.com/vodarr/vodarr/internal/library"
	"github.com/vodarr/vodarr/internal/resolver"
	"github.com/vodarr/vodarr/internal/settings"
	"github.com/vodarr/vodarr/internal/subscription"
	"github.com/vodarr/vodarr/pkg/platform"
)

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Ticker triggers a subscription check outside the regular cycle. It
// reports false when a check is already in flight.
type Ticker interface {
	Tick(ctx context.Context) bool
}

// Waker nudges the backlog runner after a task is created or resumed.
type Waker interface {
	Notify()
}

// InfoResolver looks up author and playlist identity when a task request
// does not carry a display name.
type InfoResolver interface {
	AuthorInfo(ctx context.Context, p platform.Platform, url string) (*resolver.AuthorInfo, error)
	PlaylistInfo(ctx context.Context, p platform.Platform, url string) (*resolver.PlaylistInfo, error)
}

// Prober reports whether the downloader binary is reachable. *ytdlp.Runner
// satisfies it.
type Prober interface {
	Version(ctx context.Context) (string, error)
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required dependencies
	Subscriptions *subscription.Service
	Tasks         *backlog.Store
	Library       *library.Store
	History       *history.Store
	Settings      *settings.Store

	// Optional dependencies (nil if not configured)
	Scheduler Ticker            // Optional: manual check endpoint
	Runner    Waker             // Optional: wakes the backlog worker
	Gateway   download.Gateway  // Optional: one-off downloads
	Tracker   *download.Tracker // Optional: active download view
	Resolver  InfoResolver      // Optional: author lookup at task creation
	YtDlp     Prober            // Optional: downloader probe for /verify
	Bus       *events.Bus       // Optional: task lifecycle events
	EventLog  *events.EventLog  // Optional: event audit log
	Logger    *slog.Logger      // Optional: defaults to slog.Default()
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Subscriptions == nil {
		return errors.New("subscription service is required")
	}
	if d.Tasks == nil {
		return errors.New("task store is required")
	}
	if d.Library == nil {
		return errors.New("library store is required")
	}
	if d.History == nil {
		return errors.New("history store is required")
	}
	if d.Settings == nil {
		return errors.New("settings store is required")
	}
	return nil
}
