// Package scheduler drives the recurring subscription checks.
//
// One Scheduler owns the recurring handle and the single-flight guard: at
// most one tick runs at a time, overlapping triggers are dropped rather
// than queued, and one subscription's failure never aborts the others.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vodarr/vodarr/internal/download"
	"github.com/vodarr/vodarr/internal/history"
	"github.com/vodarr/vodarr/internal/library"
	"github.com/vodarr/vodarr/internal/resolver"
	"github.com/vodarr/vodarr/internal/subscription"
	"github.com/vodarr/vodarr/pkg/platform"
)

// defaultInterval is how often the recurring check fires.
const defaultInterval = time.Minute

// SubscriptionStore is the subset of the subscription store the scheduler
// reads and writes during a tick.
type SubscriptionStore interface {
	List() ([]*subscription.Subscription, error)
	GetByAuthorURL(url string) (*subscription.Subscription, error)
	UpdateLastCheck(id string, videoLink, shortLink *string, now int64) (int64, error)
	IncrementDownloadCount(id string) error
}

// Resolver answers "latest content" questions. Lookup failures surface as
// zero values, never as errors.
type Resolver interface {
	LatestVideoURL(ctx context.Context, p platform.Platform, authorURL string) string
	LatestShortsURL(ctx context.Context, p platform.Platform, authorURL string) string
	LatestPlaylistVideoURL(ctx context.Context, p platform.Platform, playlistURL string) string
	ChannelPlaylists(ctx context.Context, p platform.Platform, url string) []resolver.PlaylistRef
}

// Subscriber creates playlist subscriptions during watcher refresh.
type Subscriber interface {
	SubscribePlaylist(spec subscription.PlaylistSpec) (*subscription.Subscription, error)
}

// Settings exposes the runtime flags the scheduler consults.
type Settings interface {
	SaveAuthorFilesToCollection() bool
}

// Collections files downloaded videos and backs watcher refresh.
type Collections interface {
	EnsureCollection(name string) (*library.Collection, error)
	AddToCollection(collectionID, videoID string) error
}

// HistorySink records per-download outcomes.
type HistorySink interface {
	Record(item *history.Item) error
}

// Deps are the collaborators a Scheduler needs.
type Deps struct {
	Subscriptions SubscriptionStore
	Resolver      Resolver
	Gateway       download.Gateway
	History       HistorySink
	Settings      Settings
	Subscriber    Subscriber
	Collections   Collections
}

// Scheduler periodically checks every subscription for new content.
type Scheduler struct {
	subs        SubscriptionStore
	resolver    Resolver
	gateway     download.Gateway
	history     HistorySink
	settings    Settings
	subscriber  Subscriber
	collections Collections
	logger      *slog.Logger

	interval time.Duration
	checking atomic.Bool

	mu     sync.Mutex // guards cancel and done
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a scheduler. A zero interval falls back to the default
// one-minute cadence.
func New(deps Deps, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Scheduler{
		subs:        deps.Subscriptions,
		resolver:    deps.Resolver,
		gateway:     deps.Gateway,
		history:     deps.History,
		settings:    deps.Settings,
		subscriber:  deps.Subscriber,
		collections: deps.Collections,
		logger:      logger.With("component", "scheduler"),
		interval:    interval,
	}
}

// Start installs the recurring check. Any handle installed by a previous
// Start is stopped first, so repeated calls never stack timers.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done
	go s.loop(ctx, done)
	s.logger.Info("scheduler started", "interval", s.interval.String())
}

// Stop halts the recurring check and waits for an in-flight tick to wind
// down. Ticks triggered through Tick directly are unaffected.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Scheduler) stopLocked() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	s.done = nil
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs one full subscription check. It reports false when a previous
// tick is still in flight, in which case nothing is read or written.
func (s *Scheduler) Tick(ctx context.Context) bool {
	if !s.checking.CompareAndSwap(false, true) {
		s.logger.Debug("previous check still running, skipping tick")
		return false
	}
	defer s.checking.Store(false)

	s.checkAll(ctx)
	return true
}
