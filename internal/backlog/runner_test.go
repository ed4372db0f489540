package backlog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vodarr/vodarr/internal/download"
	"github.com/vodarr/vodarr/internal/events"
	"github.com/vodarr/vodarr/internal/history"
	"github.com/vodarr/vodarr/internal/library"
	"github.com/vodarr/vodarr/internal/ytdlp"
	"github.com/vodarr/vodarr/pkg/platform"
)

type fakeGateway struct {
	mu     sync.Mutex
	fail   map[string]error // URL -> error
	calls  []string
	onCall func(url string)
}

func (g *fakeGateway) Download(ctx context.Context, req download.Request) (*library.Video, error) {
	g.mu.Lock()
	g.calls = append(g.calls, req.URL)
	err := g.fail[req.URL]
	hook := g.onCall
	g.mu.Unlock()

	if hook != nil {
		hook(req.URL)
	}
	if err != nil {
		return nil, err
	}
	return &library.Video{ID: "lib-" + req.URL, SourceURL: req.URL}, nil
}

type fakeLibrary struct {
	mu    sync.Mutex
	have  map[string]bool // sourceID -> already in library
	added [][2]string     // collectionID, videoID
}

func (l *fakeLibrary) HasVideo(p platform.Platform, sourceID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.have[sourceID], nil
}

func (l *fakeLibrary) AddToCollection(collectionID, videoID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.added = append(l.added, [2]string{collectionID, videoID})
	return nil
}

type fakeHistory struct {
	mu    sync.Mutex
	items []*history.Item
}

func (h *fakeHistory) Record(item *history.Item) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = append(h.items, item)
	return nil
}

func (h *fakeHistory) byStatus(status history.Status) []*history.Item {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []*history.Item
	for _, it := range h.items {
		if it.Status == status {
			out = append(out, it)
		}
	}
	return out
}

type fakeDiscoverer struct {
	playlist *ytdlp.Playlist
	err      error
}

func (d *fakeDiscoverer) FlatPlaylist(ctx context.Context, url string, limit int) (*ytdlp.Playlist, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.playlist, nil
}

type runnerFixture struct {
	runner  *Runner
	store   *Store
	gateway *fakeGateway
	library *fakeLibrary
	history *fakeHistory
	bus     *events.Bus
}

func newRunnerFixture(t *testing.T, disc Discoverer) *runnerFixture {
	t.Helper()
	store := NewStore(setupTestDB(t))
	gw := &fakeGateway{fail: map[string]error{}}
	lib := &fakeLibrary{have: map[string]bool{}}
	hist := &fakeHistory{}
	bus := events.NewBus(nil, nil)
	t.Cleanup(func() { bus.Close() })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &runnerFixture{
		runner:  NewRunner(store, gw, lib, hist, disc, bus, logger),
		store:   store,
		gateway: gw,
		library: lib,
		history: hist,
		bus:     bus,
	}
}

func entriesPlaylist(ids ...string) *ytdlp.Playlist {
	pl := &ytdlp.Playlist{}
	for _, id := range ids {
		pl.Entries = append(pl.Entries, ytdlp.Entry{ID: id, Title: "Video " + id})
	}
	return pl
}

func watchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

func TestRunner_ProcessDrainsTask(t *testing.T) {
	fx := newRunnerFixture(t, &fakeDiscoverer{playlist: entriesPlaylist("v1", "v2", "v3")})
	fx.library.have["v2"] = true // already downloaded once before

	task := newTestTask("Chan", "https://www.youtube.com/@chan")
	require.NoError(t, fx.store.Create(task))

	fx.runner.process(context.Background(), task)

	got, err := fx.store.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, int64(3), got.TotalVideos)
	assert.Equal(t, int64(2), got.DownloadedCount)
	assert.Equal(t, int64(1), got.SkippedCount)
	assert.Zero(t, got.FailedCount)
	assert.Equal(t, int64(3), got.CurrentVideoIndex)
	require.NotNil(t, got.CompletedAt)

	// v2 was deduplicated, not fetched.
	assert.Equal(t, []string{watchURL("v1"), watchURL("v3")}, fx.gateway.calls)

	require.Len(t, fx.history.items, 3)
	assert.Len(t, fx.history.byStatus(history.StatusSuccess), 2)
	assert.Len(t, fx.history.byStatus(history.StatusSkipped), 1)
	for _, it := range fx.history.items {
		require.NotNil(t, it.TaskID)
		assert.Equal(t, task.ID, *it.TaskID)
	}
}

func TestRunner_ProcessRecordsFailuresAndFinishes(t *testing.T) {
	fx := newRunnerFixture(t, &fakeDiscoverer{playlist: entriesPlaylist("v1", "v2")})
	fx.gateway.fail[watchURL("v1")] = errors.New("video unavailable")

	ch := fx.bus.Subscribe(events.EventTaskCompleted, 10)

	task := newTestTask("Chan", "https://www.youtube.com/@chan")
	require.NoError(t, fx.store.Create(task))

	fx.runner.process(context.Background(), task)

	got, err := fx.store.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, int64(1), got.DownloadedCount)
	assert.Equal(t, int64(1), got.FailedCount)

	failedItems := fx.history.byStatus(history.StatusFailed)
	require.Len(t, failedItems, 1)
	assert.Equal(t, "video unavailable", failedItems[0].Error)

	select {
	case e := <-ch:
		completed := e.(*events.TaskCompleted)
		assert.Equal(t, int64(1), completed.Downloaded)
		assert.Equal(t, int64(1), completed.Failed)
	default:
		t.Fatal("no task.completed event published")
	}
}

func TestRunner_DiscoveryFailureCancelsTask(t *testing.T) {
	fx := newRunnerFixture(t, &fakeDiscoverer{err: errors.New("channel not found")})
	ch := fx.bus.Subscribe(events.EventTaskCancelled, 10)

	task := newTestTask("Gone", "https://www.youtube.com/@gone")
	require.NoError(t, fx.store.Create(task))

	fx.runner.process(context.Background(), task)

	got, err := fx.store.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)
	assert.Equal(t, "channel not found", got.Error)

	select {
	case e := <-ch:
		cancelled := e.(*events.TaskCancelled)
		assert.Equal(t, "channel not found", cancelled.Reason)
	default:
		t.Fatal("no task.cancelled event published")
	}
}

func TestRunner_PauseMidTaskStopsBetweenVideos(t *testing.T) {
	fx := newRunnerFixture(t, &fakeDiscoverer{playlist: entriesPlaylist("v1", "v2", "v3")})

	task := newTestTask("Chan", "https://www.youtube.com/@chan")
	require.NoError(t, fx.store.Create(task))

	// Pause lands while the first video is downloading.
	fx.gateway.onCall = func(url string) {
		cur, err := fx.store.Get(task.ID)
		require.NoError(t, err)
		require.NoError(t, fx.store.Transition(cur, StatusPaused))
	}

	fx.runner.process(context.Background(), task)

	got, err := fx.store.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPaused, got.Status)
	// The in-flight video still counted before the stop.
	assert.Equal(t, int64(1), got.DownloadedCount)
	assert.Equal(t, int64(1), got.CurrentVideoIndex)
	assert.Equal(t, []string{watchURL("v1")}, fx.gateway.calls)
}

func TestRunner_ResumeContinuesFromCursor(t *testing.T) {
	fx := newRunnerFixture(t, &fakeDiscoverer{playlist: entriesPlaylist("v1", "v2", "v3")})

	task := newTestTask("Chan", "https://www.youtube.com/@chan")
	require.NoError(t, fx.store.Create(task))
	require.NoError(t, fx.store.SetTotal(task.ID, 3))
	_, err := fx.store.Advance(task.ID, 1, 0, 0, 1)
	require.NoError(t, err)

	resumed, err := fx.store.Get(task.ID)
	require.NoError(t, err)
	fx.runner.process(context.Background(), resumed)

	got, err := fx.store.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, int64(3), got.Processed())
	// Only the unprocessed tail was fetched.
	assert.Equal(t, []string{watchURL("v2"), watchURL("v3")}, fx.gateway.calls)
}

func TestRunner_FilesDownloadsIntoCollection(t *testing.T) {
	fx := newRunnerFixture(t, &fakeDiscoverer{playlist: entriesPlaylist("v1")})

	task := newTestTask("Chan", "https://www.youtube.com/@chan")
	task.CollectionID = ptr("col-1")
	require.NoError(t, fx.store.Create(task))

	fx.runner.process(context.Background(), task)

	require.Len(t, fx.library.added, 1)
	assert.Equal(t, "col-1", fx.library.added[0][0])
	assert.Equal(t, "lib-"+watchURL("v1"), fx.library.added[0][1])
}

func TestRunner_EmptySourceCompletesImmediately(t *testing.T) {
	fx := newRunnerFixture(t, &fakeDiscoverer{playlist: entriesPlaylist()})

	task := newTestTask("Quiet", "https://www.youtube.com/@quiet")
	require.NoError(t, fx.store.Create(task))

	fx.runner.process(context.Background(), task)

	got, err := fx.store.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Zero(t, got.TotalVideos)
	assert.Empty(t, fx.gateway.calls)
}

func TestRunner_RunDrainsQueue(t *testing.T) {
	fx := newRunnerFixture(t, &fakeDiscoverer{playlist: entriesPlaylist("v1")})
	fx.runner.interval = 10 * time.Millisecond

	first := newTestTask("One", "https://www.youtube.com/@one")
	require.NoError(t, fx.store.Create(first))
	second := newTestTask("Two", "https://www.youtube.com/@two")
	require.NoError(t, fx.store.Create(second))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- fx.runner.Run(ctx) }()
	fx.runner.Notify()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		a, _ := fx.store.Get(first.ID)
		b, _ := fx.store.Get(second.ID)
		if a != nil && b != nil && a.Status == StatusCompleted && b.Status == StatusCompleted {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	a, err := fx.store.Get(first.ID)
	require.NoError(t, err)
	b, err := fx.store.Get(second.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, a.Status)
	assert.Equal(t, StatusCompleted, b.Status)
}
