// Package resolver turns author, playlist and channel URLs into canonical
// identities and latest-content links, one adapter per platform.
//
// Adapters return honest errors. The Registry is the poll-path facade: it
// logs adapter failures and degrades them to empty values so one bad source
// cannot poison a whole scheduler pass. Identity lookups used at subscribe
// time keep their errors.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vodarr/vodarr/internal/ytdlp"
	"github.com/vodarr/vodarr/pkg/platform"
)

// ErrUnsupported indicates no adapter is registered for the platform.
var ErrUnsupported = errors.New("platform not supported")

// AuthorInfo is the canonical identity of a channel or uploader.
type AuthorInfo struct {
	Name      string
	AuthorURL string
	// PlatformID is the platform-native channel identifier (UC… for
	// YouTube, numeric UID for Bilibili). May be empty.
	PlatformID string
}

// PlaylistInfo describes a single playlist.
type PlaylistInfo struct {
	ID      string
	Title   string
	Channel string
}

// PlaylistRef is one playlist discovered on a channel's playlists tab.
type PlaylistRef struct {
	ID    string
	Title string
	URL   string
}

// Lister enumerates a feed without downloading. *ytdlp.Runner satisfies it.
type Lister interface {
	FlatPlaylist(ctx context.Context, url string, limit int) (*ytdlp.Playlist, error)
}

// Adapter resolves URLs for one platform.
type Adapter interface {
	// AuthorInfo normalizes a user-supplied channel URL into a canonical
	// author identity.
	AuthorInfo(ctx context.Context, url string) (*AuthorInfo, error)

	// PlaylistInfo fetches playlist metadata without enumerating entries.
	PlaylistInfo(ctx context.Context, url string) (*PlaylistInfo, error)

	// LatestVideoURL returns the watch URL of the author's newest upload,
	// or "" when the author has no videos.
	LatestVideoURL(ctx context.Context, authorURL string) (string, error)

	// LatestShortsURL returns the watch URL of the author's newest short,
	// or "" when the platform or channel has no shorts.
	LatestShortsURL(ctx context.Context, authorURL string) (string, error)

	// LatestPlaylistVideoURL returns the watch URL of the playlist's most
	// recent entry, or "" for an empty playlist.
	LatestPlaylistVideoURL(ctx context.Context, playlistURL string) (string, error)

	// ChannelPlaylists enumerates the playlists on a channel's playlists tab.
	ChannelPlaylists(ctx context.Context, url string) ([]PlaylistRef, error)
}

// Registry dispatches resolution calls to per-platform adapters.
type Registry struct {
	adapters map[platform.Platform]Adapter
	logger   *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		adapters: make(map[platform.Platform]Adapter),
		logger:   logger.With("component", "resolver"),
	}
}

// Register installs the adapter for a platform, replacing any previous one.
func (r *Registry) Register(p platform.Platform, a Adapter) {
	r.adapters[p] = a
}

// AuthorInfo resolves a channel URL to its canonical identity. Failures
// surface to the caller; a subscribe against a dead URL must fail loudly.
func (r *Registry) AuthorInfo(ctx context.Context, p platform.Platform, url string) (*AuthorInfo, error) {
	a, ok := r.adapters[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, p)
	}
	return a.AuthorInfo(ctx, url)
}

// PlaylistInfo resolves playlist metadata. Failures surface to the caller.
func (r *Registry) PlaylistInfo(ctx context.Context, p platform.Platform, url string) (*PlaylistInfo, error) {
	a, ok := r.adapters[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, p)
	}
	return a.PlaylistInfo(ctx, url)
}

// LatestVideoURL returns the newest upload's watch URL, or "" when the
// lookup fails or the author has no videos.
func (r *Registry) LatestVideoURL(ctx context.Context, p platform.Platform, authorURL string) string {
	a, ok := r.adapters[p]
	if !ok {
		r.logger.Warn("no adapter for platform", "platform", p, "url", authorURL)
		return ""
	}
	link, err := a.LatestVideoURL(ctx, authorURL)
	if err != nil {
		r.logger.Warn("latest video lookup failed", "platform", p, "url", authorURL, "error", err)
		return ""
	}
	return link
}

// LatestShortsURL returns the newest short's watch URL, or "" when the
// lookup fails or the channel has no shorts.
func (r *Registry) LatestShortsURL(ctx context.Context, p platform.Platform, authorURL string) string {
	a, ok := r.adapters[p]
	if !ok {
		r.logger.Warn("no adapter for platform", "platform", p, "url", authorURL)
		return ""
	}
	link, err := a.LatestShortsURL(ctx, authorURL)
	if err != nil {
		r.logger.Warn("latest shorts lookup failed", "platform", p, "url", authorURL, "error", err)
		return ""
	}
	return link
}

// LatestPlaylistVideoURL returns the playlist's most recent entry URL, or
// "" when the lookup fails or the playlist is empty.
func (r *Registry) LatestPlaylistVideoURL(ctx context.Context, p platform.Platform, playlistURL string) string {
	a, ok := r.adapters[p]
	if !ok {
		r.logger.Warn("no adapter for platform", "platform", p, "url", playlistURL)
		return ""
	}
	link, err := a.LatestPlaylistVideoURL(ctx, playlistURL)
	if err != nil {
		r.logger.Warn("latest playlist video lookup failed", "platform", p, "url", playlistURL, "error", err)
		return ""
	}
	return link
}

// ChannelPlaylists enumerates a channel's playlists, or returns nil when the
// lookup fails.
func (r *Registry) ChannelPlaylists(ctx context.Context, p platform.Platform, url string) []PlaylistRef {
	a, ok := r.adapters[p]
	if !ok {
		r.logger.Warn("no adapter for platform", "platform", p, "url", url)
		return nil
	}
	refs, err := a.ChannelPlaylists(ctx, url)
	if err != nil {
		r.logger.Warn("channel playlists lookup failed", "platform", p, "url", url, "error", err)
		return nil
	}
	return refs
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
