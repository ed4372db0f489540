package resolver

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/vodarr/vodarr/pkg/platform"
)

// YouTube resolves channel and playlist URLs through yt-dlp flat-playlist
// extraction.
type YouTube struct {
	runner Lister
}

// NewYouTube creates a YouTube adapter backed by runner.
func NewYouTube(runner Lister) *YouTube {
	return &YouTube{runner: runner}
}

var ytTabSuffix = regexp.MustCompile(`/(videos|shorts|streams|playlists|featured|community|about)/?$`)

// channelBase strips a tab suffix and query string from a channel URL so
// feed URLs can be derived from it.
func channelBase(url string) string {
	url = platform.Normalize(url)
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	return ytTabSuffix.ReplaceAllString(url, "")
}

func (y *YouTube) AuthorInfo(ctx context.Context, url string) (*AuthorInfo, error) {
	base := channelBase(url)
	pl, err := y.runner.FlatPlaylist(ctx, platform.VideosURL(platform.YouTube, base), 1)
	if err != nil {
		return nil, fmt.Errorf("resolving youtube author %s: %w", url, err)
	}
	info := &AuthorInfo{
		Name:       firstNonEmpty(pl.Channel, pl.Uploader, pl.Title),
		AuthorURL:  base,
		PlatformID: pl.ChannelID,
	}
	if pl.ChannelURL != "" {
		info.AuthorURL = platform.Normalize(pl.ChannelURL)
	}
	return info, nil
}

func (y *YouTube) PlaylistInfo(ctx context.Context, url string) (*PlaylistInfo, error) {
	pl, err := y.runner.FlatPlaylist(ctx, url, 1)
	if err != nil {
		return nil, fmt.Errorf("resolving youtube playlist %s: %w", url, err)
	}
	return &PlaylistInfo{
		ID:      pl.ID,
		Title:   pl.Title,
		Channel: firstNonEmpty(pl.Channel, pl.Uploader),
	}, nil
}

func (y *YouTube) LatestVideoURL(ctx context.Context, authorURL string) (string, error) {
	pl, err := y.runner.FlatPlaylist(ctx, platform.VideosURL(platform.YouTube, channelBase(authorURL)), 1)
	if err != nil {
		return "", fmt.Errorf("fetching youtube uploads for %s: %w", authorURL, err)
	}
	if len(pl.Entries) == 0 {
		return "", nil
	}
	return platform.WatchURL(platform.YouTube, pl.Entries[0].ID), nil
}

func (y *YouTube) LatestShortsURL(ctx context.Context, authorURL string) (string, error) {
	pl, err := y.runner.FlatPlaylist(ctx, platform.ShortsURL(platform.YouTube, channelBase(authorURL)), 1)
	if err != nil {
		// Channels without a shorts tab are a legitimate empty result.
		if strings.Contains(err.Error(), "does not have a shorts tab") {
			return "", nil
		}
		return "", fmt.Errorf("fetching youtube shorts for %s: %w", authorURL, err)
	}
	if len(pl.Entries) == 0 {
		return "", nil
	}
	return platform.WatchURL(platform.YouTube, pl.Entries[0].ID), nil
}

func (y *YouTube) LatestPlaylistVideoURL(ctx context.Context, playlistURL string) (string, error) {
	pl, err := y.runner.FlatPlaylist(ctx, playlistURL, 1)
	if err != nil {
		return "", fmt.Errorf("fetching youtube playlist %s: %w", playlistURL, err)
	}
	if len(pl.Entries) == 0 {
		return "", nil
	}
	return platform.WatchURL(platform.YouTube, pl.Entries[0].ID), nil
}

func (y *YouTube) ChannelPlaylists(ctx context.Context, url string) ([]PlaylistRef, error) {
	pl, err := y.runner.FlatPlaylist(ctx, platform.PlaylistsURL(platform.YouTube, channelBase(url)), 0)
	if err != nil {
		return nil, fmt.Errorf("fetching youtube playlists for %s: %w", url, err)
	}
	refs := make([]PlaylistRef, 0, len(pl.Entries))
	for _, e := range pl.Entries {
		ref := PlaylistRef{ID: e.ID, Title: e.Title, URL: e.URL}
		if ref.URL == "" {
			ref.URL = "https://www.youtube.com/playlist?list=" + e.ID
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
