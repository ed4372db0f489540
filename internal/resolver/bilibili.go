package resolver

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/vodarr/vodarr/pkg/platform"
)

// Bilibili resolves space and list URLs through yt-dlp. Bilibili has no
// shorts feed, so shorts lookups always resolve to nothing.
type Bilibili struct {
	runner Lister
}

// NewBilibili creates a Bilibili adapter backed by runner.
func NewBilibili(runner Lister) *Bilibili {
	return &Bilibili{runner: runner}
}

var (
	biliSpaceUID  = regexp.MustCompile(`space\.bilibili\.com/(\d+)`)
	biliTabSuffix = regexp.MustCompile(`/(video|lists|favlist|upload|dynamic)/?$`)
)

// spaceBase strips a tab suffix and query string from a space URL.
func spaceBase(url string) string {
	url = platform.Normalize(url)
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	return biliTabSuffix.ReplaceAllString(url, "")
}

func (b *Bilibili) AuthorInfo(ctx context.Context, url string) (*AuthorInfo, error) {
	base := spaceBase(url)
	pl, err := b.runner.FlatPlaylist(ctx, platform.VideosURL(platform.Bilibili, base), 1)
	if err != nil {
		return nil, fmt.Errorf("resolving bilibili author %s: %w", url, err)
	}
	info := &AuthorInfo{
		Name:      firstNonEmpty(pl.Uploader, pl.Channel, pl.Title),
		AuthorURL: base,
	}
	if m := biliSpaceUID.FindStringSubmatch(base); m != nil {
		info.PlatformID = m[1]
	}
	return info, nil
}

func (b *Bilibili) PlaylistInfo(ctx context.Context, url string) (*PlaylistInfo, error) {
	pl, err := b.runner.FlatPlaylist(ctx, url, 1)
	if err != nil {
		return nil, fmt.Errorf("resolving bilibili list %s: %w", url, err)
	}
	return &PlaylistInfo{
		ID:      pl.ID,
		Title:   pl.Title,
		Channel: firstNonEmpty(pl.Uploader, pl.Channel),
	}, nil
}

func (b *Bilibili) LatestVideoURL(ctx context.Context, authorURL string) (string, error) {
	pl, err := b.runner.FlatPlaylist(ctx, platform.VideosURL(platform.Bilibili, spaceBase(authorURL)), 1)
	if err != nil {
		return "", fmt.Errorf("fetching bilibili uploads for %s: %w", authorURL, err)
	}
	if len(pl.Entries) == 0 {
		return "", nil
	}
	return platform.WatchURL(platform.Bilibili, pl.Entries[0].ID), nil
}

func (b *Bilibili) LatestShortsURL(ctx context.Context, authorURL string) (string, error) {
	return "", nil
}

func (b *Bilibili) LatestPlaylistVideoURL(ctx context.Context, playlistURL string) (string, error) {
	pl, err := b.runner.FlatPlaylist(ctx, playlistURL, 1)
	if err != nil {
		return "", fmt.Errorf("fetching bilibili list %s: %w", playlistURL, err)
	}
	if len(pl.Entries) == 0 {
		return "", nil
	}
	return platform.WatchURL(platform.Bilibili, pl.Entries[0].ID), nil
}

func (b *Bilibili) ChannelPlaylists(ctx context.Context, url string) ([]PlaylistRef, error) {
	pl, err := b.runner.FlatPlaylist(ctx, spaceBase(url)+"/lists", 0)
	if err != nil {
		return nil, fmt.Errorf("fetching bilibili lists for %s: %w", url, err)
	}
	refs := make([]PlaylistRef, 0, len(pl.Entries))
	for _, e := range pl.Entries {
		refs = append(refs, PlaylistRef{ID: e.ID, Title: e.Title, URL: e.URL})
	}
	return refs, nil
}
