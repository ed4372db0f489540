// Package platform classifies video platform URLs and builds canonical URL forms.
package platform

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Platform identifies a supported video platform.
type Platform string

const (
	YouTube  Platform = "youtube"
	Bilibili Platform = "bilibili"
)

// Kind classifies what a subscription URL points at.
type Kind string

const (
	KindAuthor           Kind = "author"
	KindPlaylist         Kind = "playlist"
	KindChannelPlaylists Kind = "channel_playlists"
)

// ErrUnrecognizedURL is returned when a URL matches no supported platform shape.
var ErrUnrecognizedURL = errors.New("unrecognized platform URL")

var platformPatterns = map[Platform]*regexp.Regexp{
	YouTube:  regexp.MustCompile(`^https?://(www\.|m\.)?(youtube\.com|youtu\.be)/`),
	Bilibili: regexp.MustCompile(`^https?://([a-z]+\.)?bilibili\.com/`),
}

var (
	ytPlaylistsTab = regexp.MustCompile(`youtube\.com/(@[^/]+|channel/[^/]+|c/[^/]+|user/[^/]+)/playlists/?$`)
	ytPlaylist     = regexp.MustCompile(`[?&]list=[A-Za-z0-9_-]+`)
	ytAuthor       = regexp.MustCompile(`youtube\.com/(@[^/?#]+|channel/[^/?#]+|c/[^/?#]+|user/[^/?#]+)`)
	biliSeriesTab  = regexp.MustCompile(`space\.bilibili\.com/\d+/(lists|channel/series)/?$`)
	biliPlaylist   = regexp.MustCompile(`space\.bilibili\.com/\d+/(channel/(collectiondetail|seriesdetail)|lists/\d+)`)
	biliAuthor     = regexp.MustCompile(`space\.bilibili\.com/\d+`)
)

// Detect returns the platform a URL belongs to, or ErrUnrecognizedURL.
func Detect(rawURL string) (Platform, error) {
	for p, pattern := range platformPatterns {
		if pattern.MatchString(rawURL) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnrecognizedURL, rawURL)
}

// Classify determines the platform and subscription kind for a URL.
// Channel-playlists pages are checked before single playlists because a
// "/playlists" tab URL would otherwise look like an author URL.
func Classify(rawURL string) (Platform, Kind, error) {
	url := Normalize(rawURL)
	p, err := Detect(url)
	if err != nil {
		return "", "", err
	}

	switch p {
	case YouTube:
		switch {
		case ytPlaylistsTab.MatchString(url):
			return p, KindChannelPlaylists, nil
		case ytPlaylist.MatchString(url):
			return p, KindPlaylist, nil
		case ytAuthor.MatchString(url):
			return p, KindAuthor, nil
		}
	case Bilibili:
		switch {
		case biliSeriesTab.MatchString(url):
			return p, KindChannelPlaylists, nil
		case biliPlaylist.MatchString(url):
			return p, KindPlaylist, nil
		case biliAuthor.MatchString(url):
			return p, KindAuthor, nil
		}
	}
	return "", "", fmt.Errorf("%w: %s", ErrUnrecognizedURL, rawURL)
}

// Normalize trims whitespace and the trailing slash so URL comparisons are stable.
func Normalize(rawURL string) string {
	return strings.TrimRight(strings.TrimSpace(rawURL), "/")
}

// WatchURL builds the canonical watch URL for a video id.
func WatchURL(p Platform, videoID string) string {
	switch p {
	case YouTube:
		return "https://www.youtube.com/watch?v=" + videoID
	case Bilibili:
		return "https://www.bilibili.com/video/" + videoID
	}
	return ""
}

// VideosURL returns the main uploads feed for an author URL.
func VideosURL(p Platform, authorURL string) string {
	base := Normalize(authorURL)
	switch p {
	case YouTube:
		return base + "/videos"
	case Bilibili:
		return base + "/video"
	}
	return base
}

// ShortsURL returns the short-form feed for an author URL.
// Bilibili has no shorts tab; callers treat "" as unsupported.
func ShortsURL(p Platform, authorURL string) string {
	if p == YouTube {
		return Normalize(authorURL) + "/shorts"
	}
	return ""
}

// PlaylistsURL returns the page listing an author's playlists.
func PlaylistsURL(p Platform, authorURL string) string {
	base := Normalize(authorURL)
	switch p {
	case YouTube:
		return base + "/playlists"
	case Bilibili:
		return base + "/lists"
	}
	return base
}
