// Package subscription tracks followed authors, playlists and channel
// watchers, and implements their lifecycle operations.
package subscription

import (
	"time"

	"github.com/vodarr/vodarr/pkg/platform"
)

// Type classifies what a subscription follows.
type Type string

const (
	TypeAuthor           Type = "author"
	TypePlaylist         Type = "playlist"
	TypeChannelPlaylists Type = "channel_playlists"
)

// Subscription is one followed source and the pointers to the last videos
// seen from it.
type Subscription struct {
	ID        string
	Author    string
	AuthorURL string
	Platform  platform.Platform

	// Interval is minutes between checks; LastCheck is epoch ms of the last
	// completed poll (0 = never checked).
	Interval  int64
	LastCheck int64

	// Last-seen content pointers. Empty string means none seen yet.
	LastVideoLink      string
	LastShortVideoLink string

	Type          Type
	PlaylistID    string
	PlaylistTitle string

	// CollectionID, when set, files videos downloaded via this subscription
	// into that collection.
	CollectionID *string

	Paused         bool
	DownloadShorts bool
	DownloadCount  int64
	CreatedAt      time.Time
}

// Due reports whether the subscription is eligible for a check at now
// (epoch ms). Paused subscriptions are never due.
func (s *Subscription) Due(now int64) bool {
	if s.Paused {
		return false
	}
	return now-s.LastCheck >= s.Interval*60_000
}
