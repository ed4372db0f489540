package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/vodarr/vodarr/internal/download"
	"github.com/vodarr/vodarr/internal/history"
	"github.com/vodarr/vodarr/internal/subscription"
	"github.com/vodarr/vodarr/pkg/platform"
)

// checkAll walks every subscription once, in storage order.
func (s *Scheduler) checkAll(ctx context.Context) {
	start := time.Now()

	subs, err := s.subs.List()
	if err != nil {
		s.logger.Error("listing subscriptions failed", "error", err)
		return
	}

	now := start.UnixMilli()
	checked := 0
	for _, sub := range subs {
		if ctx.Err() != nil {
			return
		}
		if !sub.Due(now) {
			continue
		}
		s.checkSubscription(ctx, sub)
		checked++
	}

	if checked > 0 {
		s.logger.Info("subscription check complete",
			"subscriptions", len(subs), "checked", checked,
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// checkSubscription polls one subscription. Everything that can go wrong
// here is logged and contained; nothing propagates to the tick driver.
func (s *Scheduler) checkSubscription(ctx context.Context, sub *subscription.Subscription) {
	if sub.Type == subscription.TypeChannelPlaylists {
		s.refreshChannelPlaylists(ctx, sub)
		return
	}

	var latest string
	if sub.Type == subscription.TypePlaylist {
		latest = s.resolver.LatestPlaylistVideoURL(ctx, sub.Platform, sub.AuthorURL)
	} else {
		latest = s.resolver.LatestVideoURL(ctx, sub.Platform, sub.AuthorURL)
	}

	var videoLink *string
	if latest != "" && latest != sub.LastVideoLink {
		s.downloadNew(ctx, sub, latest)
		// The pointer advances even when the download failed, so a broken
		// video does not read as "new content" on every following tick.
		// The failed entry stays retryable from history.
		videoLink = &latest
	}

	rows, err := s.subs.UpdateLastCheck(sub.ID, videoLink, nil, time.Now().UnixMilli())
	if err != nil {
		s.logger.Error("updating subscription failed", "subscription_id", sub.ID, "error", err)
		return
	}
	if rows == 0 {
		// Unsubscribed between load and update. Skip all further writes.
		s.logger.Debug("subscription gone mid-check", "subscription_id", sub.ID)
		return
	}

	if !sub.DownloadShorts {
		return
	}
	shorts := s.resolver.LatestShortsURL(ctx, sub.Platform, sub.AuthorURL)
	if shorts == "" || shorts == sub.LastShortVideoLink {
		return
	}
	s.downloadNew(ctx, sub, shorts)
	if _, err := s.subs.UpdateLastCheck(sub.ID, nil, &shorts, time.Now().UnixMilli()); err != nil {
		s.logger.Error("updating subscription failed", "subscription_id", sub.ID, "error", err)
	}
}

// downloadNew fetches one newly detected video and records the outcome.
func (s *Scheduler) downloadNew(ctx context.Context, sub *subscription.Subscription, url string) {
	s.logger.Info("new video found", "author", sub.Author, "url", url)

	item := &history.Item{
		Author:         sub.Author,
		SourceURL:      url,
		SubscriptionID: &sub.ID,
	}

	v, err := s.gateway.Download(ctx, download.Request{URL: url, SubscriptionID: sub.ID})
	if err != nil {
		item.Status = history.StatusFailed
		item.Error = err.Error()
		s.logger.Warn("subscription download failed", "author", sub.Author, "url", url, "error", err)
	} else {
		item.Status = history.StatusSuccess
		item.Title = v.Title
		item.VideoID = &v.ID
		if err := s.subs.IncrementDownloadCount(sub.ID); err != nil {
			s.logger.Error("incrementing download count failed", "subscription_id", sub.ID, "error", err)
		}
		if sub.CollectionID != nil {
			if err := s.collections.AddToCollection(*sub.CollectionID, v.ID); err != nil {
				s.logger.Error("filing video into collection failed",
					"subscription_id", sub.ID, "collection_id", *sub.CollectionID, "error", err)
			}
		}
	}

	if err := s.history.Record(item); err != nil {
		s.logger.Error("recording history failed", "subscription_id", sub.ID, "error", err)
	}
}

// refreshChannelPlaylists enumerates a watched channel's playlists and
// subscribes any that are not tracked yet. Each new playlist gets its own
// collection named after the playlist title, unless the
// saveAuthorFilesToCollection setting routes files by author instead.
func (s *Scheduler) refreshChannelPlaylists(ctx context.Context, sub *subscription.Subscription) {
	refs := s.resolver.ChannelPlaylists(ctx, sub.Platform, sub.AuthorURL)
	byAuthor := s.settings.SaveAuthorFilesToCollection()

	added := 0
	for _, ref := range refs {
		url := platform.Normalize(ref.URL)
		if _, err := s.subs.GetByAuthorURL(url); err == nil {
			continue
		} else if !errors.Is(err, subscription.ErrNotFound) {
			s.logger.Error("playlist lookup failed", "url", url, "error", err)
			continue
		}

		var collectionID *string
		if !byAuthor {
			col, err := s.collections.EnsureCollection(ref.Title)
			if err != nil {
				s.logger.Error("creating playlist collection failed", "title", ref.Title, "error", err)
			} else {
				collectionID = &col.ID
			}
		}

		_, err := s.subscriber.SubscribePlaylist(subscription.PlaylistSpec{
			URL:          url,
			Platform:     sub.Platform,
			PlaylistID:   ref.ID,
			Title:        ref.Title,
			ChannelName:  sub.Author,
			Interval:     sub.Interval,
			CollectionID: collectionID,
		})
		if err != nil {
			// A duplicate means another path subscribed the canonical URL
			// already; anything else is worth surfacing.
			if !errors.Is(err, subscription.ErrDuplicate) {
				s.logger.Error("subscribing to playlist failed", "title", ref.Title, "error", err)
			}
			continue
		}
		added++
	}
	if added > 0 {
		s.logger.Info("channel playlists refreshed", "author", sub.Author, "new_playlists", added)
	}

	if _, err := s.subs.UpdateLastCheck(sub.ID, nil, nil, time.Now().UnixMilli()); err != nil {
		s.logger.Error("updating subscription failed", "subscription_id", sub.ID, "error", err)
	}
}
