package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vodarr/vodarr/internal/events"
	"github.com/vodarr/vodarr/internal/resolver"
	"github.com/vodarr/vodarr/pkg/platform"
)

// defaultInterval is the poll interval in minutes when the caller does not
// supply one.
const defaultInterval = 60

// Resolver resolves author and playlist identity at subscribe time.
type Resolver interface {
	AuthorInfo(ctx context.Context, p platform.Platform, url string) (*resolver.AuthorInfo, error)
	PlaylistInfo(ctx context.Context, p platform.Platform, url string) (*resolver.PlaylistInfo, error)
}

// Service implements the subscription lifecycle.
type Service struct {
	store    *Store
	resolver Resolver
	bus      *events.Bus
	logger   *slog.Logger
}

// NewService creates a subscription service.
func NewService(store *Store, res Resolver, bus *events.Bus, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		resolver: res,
		bus:      bus,
		logger:   logger.With("component", "subscription"),
	}
}

// SubscribeRequest carries the user-supplied fields of a new subscription.
type SubscribeRequest struct {
	URL string

	// Interval is minutes between checks; 0 or negative uses the default.
	Interval int64

	// Title overrides the resolved display name when non-empty.
	Title string

	DownloadShorts bool
	CollectionID   *string
}

// Subscribe classifies the URL and creates the matching subscription kind.
// Subscribing to an already-watched channel-playlists URL returns the
// existing watcher; any other duplicate URL fails with ErrDuplicate.
func (s *Service) Subscribe(ctx context.Context, req SubscribeRequest) (*Subscription, error) {
	p, kind, err := platform.Classify(req.URL)
	if err != nil {
		return nil, err
	}
	url := platform.Normalize(req.URL)

	existing, err := s.store.GetByAuthorURL(url)
	switch {
	case err == nil:
		if kind == platform.KindChannelPlaylists {
			return existing, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrDuplicate, url)
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	switch kind {
	case platform.KindPlaylist:
		info, err := s.resolver.PlaylistInfo(ctx, p, url)
		if err != nil {
			return nil, err
		}
		title := req.Title
		if title == "" {
			title = info.Title
		}
		return s.SubscribePlaylist(PlaylistSpec{
			URL:          url,
			Platform:     p,
			PlaylistID:   info.ID,
			Title:        title,
			ChannelName:  info.Channel,
			Interval:     req.Interval,
			CollectionID: req.CollectionID,
		})

	case platform.KindChannelPlaylists:
		info, err := s.resolver.AuthorInfo(ctx, p, url)
		if err != nil {
			return nil, err
		}
		return s.SubscribeChannelPlaylistsWatcher(url, req.Interval, info.Name, p)

	default:
		info, err := s.resolver.AuthorInfo(ctx, p, url)
		if err != nil {
			return nil, err
		}
		author := req.Title
		if author == "" {
			author = info.Name
		}
		sub := &Subscription{
			ID:             uuid.NewString(),
			Author:         author,
			AuthorURL:      platform.Normalize(info.AuthorURL),
			Platform:       p,
			Interval:       normalizeInterval(req.Interval),
			Type:           TypeAuthor,
			CollectionID:   req.CollectionID,
			DownloadShorts: req.DownloadShorts,
			CreatedAt:      time.Now().UTC(),
		}
		if err := s.store.Insert(sub); err != nil {
			return nil, err
		}
		s.logger.Info("subscribed", "author", sub.Author, "url", sub.AuthorURL, "platform", p)
		s.publishCreated(sub)
		return sub, nil
	}
}

// PlaylistSpec carries resolved playlist identity for a direct playlist
// subscription.
type PlaylistSpec struct {
	URL          string
	Platform     platform.Platform
	PlaylistID   string
	Title        string
	ChannelName  string
	Interval     int64
	CollectionID *string
}

// SubscribePlaylist creates a playlist subscription. The stored author is
// "<title> - <channel>" so playlist rows stay distinguishable from plain
// author rows in listings.
func (s *Service) SubscribePlaylist(spec PlaylistSpec) (*Subscription, error) {
	sub := &Subscription{
		ID:            uuid.NewString(),
		Author:        fmt.Sprintf("%s - %s", spec.Title, spec.ChannelName),
		AuthorURL:     platform.Normalize(spec.URL),
		Platform:      spec.Platform,
		Interval:      normalizeInterval(spec.Interval),
		Type:          TypePlaylist,
		PlaylistID:    spec.PlaylistID,
		PlaylistTitle: spec.Title,
		CollectionID:  spec.CollectionID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.store.Insert(sub); err != nil {
		return nil, err
	}
	s.logger.Info("subscribed to playlist", "title", spec.Title, "channel", spec.ChannelName)
	s.publishCreated(sub)
	return sub, nil
}

// SubscribeChannelPlaylistsWatcher creates a watcher over a channel's
// playlists tab. Watching an already-watched URL returns the existing
// subscription unchanged.
func (s *Service) SubscribeChannelPlaylistsWatcher(url string, interval int64, channelName string, p platform.Platform) (*Subscription, error) {
	url = platform.Normalize(url)

	existing, err := s.store.GetByAuthorURL(url)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	sub := &Subscription{
		ID:        uuid.NewString(),
		Author:    channelName,
		AuthorURL: url,
		Platform:  p,
		Interval:  normalizeInterval(interval),
		Type:      TypeChannelPlaylists,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Insert(sub); err != nil {
		// Lost a race with a concurrent watcher subscribe.
		if errors.Is(err, ErrDuplicate) {
			return s.store.GetByAuthorURL(url)
		}
		return nil, err
	}
	s.logger.Info("watching channel playlists", "channel", channelName, "url", url)
	s.publishCreated(sub)
	return sub, nil
}

// Unsubscribe removes a subscription. Unknown IDs are a silent no-op.
func (s *Service) Unsubscribe(id string) error {
	sub, err := s.store.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	deleted, err := s.store.DeleteAndVerify(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("Failed to delete subscription %s", id)
	}

	s.logger.Info("unsubscribed", "id", id, "author", sub.Author)
	s.publish(&events.SubscriptionDeleted{
		BaseEvent: events.NewBaseEvent(events.EventSubscriptionDeleted, events.EntitySubscription, id),
		AuthorURL: sub.AuthorURL,
	})
	return nil
}

// Pause suspends polling for a subscription.
func (s *Service) Pause(id string) error {
	if err := s.setPaused(id, true); err != nil {
		return err
	}
	s.publish(&events.SubscriptionPaused{
		BaseEvent: events.NewBaseEvent(events.EventSubscriptionPaused, events.EntitySubscription, id),
	})
	return nil
}

// Resume re-enables polling for a subscription.
func (s *Service) Resume(id string) error {
	if err := s.setPaused(id, false); err != nil {
		return err
	}
	s.publish(&events.SubscriptionResumed{
		BaseEvent: events.NewBaseEvent(events.EventSubscriptionResumed, events.EntitySubscription, id),
	})
	return nil
}

func (s *Service) setPaused(id string, paused bool) error {
	rows, err := s.store.SetPaused(id, paused)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("Subscription %s %w", id, ErrNotFound)
	}
	return nil
}

// Get returns one subscription by ID.
func (s *Service) Get(id string) (*Subscription, error) {
	sub, err := s.store.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("Subscription %s %w", id, ErrNotFound)
		}
		return nil, err
	}
	return sub, nil
}

// List returns all subscriptions.
func (s *Service) List() ([]*Subscription, error) {
	return s.store.List()
}

func (s *Service) publishCreated(sub *Subscription) {
	s.publish(&events.SubscriptionCreated{
		BaseEvent: events.NewBaseEvent(events.EventSubscriptionCreated, events.EntitySubscription, sub.ID),
		Author:    sub.Author,
		AuthorURL: sub.AuthorURL,
		Platform:  string(sub.Platform),
		Kind:      string(sub.Type),
	})
}

func (s *Service) publish(e events.Event) {
	if err := s.bus.Publish(context.Background(), e); err != nil {
		s.logger.Error("failed to publish event", "type", e.EventType(), "error", err)
	}
}

func normalizeInterval(minutes int64) int64 {
	if minutes <= 0 {
		return defaultInterval
	}
	return minutes
}
