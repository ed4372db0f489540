package events

// Entity types
const (
	EntitySubscription = "subscription"
	EntityVideo        = "video"
	EntityTask         = "task"
)

// Subscription lifecycle event types
const (
	EventSubscriptionCreated = "subscription.created"
	EventSubscriptionDeleted = "subscription.deleted"
	EventSubscriptionPaused  = "subscription.paused"
	EventSubscriptionResumed = "subscription.resumed"
)

// SubscriptionCreated is emitted when a new source starts being followed.
type SubscriptionCreated struct {
	BaseEvent
	Author    string `json:"author"`
	AuthorURL string `json:"author_url"`
	Platform  string `json:"platform"`
	Kind      string `json:"kind"` // author, playlist, channel_playlists
}

// SubscriptionDeleted is emitted when a subscription is removed.
type SubscriptionDeleted struct {
	BaseEvent
	AuthorURL string `json:"author_url"`
}

// SubscriptionPaused is emitted when polling for a subscription is suspended.
type SubscriptionPaused struct {
	BaseEvent
}

// SubscriptionResumed is emitted when polling for a subscription restarts.
type SubscriptionResumed struct {
	BaseEvent
}
