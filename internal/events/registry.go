package events

import (
	"encoding/json"
	"fmt"
)

// EventFactory creates a new zero-value event of a specific type.
type EventFactory func() Event

// Registry maps event types to their factories for deserialization.
type Registry struct {
	factories map[string]EventFactory
}

// NewRegistry creates a new event registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]EventFactory),
	}
}

// Register adds an event type to the registry.
func (r *Registry) Register(eventType string, factory EventFactory) {
	r.factories[eventType] = factory
}

// Unmarshal deserializes a raw event into its concrete type.
func (r *Registry) Unmarshal(raw RawEvent) (Event, error) {
	factory, ok := r.factories[raw.EventType]
	if !ok {
		return nil, fmt.Errorf("unknown event type: %s", raw.EventType)
	}

	event := factory()
	if err := json.Unmarshal([]byte(raw.Payload), event); err != nil {
		return nil, fmt.Errorf("unmarshal event payload: %w", err)
	}
	return event, nil
}

// DefaultRegistry returns a registry with all standard event types registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	// Subscription events
	r.Register(EventSubscriptionCreated, func() Event { return &SubscriptionCreated{} })
	r.Register(EventSubscriptionDeleted, func() Event { return &SubscriptionDeleted{} })
	r.Register(EventSubscriptionPaused, func() Event { return &SubscriptionPaused{} })
	r.Register(EventSubscriptionResumed, func() Event { return &SubscriptionResumed{} })

	// Download events
	r.Register(EventVideoDownloaded, func() Event { return &VideoDownloaded{} })
	r.Register(EventDownloadFailed, func() Event { return &DownloadFailed{} })
	r.Register(EventDownloadSkipped, func() Event { return &DownloadSkipped{} })

	// Task events
	r.Register(EventTaskCreated, func() Event { return &TaskCreated{} })
	r.Register(EventTaskCompleted, func() Event { return &TaskCompleted{} })
	r.Register(EventTaskCancelled, func() Event { return &TaskCancelled{} })

	return r
}
