package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBaseEvent_ImplementsEvent(t *testing.T) {
	now := time.Now()
	e := BaseEvent{
		Type:      "test.event",
		Entity:    "video",
		ID:        "vid-42",
		Timestamp: now,
	}

	assert.Equal(t, "test.event", e.EventType())
	assert.Equal(t, "video", e.EntityType())
	assert.Equal(t, "vid-42", e.EntityID())
	assert.Equal(t, now, e.OccurredAt())
}

func TestNewBaseEvent(t *testing.T) {
	e := NewBaseEvent(EventVideoDownloaded, EntityVideo, "vid-123")

	assert.Equal(t, EventVideoDownloaded, e.EventType())
	assert.Equal(t, EntityVideo, e.EntityType())
	assert.Equal(t, "vid-123", e.EntityID())
	assert.False(t, e.OccurredAt().IsZero())
}
