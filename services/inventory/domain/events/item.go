package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics published by the lifecycle coordinator.
// Consumers subscribe via events.Bus.Subscribe(ctx, topic, handler).
const (
	TopicItemCreated       = "inventory.item.created"
	TopicItemPhotoReplaced = "inventory.item.photo_replaced"
	TopicItemDeleted       = "inventory.item.deleted"
)

// ItemCreatedEvent is published after a new item is persisted.
type ItemCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     int64     `json:"item_id"`
	Name       string    `json:"name"`
	HasPhoto   bool      `json:"has_photo"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemPhotoReplacedEvent is published after an item's photo blob has been
// swapped and the previous blob collected.
type ItemPhotoReplacedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     int64     `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemDeletedEvent is published after an item record and its owned blob
// have been removed.
type ItemDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     int64     `json:"item_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}
