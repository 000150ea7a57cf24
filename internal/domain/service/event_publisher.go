package service

import (
	"context"
)

// Store change actions
const (
	StoreActionUpserted = "upserted"
	StoreActionDeleted  = "deleted"
)

// StoreChangedEvent tells every instance to refresh one catalog entry
type StoreChangedEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	StoreID   string `json:"store_id"`
	OwnerID   string `json:"owner_id"`
	Action    string `json:"action"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStoreChanged publishes a catalog change for other instances
	PublishStoreChanged(ctx context.Context, event *StoreChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
