package product

import (
	"context"
	"time"
)

const (
	EventProductUpdated = "ProductUpdated"
	EventProductDeleted = "ProductDeleted"
	EventPricesMigrated = "PricesMigrated"
)

// CatalogEvent is published on every catalog write and consumed to keep caches fresh.
type CatalogEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID string    `json:"product_id"`
	Timestamp time.Time `json:"timestamp"`
}

type EventPublisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}
