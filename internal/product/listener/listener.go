package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/coffee-storefront-service/internal/pkg/logger"
	"github.com/fekuna/coffee-storefront-service/internal/product"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *broker.KafkaConsumer.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// Invalidator drops a product from the storefront cache.
type Invalidator interface {
	InvalidateProduct(ctx context.Context, id string)
}

type CatalogListener struct {
	consumer MessageReader
	cache    Invalidator
	logger   logger.ZapLogger
	backoff  time.Duration
}

func NewCatalogListener(consumer MessageReader, cache Invalidator, logger logger.ZapLogger) *CatalogListener {
	return &CatalogListener{
		consumer: consumer,
		cache:    cache,
		logger:   logger,
		backoff:  time.Second,
	}
}

func (l *CatalogListener) Start(ctx context.Context) {
	l.logger.Info("Starting Catalog Kafka Listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping Catalog Kafka Listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				select {
				case <-ctx.Done():
					return
				case <-time.After(l.backoff):
				}
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

func (l *CatalogListener) processMessage(ctx context.Context, value []byte) {
	var event product.CatalogEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	switch event.EventType {
	case product.EventProductUpdated, product.EventProductDeleted, product.EventPricesMigrated:
	default:
		return
	}
	if event.ProductID == "" {
		l.logger.Warn("Catalog event without product_id", zap.String("event_id", event.EventID))
		return
	}

	l.logger.Debug("Invalidating product cache",
		zap.String("event_type", event.EventType),
		zap.String("product_id", event.ProductID),
	)
	l.cache.InvalidateProduct(ctx, event.ProductID)
}
