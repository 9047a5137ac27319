package payment

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// ProcessedEventStore remembers webhook event IDs that were already applied,
// so an at-least-once provider redelivery cannot re-fire notifications.
type ProcessedEventStore interface {
	// MarkProcessed records the event ID and reports whether this call was
	// the first to see it.
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
}

const processedEventTTL = 30 * 24 * time.Hour

// RedisEventStore implements ProcessedEventStore on a Redis SETNX key.
type RedisEventStore struct {
	Client *redis.Client
}

func (s *RedisEventStore) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	return s.Client.SetNX(ctx, "stripe:event:"+eventID, 1, processedEventTTL).Result()
}
