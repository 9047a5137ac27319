package utils

import (
	"context"
	"log"
	"time"

	"weeklychef/config"

	"github.com/go-redis/redis/v8"
)

// EventsClient is the Redis client used to remember processed webhook events.
var EventsClient *redis.Client

// InitEventsCache initializes the Redis client backing webhook-event deduplication.
func InitEventsCache() {
	EventsClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisEventsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := EventsClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Events): %v", err)
	}
}

// GetEventsClient returns the webhook-event dedup client.
func GetEventsClient() *redis.Client {
	if EventsClient == nil {
		InitEventsCache()
	}
	return EventsClient
}
