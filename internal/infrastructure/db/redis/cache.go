package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const itineraryTTL = 5 * time.Minute

// ErrCacheMiss is returned when no cached value exists for a key.
var ErrCacheMiss = errors.New("cache miss")

// ItineraryCache is a read-through cache for journey-search responses.
// Key format: itinerary:<from>:<to>:<unix_departure>
type ItineraryCache struct {
	client *redis.Client
}

// NewItineraryCache creates an ItineraryCache wrapping the given Redis client.
func NewItineraryCache(client *redis.Client) *ItineraryCache {
	return &ItineraryCache{client: client}
}

// Get returns the cached payload for a search, or ErrCacheMiss.
func (c *ItineraryCache) Get(ctx context.Context, from, to string, departure time.Time) ([]byte, error) {
	val, err := c.client.Get(ctx, c.key(from, to, departure)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("itinerary cache get: %w", err)
	}
	return val, nil
}

// Set stores the payload for a search (expires after itineraryTTL).
func (c *ItineraryCache) Set(ctx context.Context, from, to string, departure time.Time, payload []byte) error {
	return c.client.Set(ctx, c.key(from, to, departure), payload, itineraryTTL).Err()
}

func (c *ItineraryCache) key(from, to string, departure time.Time) string {
	return fmt.Sprintf("itinerary:%s:%s:%d", from, to, departure.Unix())
}
