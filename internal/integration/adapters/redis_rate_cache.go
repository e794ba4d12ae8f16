package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

const (
	// primaryRateKey holds the fresh snapshot with a short TTL.
	primaryRateKey = "exchange_rates_aud"
	// fallbackRateKey holds a long-lived copy served when a live fetch fails.
	fallbackRateKey = "exchange_rates_aud_fallback"
)

// RedisRateCache implements the adapter.RateCache interface over Redis.
// Writes are whole-value JSON replacement; entries are never mutated in place.
type RedisRateCache struct {
	client      *redis.Client
	primaryTTL  time.Duration
	fallbackTTL time.Duration
}

// NewRedisRateCache creates a new Redis rate cache instance.
func NewRedisRateCache(client *redis.Client, primaryTTL, fallbackTTL time.Duration) *RedisRateCache {
	return &RedisRateCache{
		client:      client,
		primaryTTL:  primaryTTL,
		fallbackTTL: fallbackTTL,
	}
}

// Get retrieves the primary cached snapshot.
func (c *RedisRateCache) Get(ctx context.Context) (*valueobject.RateSnapshot, error) {
	return c.get(ctx, primaryRateKey)
}

// GetFallback retrieves the fallback cached snapshot.
func (c *RedisRateCache) GetFallback(ctx context.Context) (*valueobject.RateSnapshot, error) {
	return c.get(ctx, fallbackRateKey)
}

// Put stores the snapshot in both the primary and fallback slots.
func (c *RedisRateCache) Put(ctx context.Context, snapshot *valueobject.RateSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal rate snapshot: %w", err)
	}

	if err := c.client.Set(ctx, primaryRateKey, payload, c.primaryTTL).Err(); err != nil {
		return fmt.Errorf("failed to write primary rate cache: %w", err)
	}
	if err := c.client.Set(ctx, fallbackRateKey, payload, c.fallbackTTL).Err(); err != nil {
		return fmt.Errorf("failed to write fallback rate cache: %w", err)
	}

	return nil
}

// Clear removes both cached entries.
func (c *RedisRateCache) Clear(ctx context.Context) error {
	if err := c.client.Del(ctx, primaryRateKey, fallbackRateKey).Err(); err != nil {
		return fmt.Errorf("failed to clear rate cache: %w", err)
	}
	return nil
}

func (c *RedisRateCache) get(ctx context.Context, key string) (*valueobject.RateSnapshot, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Cache miss, not an error.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read rate cache: %w", err)
	}

	var snapshot valueobject.RateSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rate snapshot: %w", err)
	}

	return &snapshot, nil
}

var _ adapter.RateCache = (*RedisRateCache)(nil)
