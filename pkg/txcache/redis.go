package txcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "kanz:swaptx:"

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a redis backed cache. Entries expire after ttl.
func NewRedis(client *redis.Client, ttl time.Duration) Cache {
	return &redisCache{client: client, ttl: ttl}
}

func (c *redisCache) Put(ctx context.Context, executionID string, entry *Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+executionID, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache swap transaction: %w", err)
	}
	return nil
}

func (c *redisCache) Get(ctx context.Context, executionID string) (*Entry, error) {
	data, err := c.client.Get(ctx, keyPrefix+executionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("failed to read cached swap transaction: %w", err)
	}

	entry := new(Entry)
	if err := json.Unmarshal(data, entry); err != nil {
		return nil, fmt.Errorf("failed to decode cache entry: %w", err)
	}
	return entry, nil
}

func (c *redisCache) Delete(ctx context.Context, executionID string) error {
	return c.client.Del(ctx, keyPrefix+executionID).Err()
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
