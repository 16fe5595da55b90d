// Package txcache keeps built swap transactions for a short time so that a
// signature requested over one transaction is submitted with that same
// transaction.
package txcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kanzfinance/kanz-middleware/pkg/config"
)

// ErrMiss is returned when no live entry exists for an execution.
var ErrMiss = errors.New("swap transaction not cached")

// Entry is a built swap transaction bound to the custody wallet it was built for.
type Entry struct {
	WalletID     string `json:"wallet_id"`
	SerializedTx string `json:"serialized_tx"`
}

// Cache stores one Entry per execution
type Cache interface {
	Put(ctx context.Context, executionID string, entry *Entry) error
	Get(ctx context.Context, executionID string) (*Entry, error)
	Delete(ctx context.Context, executionID string) error
	Close() error
}

// New creates the cache selected by cfg.Driver
func New(ctx context.Context, cfg *config.TxCacheConfig) (Cache, error) {
	switch cfg.Driver {
	case config.TxCacheRedis:
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr,
			Password:     cfg.RedisPassword(),
			DB:           cfg.RedisDB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		return NewRedis(client, cfg.TTL), nil
	case config.TxCacheMemory, "":
		return NewMemory(cfg.TTL), nil
	default:
		return nil, fmt.Errorf("unknown tx cache driver %q", cfg.Driver)
	}
}
