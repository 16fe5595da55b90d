package txcache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanzfinance/kanz-middleware/pkg/config"
)

func runCacheSuite(t *testing.T, cache Cache, expire func(d time.Duration)) {
	ctx := context.Background()

	_, err := cache.Get(ctx, "exec-1")
	require.ErrorIs(t, err, ErrMiss)

	require.NoError(t, cache.Put(ctx, "exec-1", &Entry{WalletID: "w-1", SerializedTx: "AQID"}))

	got, err := cache.Get(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, &Entry{WalletID: "w-1", SerializedTx: "AQID"}, got)

	// Put replaces the previous entry.
	require.NoError(t, cache.Put(ctx, "exec-1", &Entry{WalletID: "w-1", SerializedTx: "BAUG"}))
	got, err = cache.Get(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, "BAUG", got.SerializedTx)

	require.NoError(t, cache.Delete(ctx, "exec-1"))
	_, err = cache.Get(ctx, "exec-1")
	require.ErrorIs(t, err, ErrMiss)

	require.NoError(t, cache.Put(ctx, "exec-2", &Entry{WalletID: "w-1", SerializedTx: "AQID"}))
	expire(3 * time.Minute)
	_, err = cache.Get(ctx, "exec-2")
	require.ErrorIs(t, err, ErrMiss)
}

func TestMemoryCache(t *testing.T) {
	cache := NewMemory(2 * time.Minute).(*memoryCache)
	now := time.Now()
	cache.now = func() time.Time { return now }

	runCacheSuite(t, cache, func(d time.Duration) { now = now.Add(d) })
}

func TestRedisCache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewRedis(client, 2*time.Minute)
	defer cache.Close()

	runCacheSuite(t, cache, mr.FastForward)
}

func TestNew(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache, err := New(context.Background(), &config.TxCacheConfig{Driver: config.TxCacheRedis, RedisAddr: mr.Addr(), TTL: time.Minute})
	require.NoError(t, err)
	require.NoError(t, cache.Close())

	cache, err = New(context.Background(), &config.TxCacheConfig{Driver: config.TxCacheMemory, TTL: time.Minute})
	require.NoError(t, err)
	require.NoError(t, cache.Close())

	_, err = New(context.Background(), &config.TxCacheConfig{Driver: "memcached"})
	require.Error(t, err)
}
