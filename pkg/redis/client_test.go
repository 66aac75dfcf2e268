package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/nikhilbhatia/shopsight-backend/pkg/config"
)

type fakeStore struct {
	counts  map[string]int64
	expires map[string]time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{counts: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (f *fakeStore) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (f *fakeStore) Incr(_ context.Context, key string) *redis.IntCmd {
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeStore) Expire(_ context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	f.expires[key] = ttl
	return redis.NewBoolResult(true, nil)
}

func (f *fakeStore) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(f.counts, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestOptionsFromConfigRequiresEndpoint(t *testing.T) {
	_, err := optionsFromConfig(config.RedisConfig{})
	require.Error(t, err)
}

func TestOptionsFromConfigParsesURL(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{URL: "redis://localhost:6379/2"})
	require.NoError(t, err)
	require.Equal(t, "localhost:6379", opts.Addr)
	require.Equal(t, 2, opts.DB)
}

func TestIncrWithTTLSetsExpiryOnFirstHit(t *testing.T) {
	store := newFakeStore()
	client := &Client{store: store}

	count, err := client.IncrWithTTL(context.Background(), "k", time.Minute)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
	require.Equal(t, time.Minute, store.expires["k"])

	count, err = client.IncrWithTTL(context.Background(), "k", time.Minute)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}

func TestFixedWindowAllow(t *testing.T) {
	client := &Client{store: newFakeStore()}

	for i := 0; i < 3; i++ {
		allowed, _, err := client.FixedWindowAllow(context.Background(), "ip:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		require.True(t, allowed)
	}
	allowed, count, err := client.FixedWindowAllow(context.Background(), "ip:1.2.3.4", 3, time.Minute)
	require.NoError(t, err)
	require.False(t, allowed)
	require.Equal(t, int64(4), count)
}

func TestBuildKeyNamespacing(t *testing.T) {
	client := &Client{}
	require.Equal(t, "ss:rate_limit:ip:1.2.3.4", client.RateLimitKey("ip:1.2.3.4"))
	require.Equal(t, "ss:counter:passes", client.CounterKey("passes"))
}
