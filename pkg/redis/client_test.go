package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/hrm-backend/pkg/config"
)

type fakeCommands struct {
	values  map[string]string
	counts  map[string]int64
	expires []string
}

func newFakeCommands() *fakeCommands {
	return &fakeCommands{values: map[string]string{}, counts: map[string]int64{}}
}

func (f *fakeCommands) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (f *fakeCommands) Incr(_ context.Context, key string) *redis.IntCmd {
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeCommands) Expire(_ context.Context, key string, _ time.Duration) *redis.BoolCmd {
	f.expires = append(f.expires, key)
	return redis.NewBoolResult(true, nil)
}

func (f *fakeCommands) SetNX(_ context.Context, key string, value any, _ time.Duration) *redis.BoolCmd {
	if _, held := f.values[key]; held {
		return redis.NewBoolResult(false, nil)
	}
	f.values[key] = fmt.Sprint(value)
	return redis.NewBoolResult(true, nil)
}

func (f *fakeCommands) Eval(_ context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	if f.values[keys[0]] != fmt.Sprint(args[0]) {
		return redis.NewCmdResult(int64(0), nil)
	}
	delete(f.values, keys[0])
	return redis.NewCmdResult(int64(1), nil)
}

func TestFixedWindowAllow(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCommands()
	client := &Client{cmd: fake}

	for i := int64(1); i <= 2; i++ {
		allowed, count, err := client.FixedWindowAllow(ctx, "login:ip:10.0.0.1", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, i, count)
	}
	allowed, count, err := client.FixedWindowAllow(ctx, "login:ip:10.0.0.1", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.EqualValues(t, 3, count)

	assert.Equal(t, []string{"hrm:rate_limit:login:ip:10.0.0.1"}, fake.expires)
}

func TestLockIsOwnerScoped(t *testing.T) {
	ctx := context.Background()
	client := &Client{cmd: newFakeCommands()}
	key := LockKey("cron-worker", "dev")

	ok, err := client.AcquireLock(ctx, key, "a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.AcquireLock(ctx, key, "b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	released, err := client.ReleaseLock(ctx, key, "b")
	require.NoError(t, err)
	assert.False(t, released)

	released, err = client.ReleaseLock(ctx, key, "a")
	require.NoError(t, err)
	assert.True(t, released)

	ok, err = client.AcquireLock(ctx, key, "b", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "hrm:rate_limit:register:id:a@b.c", RateLimitKey("register:id:a@b.c"))
	assert.Equal(t, "hrm:lock:cron-worker:prod", LockKey("cron-worker", "prod"))
	assert.Equal(t, "hrm:lock:cron-worker", LockKey("cron-worker", " "))
}

func TestZeroClient(t *testing.T) {
	var nilClient *Client
	assert.ErrorIs(t, (&Client{}).Ping(context.Background()), errNotInitialized)
	assert.NoError(t, nilClient.Close())
	_, _, err := nilClient.FixedWindowAllow(context.Background(), "x", 1, time.Second)
	assert.ErrorIs(t, err, errNotInitialized)
}

func TestOptionsFromConfig(t *testing.T) {
	_, err := optionsFromConfig(config.RedisConfig{})
	assert.Error(t, err)

	opts, err := optionsFromConfig(config.RedisConfig{URL: "redis://localhost:6379/2", DB: 5, PoolSize: 7, DialTimeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 7, opts.PoolSize)
	assert.Equal(t, time.Second, opts.DialTimeout)

	opts, err = optionsFromConfig(config.RedisConfig{Address: "cache:6379", DB: 3})
	require.NoError(t, err)
	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, 3, opts.DB)
}
