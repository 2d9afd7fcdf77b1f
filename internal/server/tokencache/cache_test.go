package tokencache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/timex"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func newCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, timex.NewManualClock(epoch)), mr
}

func TestKey(t *testing.T) {
	assert.Equal(t, "access_token:42:abc", Key(42, "abc"))
}

func TestMark_TTLFollowsExpiry(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Mark(ctx, 42, "code1", epoch.Add(5*time.Minute)))

	ok, err := c.IsMarked(ctx, 42, "code1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5*time.Minute, mr.TTL(Key(42, "code1")))

	mr.FastForward(5 * time.Minute)
	ok, err = c.IsMarked(ctx, 42, "code1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMark_SkipsExpired(t *testing.T) {
	c, mr := newCache(t)

	require.NoError(t, c.Mark(context.Background(), 42, "old", epoch.Add(-time.Second)))
	assert.False(t, mr.Exists(Key(42, "old")))
}

func TestInvalidate(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	for _, code := range []string{"a", "b", "c"} {
		require.NoError(t, c.Mark(ctx, 42, code, epoch.Add(time.Hour)))
	}
	require.NoError(t, c.Mark(ctx, 43, "a", epoch.Add(time.Hour)))

	require.NoError(t, c.Invalidate(ctx, 42, "a", "b"))

	assert.False(t, mr.Exists(Key(42, "a")))
	assert.False(t, mr.Exists(Key(42, "b")))
	assert.True(t, mr.Exists(Key(42, "c")))
	assert.True(t, mr.Exists(Key(43, "a")), "other users untouched")

	require.NoError(t, c.Invalidate(ctx, 42), "no codes is a no-op")
	require.NoError(t, c.Invalidate(ctx, 42, "missing"), "absent markers are fine")
}

func TestUnreachableRedis(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()
	mr.Close()

	assert.ErrorIs(t, c.Mark(ctx, 1, "x", epoch.Add(time.Hour)), common.ErrStorageUnavailable)
	_, err := c.IsMarked(ctx, 1, "x")
	assert.ErrorIs(t, err, common.ErrStorageUnavailable)
	assert.ErrorIs(t, c.Invalidate(ctx, 1, "x"), common.ErrStorageUnavailable)
}
