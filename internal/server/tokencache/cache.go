// Package tokencache keeps validity markers for issued access tokens in Redis
// so authenticated calls can skip the database. A marker lives no longer than
// its token. Revocation deletes markers before the rows go away.
package tokencache

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/timex"
	"github.com/redis/go-redis/v9"
)

func Key(userID int64, code string) string {
	return fmt.Sprintf("access_token:%d:%s", userID, code)
}

type Cache struct {
	rdb   redis.Cmdable
	clock timex.Clock
}

func New(rdb redis.Cmdable, clock timex.Clock) *Cache {
	if clock == nil {
		clock = timex.SystemClock{}
	}
	return &Cache{rdb: rdb, clock: clock}
}

// Mark stores a marker expiring together with the token. Already expired
// tokens are not marked.
func (c *Cache) Mark(ctx context.Context, userID int64, code string, expireAt time.Time) error {
	ttl := expireAt.Sub(c.clock.Now())
	if ttl <= 0 {
		return nil
	}
	if err := c.rdb.Set(ctx, Key(userID, code), 1, ttl).Err(); err != nil {
		return fmt.Errorf("%w: mark token: %w", common.ErrStorageUnavailable, err)
	}
	return nil
}

func (c *Cache) IsMarked(ctx context.Context, userID int64, code string) (bool, error) {
	n, err := c.rdb.Exists(ctx, Key(userID, code)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: check token marker: %w", common.ErrStorageUnavailable, err)
	}
	return n > 0, nil
}

// Invalidate drops the markers of the given access codes.
func (c *Cache) Invalidate(ctx context.Context, userID int64, codes ...string) error {
	if len(codes) == 0 {
		return nil
	}
	keys := make([]string, 0, len(codes))
	for _, code := range codes {
		keys = append(keys, Key(userID, code))
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: invalidate token markers: %w", common.ErrStorageUnavailable, err)
	}
	return nil
}
