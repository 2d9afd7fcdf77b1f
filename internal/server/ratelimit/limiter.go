// Package ratelimit keeps attempt counters in Redis.
//
// Failed logins use a sliding window: every failure bumps the counter and
// pushes its expiry out again, so a stream of bad attempts keeps the member
// locked until they stop for a full window. Recording is best-effort for
// callers; the pre-login check treats an unreachable Redis as "blocked".
//
// Password restore requests use a fixed window started by the first request
// (see Hit), so the count does not depend on which codes still exist.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/redis/go-redis/v9"
)

const (
	loginKeyPrefix   = "login_attempts:"
	restoreKeyPrefix = "restore_attempts:"
)

// LoginKey is the counter key for a member id.
func LoginKey(memberID int64) string {
	return loginKeyPrefix + strconv.FormatInt(memberID, 10)
}

// RestoreKey is the restore request counter key for a user id.
func RestoreKey(userID int64) string {
	return restoreKeyPrefix + strconv.FormatInt(userID, 10)
}

// hitScript increments KEYS[1] and sets its expiry only when the increment
// created the key.
var hitScript = redis.NewScript(`
local n = redis.call('INCR', KEYS[1])
if n == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return n
`)

type Limiter struct {
	rdb redis.Cmdable
}

func New(rdb redis.Cmdable) *Limiter {
	return &Limiter{rdb: rdb}
}

// RecordFailure increments key and resets its TTL in one MULTI/EXEC.
func (l *Limiter) RecordFailure(ctx context.Context, key string, ttl time.Duration) error {
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: record failure: %w", common.ErrStorageUnavailable, err)
	}
	return nil
}

// Hit counts one attempt in a fixed window of length window that opens with
// the first hit, and returns the count including this one.
func (l *Limiter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	n, err := hitScript.Run(ctx, l.rdb, []string{key}, window.Milliseconds()).Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: count attempt: %w", common.ErrStorageUnavailable, err)
	}
	return n, nil
}

// Attempts returns the current counter, 0 when it has expired or never existed.
func (l *Limiter) Attempts(ctx context.Context, key string) (int64, error) {
	n, err := l.rdb.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: read attempts: %w", common.ErrStorageUnavailable, err)
	}
	return n, nil
}

// IsBlocked reports whether key has reached threshold failures. It fails
// closed: on a Redis error the result is true alongside the error.
// A threshold of zero or less disables the check.
func (l *Limiter) IsBlocked(ctx context.Context, key string, threshold int64) (bool, error) {
	if threshold <= 0 {
		return false, nil
	}
	n, err := l.Attempts(ctx, key)
	if err != nil {
		return true, err
	}
	return n >= threshold, nil
}

func (l *Limiter) Reset(ctx context.Context, key string) error {
	if err := l.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: reset attempts: %w", common.ErrStorageUnavailable, err)
	}
	return nil
}
