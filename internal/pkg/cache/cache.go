package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	pkgredis "github.com/vueblog/blog-backend/internal/pkg/redis"
)

const keyPrefix = "blog:cache:"

// DefaultTTL bounds staleness for cached read results.
const DefaultTTL = 5 * time.Minute

// Cache is a small read-through cache over Redis. Entries are keyed by
// operation name plus its arguments and invalidated explicitly on writes.
type Cache struct {
	rc *pkgredis.Client
}

func New(rc *pkgredis.Client) *Cache {
	return &Cache{rc: rc}
}

// Key builds a cache key from an operation name and its arguments.
func Key(op string, args ...interface{}) string {
	var b strings.Builder
	b.WriteString(keyPrefix)
	b.WriteString(op)
	for _, arg := range args {
		b.WriteString(":")
		fmt.Fprintf(&b, "%v", arg)
	}
	return b.String()
}

// GetJSON loads the cached value into dest. The second return value reports
// a cache hit. A nil Cache or Redis failure behaves as a miss.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c == nil || c.rc == nil {
		return false, nil
	}
	raw, err := c.rc.Get(ctx, key)
	if err != nil || raw == "" {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, nil
	}
	return true, nil
}

// SetJSON stores value under key with the given TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c == nil || c.rc == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return c.rc.Set(ctx, key, raw, ttl)
}

// Invalidate removes the exact keys.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.rc == nil || len(keys) == 0 {
		return
	}
	_ = c.rc.Del(ctx, keys...)
}

// InvalidateOp removes every cached entry of the given operation,
// regardless of arguments.
func (c *Cache) InvalidateOp(ctx context.Context, op string) {
	if c == nil || c.rc == nil {
		return
	}
	_, _ = c.rc.DelByPattern(ctx, keyPrefix+op+":*")
	_ = c.rc.Del(ctx, keyPrefix+op)
}
