package cachedresults

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
)

// Tag applied to every cached entry so invalidation only touches our keys
const Tag = "journeysearch"

type Cache struct {
	Cache *cache.Cache[string]
}

func (c *Cache) Setup(client *redis.Client, expiration time.Duration) {
	redisStore := redisstore.NewRedis(client, store.WithExpiration(expiration))

	c.Cache = cache.New[string](redisStore)
}

// GetJSON decodes the cached value for key into destination. A missing key is
// reported as a miss rather than an error.
func (c *Cache) GetJSON(ctx context.Context, key string, destination any) (bool, error) {
	value, err := c.Cache.Get(ctx, key)
	if err != nil {
		var notFound *store.NotFound
		if errors.As(err, &notFound) || errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, err
	}

	if err := json.Unmarshal([]byte(value), destination); err != nil {
		return false, err
	}

	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.Cache.Set(ctx, key, string(encoded), store.WithTags([]string{Tag}))
}

// Invalidate drops every cached search, other keys in the same Redis database are left alone
func (c *Cache) Invalidate(ctx context.Context) error {
	return c.Cache.Invalidate(ctx, store.WithInvalidateTags([]string{Tag}))
}
