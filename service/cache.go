// file: service/cache.go

package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"
	"wedding-api/logger"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// ICacheClient is the subset of the Redis client used for caching. A nil
// ICacheClient disables caching.
type ICacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Cache keys of the public read models.
const (
	keyMainPage      = "web:main_page"
	keyAboutUs       = "web:about_us"
	keyCategories    = "web:categories"
	keyGallery       = "web:gallery"
	keyGalleryPrefix = "web:gallery:"
	keyPrices        = "web:prices"
	keyNews          = "web:news"
	keyTeam          = "web:team"
	keyContactInfo   = "web:contact_info"
	keySocialMedia   = "web:social_media"
	keyCalendar      = "web:calendar"
)

// ContentCache implements cache-aside for public reads. Concurrent misses on
// the same key share one load.
type ContentCache struct {
	client ICacheClient
	ttl    time.Duration
	group  singleflight.Group
}

func NewContentCache(client ICacheClient, ttl time.Duration) *ContentCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ContentCache{client: client, ttl: ttl}
}

// Remember returns the cached value for key, or calls load and caches its
// result. Cache failures degrade to a plain load.
func Remember[T any](ctx context.Context, c *ContentCache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	if c == nil || c.client == nil {
		return load(ctx)
	}

	cached, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var value T
		if err := json.Unmarshal([]byte(cached), &value); err == nil {
			return value, nil
		}
		logger.Log.WithField("key", key).Warn("Discarding undecodable cache entry")
	} else if !errors.Is(err, redis.Nil) {
		logger.Log.WithError(err).WithField("key", key).Warn("Cache read failed")
	}

	// The load is shared by every caller waiting on key, so it must not end
	// when the first caller goes away.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		value, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		if data, err := json.Marshal(value); err == nil {
			if err := c.client.Set(loadCtx, key, data, c.ttl).Err(); err != nil {
				logger.Log.WithError(err).WithField("key", key).Warn("Cache write failed")
			}
		}
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Invalidate drops keys after a write.
func (c *ContentCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Log.WithError(err).WithField("keys", keys).Warn("Cache invalidation failed")
	}
}
