// Package cache provides PositionCache backends.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "storefront:position:"

type redisPositionCache struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisPositionCache stores fixes as JSON strings with a TTL
func NewRedisPositionCache(client redis.UniversalClient, prefix string) service.PositionCache {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisPositionCache{client: client, prefix: prefix}
}

func (c *redisPositionCache) Get(ctx context.Context, key string) (*entity.Location, bool, error) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get position")
	}

	var location entity.Location
	if err := json.Unmarshal(raw, &location); err != nil {
		return nil, false, errors.Wrap(err, "decode cached position")
	}

	return &location, true, nil
}

func (c *redisPositionCache) Set(ctx context.Context, key string, location *entity.Location, ttl time.Duration) error {
	if location == nil || ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(location)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(c.client.Set(ctx, c.prefix+key, raw, ttl).Err(), "redis set position")
}
