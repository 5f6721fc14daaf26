package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/morechaitanya606/ucia/internal/domain/entity"
	"github.com/morechaitanya606/ucia/pkg/helpers"
)

const projectListCacheKey = "projects:list"

// ProjectCache holds the public project list between reads. Misses and
// backend failures both report !ok so callers fall through to the store.
type ProjectCache interface {
	Get(ctx context.Context) (projects []*entity.Project, ok bool)
	Set(ctx context.Context, projects []*entity.Project)
	Invalidate(ctx context.Context)
}

type redisProjectCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

// NewRedisProjectCache returns a Redis-backed ProjectCache, or nil when no
// client is available so the service skips caching entirely.
func NewRedisProjectCache(rdb *redis.Client, ttl time.Duration, logger *logrus.Logger) ProjectCache {
	if rdb == nil {
		return nil
	}
	return &redisProjectCache{rdb: rdb, ttl: ttl, logger: logger}
}

func (c *redisProjectCache) Get(ctx context.Context) ([]*entity.Project, bool) {
	var cached []*entity.Project
	ok, err := helpers.RedisGetJSON(ctx, c.rdb, projectListCacheKey, &cached)
	if err != nil || !ok {
		return nil, false
	}
	return cached, true
}

func (c *redisProjectCache) Set(ctx context.Context, projects []*entity.Project) {
	if err := helpers.RedisSetJSON(ctx, c.rdb, projectListCacheKey, projects, c.ttl); err != nil && c.logger != nil {
		c.logger.WithError(err).Warn("project list cache set failed")
	}
}

func (c *redisProjectCache) Invalidate(ctx context.Context) {
	if err := helpers.RedisDel(ctx, c.rdb, projectListCacheKey); err != nil && c.logger != nil {
		c.logger.WithError(err).Warn("project list cache invalidation failed")
	}
}
