package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/philly/inkwell/internal/categories/domain"
	"github.com/philly/inkwell/internal/categories/ports"
	"github.com/philly/inkwell/internal/platform/logger"
)

const categoriesKey = "inkwell:categories"

const DefaultCategoryTTL = 5 * time.Minute

// CategoryCache stores the rendered category list in Redis. A nil client
// turns every call into a miss so the service always reads the database.
type CategoryCache struct {
	client *goredis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCategoryCache(client *goredis.Client, ttl time.Duration, logger logger.Logger) *CategoryCache {
	if ttl <= 0 {
		ttl = DefaultCategoryTTL
	}
	return &CategoryCache{client: client, ttl: ttl, logger: logger}
}

func (c *CategoryCache) Get(ctx context.Context) ([]*domain.Category, bool) {
	if c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.logger.Warn(ctx, "category cache read failed", "error", err)
		}
		return nil, false
	}
	var out []*domain.Category
	if err := json.Unmarshal(data, &out); err != nil {
		c.logger.Warn(ctx, "category cache entry unreadable", "error", err)
		return nil, false
	}
	return out, true
}

func (c *CategoryCache) Set(ctx context.Context, categories []*domain.Category) {
	if c.client == nil {
		return
	}
	payload, err := json.Marshal(categories)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, categoriesKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn(ctx, "category cache write failed", "error", err)
	}
}

func (c *CategoryCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, categoriesKey).Err(); err != nil {
		c.logger.Warn(ctx, "category cache invalidation failed", "error", err)
	}
}

var _ ports.CategoryCache = (*CategoryCache)(nil)
