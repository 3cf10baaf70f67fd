package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	dom "todolist/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyPage = "todo:page:"

// TodoCache caches list pages in Redis, keyed by page and limit.
type TodoCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTodoCache returns a new TodoCache.
func NewTodoCache(rdb *redis.Client, ttl time.Duration) *TodoCache {
	return &TodoCache{rdb: rdb, ttl: ttl}
}

// GetPage returns the cached page or nil if miss.
func (c *TodoCache) GetPage(ctx context.Context, page, limit int) (*dom.TodoPage, error) {
	b, err := c.rdb.Get(ctx, pageKey(page, limit)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var p dom.TodoPage
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SetPage stores the page in cache.
func (c *TodoCache) SetPage(ctx context.Context, page, limit int, p dom.TodoPage) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, pageKey(page, limit), b, c.ttl).Err()
}

// InvalidateAll removes every cached page (cache invalidation on write).
func (c *TodoCache) InvalidateAll(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, keyPage+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func pageKey(page, limit int) string {
	return fmt.Sprintf("%s%d:%d", keyPage, page, limit)
}
