package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/TanakaTsuyoshi-10/step4backend/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ProductCache is a read-through cache for product-by-code lookups. A nil
// *ProductCache is valid and behaves as a permanent miss, so callers never
// need to branch on whether caching is configured.
type ProductCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *logrus.Logger
}

func NewProductCache(rdb *redis.Client, ttl time.Duration, logger *logrus.Logger) *ProductCache {
	if rdb == nil {
		return nil
	}
	return &ProductCache{
		rdb: rdb,
		ttl: ttl,
		log: logger,
	}
}

func key(code int64) string {
	return fmt.Sprintf("product:code:%d", code)
}

// Get returns the cached product for code, or (nil, false) on a miss.
// Redis failures degrade to a miss; the lookup falls through to the store.
func (c *ProductCache) Get(ctx context.Context, code int64) (*domain.Product, bool) {
	if c == nil {
		return nil, false
	}

	payload, err := c.rdb.Get(ctx, key(code)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Cache read failed for code %d: %v", code, err)
		}
		return nil, false
	}

	var product domain.Product
	if err := json.Unmarshal([]byte(payload), &product); err != nil {
		c.log.Warnf("Cache entry for code %d is corrupt, ignoring: %v", code, err)
		return nil, false
	}
	return &product, true
}

// Set stores the product under its code. Failures are logged and swallowed.
func (c *ProductCache) Set(ctx context.Context, product *domain.Product) {
	if c == nil || product == nil {
		return
	}

	payload, err := json.Marshal(product)
	if err != nil {
		c.log.Warnf("Cache marshal failed for code %d: %v", product.Code, err)
		return
	}

	if err := c.rdb.Set(ctx, key(product.Code), payload, c.ttl).Err(); err != nil {
		c.log.Warnf("Cache write failed for code %d: %v", product.Code, err)
	}
}
