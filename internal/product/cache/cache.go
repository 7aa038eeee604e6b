package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/YarenOpuz/smart-stock/internal/product/domain"
	"github.com/YarenOpuz/smart-stock/pkg/logger"
)

const productTTL = 5 * time.Minute

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// ProductCache is a read-through cache for single product lookups.
// A nil *ProductCache is valid and disables caching.
type ProductCache struct {
	client *redis.Client
}

// NewProductCache creates a product cache backed by the given client
func NewProductCache(client *redis.Client) *ProductCache {
	if client == nil {
		return nil
	}
	return &ProductCache{client: client}
}

func productKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// Get returns the cached product, if any
func (c *ProductCache) Get(ctx context.Context, id uint) (*domain.Product, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		return nil, false
	}

	var product domain.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, false
	}
	return &product, true
}

// Set stores the product with a bounded TTL
func (c *ProductCache) Set(ctx context.Context, product *domain.Product) {
	if c == nil || product == nil {
		return
	}

	data, err := json.Marshal(product)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, productKey(product.ID), data, productTTL).Err(); err != nil {
		logger.Warn(ctx).Err(err).Uint("product_id", product.ID).Msg("Failed to cache product")
	}
}

// Invalidate drops the cached entries for the given product IDs
func (c *ProductCache) Invalidate(ctx context.Context, ids ...uint) {
	if c == nil || len(ids) == 0 {
		return
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, productKey(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to invalidate product cache")
	}
}
