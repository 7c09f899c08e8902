package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"scripvault/models"
)

const (
	catalogKey = "explore:catalog"
	catalogTTL = 5 * time.Minute
)

// CatalogCache caches the full explore catalog. Misses and Redis errors
// are treated the same: callers fall through to the database.
type CatalogCache interface {
	Get(ctx context.Context) ([]models.Stock, bool)
	Set(ctx context.Context, stocks []models.Stock)
	Invalidate(ctx context.Context)
}

// Catalog is the Redis-backed CatalogCache.
type Catalog struct {
	rdb *redis.Client
}

func NewCatalog(rdb *redis.Client) *Catalog {
	return &Catalog{rdb: rdb}
}

func (c *Catalog) Get(ctx context.Context) ([]models.Stock, bool) {
	data, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err != nil {
		return nil, false
	}
	var stocks []models.Stock
	if err := json.Unmarshal(data, &stocks); err != nil {
		return nil, false
	}
	return stocks, true
}

func (c *Catalog) Set(ctx context.Context, stocks []models.Stock) {
	data, err := json.Marshal(stocks)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, catalogKey, data, catalogTTL)
}

func (c *Catalog) Invalidate(ctx context.Context) {
	c.rdb.Del(ctx, catalogKey)
}
