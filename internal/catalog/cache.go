package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/groomshop/grooming-scheduler/internal/models"
)

const cacheTTL = 12 * time.Hour

// CachedCatalog is a Redis read-through layer over another Catalog.
// Service types are immutable, so cached entries never go stale.
// Redis failures fall back to the inner catalog.
type CachedCatalog struct {
	inner Catalog
	rdb   *redis.Client
}

func NewCachedCatalog(inner Catalog, rdb *redis.Client) *CachedCatalog {
	return &CachedCatalog{inner: inner, rdb: rdb}
}

func cacheKey(id uint) string {
	return fmt.Sprintf("service_type:%d", id)
}

func (c *CachedCatalog) GetServiceType(
	ctx context.Context,
	id uint,
) (*models.ServiceType, error) {

	if b, err := c.rdb.Get(ctx, cacheKey(id)).Bytes(); err == nil {
		var st models.ServiceType
		if err := json.Unmarshal(b, &st); err == nil {
			return &st, nil
		}
	}

	st, err := c.inner.GetServiceType(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(st); err == nil {
		c.rdb.Set(ctx, cacheKey(st.ID), b, cacheTTL)
	}

	return st, nil
}

func (c *CachedCatalog) ListServiceTypes(
	ctx context.Context,
) ([]models.ServiceType, error) {
	return c.inner.ListServiceTypes(ctx)
}

var _ Catalog = (*CachedCatalog)(nil)
