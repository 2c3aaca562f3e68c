package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/predialtech/financing-service/internal/domain/model"
	"github.com/predialtech/financing-service/internal/domain/port"
)

const keyPrefix = "financing:catalog:"

// CachedOfferCatalog is a read-through Redis decorator over another
// port.OfferCatalog. Cache failures degrade to the underlying source; a slow
// catalog is acceptable, a wrong or missing one is not.
type CachedOfferCatalog struct {
	inner  port.OfferCatalog
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedOfferCatalog(
	inner port.OfferCatalog,
	client *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedOfferCatalog {
	return &CachedOfferCatalog{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// ListActive serves the tenant catalog from Redis when present, falling back
// to the inner repository and repopulating on miss.
func (c *CachedOfferCatalog) ListActive(ctx context.Context, tenantID string) ([]model.MortgageOffer, error) {
	key := keyPrefix + tenantID

	cached, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var offers []model.MortgageOffer
		if err := json.Unmarshal(cached, &offers); err == nil {
			return offers, nil
		}
		c.logger.WarnContext(ctx, "discarding undecodable catalog cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "catalog cache read failed", "key", key, "error", err)
	}

	offers, err := c.inner.ListActive(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(offers); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.WarnContext(ctx, "catalog cache write failed", "key", key, "error", err)
		}
	}
	return offers, nil
}

// Invalidate drops the cached catalog for a tenant, for use by back-office
// triggers after catalog edits.
func (c *CachedOfferCatalog) Invalidate(ctx context.Context, tenantID string) error {
	return c.client.Del(ctx, keyPrefix+tenantID).Err()
}
