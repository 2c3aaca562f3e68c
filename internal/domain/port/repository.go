package port

import (
	"context"

	"github.com/predialtech/financing-service/internal/domain/event"
	"github.com/predialtech/financing-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// OfferCatalog reads the tenant's mortgage product catalog. The catalog is
// maintained elsewhere on the platform; this service only consumes it.
type OfferCatalog interface {
	ListActive(ctx context.Context, tenantID string) ([]model.MortgageOffer, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
