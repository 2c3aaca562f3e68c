// Package events provides the domain event contract shared by Predial
// platform services.
package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is the interface all domain events must implement.
type DomainEvent interface {
	EventID() string
	EventType() string
	AggregateID() string
	AggregateType() string
	TenantID() string
	OccurredAt() time.Time
}

// BaseEvent provides a default implementation of DomainEvent, meant to be
// embedded in concrete event structs.
type BaseEvent struct {
	id            string
	eventType     string
	aggregateID   string
	aggregateType string
	tenantID      string
	occurredAt    time.Time
}

// NewBaseEvent creates a BaseEvent with a generated UUID and the current time.
func NewBaseEvent(eventType, aggregateID, aggregateType, tenantID string) BaseEvent {
	return BaseEvent{
		id:            uuid.New().String(),
		eventType:     eventType,
		aggregateID:   aggregateID,
		aggregateType: aggregateType,
		tenantID:      tenantID,
		occurredAt:    time.Now().UTC(),
	}
}

// EventID returns the unique identifier for this event.
func (e BaseEvent) EventID() string { return e.id }

// EventType returns the type name of this event.
func (e BaseEvent) EventType() string { return e.eventType }

// AggregateID returns the identifier of the aggregate that produced this event.
func (e BaseEvent) AggregateID() string { return e.aggregateID }

// AggregateType returns the type name of the aggregate that produced this event.
func (e BaseEvent) AggregateType() string { return e.aggregateType }

// TenantID returns the tenant the event belongs to.
func (e BaseEvent) TenantID() string { return e.tenantID }

// OccurredAt returns the time at which this event occurred.
func (e BaseEvent) OccurredAt() time.Time { return e.occurredAt }
