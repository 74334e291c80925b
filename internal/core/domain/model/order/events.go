package order

import (
	"time"

	"fleet/internal/core/domain/model/kernel"
)

type EventType string

const (
	EventCreated    EventType = "order.created"
	EventAssigned   EventType = "order.assigned"
	EventUnassigned EventType = "order.unassigned"
	EventCancelled  EventType = "order.cancelled"
	EventShipped    EventType = "order.shipped"
)

// Event records one lifecycle change of an order. Events are collected on the
// aggregate and published only after the transaction that produced them commits.
type Event struct {
	ID         kernel.UUID
	Type       EventType
	OrderID    kernel.UUID
	CompanyID  kernel.UUID
	VehicleID  *kernel.UUID
	Status     Status
	OccurredAt time.Time
}
