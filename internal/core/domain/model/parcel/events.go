package parcel

import (
	"time"

	"profast/internal/core/domain/model/kernel"
)

// EventKind names the transition that produced a StatusChanged event.
type EventKind string

const (
	EventCreated       EventKind = "created"
	EventRiderAssigned EventKind = "rider_assigned"
	EventPickedUp      EventKind = "picked_up"
	EventDelivered     EventKind = "delivered"
	EventCashedOut     EventKind = "cashed_out"
	EventPaid          EventKind = "paid"
)

// StatusChanged is raised by every successful transition of a parcel. Events are
// collected on the aggregate and published after the surrounding unit of work
// commits.
type StatusChanged struct {
	ParcelID   kernel.UUID
	TrackingID string
	Kind       EventKind
	From       string
	To         string
	Actor      kernel.Email
	At         time.Time
}
