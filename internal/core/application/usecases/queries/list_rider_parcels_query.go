package queries

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"
	"profast/internal/pkg/guard"
)

var ErrListRiderParcelsQueryIsNotConstructed = errors.New(
	"ListRiderParcelsQuery must be created via NewListRiderParcelsQuery constructor",
)

// RiderQueue selects which of a rider's parcels to list.
type RiderQueue int

const (
	// ActiveQueue holds parcels still to be picked up or delivered.
	ActiveQueue RiderQueue = iota
	// CompletedQueue holds delivered parcels, cashed out or not.
	CompletedQueue
)

// Statuses returns the delivery statuses that make up the queue.
func (q RiderQueue) Statuses() []parcel.DeliveryStatus {
	if q == CompletedQueue {
		return []parcel.DeliveryStatus{parcel.Delivered, parcel.ServiceCenterDelivered}
	}
	return []parcel.DeliveryStatus{parcel.RiderAssigned, parcel.OnTransit}
}

// ListRiderParcelsQuery lists parcels assigned to a rider.
type ListRiderParcelsQuery struct {
	riderEmail kernel.Email
	queue      RiderQueue

	guard guard.ConstructorGuard
}

// NewListRiderParcelsQuery lists the parcels of riderEmail in queue.
func NewListRiderParcelsQuery(riderEmail kernel.Email, queue RiderQueue) (ListRiderParcelsQuery, error) {
	if err := riderEmail.Validate(); err != nil {
		return ListRiderParcelsQuery{}, err
	}
	return ListRiderParcelsQuery{riderEmail: riderEmail, queue: queue, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the query was built by NewListRiderParcelsQuery.
func (q ListRiderParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListRiderParcelsQueryIsNotConstructed)
}

func (q ListRiderParcelsQuery) RiderEmail() kernel.Email { return q.riderEmail }
func (q ListRiderParcelsQuery) Queue() RiderQueue        { return q.queue }
