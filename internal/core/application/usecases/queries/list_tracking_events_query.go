package queries

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/guard"
)

var ErrListTrackingEventsQueryIsNotConstructed = errors.New(
	"ListTrackingEventsQuery must be created via NewListTrackingEventsQuery constructor",
)

// ListTrackingEventsQuery returns the tracking log of one parcel.
type ListTrackingEventsQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListTrackingEventsQuery requires a valid parcel id.
func NewListTrackingEventsQuery(parcelID kernel.UUID) (ListTrackingEventsQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return ListTrackingEventsQuery{}, err
	}
	return ListTrackingEventsQuery{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the query was built by NewListTrackingEventsQuery.
func (q ListTrackingEventsQuery) Validate() error {
	return q.guard.Validate(ErrListTrackingEventsQueryIsNotConstructed)
}

func (q ListTrackingEventsQuery) ParcelID() kernel.UUID { return q.parcelID }
