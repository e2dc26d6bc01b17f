package services

import (
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"
	"profast/internal/core/domain/model/rider"
)

// RiderAssigner is a domain service that links a rider to a parcel.
//
// Business rules:
//   - The rider must be active; pending and rejected riders are a conflict
//   - The parcel must be pending and unassigned; otherwise it is left untouched
//   - The rider snapshot (id, name, email, phone) is copied as one value
//
// Example usage:
//
//	assigner := services.NewRiderAssigner()
//	if err := assigner.Assign(p, r, admin, time.Now()); err != nil {
//	    return err
//	}
type RiderAssigner struct{}

// NewRiderAssigner creates a new RiderAssigner instance.
func NewRiderAssigner() RiderAssigner {
	return RiderAssigner{}
}

// Assign checks both aggregates and moves the parcel to RiderAssigned on behalf of
// actor.
func (RiderAssigner) Assign(p *parcel.Parcel, r *rider.Rider, actor kernel.Email, at time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}

	snapshot, err := r.AssignmentSnapshot()
	if err != nil {
		return err
	}

	return p.AssignRider(snapshot, actor, at)
}
