// Package ports defines the contracts between the parcel delivery core and its
// infrastructure: repositories, the unit of work, the token verifier, the payment
// gateway and the domain event publisher.
package ports

import (
	"context"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"
)

// WriteResult is the raw outcome of a store mutation. HTTP handlers return it to
// callers as acknowledged/insertedId/matchedCount/modifiedCount/deletedCount.
type WriteResult struct {
	InsertedID    string
	MatchedCount  int64
	ModifiedCount int64
	DeletedCount  int64
}

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel.
	Add(ctx context.Context, p *parcel.Parcel) error

	// Get retrieves a parcel by id. Returns errs.ErrObjectNotFound if it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// Delete removes a parcel while its stored statuses still equal expected and
	// returns the number of deleted rows (0 or 1). Deleting a missing parcel is not
	// an error.
	Delete(ctx context.Context, id kernel.UUID, expected parcel.State) (int64, error)

	// CompareAndSwap writes every mutable field of p in a single conditional update
	// that only matches while the stored statuses still equal expected.
	//
	// Returns errs.ErrConflict when the row exists but its statuses moved on, and
	// errs.ErrObjectNotFound when the row is gone. Of N concurrent swaps from the
	// same expected state exactly one succeeds.
	//
	// Example:
	//
	//	if err := p.Cashout(caller, time.Now()); err != nil {
	//	    return err
	//	}
	//	res, err := repo.CompareAndSwap(ctx, p, p.LoadedState())
	CompareAndSwap(ctx context.Context, p *parcel.Parcel, expected parcel.State) (WriteResult, error)
}
