package queries

import (
	"errors"

	"profast/internal/pkg/guard"
)

var ErrFindPaymentMismatchesQueryIsNotConstructed = errors.New(
	"FindPaymentMismatchesQuery must be created via NewFindPaymentMismatchesQuery constructor",
)

// FindPaymentMismatchesQuery finds parcels whose payment status disagrees with the
// payments table. The engine never produces them; writes made outside it can.
type FindPaymentMismatchesQuery struct {
	guard guard.ConstructorGuard
}

// NewFindPaymentMismatchesQuery scans every parcel; it has no filters.
func NewFindPaymentMismatchesQuery() FindPaymentMismatchesQuery {
	return FindPaymentMismatchesQuery{guard: guard.NewConstructorGuard()}
}

// Validate reports whether the query was built by NewFindPaymentMismatchesQuery.
func (q FindPaymentMismatchesQuery) Validate() error {
	return q.guard.Validate(ErrFindPaymentMismatchesQueryIsNotConstructed)
}
