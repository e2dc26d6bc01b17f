package queries

import (
	"errors"
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/guard"
)

var ErrRiderEarningsQueryIsNotConstructed = errors.New(
	"RiderEarningsQuery must be created via NewRiderEarningsQuery constructor",
)

// RiderEarningsQuery summarizes a rider's payouts as of a moment in time.
type RiderEarningsQuery struct {
	riderEmail kernel.Email
	asOf       time.Time

	guard guard.ConstructorGuard
}

// NewRiderEarningsQuery builds the query. A zero asOf means now. The period
// boundaries are computed in asOf's location.
func NewRiderEarningsQuery(riderEmail kernel.Email, asOf time.Time) (RiderEarningsQuery, error) {
	if err := riderEmail.Validate(); err != nil {
		return RiderEarningsQuery{}, err
	}
	if asOf.IsZero() {
		asOf = time.Now()
	}
	return RiderEarningsQuery{riderEmail: riderEmail, asOf: asOf, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the query was built by NewRiderEarningsQuery.
func (q RiderEarningsQuery) Validate() error {
	return q.guard.Validate(ErrRiderEarningsQueryIsNotConstructed)
}

func (q RiderEarningsQuery) RiderEmail() kernel.Email { return q.riderEmail }
func (q RiderEarningsQuery) AsOf() time.Time          { return q.asOf }
