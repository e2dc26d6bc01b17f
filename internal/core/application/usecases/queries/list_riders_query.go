package queries

import (
	"errors"

	"profast/internal/core/domain/model/rider"
	"profast/internal/pkg/guard"
)

var ErrListRidersQueryIsNotConstructed = errors.New(
	"ListRidersQuery must be created via NewListRidersQuery constructor",
)

// ListRidersQuery lists rider applications in one status.
type ListRidersQuery struct {
	status rider.Status

	guard guard.ConstructorGuard
}

// NewListRidersQuery lists applications with the given status.
func NewListRidersQuery(status rider.Status) (ListRidersQuery, error) {
	if err := status.Validate(); err != nil {
		return ListRidersQuery{}, err
	}
	return ListRidersQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the query was built by NewListRidersQuery.
func (q ListRidersQuery) Validate() error {
	return q.guard.Validate(ErrListRidersQueryIsNotConstructed)
}

func (q ListRidersQuery) Status() rider.Status { return q.status }
