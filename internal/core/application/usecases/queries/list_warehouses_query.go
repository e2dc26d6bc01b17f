package queries

import (
	"errors"

	"profast/internal/pkg/guard"
)

var ErrListWarehousesQueryIsNotConstructed = errors.New(
	"ListWarehousesQuery must be created via NewListWarehousesQuery constructor",
)

// ListWarehousesQuery lists every service centre.
type ListWarehousesQuery struct {
	guard guard.ConstructorGuard
}

// NewListWarehousesQuery lists every warehouse.
func NewListWarehousesQuery() ListWarehousesQuery {
	return ListWarehousesQuery{guard: guard.NewConstructorGuard()}
}

// Validate reports whether the query was built by NewListWarehousesQuery.
func (q ListWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrListWarehousesQueryIsNotConstructed)
}
