package queries

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/guard"
)

var ErrGetUserRoleQueryIsNotConstructed = errors.New(
	"GetUserRoleQuery must be created via NewGetUserRoleQuery constructor",
)

// GetUserRoleQuery looks up the role stored for an email.
type GetUserRoleQuery struct {
	email kernel.Email

	guard guard.ConstructorGuard
}

// NewGetUserRoleQuery looks up the role stored for email.
func NewGetUserRoleQuery(email kernel.Email) (GetUserRoleQuery, error) {
	if err := email.Validate(); err != nil {
		return GetUserRoleQuery{}, err
	}
	return GetUserRoleQuery{email: email, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the query was built by NewGetUserRoleQuery.
func (q GetUserRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetUserRoleQueryIsNotConstructed)
}

func (q GetUserRoleQuery) Email() kernel.Email { return q.email }
