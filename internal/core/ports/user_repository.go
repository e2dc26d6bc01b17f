package ports

import (
	"context"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user. A second user with the same email is rejected with
	// errs.ErrConflict, including when two inserts race.
	Add(ctx context.Context, u *user.User) error

	// Get retrieves a user by id. Returns errs.ErrObjectNotFound if it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by email. Returns errs.ErrObjectNotFound if it does
	// not exist.
	GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error)

	// Update stores the user's mutable fields and reports matched and modified counts.
	Update(ctx context.Context, u *user.User) (WriteResult, error)

	// ListPromotable returns users that still have the user role although an active
	// rider application exists for their email.
	ListPromotable(ctx context.Context) ([]*user.User, error)
}
