package ports

import (
	"context"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider applications.
type RiderRepository interface {
	// Add persists a new application.
	Add(ctx context.Context, r *rider.Rider) error

	// Get retrieves a rider by id. Returns errs.ErrObjectNotFound if it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetByEmail retrieves the most recent application filed under email.
	// Returns errs.ErrObjectNotFound if there is none.
	GetByEmail(ctx context.Context, email kernel.Email) (*rider.Rider, error)

	// CompareAndSwap stores r's status only while the stored status equals expected.
	// Returns errs.ErrConflict if another decision was recorded first.
	CompareAndSwap(ctx context.Context, r *rider.Rider, expected rider.Status) (WriteResult, error)
}
