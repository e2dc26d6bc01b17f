package ports

import (
	"context"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/tracking"
)

// TrackingRepository is the append-only parcel tracking log. It lives outside the
// relational unit of work.
type TrackingRepository interface {
	// Append stores e and returns the id the store assigned to it.
	Append(ctx context.Context, e tracking.Event) (string, error)

	// ListByParcel returns the parcel's log in chronological order.
	ListByParcel(ctx context.Context, parcelID kernel.UUID) ([]tracking.Event, error)
}
