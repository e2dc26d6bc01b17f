package ports

import (
	"context"

	"profast/internal/core/domain/model/parcel"
)

// EventPublisher delivers parcel status changes to interested parties after the
// change was committed. Delivery is best-effort.
type EventPublisher interface {
	Publish(ctx context.Context, events ...parcel.StatusChanged) error
}
