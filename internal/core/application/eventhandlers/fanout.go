package eventhandlers

import (
	"context"
	"errors"

	"profast/internal/core/domain/model/parcel"
	"profast/internal/core/ports"
)

// Fanout hands every batch to each publisher in turn. One failing publisher does
// not keep the batch from the others.
type Fanout []ports.EventPublisher

func (f Fanout) Publish(ctx context.Context, events ...parcel.StatusChanged) error {
	var errs []error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, events...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
