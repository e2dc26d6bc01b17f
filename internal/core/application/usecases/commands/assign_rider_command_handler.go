package commands

import (
	"context"
	"time"

	"profast/internal/core/domain/services"
	"profast/internal/core/ports"
)

// AssignRiderCommandHandler copies an active rider onto a pending parcel.
// The parcel row is written with a conditional update guarded on its loaded state,
// so two admins assigning the same parcel concurrently cannot both succeed.
type AssignRiderCommandHandler struct {
	uowFactory UoWFactory
	assigner   services.RiderAssigner
}

// NewAssignRiderCommandHandler returns a handler that loads the parcel and the
// rider in one unit of work.
func NewAssignRiderCommandHandler(uowFactory UoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
		assigner:   services.NewRiderAssigner(),
	}
}

// Handle returns the match/modify counts of the parcel update.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, command AssignRiderCommand) (ports.WriteResult, error) {
	if err := command.Validate(); err != nil {
		return ports.WriteResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.WriteResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcels := uow.ParcelRepository()
	riders := uow.RiderRepository()

	p, err := parcels.Get(ctx, command.ParcelID())
	if err != nil {
		return ports.WriteResult{}, err
	}

	r, err := riders.Get(ctx, command.RiderID())
	if err != nil {
		return ports.WriteResult{}, err
	}

	if err = h.assigner.Assign(p, r, command.Actor(), time.Now()); err != nil {
		return ports.WriteResult{}, err
	}

	res, err := parcels.CompareAndSwap(ctx, p, p.LoadedState())
	if err != nil {
		return ports.WriteResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.WriteResult{}, err
	}

	return res, nil
}
