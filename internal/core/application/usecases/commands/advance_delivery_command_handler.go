package commands

import (
	"context"
	"time"

	"profast/internal/core/ports"
)

// AdvanceDeliveryCommandHandler moves a parcel along its delivery path on behalf of
// the assigned rider. Any other caller gets errs.ErrForbidden and nothing is written.
type AdvanceDeliveryCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewAdvanceDeliveryCommandHandler returns a handler writing through uowFactory.
func NewAdvanceDeliveryCommandHandler(uowFactory ParcelUoWFactory) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle returns ModifiedCount 1 when the parcel moved. A concurrent change to the
// same parcel is reported as errs.ErrConflict.
func (h AdvanceDeliveryCommandHandler) Handle(ctx context.Context, command AdvanceDeliveryCommand) (ports.WriteResult, error) {
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

	repo := uow.ParcelRepository()

	p, err := repo.Get(ctx, command.ParcelID())
	if err != nil {
		return ports.WriteResult{}, err
	}

	if err = p.Advance(command.Caller(), command.Status(), time.Now()); err != nil {
		return ports.WriteResult{}, err
	}

	res, err := repo.CompareAndSwap(ctx, p, p.LoadedState())
	if err != nil {
		return ports.WriteResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.WriteResult{}, err
	}

	return res, nil
}
