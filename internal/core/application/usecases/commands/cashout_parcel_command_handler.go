package commands

import (
	"context"
	"time"

	"profast/internal/core/ports"
)

// CashoutParcelCommandHandler marks a delivered parcel as cashed out.
//
// The write is a single conditional update guarded on cashout_status=not_cashed and
// the loaded delivery status. When N requests race for the same parcel, every one of
// them may pass the in-memory check, but the store accepts exactly one update and
// the others fail with errs.ErrConflict.
type CashoutParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCashoutParcelCommandHandler returns a handler writing through uowFactory.
func NewCashoutParcelCommandHandler(uowFactory ParcelUoWFactory) CashoutParcelCommandHandler {
	return CashoutParcelCommandHandler{uowFactory: uowFactory}
}

// Handle returns ModifiedCount 1 on success. Cashing out twice is a conflict.
func (h CashoutParcelCommandHandler) Handle(ctx context.Context, command CashoutParcelCommand) (ports.WriteResult, error) {
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

	if err = p.Cashout(command.Caller(), time.Now()); err != nil {
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
