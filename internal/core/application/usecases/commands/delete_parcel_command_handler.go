package commands

import (
	"context"
	"errors"
	"fmt"

	"profast/internal/core/domain/model/parcel"
	"profast/internal/core/ports"
	"profast/internal/pkg/errs"
)

// DeleteParcelCommandHandler deletes a parcel.
//
// Rules:
//   - a missing parcel yields DeletedCount 0, not an error
//   - only the sender or an admin may delete
//   - only pending parcels may be deleted; an assigned parcel is a conflict
type DeleteParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewDeleteParcelCommandHandler returns a handler writing through uowFactory.
func NewDeleteParcelCommandHandler(uowFactory ParcelUoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of deleted rows, 0 or 1.
func (h DeleteParcelCommandHandler) Handle(ctx context.Context, command DeleteParcelCommand) (ports.WriteResult, error) {
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
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ports.WriteResult{DeletedCount: 0}, nil
	}
	if err != nil {
		return ports.WriteResult{}, err
	}

	if !command.CallerIsAdmin() && !p.CreatedBy().IsEqual(command.Caller()) {
		return ports.WriteResult{}, errs.NewForbiddenError("only the sender or an admin may delete a parcel")
	}
	if p.DeliveryStatus() != parcel.Pending {
		return ports.WriteResult{}, errs.NewConflictError(
			"parcel",
			fmt.Sprintf("cannot delete a parcel that is %s", p.DeliveryStatus()),
		)
	}

	deleted, err := repo.Delete(ctx, p.ID(), p.LoadedState())
	if err != nil {
		return ports.WriteResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.WriteResult{}, err
	}

	return ports.WriteResult{DeletedCount: deleted}, nil
}
