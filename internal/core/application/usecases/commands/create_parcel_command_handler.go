package commands

import (
	"context"
	"time"

	"profast/internal/core/domain/model/parcel"
	"profast/internal/core/ports"
)

// CreateParcelCommandHandler stores a new pending, unpaid parcel.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler returns a handler writing through uowFactory.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{uowFactory: uowFactory}
}

// Handle creates the aggregate and returns the inserted id.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, command CreateParcelCommand) (ports.WriteResult, error) {
	if err := command.Validate(); err != nil {
		return ports.WriteResult{}, err
	}

	p, err := parcel.NewParcel(command.ParcelID(), command.CreatedBy(), command.Details(), time.Now())
	if err != nil {
		return ports.WriteResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ports.WriteResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, p); err != nil {
		return ports.WriteResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.WriteResult{}, err
	}

	return ports.WriteResult{InsertedID: p.ID().String()}, nil
}
