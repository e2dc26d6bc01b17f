package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"profast/internal/core/domain/model/rider"
	"profast/internal/core/ports"
	"profast/internal/pkg/errs"
)

// ApplyRiderCommandHandler stores a pending application. An email with a pending
// or active application cannot apply again; a rejected applicant can.
type ApplyRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewApplyRiderCommandHandler returns a handler writing through uowFactory.
func NewApplyRiderCommandHandler(uowFactory RiderUoWFactory) ApplyRiderCommandHandler {
	return ApplyRiderCommandHandler{uowFactory: uowFactory}
}

// Handle returns the new application id in InsertedID.
func (h ApplyRiderCommandHandler) Handle(ctx context.Context, command ApplyRiderCommand) (ports.WriteResult, error) {
	if err := command.Validate(); err != nil {
		return ports.WriteResult{}, err
	}

	r, err := rider.NewRider(command.RiderID(), command.Email(), command.Profile(), time.Now())
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

	repo := uow.RiderRepository()

	existing, err := repo.GetByEmail(ctx, command.Email())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
	case err != nil:
		return ports.WriteResult{}, err
	case existing.Status() != rider.Rejected:
		return ports.WriteResult{}, errs.NewConflictError(
			"rider",
			fmt.Sprintf("%s already has a %s application", command.Email(), existing.Status()),
		)
	}

	if err = repo.Add(ctx, r); err != nil {
		return ports.WriteResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.WriteResult{}, err
	}

	return ports.WriteResult{InsertedID: r.ID().String()}, nil
}
