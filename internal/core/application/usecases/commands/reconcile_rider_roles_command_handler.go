package commands

import (
	"context"

	"profast/internal/core/domain/model/kernel"
)

// ReconcileRiderRolesCommandHandler promotes every user that has an active rider
// application but still holds the user role. It never demotes.
type ReconcileRiderRolesCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewReconcileRiderRolesCommandHandler returns a handler writing through uowFactory.
func NewReconcileRiderRolesCommandHandler(uowFactory UserUoWFactory) ReconcileRiderRolesCommandHandler {
	return ReconcileRiderRolesCommandHandler{uowFactory: uowFactory}
}

// Handle returns the emails of the promoted users.
func (h ReconcileRiderRolesCommandHandler) Handle(
	ctx context.Context,
	command ReconcileRiderRolesCommand,
) ([]kernel.Email, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()

	candidates, err := repo.ListPromotable(ctx)
	if err != nil {
		return nil, err
	}

	promoted := make([]kernel.Email, 0, len(candidates))
	for _, u := range candidates {
		if !u.PromoteToRider() {
			continue
		}
		if _, err = repo.Update(ctx, u); err != nil {
			return nil, err
		}
		promoted = append(promoted, u.Email())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return promoted, nil
}
