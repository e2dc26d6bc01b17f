package commands

import (
	"context"

	"profast/internal/core/ports"
)

// ChangeUserRoleCommandHandler sets a user's role. Setting the current role again
// reports MatchedCount 1 and ModifiedCount 0.
type ChangeUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewChangeUserRoleCommandHandler returns a handler writing through uowFactory.
func NewChangeUserRoleCommandHandler(uowFactory UserUoWFactory) ChangeUserRoleCommandHandler {
	return ChangeUserRoleCommandHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound for an unknown user id.
func (h ChangeUserRoleCommandHandler) Handle(ctx context.Context, command ChangeUserRoleCommand) (ports.WriteResult, error) {
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

	repo := uow.UserRepository()

	u, err := repo.Get(ctx, command.UserID())
	if err != nil {
		return ports.WriteResult{}, err
	}

	changed, err := u.ChangeRole(command.Role())
	if err != nil {
		return ports.WriteResult{}, err
	}
	if !changed {
		return ports.WriteResult{MatchedCount: 1}, nil
	}

	res, err := repo.Update(ctx, u)
	if err != nil {
		return ports.WriteResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.WriteResult{}, err
	}

	return res, nil
}
