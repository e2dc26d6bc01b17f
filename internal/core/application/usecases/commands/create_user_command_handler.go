package commands

import (
	"context"
	"errors"
	"time"

	"profast/internal/core/domain/model/user"
	"profast/internal/core/ports"
	"profast/internal/pkg/errs"
)

// CreateUserResult tells the caller whether the user was inserted.
type CreateUserResult struct {
	ports.WriteResult
	AlreadyExists bool
}

// CreateUserCommandHandler creates a user once per email. A second attempt, even
// one racing the first, reports AlreadyExists and writes nothing.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewCreateUserCommandHandler returns a handler writing through uowFactory.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{uowFactory: uowFactory}
}

// Handle reports AlreadyExists instead of failing when the email is taken.
func (h CreateUserCommandHandler) Handle(ctx context.Context, command CreateUserCommand) (CreateUserResult, error) {
	if err := command.Validate(); err != nil {
		return CreateUserResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateUserResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()

	_, err := repo.GetByEmail(ctx, command.Email())
	if err == nil {
		return CreateUserResult{AlreadyExists: true}, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return CreateUserResult{}, err
	}

	u, err := user.NewUser(command.UserID(), command.Email(), command.Name(), command.PhotoURL(), time.Now())
	if err != nil {
		return CreateUserResult{}, err
	}

	err = repo.Add(ctx, u)
	if errors.Is(err, errs.ErrConflict) {
		return CreateUserResult{AlreadyExists: true}, nil
	}
	if err != nil {
		return CreateUserResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateUserResult{}, err
	}

	return CreateUserResult{WriteResult: ports.WriteResult{InsertedID: u.ID().String()}}, nil
}
