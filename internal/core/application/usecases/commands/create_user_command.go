package commands

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand registers the account of a signed-in identity.
type CreateUserCommand struct {
	userID   kernel.UUID
	email    kernel.Email
	name     string
	photoURL string

	guard guard.ConstructorGuard
}

// NewCreateUserCommand builds a command for a plain user. Name and photo URL are
// optional.
func NewCreateUserCommand(userID kernel.UUID, email kernel.Email, name, photoURL string) (CreateUserCommand, error) {
	if err := errors.Join(userID.Validate(), email.Validate()); err != nil {
		return CreateUserCommand{}, err
	}

	return CreateUserCommand{
		userID:   userID,
		email:    email,
		name:     name,
		photoURL: photoURL,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built by NewCreateUserCommand.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) UserID() kernel.UUID { return c.userID }
func (c CreateUserCommand) Email() kernel.Email { return c.email }
func (c CreateUserCommand) Name() string        { return c.name }
func (c CreateUserCommand) PhotoURL() string    { return c.photoURL }
