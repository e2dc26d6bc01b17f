package commands

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/user"
	"profast/internal/pkg/guard"
)

var ErrChangeUserRoleCommandIsNotConstructed = errors.New(
	"ChangeUserRoleCommand must be created via NewChangeUserRoleCommand constructor",
)

// ChangeUserRoleCommand is an admin setting a user's role.
type ChangeUserRoleCommand struct {
	userID kernel.UUID
	role   user.Role

	guard guard.ConstructorGuard
}

// NewChangeUserRoleCommand accepts "user", "rider" or "admin".
func NewChangeUserRoleCommand(userID kernel.UUID, role string) (ChangeUserRoleCommand, error) {
	parsed, roleErr := user.ParseRole(role)
	if err := errors.Join(userID.Validate(), roleErr); err != nil {
		return ChangeUserRoleCommand{}, err
	}

	return ChangeUserRoleCommand{
		userID: userID,
		role:   parsed,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built by NewChangeUserRoleCommand.
func (c ChangeUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserRoleCommandIsNotConstructed)
}

func (c ChangeUserRoleCommand) UserID() kernel.UUID { return c.userID }
func (c ChangeUserRoleCommand) Role() user.Role     { return c.role }
