package commands

import (
	"errors"

	"profast/internal/pkg/guard"
)

var ErrReconcileRiderRolesCommandIsNotConstructed = errors.New(
	"ReconcileRiderRolesCommand must be created via NewReconcileRiderRolesCommand constructor",
)

// ReconcileRiderRolesCommand retries the role promotion of approved riders whose
// user record was missing or not updated at approval time.
type ReconcileRiderRolesCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileRiderRolesCommand takes no arguments; the command covers every user.
func NewReconcileRiderRolesCommand() ReconcileRiderRolesCommand {
	return ReconcileRiderRolesCommand{guard: guard.NewConstructorGuard()}
}

// Validate reports whether the command was built by NewReconcileRiderRolesCommand.
func (c ReconcileRiderRolesCommand) Validate() error {
	return c.guard.Validate(ErrReconcileRiderRolesCommandIsNotConstructed)
}
