package commands

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/guard"
)

var ErrDeleteParcelCommandIsNotConstructed = errors.New(
	"DeleteParcelCommand must be created via NewDeleteParcelCommand constructor",
)

// DeleteParcelCommand removes a parcel that has not been handed to a rider yet.
type DeleteParcelCommand struct {
	parcelID      kernel.UUID
	caller        kernel.Email
	callerIsAdmin bool

	guard guard.ConstructorGuard
}

// NewDeleteParcelCommand records who asks for the deletion and whether they are an admin.
func NewDeleteParcelCommand(parcelID kernel.UUID, caller kernel.Email, callerIsAdmin bool) (DeleteParcelCommand, error) {
	if err := errors.Join(parcelID.Validate(), caller.Validate()); err != nil {
		return DeleteParcelCommand{}, err
	}

	return DeleteParcelCommand{
		parcelID:      parcelID,
		caller:        caller,
		callerIsAdmin: callerIsAdmin,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built by NewDeleteParcelCommand.
func (c DeleteParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeleteParcelCommandIsNotConstructed)
}

func (c DeleteParcelCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c DeleteParcelCommand) Caller() kernel.Email  { return c.caller }
func (c DeleteParcelCommand) CallerIsAdmin() bool   { return c.callerIsAdmin }
