package commands

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand is an admin's decision to hand a pending parcel to an active
// rider.
//
// Example:
//
//	cmd, err := NewAssignRiderCommand(parcelID, riderID, admin.Email)
//	if err != nil {
//	    return err
//	}
//	res, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // parcel or rider does not exist
//	case errors.Is(err, errs.ErrConflict):
//	    // parcel already assigned or rider not active
//	}
type AssignRiderCommand struct {
	parcelID kernel.UUID
	riderID  kernel.UUID
	actor    kernel.Email

	guard guard.ConstructorGuard
}

func NewAssignRiderCommand(parcelID, riderID kernel.UUID, actor kernel.Email) (AssignRiderCommand, error) {
	if err := errors.Join(parcelID.Validate(), riderID.Validate(), actor.Validate()); err != nil {
		return AssignRiderCommand{}, err
	}

	return AssignRiderCommand{
		parcelID: parcelID,
		riderID:  riderID,
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built by NewAssignRiderCommand.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

func (c AssignRiderCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c AssignRiderCommand) RiderID() kernel.UUID  { return c.riderID }
func (c AssignRiderCommand) Actor() kernel.Email   { return c.actor }
