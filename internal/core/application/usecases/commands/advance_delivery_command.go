package commands

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"
	"profast/internal/pkg/guard"
)

var ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
)

// AdvanceDeliveryCommand is the assigned rider reporting pick-up or hand-over.
type AdvanceDeliveryCommand struct {
	parcelID kernel.UUID
	caller   kernel.Email
	status   parcel.DeliveryStatus

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryCommand accepts the wire name of the target status, e.g.
// "on_transit" or "delivered".
func NewAdvanceDeliveryCommand(parcelID kernel.UUID, caller kernel.Email, status string) (AdvanceDeliveryCommand, error) {
	target, statusErr := parcel.ParseDeliveryStatus(status)
	if err := errors.Join(parcelID.Validate(), caller.Validate(), statusErr); err != nil {
		return AdvanceDeliveryCommand{}, err
	}

	return AdvanceDeliveryCommand{
		parcelID: parcelID,
		caller:   caller,
		status:   target,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built by NewAdvanceDeliveryCommand.
func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

func (c AdvanceDeliveryCommand) ParcelID() kernel.UUID         { return c.parcelID }
func (c AdvanceDeliveryCommand) Caller() kernel.Email          { return c.caller }
func (c AdvanceDeliveryCommand) Status() parcel.DeliveryStatus { return c.status }
