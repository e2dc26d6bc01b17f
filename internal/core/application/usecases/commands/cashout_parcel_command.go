package commands

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/guard"
)

var ErrCashoutParcelCommandIsNotConstructed = errors.New(
	"CashoutParcelCommand must be created via NewCashoutParcelCommand constructor",
)

// CashoutParcelCommand is the assigned rider claiming the payout of a delivered parcel.
type CashoutParcelCommand struct {
	parcelID kernel.UUID
	caller   kernel.Email

	guard guard.ConstructorGuard
}

// NewCashoutParcelCommand requires the parcel id and the calling rider.
func NewCashoutParcelCommand(parcelID kernel.UUID, caller kernel.Email) (CashoutParcelCommand, error) {
	if err := errors.Join(parcelID.Validate(), caller.Validate()); err != nil {
		return CashoutParcelCommand{}, err
	}

	return CashoutParcelCommand{
		parcelID: parcelID,
		caller:   caller,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built by NewCashoutParcelCommand.
func (c CashoutParcelCommand) Validate() error {
	return c.guard.Validate(ErrCashoutParcelCommandIsNotConstructed)
}

func (c CashoutParcelCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c CashoutParcelCommand) Caller() kernel.Email  { return c.caller }
