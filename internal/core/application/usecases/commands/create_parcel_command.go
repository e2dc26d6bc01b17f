package commands

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"
	"profast/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand books a new parcel on behalf of its sender.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand(kernel.NewUUID(), caller.Email, details)
//	if err != nil {
//	    return err
//	}
//	res, err := handler.Handle(ctx, cmd)
type CreateParcelCommand struct {
	parcelID  kernel.UUID
	createdBy kernel.Email
	details   parcel.Details

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand validates the identifiers. Parcel details are validated by
// the aggregate itself.
func NewCreateParcelCommand(parcelID kernel.UUID, createdBy kernel.Email, details parcel.Details) (CreateParcelCommand, error) {
	if err := errors.Join(parcelID.Validate(), createdBy.Validate()); err != nil {
		return CreateParcelCommand{}, err
	}

	return CreateParcelCommand{
		parcelID:  parcelID,
		createdBy: createdBy,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built by NewCreateParcelCommand.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

func (c CreateParcelCommand) ParcelID() kernel.UUID   { return c.parcelID }
func (c CreateParcelCommand) CreatedBy() kernel.Email { return c.createdBy }
func (c CreateParcelCommand) Details() parcel.Details { return c.details }
