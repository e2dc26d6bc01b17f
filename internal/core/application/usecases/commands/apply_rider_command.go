package commands

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/rider"
	"profast/internal/pkg/guard"
)

var ErrApplyRiderCommandIsNotConstructed = errors.New(
	"ApplyRiderCommand must be created via NewApplyRiderCommand constructor",
)

// ApplyRiderCommand files a rider application for the caller's email.
type ApplyRiderCommand struct {
	riderID kernel.UUID
	email   kernel.Email
	profile rider.Profile

	guard guard.ConstructorGuard
}

// NewApplyRiderCommand validates the applicant and the profile fields.
func NewApplyRiderCommand(riderID kernel.UUID, email kernel.Email, profile rider.Profile) (ApplyRiderCommand, error) {
	if err := errors.Join(riderID.Validate(), email.Validate()); err != nil {
		return ApplyRiderCommand{}, err
	}

	return ApplyRiderCommand{
		riderID: riderID,
		email:   email,
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built by NewApplyRiderCommand.
func (c ApplyRiderCommand) Validate() error {
	return c.guard.Validate(ErrApplyRiderCommandIsNotConstructed)
}

func (c ApplyRiderCommand) RiderID() kernel.UUID   { return c.riderID }
func (c ApplyRiderCommand) Email() kernel.Email    { return c.email }
func (c ApplyRiderCommand) Profile() rider.Profile { return c.profile }
