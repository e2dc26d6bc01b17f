package commands

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/rider"
	"profast/internal/pkg/errs"
	"profast/internal/pkg/guard"
)

var ErrDecideRiderCommandIsNotConstructed = errors.New(
	"DecideRiderCommand must be created via NewDecideRiderCommand constructor",
)

// DecideRiderCommand is an admin approving or rejecting a pending application.
type DecideRiderCommand struct {
	riderID kernel.UUID
	outcome rider.Status

	guard guard.ConstructorGuard
}

// NewDecideRiderCommand accepts "active" or "rejected".
func NewDecideRiderCommand(riderID kernel.UUID, status string) (DecideRiderCommand, error) {
	outcome, statusErr := rider.ParseStatus(status)
	if statusErr == nil && outcome == rider.Pending {
		statusErr = errs.NewValueIsInvalidErrorWithCause("status", errors.New("pending is not a decision"))
	}
	if err := errors.Join(riderID.Validate(), statusErr); err != nil {
		return DecideRiderCommand{}, err
	}

	return DecideRiderCommand{
		riderID: riderID,
		outcome: outcome,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built by NewDecideRiderCommand.
func (c DecideRiderCommand) Validate() error {
	return c.guard.Validate(ErrDecideRiderCommandIsNotConstructed)
}

func (c DecideRiderCommand) RiderID() kernel.UUID  { return c.riderID }
func (c DecideRiderCommand) Outcome() rider.Status { return c.outcome }
