package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"profast/internal/core/domain/model/rider"
	"profast/internal/core/ports"
	"profast/internal/pkg/errs"
)

// DecideRiderResult carries the rider update counts and anything that went wrong
// without failing the decision.
type DecideRiderResult struct {
	ports.WriteResult
	RolePromoted bool
	Warnings     []string
}

// DecideRiderCommandHandler applies an admin decision to a pending application.
//
// Approval is a compound write in one transaction: the rider's status and the
// linked user's role. A missing user does not undo the approval; it is logged as a
// structured warning and returned in Warnings. Admins keep their role.
type DecideRiderCommandHandler struct {
	uowFactory RiderUoWFactory
	logger     *slog.Logger
}

// NewDecideRiderCommandHandler logs skipped role promotions to logger.
func NewDecideRiderCommandHandler(uowFactory RiderUoWFactory, logger *slog.Logger) DecideRiderCommandHandler {
	return DecideRiderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "DecideRiderCommandHandler"),
	}
}

// Handle returns the write counts plus any warnings about the linked user.
func (h DecideRiderCommandHandler) Handle(ctx context.Context, command DecideRiderCommand) (DecideRiderResult, error) {
	if err := command.Validate(); err != nil {
		return DecideRiderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DecideRiderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riders := uow.RiderRepository()
	users := uow.UserRepository()

	r, err := riders.Get(ctx, command.RiderID())
	if err != nil {
		return DecideRiderResult{}, err
	}

	if err = r.Decide(command.Outcome()); err != nil {
		return DecideRiderResult{}, err
	}

	res, err := riders.CompareAndSwap(ctx, r, r.LoadedStatus())
	if err != nil {
		return DecideRiderResult{}, err
	}

	result := DecideRiderResult{WriteResult: res}

	if r.Status() == rider.Active {
		u, getErr := users.GetByEmail(ctx, r.Email())
		switch {
		case errors.Is(getErr, errs.ErrObjectNotFound):
			h.logger.WarnContext(ctx, "approved rider has no user record, role not promoted",
				"rider_id", r.ID().String(),
				"email", r.Email().String(),
			)
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("no user with email %s, role was not promoted", r.Email()))
		case getErr != nil:
			return DecideRiderResult{}, getErr
		case u.PromoteToRider():
			if _, err = users.Update(ctx, u); err != nil {
				return DecideRiderResult{}, err
			}
			result.RolePromoted = true
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return DecideRiderResult{}, err
	}

	return result, nil
}
