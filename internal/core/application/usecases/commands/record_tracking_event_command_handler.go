package commands

import (
	"context"

	"profast/internal/core/ports"
	"profast/internal/pkg/errs"
)

// RecordTrackingEventCommandHandler appends to the tracking store. Entries are never
// updated or deleted.
//
// Rules:
//   - the parcel must exist
//   - only an admin, the assigned rider or the sender may record an entry
//   - the entry carries the stored parcel's tracking id
type RecordTrackingEventCommandHandler struct {
	uowFactory ParcelUoWFactory
	repo       ports.TrackingRepository
}

// NewRecordTrackingEventCommandHandler reads parcels through uowFactory and appends to repo.
func NewRecordTrackingEventCommandHandler(
	uowFactory ParcelUoWFactory,
	repo ports.TrackingRepository,
) RecordTrackingEventCommandHandler {
	return RecordTrackingEventCommandHandler{uowFactory: uowFactory, repo: repo}
}

// Handle returns the store-assigned id of the appended entry.
func (h RecordTrackingEventCommandHandler) Handle(
	ctx context.Context,
	command RecordTrackingEventCommand,
) (ports.WriteResult, error) {
	if err := command.Validate(); err != nil {
		return ports.WriteResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.WriteResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ParcelRepository().Get(ctx, command.ParcelID())
	if err != nil {
		return ports.WriteResult{}, err
	}

	caller := command.Caller()
	if !command.CallerIsAdmin() && !p.IsAssignedTo(caller) && !p.CreatedBy().IsEqual(caller) {
		return ports.WriteResult{}, errs.NewForbiddenError(
			"only an admin, the assigned rider or the sender may record tracking",
		)
	}

	event := command.Event()
	event.TrackingID = p.TrackingID()

	id, err := h.repo.Append(ctx, event)
	if err != nil {
		return ports.WriteResult{}, err
	}

	return ports.WriteResult{InsertedID: id}, nil
}
