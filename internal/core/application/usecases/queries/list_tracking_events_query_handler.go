package queries

import (
	"context"

	"profast/internal/core/domain/model/tracking"
	"profast/internal/core/ports"
)

// ListTrackingEventsQueryHandler reads the tracking log from the tracking store.
type ListTrackingEventsQueryHandler struct {
	repo ports.TrackingRepository
}

func NewListTrackingEventsQueryHandler(repo ports.TrackingRepository) ListTrackingEventsQueryHandler {
	return ListTrackingEventsQueryHandler{repo: repo}
}

// Handle returns the entries oldest first. A parcel without entries yields an
// empty slice.
func (h ListTrackingEventsQueryHandler) Handle(
	ctx context.Context,
	query ListTrackingEventsQuery,
) ([]tracking.Event, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events, err := h.repo.ListByParcel(ctx, query.ParcelID())
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []tracking.Event{}
	}
	return events, nil
}
