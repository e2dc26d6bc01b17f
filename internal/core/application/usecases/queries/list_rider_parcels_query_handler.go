package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListRiderParcelsQueryHandler runs ListRiderParcelsQuery.
type ListRiderParcelsQueryHandler struct {
	db *gorm.DB
}

func NewListRiderParcelsQueryHandler(db *gorm.DB) ListRiderParcelsQueryHandler {
	return ListRiderParcelsQueryHandler{db: db}
}

// Handle lists the rider's parcels in the requested queue, newest first.
func (h ListRiderParcelsQueryHandler) Handle(ctx context.Context, query ListRiderParcelsQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]string, 0, 2)
	for _, s := range query.Queue().Statuses() {
		statuses = append(statuses, s.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(
		"SELECT "+parcelColumns+` FROM parcels
		WHERE assigned_rider_email = ? AND delivery_status IN ? `+parcelOrder,
		query.RiderEmail().String(), statuses,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcels(h.db, rows)
}
