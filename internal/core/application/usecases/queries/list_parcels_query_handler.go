package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// ListParcelsQueryHandler runs ListParcelsQuery.
type ListParcelsQueryHandler struct {
	db *gorm.DB
}

func NewListParcelsQueryHandler(db *gorm.DB) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{db: db}
}

// Handle returns the matching parcels, newest first.
func (h ListParcelsQueryHandler) Handle(ctx context.Context, query ListParcelsQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if query.createdBy != nil {
		where = append(where, "created_by = ?")
		args = append(args, query.createdBy.String())
	}
	if query.paymentStatus != nil {
		where = append(where, "payment_status = ?")
		args = append(args, query.paymentStatus.String())
	}
	if query.deliveryStatus != nil {
		where = append(where, "delivery_status = ?")
		args = append(args, query.deliveryStatus.String())
	}

	sql := "SELECT " + parcelColumns + " FROM parcels"
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += " " + parcelOrder

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcels(h.db, rows)
}
