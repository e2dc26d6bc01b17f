package queries

import (
	"context"

	"profast/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelQueryHandler runs GetParcelQuery.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when the parcel does not exist.
func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (ParcelView, error) {
	if err := query.Validate(); err != nil {
		return ParcelView{}, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw("SELECT "+parcelColumns+" FROM parcels WHERE id = ?", query.ParcelID().Bytes()).
		Rows()
	if err != nil {
		return ParcelView{}, err
	}
	defer rows.Close()

	parcels, err := scanParcels(h.db, rows)
	if err != nil {
		return ParcelView{}, err
	}
	if len(parcels) == 0 {
		return ParcelView{}, errs.NewObjectNotFoundError("parcel", query.ParcelID().String())
	}

	return parcels[0], nil
}
