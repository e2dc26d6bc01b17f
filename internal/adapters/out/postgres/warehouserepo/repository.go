package warehouserepo

import (
	"context"
	"fmt"
	"strings"

	"profast/internal/core/domain/model/warehouse"
	"profast/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWarehouseRepository upserts and lists service centres.
type GormWarehouseRepository struct {
	db *gorm.DB
}

func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

// Upsert writes ws in one transaction, replacing rows with the same district.
// It returns the number of rows written.
func (r *GormWarehouseRepository) Upsert(ctx context.Context, ws []warehouse.Warehouse) (int64, error) {
	if len(ws) == 0 {
		return 0, nil
	}

	dtos := make([]WarehouseDTO, 0, len(ws))
	for i, w := range ws {
		if strings.TrimSpace(w.District) == "" {
			return 0, errs.NewValueIsRequiredErrorWithCause("district", fmt.Errorf("warehouse #%d has no district", i))
		}
		dtos = append(dtos, fromDomain(w))
	}

	var written int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "district"}},
			UpdateAll: true,
		}).Create(&dtos)
		written = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return 0, err
	}

	return written, nil
}

// List returns every service centre ordered by region and district.
func (r *GormWarehouseRepository) List(ctx context.Context) ([]warehouse.Warehouse, error) {
	var dtos []WarehouseDTO
	if err := r.db.WithContext(ctx).Order("region").Order("district").Find(&dtos).Error; err != nil {
		return nil, err
	}

	ws := make([]warehouse.Warehouse, 0, len(dtos))
	for _, dto := range dtos {
		ws = append(ws, ToDomain(dto))
	}
	return ws, nil
}
