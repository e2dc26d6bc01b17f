package queries

import (
	"context"

	"profast/internal/core/domain/model/warehouse"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListWarehousesQueryHandler runs ListWarehousesQuery.
type ListWarehousesQueryHandler struct {
	db *gorm.DB
}

func NewListWarehousesQueryHandler(db *gorm.DB) ListWarehousesQueryHandler {
	return ListWarehousesQueryHandler{db: db}
}

// Handle returns the service centres ordered by region and district.
func (h ListWarehousesQueryHandler) Handle(ctx context.Context, query ListWarehousesQuery) ([]warehouse.Warehouse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT region, district, city, covered_area, status, flowchart_url, longitude, latitude
		FROM warehouses
		ORDER BY region, district`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	warehouses := make([]warehouse.Warehouse, 0)
	for rows.Next() {
		var (
			w    warehouse.Warehouse
			area pq.StringArray
		)
		if err = rows.Scan(&w.Region, &w.District, &w.City, &area, &w.Status, &w.FlowchartURL, &w.Longitude, &w.Latitude); err != nil {
			return nil, err
		}
		w.CoveredArea = []string(area)
		if w.CoveredArea == nil {
			w.CoveredArea = []string{}
		}
		warehouses = append(warehouses, w)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return warehouses, nil
}
