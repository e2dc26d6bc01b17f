// Package warehouserepo stores the service centre list. It is written only by the
// seeding tool and read by the warehouses query.
package warehouserepo

import (
	"profast/internal/core/domain/model/warehouse"

	"github.com/lib/pq"
)

// WarehouseDTO is the row of the warehouses table. A district has one centre.
type WarehouseDTO struct {
	District     string         `gorm:"primaryKey"`
	Region       string         `gorm:"index;not null"`
	City         string         `gorm:"not null"`
	CoveredArea  pq.StringArray `gorm:"type:text[]"`
	Status       string         `gorm:"not null"`
	FlowchartURL string
	Longitude    float64
	Latitude     float64
}

func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func fromDomain(w warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		District:     w.District,
		Region:       w.Region,
		City:         w.City,
		CoveredArea:  pq.StringArray(w.CoveredArea),
		Status:       w.Status,
		FlowchartURL: w.FlowchartURL,
		Longitude:    w.Longitude,
		Latitude:     w.Latitude,
	}
}

// ToDomain converts a row to the read model.
func ToDomain(dto WarehouseDTO) warehouse.Warehouse {
	area := []string(dto.CoveredArea)
	if area == nil {
		area = []string{}
	}
	return warehouse.Warehouse{
		Region:       dto.Region,
		District:     dto.District,
		City:         dto.City,
		CoveredArea:  area,
		Status:       dto.Status,
		FlowchartURL: dto.FlowchartURL,
		Longitude:    dto.Longitude,
		Latitude:     dto.Latitude,
	}
}
