// Package riderrepo persists rider applications in PostgreSQL.
package riderrepo

import (
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO is the row of the riders table. One email may own several rows when a
// rejected applicant applies again.
type RiderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email            string    `gorm:"index;not null"`
	Name             string    `gorm:"not null"`
	Phone            string    `gorm:"not null"`
	Age              int       `gorm:"not null"`
	Region           string
	District         string
	NID              string `gorm:"column:nid"`
	BikeBrand        string
	BikeRegistration string
	Status           string    `gorm:"index;not null"`
	CreatedAt        time.Time `gorm:"index;not null;autoCreateTime:false"`
}

func (RiderDTO) TableName() string {
	return "riders"
}

func fromDomain(r *rider.Rider) RiderDTO {
	p := r.Profile()
	return RiderDTO{
		ID:               r.ID().Bytes(),
		Email:            r.Email().String(),
		Name:             p.Name,
		Phone:            p.Phone,
		Age:              p.Age,
		Region:           p.Region,
		District:         p.District,
		NID:              p.NID,
		BikeBrand:        p.BikeBrand,
		BikeRegistration: p.BikeRegistration,
		Status:           r.Status().String(),
		CreatedAt:        r.CreatedAt(),
	}
}

// ToDomain rebuilds a rider from a row.
func ToDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	status, err := rider.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(id, email, rider.Profile{
		Name:             dto.Name,
		Phone:            dto.Phone,
		Age:              dto.Age,
		Region:           dto.Region,
		District:         dto.District,
		NID:              dto.NID,
		BikeBrand:        dto.BikeBrand,
		BikeRegistration: dto.BikeRegistration,
	}, status, dto.CreatedAt.UTC())
}
