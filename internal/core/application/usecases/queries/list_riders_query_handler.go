package queries

import (
	"context"
	"time"

	"profast/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RiderView is the read model of a rider application.
type RiderView struct {
	ID               kernel.UUID
	Name             string
	Email            string
	Phone            string
	Age              int
	Region           string
	District         string
	NID              string
	BikeBrand        string
	BikeRegistration string
	Status           string
	CreatedAt        time.Time
}

// ListRidersQueryHandler runs ListRidersQuery.
type ListRidersQueryHandler struct {
	db *gorm.DB
}

func NewListRidersQueryHandler(db *gorm.DB) ListRidersQueryHandler {
	return ListRidersQueryHandler{db: db}
}

// Handle returns the applications newest first.
func (h ListRidersQueryHandler) Handle(ctx context.Context, query ListRidersQuery) ([]RiderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, phone, age, region, district, nid, bike_brand, bike_registration, status, created_at
		FROM riders
		WHERE status = ?
		ORDER BY created_at DESC, id DESC`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	riders := make([]RiderView, 0)
	for rows.Next() {
		var (
			v  RiderView
			id uuid.UUID
		)
		err = rows.Scan(&id, &v.Name, &v.Email, &v.Phone, &v.Age, &v.Region, &v.District,
			&v.NID, &v.BikeBrand, &v.BikeRegistration, &v.Status, &v.CreatedAt)
		if err != nil {
			return nil, err
		}
		riderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		v.ID = riderID
		v.CreatedAt = v.CreatedAt.UTC()
		riders = append(riders, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
