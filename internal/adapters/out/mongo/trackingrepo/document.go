package trackingrepo

import (
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/tracking"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionName is the collection the tracking log is stored in.
const CollectionName = "parcel_tracking"

// EventDocument is the stored shape of a tracking entry.
type EventDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ParcelID   string             `bson:"parcel_id"`
	TrackingID string             `bson:"tracking_id"`
	Status     string             `bson:"status"`
	Location   string             `bson:"location,omitempty"`
	Details    string             `bson:"details,omitempty"`
	UpdatedBy  string             `bson:"updated_by"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func fromDomain(e tracking.Event) EventDocument {
	return EventDocument{
		ParcelID:   e.ParcelID.String(),
		TrackingID: e.TrackingID,
		Status:     e.Status,
		Location:   e.Location,
		Details:    e.Details,
		UpdatedBy:  e.UpdatedBy.String(),
		CreatedAt:  e.CreatedAt.UTC(),
	}
}

func (d EventDocument) toDomain() (tracking.Event, error) {
	parcelID, err := kernel.UUIDFromString(d.ParcelID)
	if err != nil {
		return tracking.Event{}, err
	}
	updatedBy, err := kernel.NewEmail(d.UpdatedBy)
	if err != nil {
		return tracking.Event{}, err
	}
	return tracking.Event{
		ID:         d.ID.Hex(),
		ParcelID:   parcelID,
		TrackingID: d.TrackingID,
		Status:     d.Status,
		Location:   d.Location,
		Details:    d.Details,
		UpdatedBy:  updatedBy,
		CreatedAt:  d.CreatedAt.UTC(),
	}, nil
}
