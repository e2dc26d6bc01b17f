// Package tracking holds the append-only parcel tracking log entry.
package tracking

import (
	"errors"
	"strings"
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/errs"
)

// Event is one immutable entry of a parcel's tracking log. Status, Location and
// Details are free-form text supplied by whoever records the event.
type Event struct {
	ID         string
	ParcelID   kernel.UUID
	TrackingID string
	Status     string
	Location   string
	Details    string
	UpdatedBy  kernel.Email
	CreatedAt  time.Time
}

// NewEvent validates an entry before it is appended. ID is assigned by the store.
func NewEvent(
	parcelID kernel.UUID,
	trackingID, status, location, details string,
	updatedBy kernel.Email,
	at time.Time,
) (Event, error) {
	var statusErr error
	if strings.TrimSpace(status) == "" {
		statusErr = errs.NewValueIsRequiredError("status")
	}
	if err := errors.Join(parcelID.Validate(), statusErr, updatedBy.Validate()); err != nil {
		return Event{}, err
	}

	return Event{
		ParcelID:   parcelID,
		TrackingID: trackingID,
		Status:     strings.TrimSpace(status),
		Location:   strings.TrimSpace(location),
		Details:    strings.TrimSpace(details),
		UpdatedBy:  updatedBy,
		CreatedAt:  at.UTC(),
	}, nil
}
