// Package eventhandlers holds the EventPublisher implementations that react to
// committed parcel status changes inside the process.
package eventhandlers

import (
	"context"
	"errors"
	"fmt"

	"profast/internal/core/domain/model/parcel"
	"profast/internal/core/domain/model/tracking"
	"profast/internal/core/ports"
)

// TrackingRecorder appends one tracking log entry per status change, so the log
// shows every transition even when nobody records one by hand.
type TrackingRecorder struct {
	repo ports.TrackingRepository
}

func NewTrackingRecorder(repo ports.TrackingRepository) *TrackingRecorder {
	return &TrackingRecorder{repo: repo}
}

func (r *TrackingRecorder) Publish(ctx context.Context, events ...parcel.StatusChanged) error {
	var errs []error
	for _, e := range events {
		entry, err := tracking.NewEvent(e.ParcelID, e.TrackingID, string(e.Kind), "", details(e), e.Actor, e.At)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err = r.repo.Append(ctx, entry); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func details(e parcel.StatusChanged) string {
	if e.From == "" {
		return "status set to " + e.To
	}
	return fmt.Sprintf("status changed from %s to %s", e.From, e.To)
}
