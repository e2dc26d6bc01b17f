package commands

import (
	"errors"
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/tracking"
	"profast/internal/pkg/guard"
)

var ErrRecordTrackingEventCommandIsNotConstructed = errors.New(
	"RecordTrackingEventCommand must be created via NewRecordTrackingEventCommand constructor",
)

// RecordTrackingEventCommand appends one entry to a parcel's tracking log.
type RecordTrackingEventCommand struct {
	event         tracking.Event
	callerIsAdmin bool

	guard guard.ConstructorGuard
}

// NewRecordTrackingEventCommand validates the entry. The tracking id is taken from
// the stored parcel when the command is handled.
func NewRecordTrackingEventCommand(
	parcelID kernel.UUID,
	status, location, details string,
	caller kernel.Email,
	callerIsAdmin bool,
) (RecordTrackingEventCommand, error) {
	e, err := tracking.NewEvent(parcelID, "", status, location, details, caller, time.Now())
	if err != nil {
		return RecordTrackingEventCommand{}, err
	}

	return RecordTrackingEventCommand{
		event:         e,
		callerIsAdmin: callerIsAdmin,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built by its constructor.
func (c RecordTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrRecordTrackingEventCommandIsNotConstructed)
}

func (c RecordTrackingEventCommand) Event() tracking.Event { return c.event }
func (c RecordTrackingEventCommand) ParcelID() kernel.UUID { return c.event.ParcelID }
func (c RecordTrackingEventCommand) Caller() kernel.Email  { return c.event.UpdatedBy }
func (c RecordTrackingEventCommand) CallerIsAdmin() bool   { return c.callerIsAdmin }
