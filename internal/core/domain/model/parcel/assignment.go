package parcel

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
)

// Assignment is the snapshot of a rider copied onto a parcel at assignment time.
// The fields are set together and never individually, so a parcel either has a
// complete assignment or none.
type Assignment struct {
	riderID kernel.UUID
	name    string
	email   kernel.Email
	phone   string
}

// NewAssignment validates the rider snapshot.
func NewAssignment(riderID kernel.UUID, name string, email kernel.Email, phone string) (Assignment, error) {
	if err := errors.Join(
		riderID.Validate(),
		required("assigned_rider_name", name),
		email.Validate(),
		required("assigned_rider_phone", phone),
	); err != nil {
		return Assignment{}, err
	}

	return Assignment{riderID: riderID, name: name, email: email, phone: phone}, nil
}

func (a Assignment) RiderID() kernel.UUID { return a.riderID }
func (a Assignment) Name() string         { return a.name }
func (a Assignment) Email() kernel.Email  { return a.email }
func (a Assignment) Phone() string        { return a.phone }
