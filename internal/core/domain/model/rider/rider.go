package rider

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"
	"profast/internal/pkg/errs"
)

var ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")

// Profile is what an applicant submits.
type Profile struct {
	Name             string
	Phone            string
	Age              int
	Region           string
	District         string
	NID              string
	BikeBrand        string
	BikeRegistration string
}

// Rider is a delivery agent. It is linked to a User only by email; approving a
// rider promotes that user's role, which is a separate aggregate.
type Rider struct {
	id        kernel.UUID
	email     kernel.Email
	profile   Profile
	status    Status
	createdAt time.Time

	loadedStatus  Status
	isConstructed bool
}

// NewRider creates a pending rider application.
func NewRider(id kernel.UUID, email kernel.Email, profile Profile, createdAt time.Time) (*Rider, error) {
	if err := errors.Join(
		id.Validate(),
		email.Validate(),
		validateProfile(profile),
	); err != nil {
		return nil, err
	}

	return &Rider{
		id:            id,
		email:         email,
		profile:       profile,
		status:        Pending,
		createdAt:     createdAt.UTC(),
		loadedStatus:  Pending,
		isConstructed: true,
	}, nil
}

// RestoreRider rebuilds a rider from persistence.
func RestoreRider(id kernel.UUID, email kernel.Email, profile Profile, status Status, createdAt time.Time) (*Rider, error) {
	if err := errors.Join(id.Validate(), email.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Rider{
		id:            id,
		email:         email,
		profile:       profile,
		status:        status,
		createdAt:     createdAt,
		loadedStatus:  status,
		isConstructed: true,
	}, nil
}

func (r *Rider) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRiderIsNotConstructed
	}
	return nil
}

func (r *Rider) ID() kernel.UUID      { return r.id }
func (r *Rider) Email() kernel.Email  { return r.email }
func (r *Rider) Profile() Profile     { return r.profile }
func (r *Rider) Status() Status       { return r.status }
func (r *Rider) CreatedAt() time.Time { return r.createdAt }
func (r *Rider) LoadedStatus() Status { return r.loadedStatus }
func (r *Rider) IsActive() bool       { return r.status == Active }

// Approve moves a pending application to Active.
func (r *Rider) Approve() error {
	return r.decide(Active)
}

// Reject moves a pending application to Rejected.
func (r *Rider) Reject() error {
	return r.decide(Rejected)
}

// Decide applies an admin decision given as a status.
func (r *Rider) Decide(outcome Status) error {
	return r.decide(outcome)
}

// AssignmentSnapshot returns the rider fields copied onto an assigned parcel.
// Only active riders can be assigned.
func (r *Rider) AssignmentSnapshot() (parcel.Assignment, error) {
	if !r.IsActive() {
		return parcel.Assignment{}, errs.NewConflictError("rider", fmt.Sprintf("rider is %s, not active", r.status))
	}
	return parcel.NewAssignment(r.id, r.profile.Name, r.email, r.profile.Phone)
}

func (r *Rider) decide(outcome Status) error {
	next, err := r.status.Decide(outcome)
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

func validateProfile(p Profile) error {
	var ageErr error
	if p.Age < 18 || p.Age > 70 {
		ageErr = errs.NewValueIsOutOfRangeError("age", p.Age, 18, 70)
	}

	return errors.Join(
		notBlank("name", p.Name),
		notBlank("phone", p.Phone),
		ageErr,
		notBlank("region", p.Region),
		notBlank("district", p.District),
		notBlank("nid", p.NID),
		notBlank("bike_brand", p.BikeBrand),
		notBlank("bike_registration", p.BikeRegistration),
	)
}

func notBlank(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
