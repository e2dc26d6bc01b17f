package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel was not created through
	// NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// Kind distinguishes documents from packages; only packages are priced by weight.
type Kind string

const (
	KindDocument    Kind = "document"
	KindNonDocument Kind = "non-document"
)

func (k Kind) Validate() error {
	if k != KindDocument && k != KindNonDocument {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a parcel type", string(k)))
	}
	return nil
}

// Details are the sender-supplied attributes of a new parcel.
type Details struct {
	Title    string
	Kind     Kind
	Weight   float64
	Cost     kernel.Money
	Sender   Party
	Receiver Party
}

// State is the triple of statuses a conditional write is guarded on. A repository
// persists a modified parcel only if the stored row still has the State the parcel
// was loaded with, which turns every transition into a compare-and-swap.
type State struct {
	Delivery DeliveryStatus
	Payment  PaymentStatus
	Cashout  CashoutStatus
}

// Parcel is the aggregate root for delivery state. It owns the delivery, payment
// and cashout status machines and the rider assignment snapshot.
//
// Invariants:
//   - the assignment (rider id, name, email, phone) is set as a unit, once
//   - delivery advances only Pending -> RiderAssigned -> OnTransit -> terminal
//   - only the assigned rider may pick up, deliver or cash out
//   - cashout happens at most once and only after a terminal delivery status
//   - payment is confirmed at most once
type Parcel struct {
	id         kernel.UUID
	trackingID string
	createdBy  kernel.Email
	details    Details

	deliveryStatus DeliveryStatus
	paymentStatus  PaymentStatus
	cashoutStatus  CashoutStatus

	assignment  *Assignment
	pickedAt    *time.Time
	deliveredAt *time.Time
	cashoutDate *time.Time
	createdAt   time.Time

	loadedState State
	events      []StatusChanged

	isConstructed bool
}

// NewParcel creates an unpaid, pending parcel owned by createdBy.
//
// Example:
//
//	p, err := parcel.NewParcel(kernel.NewUUID(), owner, parcel.Details{
//	    Title: "Books", Kind: parcel.KindNonDocument, Weight: 2, Cost: cost,
//	    Sender: sender, Receiver: receiver,
//	}, time.Now())
func NewParcel(id kernel.UUID, createdBy kernel.Email, details Details, createdAt time.Time) (*Parcel, error) {
	if err := errors.Join(
		id.Validate(),
		createdBy.Validate(),
		validateDetails(details),
	); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created_at")
	}

	p := &Parcel{
		id:             id,
		trackingID:     NewTrackingID(id, createdAt),
		createdBy:      createdBy,
		details:        details,
		deliveryStatus: Pending,
		paymentStatus:  Unpaid,
		cashoutStatus:  NotCashed,
		createdAt:      createdAt.UTC(),
		isConstructed:  true,
	}
	p.loadedState = p.State()
	p.raise(EventCreated, "", Pending.String(), createdBy, p.createdAt)
	return p, nil
}

// Snapshot carries every persisted field of a parcel; adapters fill it to rebuild
// an aggregate with RestoreParcel.
type Snapshot struct {
	ID             kernel.UUID
	TrackingID     string
	CreatedBy      kernel.Email
	Details        Details
	DeliveryStatus DeliveryStatus
	PaymentStatus  PaymentStatus
	CashoutStatus  CashoutStatus
	Assignment     *Assignment
	PickedAt       *time.Time
	DeliveredAt    *time.Time
	CashoutDate    *time.Time
	CreatedAt      time.Time
}

// RestoreParcel rebuilds a parcel from persistence, checking that the stored
// combination of statuses and assignment is consistent.
func RestoreParcel(s Snapshot) (*Parcel, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.CreatedBy.Validate(),
		s.DeliveryStatus.Validate(),
		s.PaymentStatus.Validate(),
		s.CashoutStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if s.DeliveryStatus != Pending && s.Assignment == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"assignment",
			fmt.Errorf("%s parcel has no assigned rider", s.DeliveryStatus),
		)
	}
	if s.CashoutStatus == CashedOut && !s.DeliveryStatus.IsTerminal() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"cashout_status",
			fmt.Errorf("parcel is cashed out while %s", s.DeliveryStatus),
		)
	}

	p := &Parcel{
		id:             s.ID,
		trackingID:     s.TrackingID,
		createdBy:      s.CreatedBy,
		details:        s.Details,
		deliveryStatus: s.DeliveryStatus,
		paymentStatus:  s.PaymentStatus,
		cashoutStatus:  s.CashoutStatus,
		assignment:     s.Assignment,
		pickedAt:       s.PickedAt,
		deliveredAt:    s.DeliveredAt,
		cashoutDate:    s.CashoutDate,
		createdAt:      s.CreatedAt,
		isConstructed:  true,
	}
	p.loadedState = p.State()
	return p, nil
}

// Snapshot returns every persisted field. It is the inverse of RestoreParcel.
func (p *Parcel) Snapshot() Snapshot {
	return Snapshot{
		ID:             p.id,
		TrackingID:     p.trackingID,
		CreatedBy:      p.createdBy,
		Details:        p.details,
		DeliveryStatus: p.deliveryStatus,
		PaymentStatus:  p.paymentStatus,
		CashoutStatus:  p.cashoutStatus,
		Assignment:     p.assignment,
		PickedAt:       p.pickedAt,
		DeliveredAt:    p.deliveredAt,
		CashoutDate:    p.cashoutDate,
		CreatedAt:      p.createdAt,
	}
}

// NewTrackingID derives the human-readable tracking code from the parcel id and
// creation date, e.g. "PCL-20261018-550E84".
func NewTrackingID(id kernel.UUID, createdAt time.Time) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return fmt.Sprintf("PCL-%s-%s", createdAt.UTC().Format("20060102"), strings.ToUpper(hex[:6]))
}

// Validate ensures the parcel was built by NewParcel or RestoreParcel.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

func (p *Parcel) ID() kernel.UUID                { return p.id }
func (p *Parcel) TrackingID() string             { return p.trackingID }
func (p *Parcel) CreatedBy() kernel.Email        { return p.createdBy }
func (p *Parcel) Details() Details               { return p.details }
func (p *Parcel) DeliveryStatus() DeliveryStatus { return p.deliveryStatus }
func (p *Parcel) PaymentStatus() PaymentStatus   { return p.paymentStatus }
func (p *Parcel) CashoutStatus() CashoutStatus   { return p.cashoutStatus }
func (p *Parcel) PickedAt() *time.Time           { return p.pickedAt }
func (p *Parcel) DeliveredAt() *time.Time        { return p.deliveredAt }
func (p *Parcel) CashoutDate() *time.Time        { return p.cashoutDate }
func (p *Parcel) CreatedAt() time.Time           { return p.createdAt }

// Assignment returns the assigned rider snapshot, or nil if no rider is assigned.
func (p *Parcel) Assignment() *Assignment {
	return p.assignment
}

// State returns the current statuses.
func (p *Parcel) State() State {
	return State{Delivery: p.deliveryStatus, Payment: p.paymentStatus, Cashout: p.cashoutStatus}
}

// LoadedState returns the statuses the parcel had when it was created or restored.
// Repositories use it as the expected value of the conditional update.
func (p *Parcel) LoadedState() State {
	return p.loadedState
}

// AssignRider copies the rider snapshot onto the parcel and moves it to
// RiderAssigned. An already assigned parcel is a conflict and is left untouched.
func (p *Parcel) AssignRider(a Assignment, actor kernel.Email, at time.Time) error {
	if err := a.RiderID().Validate(); err != nil {
		return err
	}
	if p.assignment != nil {
		return errs.NewConflictError("parcel", "parcel is already assigned to a rider")
	}

	next, err := p.deliveryStatus.Assign()
	if err != nil {
		return err
	}

	prev := p.deliveryStatus
	p.deliveryStatus = next
	p.assignment = &a
	p.raise(EventRiderAssigned, prev.String(), next.String(), actor, at)
	return nil
}

// PickUp records that the assigned rider collected the parcel.
func (p *Parcel) PickUp(caller kernel.Email, at time.Time) error {
	if err := p.requireAssignedRider(caller); err != nil {
		return err
	}

	next, err := p.deliveryStatus.PickUp()
	if err != nil {
		return err
	}

	prev := p.deliveryStatus
	p.deliveryStatus = next
	t := at.UTC()
	p.pickedAt = &t
	p.raise(EventPickedUp, prev.String(), next.String(), caller, t)
	return nil
}

// Deliver records that the assigned rider handed the parcel over, either to the
// receiver (Delivered) or to the destination warehouse (ServiceCenterDelivered).
func (p *Parcel) Deliver(caller kernel.Email, to DeliveryStatus, at time.Time) error {
	if err := p.requireAssignedRider(caller); err != nil {
		return err
	}

	next, err := p.deliveryStatus.Deliver(to)
	if err != nil {
		return err
	}

	prev := p.deliveryStatus
	p.deliveryStatus = next
	t := at.UTC()
	p.deliveredAt = &t
	p.raise(EventDelivered, prev.String(), next.String(), caller, t)
	return nil
}

// Advance moves the parcel to the requested delivery status on behalf of the rider.
func (p *Parcel) Advance(caller kernel.Email, to DeliveryStatus, at time.Time) error {
	switch {
	case to == OnTransit:
		return p.PickUp(caller, at)
	case to.IsTerminal():
		return p.Deliver(caller, to, at)
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery_status",
			fmt.Errorf("riders cannot move a parcel to %s", to),
		)
	}
}

// Cashout releases the assigned rider's payout for a delivered parcel.
func (p *Parcel) Cashout(caller kernel.Email, at time.Time) error {
	if err := p.requireAssignedRider(caller); err != nil {
		return err
	}

	next, err := p.cashoutStatus.CashOut(p.deliveryStatus)
	if err != nil {
		return err
	}

	prev := p.cashoutStatus
	p.cashoutStatus = next
	t := at.UTC()
	p.cashoutDate = &t
	p.raise(EventCashedOut, prev.String(), next.String(), caller, t)
	return nil
}

// MarkPaid confirms the sender's payment.
func (p *Parcel) MarkPaid(actor kernel.Email, at time.Time) error {
	next, err := p.paymentStatus.Pay()
	if err != nil {
		return err
	}

	prev := p.paymentStatus
	p.paymentStatus = next
	p.raise(EventPaid, prev.String(), next.String(), actor, at)
	return nil
}

// IsAssignedTo reports whether email is the assigned rider's email.
func (p *Parcel) IsAssignedTo(email kernel.Email) bool {
	return p.assignment != nil && p.assignment.Email().IsEqual(email)
}

// DomainEvents returns the events raised since the parcel was created or restored.
func (p *Parcel) DomainEvents() []StatusChanged {
	return p.events
}

// ClearDomainEvents drops published events.
func (p *Parcel) ClearDomainEvents() {
	p.events = nil
}

func (p *Parcel) requireAssignedRider(caller kernel.Email) error {
	if !p.IsAssignedTo(caller) {
		return errs.NewForbiddenError("caller is not the rider assigned to this parcel")
	}
	return nil
}

func (p *Parcel) raise(kind EventKind, from, to string, actor kernel.Email, at time.Time) {
	p.events = append(p.events, StatusChanged{
		ParcelID:   p.id,
		TrackingID: p.trackingID,
		Kind:       kind,
		From:       from,
		To:         to,
		Actor:      actor,
		At:         at.UTC(),
	})
}

func validateDetails(d Details) error {
	var weightErr error
	if d.Weight < 0 {
		weightErr = errs.NewValueIsOutOfRangeError("weight", d.Weight, 0, "unbounded")
	}
	return errors.Join(
		required("title", d.Title),
		d.Kind.Validate(),
		weightErr,
		d.Sender.Validate("sender"),
		d.Receiver.Validate("receiver"),
	)
}
