package parcel

import (
	"fmt"

	"profast/internal/pkg/errs"
)

// DeliveryStatus is the physical stage of a parcel.
//
// State transitions:
//
//	Pending ──> RiderAssigned ──> OnTransit ──┬──> Delivered
//	                                          └──> ServiceCenterDelivered
//
// Delivered and ServiceCenterDelivered are terminal for delivery; the only
// operation still allowed on them is the rider's cashout.
type DeliveryStatus int

const (
	// UnknownDelivery catches uninitialized values.
	UnknownDelivery DeliveryStatus = iota
	Pending
	RiderAssigned
	OnTransit
	Delivered
	ServiceCenterDelivered
)

var deliveryStatusNames = map[DeliveryStatus]string{
	Pending:                "pending",
	RiderAssigned:          "rider_assigned",
	OnTransit:              "on_transit",
	Delivered:              "delivered",
	ServiceCenterDelivered: "service_center_delivered",
}

// ParseDeliveryStatus converts the persisted/wire name to a DeliveryStatus.
func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	for status, name := range deliveryStatusNames {
		if name == s {
			return status, nil
		}
	}
	return UnknownDelivery, errs.NewValueIsInvalidErrorWithCause(
		"delivery_status",
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

// Validate returns an error for UnknownDelivery and out-of-range values.
func (s DeliveryStatus) Validate() error {
	if _, ok := deliveryStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery_status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the stored name of the status.
func (s DeliveryStatus) String() string {
	if name, ok := deliveryStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether the parcel has reached its destination.
func (s DeliveryStatus) IsTerminal() bool {
	return s == Delivered || s == ServiceCenterDelivered
}

// IsActive reports whether a rider is currently working on the parcel.
func (s DeliveryStatus) IsActive() bool {
	return s == RiderAssigned || s == OnTransit
}

// Assign transitions Pending -> RiderAssigned.
// Reassignment is not allowed: any other current status is a conflict.
func (s DeliveryStatus) Assign() (DeliveryStatus, error) {
	if s != Pending {
		return UnknownDelivery, transitionConflict(s, RiderAssigned)
	}
	return RiderAssigned, nil
}

// PickUp transitions RiderAssigned -> OnTransit.
func (s DeliveryStatus) PickUp() (DeliveryStatus, error) {
	if s != RiderAssigned {
		return UnknownDelivery, transitionConflict(s, OnTransit)
	}
	return OnTransit, nil
}

// Deliver transitions OnTransit -> Delivered or ServiceCenterDelivered.
func (s DeliveryStatus) Deliver(to DeliveryStatus) (DeliveryStatus, error) {
	if !to.IsTerminal() {
		return UnknownDelivery, errs.NewValueIsInvalidErrorWithCause(
			"delivery_status",
			fmt.Errorf("%s is not a delivery outcome", to),
		)
	}
	if s != OnTransit {
		return UnknownDelivery, transitionConflict(s, to)
	}
	return to, nil
}

func transitionConflict(from, to DeliveryStatus) error {
	return errs.NewConflictError("parcel", fmt.Sprintf("cannot move delivery status from %s to %s", from, to))
}
