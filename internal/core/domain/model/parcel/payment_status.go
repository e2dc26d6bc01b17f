package parcel

import (
	"fmt"

	"profast/internal/pkg/errs"
)

// PaymentStatus tracks whether the sender has paid for the parcel.
//
//	Unpaid ──> Paid
type PaymentStatus int

const (
	UnknownPayment PaymentStatus = iota
	Unpaid
	Paid
)

var paymentStatusNames = map[PaymentStatus]string{
	Unpaid: "unpaid",
	Paid:   "paid",
}

// ParsePaymentStatus accepts "unpaid" and "paid".
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for status, name := range paymentStatusNames {
		if name == s {
			return status, nil
		}
	}
	return UnknownPayment, errs.NewValueIsInvalidErrorWithCause(
		"payment_status",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate rejects the zero value and unknown statuses.
func (s PaymentStatus) Validate() error {
	if _, ok := paymentStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment_status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s PaymentStatus) String() string {
	if name, ok := paymentStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Pay transitions Unpaid -> Paid. A second confirmation is a conflict so that one
// parcel never accumulates two payment records.
func (s PaymentStatus) Pay() (PaymentStatus, error) {
	if s != Unpaid {
		return UnknownPayment, errs.NewConflictError("parcel", fmt.Sprintf("payment status is already %s", s))
	}
	return Paid, nil
}
