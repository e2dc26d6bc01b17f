package queries

import (
	"errors"
	"strings"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"
	"profast/internal/pkg/guard"
)

var ErrListParcelsQueryIsNotConstructed = errors.New(
	"ListParcelsQuery must be created via NewListParcelsQuery constructor",
)

// ListParcelsQuery filters parcels by creator, payment status and delivery status.
// Every filter is optional; the ones given are combined with AND.
type ListParcelsQuery struct {
	createdBy      *kernel.Email
	paymentStatus  *parcel.PaymentStatus
	deliveryStatus *parcel.DeliveryStatus

	guard guard.ConstructorGuard
}

// NewListParcelsQuery parses the optional filters. Empty strings mean "any".
func NewListParcelsQuery(email, paymentStatus, deliveryStatus string) (ListParcelsQuery, error) {
	q := ListParcelsQuery{guard: guard.NewConstructorGuard()}

	var emailErr, paymentErr, deliveryErr error
	if email = strings.TrimSpace(email); email != "" {
		e, err := kernel.NewEmail(email)
		q.createdBy, emailErr = &e, err
	}
	if paymentStatus = strings.TrimSpace(paymentStatus); paymentStatus != "" {
		s, err := parcel.ParsePaymentStatus(paymentStatus)
		q.paymentStatus, paymentErr = &s, err
	}
	if deliveryStatus = strings.TrimSpace(deliveryStatus); deliveryStatus != "" {
		s, err := parcel.ParseDeliveryStatus(deliveryStatus)
		q.deliveryStatus, deliveryErr = &s, err
	}

	if err := errors.Join(emailErr, paymentErr, deliveryErr); err != nil {
		return ListParcelsQuery{}, err
	}
	return q, nil
}

// Validate reports whether the query was built by NewListParcelsQuery.
func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

// CreatedBy returns the creator filter, or nil when listing every creator.
func (q ListParcelsQuery) CreatedBy() *kernel.Email { return q.createdBy }
