package queries

import (
	"context"

	"profast/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MismatchKind names how a parcel and its payments disagree.
type MismatchKind string

const (
	PaidWithoutPayment MismatchKind = "paid_without_payment"
	PaymentWhileUnpaid MismatchKind = "payment_while_unpaid"
)

// PaymentMismatch is one inconsistent parcel.
type PaymentMismatch struct {
	ParcelID   kernel.UUID
	TrackingID string
	Kind       MismatchKind
}

// FindPaymentMismatchesQueryHandler runs FindPaymentMismatchesQuery.
type FindPaymentMismatchesQueryHandler struct {
	db *gorm.DB
}

// NewFindPaymentMismatchesQueryHandler reads from db outside any unit of work.
func NewFindPaymentMismatchesQueryHandler(db *gorm.DB) FindPaymentMismatchesQueryHandler {
	return FindPaymentMismatchesQueryHandler{db: db}
}

// Handle lists paid parcels without a payment record and payments whose parcel
// is still unpaid.
func (h FindPaymentMismatchesQueryHandler) Handle(
	ctx context.Context,
	query FindPaymentMismatchesQuery,
) ([]PaymentMismatch, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT p.id, p.tracking_id, ?
		FROM parcels p
		WHERE p.payment_status = 'paid'
		  AND NOT EXISTS (SELECT 1 FROM payments y WHERE y.parcel_id = p.id)
		UNION ALL
		SELECT p.id, p.tracking_id, ?
		FROM parcels p
		WHERE p.payment_status = 'unpaid'
		  AND EXISTS (SELECT 1 FROM payments y WHERE y.parcel_id = p.id)
		ORDER BY 2`, string(PaidWithoutPayment), string(PaymentWhileUnpaid)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mismatches := make([]PaymentMismatch, 0)
	for rows.Next() {
		var (
			m    PaymentMismatch
			id   uuid.UUID
			kind string
		)
		if err = rows.Scan(&id, &m.TrackingID, &kind); err != nil {
			return nil, err
		}
		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		m.ParcelID = parcelID
		m.Kind = MismatchKind(kind)
		mismatches = append(mismatches, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return mismatches, nil
}
