package queries

import (
	"context"
	"time"

	"profast/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentView is the read model of a payment record.
type PaymentView struct {
	ID            kernel.UUID
	ParcelID      kernel.UUID
	Email         string
	Amount        kernel.Money
	PaymentMethod string
	TransactionID string
	PaidAt        time.Time
}

// ListPaymentsQueryHandler runs ListPaymentsQuery.
type ListPaymentsQueryHandler struct {
	db *gorm.DB
}

func NewListPaymentsQueryHandler(db *gorm.DB) ListPaymentsQueryHandler {
	return ListPaymentsQueryHandler{db: db}
}

// Handle returns payments, most recent first.
func (h ListPaymentsQueryHandler) Handle(ctx context.Context, query ListPaymentsQuery) ([]PaymentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `SELECT id, parcel_id, email, amount, payment_method, transaction_id, paid_at FROM payments`
	var args []any
	if query.Email() != nil {
		sql += ` WHERE email = ?`
		args = append(args, query.Email().String())
	}
	sql += ` ORDER BY paid_at DESC, id DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]PaymentView, 0)
	for rows.Next() {
		var (
			v       PaymentView
			id, pid uuid.UUID
			amount  decimal.Decimal
			convErr error
		)
		if err = rows.Scan(&id, &pid, &v.Email, &amount, &v.PaymentMethod, &v.TransactionID, &v.PaidAt); err != nil {
			return nil, err
		}
		if v.ID, convErr = kernel.UUIDFromBytes(id[:]); convErr != nil {
			return nil, convErr
		}
		if v.ParcelID, convErr = kernel.UUIDFromBytes(pid[:]); convErr != nil {
			return nil, convErr
		}
		if v.Amount, convErr = kernel.NewMoney(amount); convErr != nil {
			return nil, convErr
		}
		v.PaidAt = v.PaidAt.UTC()
		payments = append(payments, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
