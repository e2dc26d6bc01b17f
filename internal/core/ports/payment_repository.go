package ports

import (
	"context"

	"profast/internal/core/domain/model/payment"
)

// PaymentRepository stores confirmed payments. Records are insert-only.
type PaymentRepository interface {
	Add(ctx context.Context, p *payment.Payment) error
}
