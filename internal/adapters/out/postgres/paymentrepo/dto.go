// Package paymentrepo persists confirmed payments in PostgreSQL. Rows are insert-only.
package paymentrepo

import (
	"time"

	"profast/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO is the row of the payments table.
type PaymentDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ParcelID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	Email         string          `gorm:"index;not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod string          `gorm:"not null"`
	TransactionID string          `gorm:"uniqueIndex;not null"`
	PaidAt        time.Time       `gorm:"index;not null"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            p.ID().Bytes(),
		ParcelID:      p.ParcelID().Bytes(),
		Email:         p.Email().String(),
		Amount:        p.Amount().Decimal(),
		PaymentMethod: p.Method(),
		TransactionID: p.TransactionID(),
		PaidAt:        p.PaidAt(),
	}
}
