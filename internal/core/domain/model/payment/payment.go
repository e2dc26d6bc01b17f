// Package payment holds the Payment record written once per confirmed parcel payment.
package payment

import (
	"errors"
	"strings"
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/errs"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment is immutable: it has no setters and is only ever inserted.
type Payment struct {
	id            kernel.UUID
	parcelID      kernel.UUID
	email         kernel.Email
	amount        kernel.Money
	method        string
	transactionID string
	paidAt        time.Time

	isConstructed bool
}

// NewPayment validates a confirmed payment.
func NewPayment(
	id, parcelID kernel.UUID,
	email kernel.Email,
	amount kernel.Money,
	method, transactionID string,
	paidAt time.Time,
) (*Payment, error) {
	var amountErr error
	if !amount.IsPositive() {
		amountErr = errs.NewValueIsOutOfRangeError("amount", amount.String(), "0.01", "unbounded")
	}
	var paidAtErr error
	if paidAt.IsZero() {
		paidAtErr = errs.NewValueIsRequiredError("paid_at")
	}

	if err := errors.Join(
		id.Validate(),
		parcelID.Validate(),
		email.Validate(),
		amountErr,
		notBlank("payment_method", method),
		notBlank("transaction_id", transactionID),
		paidAtErr,
	); err != nil {
		return nil, err
	}

	return &Payment{
		id:            id,
		parcelID:      parcelID,
		email:         email,
		amount:        amount,
		method:        strings.TrimSpace(method),
		transactionID: strings.TrimSpace(transactionID),
		paidAt:        paidAt.UTC(),
		isConstructed: true,
	}, nil
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.UUID       { return p.id }
func (p *Payment) ParcelID() kernel.UUID { return p.parcelID }
func (p *Payment) Email() kernel.Email   { return p.email }
func (p *Payment) Amount() kernel.Money  { return p.amount }
func (p *Payment) Method() string        { return p.method }
func (p *Payment) TransactionID() string { return p.transactionID }
func (p *Payment) PaidAt() time.Time     { return p.paidAt }

func notBlank(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
