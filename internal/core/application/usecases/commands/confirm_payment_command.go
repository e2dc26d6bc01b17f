package commands

import (
	"errors"
	"strings"
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/errs"
	"profast/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand records a payment the client completed with the gateway.
type ConfirmPaymentCommand struct {
	paymentID     kernel.UUID
	parcelID      kernel.UUID
	email         kernel.Email
	amount        kernel.Money
	method        string
	transactionID string
	paidAt        time.Time

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand validates the identifiers and the gateway reference.
// A zero paidAt means "now".
func NewConfirmPaymentCommand(
	paymentID, parcelID kernel.UUID,
	email kernel.Email,
	amount kernel.Money,
	method, transactionID string,
	paidAt time.Time,
) (ConfirmPaymentCommand, error) {
	var amountErr error
	if !amount.IsPositive() {
		amountErr = errs.NewValueIsOutOfRangeError("amount", amount.String(), "0.01", "unbounded")
	}
	var txErr error
	if strings.TrimSpace(transactionID) == "" {
		txErr = errs.NewValueIsRequiredError("transaction_id")
	}

	if err := errors.Join(paymentID.Validate(), parcelID.Validate(), email.Validate(), amountErr, txErr); err != nil {
		return ConfirmPaymentCommand{}, err
	}
	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	return ConfirmPaymentCommand{
		paymentID:     paymentID,
		parcelID:      parcelID,
		email:         email,
		amount:        amount,
		method:        method,
		transactionID: transactionID,
		paidAt:        paidAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built by NewConfirmPaymentCommand.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

func (c ConfirmPaymentCommand) PaymentID() kernel.UUID { return c.paymentID }
func (c ConfirmPaymentCommand) ParcelID() kernel.UUID  { return c.parcelID }
func (c ConfirmPaymentCommand) Email() kernel.Email    { return c.email }
func (c ConfirmPaymentCommand) Amount() kernel.Money   { return c.amount }
func (c ConfirmPaymentCommand) Method() string         { return c.method }
func (c ConfirmPaymentCommand) TransactionID() string  { return c.transactionID }
func (c ConfirmPaymentCommand) PaidAt() time.Time      { return c.paidAt }
