package commands

import (
	"errors"
	"fmt"
	"strings"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/errs"
	"profast/internal/pkg/guard"
)

// DefaultCurrency is used when the client does not name one.
const DefaultCurrency = "usd"

var ErrCreatePaymentIntentCommandIsNotConstructed = errors.New(
	"CreatePaymentIntentCommand must be created via NewCreatePaymentIntentCommand constructor",
)

// CreatePaymentIntentCommand asks the gateway for a client-side payment handle.
type CreatePaymentIntentCommand struct {
	amount   kernel.Money
	currency string

	guard guard.ConstructorGuard
}

// NewCreatePaymentIntentCommand requires a positive amount and an ISO 4217 code.
func NewCreatePaymentIntentCommand(amount kernel.Money, currency string) (CreatePaymentIntentCommand, error) {
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	var amountErr, currencyErr error
	if amount.MinorUnits() <= 0 {
		amountErr = errs.NewValueIsOutOfRangeError("amount", amount.String(), "0.01", "unbounded")
	}
	if len(currency) != 3 {
		currencyErr = errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q is not a currency code", currency))
	}
	if err := errors.Join(amountErr, currencyErr); err != nil {
		return CreatePaymentIntentCommand{}, err
	}

	return CreatePaymentIntentCommand{
		amount:   amount,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built by NewCreatePaymentIntentCommand.
func (c CreatePaymentIntentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentIntentCommandIsNotConstructed)
}

func (c CreatePaymentIntentCommand) Amount() kernel.Money { return c.amount }
func (c CreatePaymentIntentCommand) Currency() string     { return c.currency }
