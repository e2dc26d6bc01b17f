package commands

import (
	"context"

	"profast/internal/core/ports"
)

// CreatePaymentIntentCommandHandler proxies the request to the payment gateway.
// Nothing is stored; the payment is recorded later by ConfirmPaymentCommand.
type CreatePaymentIntentCommandHandler struct {
	gateway ports.PaymentGateway
}

// NewCreatePaymentIntentCommandHandler returns a handler backed by gateway.
func NewCreatePaymentIntentCommandHandler(gateway ports.PaymentGateway) CreatePaymentIntentCommandHandler {
	return CreatePaymentIntentCommandHandler{gateway: gateway}
}

// Handle returns the client secret issued by the gateway.
func (h CreatePaymentIntentCommandHandler) Handle(
	ctx context.Context,
	command CreatePaymentIntentCommand,
) (ports.PaymentIntent, error) {
	if err := command.Validate(); err != nil {
		return ports.PaymentIntent{}, err
	}

	return h.gateway.CreatePaymentIntent(ctx, command.Amount(), command.Currency())
}
