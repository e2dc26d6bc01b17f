package ports

import (
	"context"

	"profast/internal/core/domain/model/kernel"
)

// PaymentIntent is the gateway's handle for a payment the client completes directly
// with the gateway.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentGateway creates payment intents with the external payment processor.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount kernel.Money, currency string) (PaymentIntent, error)
}
