// Package stripe creates payment intents with Stripe.
package stripe

import (
	"context"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/ports"

	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Gateway is the Stripe-backed PaymentGateway.
type Gateway struct {
	api *client.API
}

// New builds a gateway for secretKey. A non-empty baseURL points the client at a
// different API host, e.g. stripe-mock.
func New(secretKey, baseURL string) *Gateway {
	var backends *stripego.Backends
	if baseURL != "" {
		backend := stripego.GetBackendWithConfig(stripego.APIBackend, &stripego.BackendConfig{
			URL: stripego.String(baseURL),
		})
		backends = &stripego.Backends{API: backend, Connect: backend, Uploads: backend}
	}

	api := &client.API{}
	api.Init(secretKey, backends)
	return &Gateway{api: api}
}

// CreatePaymentIntent asks Stripe for a card payment intent of amount, expressed in
// the currency's minor units.
func (g *Gateway) CreatePaymentIntent(ctx context.Context, amount kernel.Money, currency string) (ports.PaymentIntent, error) {
	params := &stripego.PaymentIntentParams{
		Amount:             stripego.Int64(amount.MinorUnits()),
		Currency:           stripego.String(currency),
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return ports.PaymentIntent{}, err
	}
	return ports.PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
