package commands_test

import (
	"errors"
	"testing"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/ports"
	"profast/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentIntentCommandHandler_Handle(t *testing.T) {
	amount, _ := kernel.MoneyFromString("12.50")

	t.Run("proxies to the gateway", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreatePaymentIntentCommand(amount, "")
		require.NoError(t, err)

		gateway := new(MockPaymentGateway)
		gateway.On("CreatePaymentIntent", ctx, amount, "usd").
			Return(ports.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil).Once()

		intent, err := commands.NewCreatePaymentIntentCommandHandler(gateway).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "pi_1_secret", intent.ClientSecret)
		gateway.AssertExpectations(t)
	})

	t.Run("gateway failure is returned", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewCreatePaymentIntentCommand(amount, "BDT")

		gateway := new(MockPaymentGateway)
		gateway.On("CreatePaymentIntent", ctx, amount, "bdt").
			Return(ports.PaymentIntent{}, errors.New("card_declined")).Once()

		_, err := commands.NewCreatePaymentIntentCommandHandler(gateway).Handle(ctx, cmd)

		require.EqualError(t, err, "card_declined")
	})

	t.Run("amount must be positive", func(t *testing.T) {
		_, err := commands.NewCreatePaymentIntentCommand(kernel.ZeroMoney(), "usd")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("currency must be a code", func(t *testing.T) {
		_, err := commands.NewCreatePaymentIntentCommand(amount, "dollars")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
