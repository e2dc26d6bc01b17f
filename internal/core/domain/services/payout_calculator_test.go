package services_test

import (
	"testing"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayoutCalculator_Amount(t *testing.T) {
	calc := services.NewPayoutCalculator()

	tests := []struct {
		name           string
		senderCenter   string
		receiverCenter string
		cost           string
		want           string
	}{
		{"same district", "Dhaka", "Dhaka", "150", "120.00"},
		{"same district ignores case", "dhaka ", "Dhaka", "150", "120.00"},
		{"between districts", "Dhaka", "Sylhet", "150", "45.00"},
		{"rounds to cents", "Dhaka", "Sylhet", "99.99", "30.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := kernel.MoneyFromString(tt.cost)
			require.NoError(t, err)

			got := calc.Amount(cost, tt.senderCenter, tt.receiverCenter)

			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestPayoutCalculator_Rate(t *testing.T) {
	calc := services.NewPayoutCalculator()

	assert.True(t, calc.Rate("Dhaka", "DHAKA").Equal(services.SameDistrictRate))
	assert.True(t, calc.Rate("Dhaka", "Gazipur").Equal(services.InterDistrictRate))
}
