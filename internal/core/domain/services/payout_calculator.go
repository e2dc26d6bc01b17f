package services

import (
	"strings"

	"profast/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var (
	// SameDistrictRate is the rider's share when sender and receiver are served by
	// the same service centre.
	SameDistrictRate = decimal.RequireFromString("0.80")

	// InterDistrictRate is the rider's share for parcels handed over between service
	// centres, where the rider only covers one leg of the trip.
	InterDistrictRate = decimal.RequireFromString("0.30")
)

// PayoutCalculator computes what a rider earns for a delivered parcel.
//
// Example usage:
//
//	cost, _ := kernel.MoneyFromString("150")
//	payout := services.NewPayoutCalculator().Amount(cost, "Dhaka", "Dhaka")
//	fmt.Println(payout) // "120.00"
type PayoutCalculator struct{}

// NewPayoutCalculator creates a new PayoutCalculator instance.
func NewPayoutCalculator() PayoutCalculator {
	return PayoutCalculator{}
}

// Rate returns the share of the cost paid to the rider for a route between two
// service centres. District names are compared case-insensitively.
func (PayoutCalculator) Rate(senderCenter, receiverCenter string) decimal.Decimal {
	if strings.EqualFold(strings.TrimSpace(senderCenter), strings.TrimSpace(receiverCenter)) {
		return SameDistrictRate
	}
	return InterDistrictRate
}

// Amount applies Rate to cost.
func (c PayoutCalculator) Amount(cost kernel.Money, senderCenter, receiverCenter string) kernel.Money {
	return cost.Mul(c.Rate(senderCenter, receiverCenter))
}
