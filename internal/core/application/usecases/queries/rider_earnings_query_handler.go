package queries

import (
	"context"
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"
	"profast/internal/core/domain/services"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EarningsView totals a rider's payouts. Cashed-out payouts are bucketed by
// cashout date; Pending is what delivered but not yet cashed-out parcels would pay.
type EarningsView struct {
	Today          kernel.Money
	ThisWeek       kernel.Money
	ThisMonth      kernel.Money
	ThisYear       kernel.Money
	Total          kernel.Money
	Pending        kernel.Money
	CashedOutCount int
	PendingCount   int
}

// RiderEarningsQueryHandler runs RiderEarningsQuery.
type RiderEarningsQueryHandler struct {
	db         *gorm.DB
	calculator services.PayoutCalculator
}

// NewRiderEarningsQueryHandler prices each delivered parcel with calculator.
func NewRiderEarningsQueryHandler(db *gorm.DB, calculator services.PayoutCalculator) RiderEarningsQueryHandler {
	return RiderEarningsQueryHandler{db: db, calculator: calculator}
}

// Handle sums payouts of delivered parcels assigned to the rider.
func (h RiderEarningsQueryHandler) Handle(ctx context.Context, query RiderEarningsQuery) (EarningsView, error) {
	if err := query.Validate(); err != nil {
		return EarningsView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT cost, sender_service_center, receiver_service_center, cashout_status, cashout_date
		FROM parcels
		WHERE assigned_rider_email = ? AND delivery_status IN ?`,
		query.RiderEmail().String(),
		[]string{parcel.Delivered.String(), parcel.ServiceCenterDelivered.String()},
	).Rows()
	if err != nil {
		return EarningsView{}, err
	}
	defer rows.Close()

	periods := newPeriods(query.AsOf())
	v := EarningsView{
		Today: kernel.ZeroMoney(), ThisWeek: kernel.ZeroMoney(), ThisMonth: kernel.ZeroMoney(),
		ThisYear: kernel.ZeroMoney(), Total: kernel.ZeroMoney(), Pending: kernel.ZeroMoney(),
	}

	for rows.Next() {
		var (
			cost                   decimal.Decimal
			senderCenter, receiver string
			cashoutStatus          string
			cashoutDate            *time.Time
		)
		if err = rows.Scan(&cost, &senderCenter, &receiver, &cashoutStatus, &cashoutDate); err != nil {
			return EarningsView{}, err
		}
		money, moneyErr := kernel.NewMoney(cost)
		if moneyErr != nil {
			return EarningsView{}, moneyErr
		}
		payout := h.calculator.Amount(money, senderCenter, receiver)

		if cashoutStatus != parcel.CashedOut.String() || cashoutDate == nil {
			v.Pending = v.Pending.Add(payout)
			v.PendingCount++
			continue
		}

		v.CashedOutCount++
		v.Total = v.Total.Add(payout)
		at := cashoutDate.In(query.AsOf().Location())
		if periods.contains(periods.day, at) {
			v.Today = v.Today.Add(payout)
		}
		if periods.contains(periods.week, at) {
			v.ThisWeek = v.ThisWeek.Add(payout)
		}
		if periods.contains(periods.month, at) {
			v.ThisMonth = v.ThisMonth.Add(payout)
		}
		if periods.contains(periods.year, at) {
			v.ThisYear = v.ThisYear.Add(payout)
		}
	}
	if err = rows.Err(); err != nil {
		return EarningsView{}, err
	}

	return v, nil
}

// periods holds the start of each reporting period. Weeks start on Saturday, the
// first working day of the week in Bangladesh.
type periods struct {
	asOf                   time.Time
	day, week, month, year time.Time
}

func newPeriods(asOf time.Time) periods {
	n := (&now.Config{WeekStartDay: time.Saturday, TimeLocation: asOf.Location()}).With(asOf)
	return periods{
		asOf:  asOf,
		day:   n.BeginningOfDay(),
		week:  n.BeginningOfWeek(),
		month: n.BeginningOfMonth(),
		year:  n.BeginningOfYear(),
	}
}

// contains reports whether t falls in [start, asOf].
func (p periods) contains(start, t time.Time) bool {
	return !t.Before(start) && !t.After(p.asOf)
}
