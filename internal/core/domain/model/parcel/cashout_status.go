package parcel

import (
	"fmt"

	"profast/internal/pkg/errs"
)

// CashoutStatus tracks the one-time release of the rider's payout.
//
//	NotCashed ──> CashedOut
type CashoutStatus int

const (
	UnknownCashout CashoutStatus = iota
	NotCashed
	CashedOut
)

var cashoutStatusNames = map[CashoutStatus]string{
	NotCashed: "not_cashed",
	CashedOut: "cashed_out",
}

// ParseCashoutStatus accepts "not_cashed" and "cashed_out".
func ParseCashoutStatus(s string) (CashoutStatus, error) {
	for status, name := range cashoutStatusNames {
		if name == s {
			return status, nil
		}
	}
	return UnknownCashout, errs.NewValueIsInvalidErrorWithCause(
		"cashout_status",
		fmt.Errorf("%q is not a valid cashout status", s),
	)
}

// Validate rejects the zero value and unknown statuses.
func (s CashoutStatus) Validate() error {
	if _, ok := cashoutStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("cashout_status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s CashoutStatus) String() string {
	if name, ok := cashoutStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// CashOut transitions NotCashed -> CashedOut for a parcel in delivery state ds.
func (s CashoutStatus) CashOut(ds DeliveryStatus) (CashoutStatus, error) {
	if s == CashedOut {
		return UnknownCashout, errs.NewConflictError("parcel", "parcel is already cashed out")
	}
	if s != NotCashed {
		return UnknownCashout, errs.NewConflictError("parcel", fmt.Sprintf("cannot cash out from %s", s))
	}
	if !ds.IsTerminal() {
		return UnknownCashout, errs.NewConflictError("parcel", fmt.Sprintf("cannot cash out a parcel that is %s", ds))
	}
	return CashedOut, nil
}
