package queries

import (
	"errors"
	"strings"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/guard"
)

var ErrListPaymentsQueryIsNotConstructed = errors.New(
	"ListPaymentsQuery must be created via NewListPaymentsQuery constructor",
)

// ListPaymentsQuery lists payment records, optionally only those of one payer.
type ListPaymentsQuery struct {
	email *kernel.Email

	guard guard.ConstructorGuard
}

// NewListPaymentsQuery filters by payer when email is not blank.
func NewListPaymentsQuery(email string) (ListPaymentsQuery, error) {
	q := ListPaymentsQuery{guard: guard.NewConstructorGuard()}
	if email = strings.TrimSpace(email); email != "" {
		e, err := kernel.NewEmail(email)
		if err != nil {
			return ListPaymentsQuery{}, err
		}
		q.email = &e
	}
	return q, nil
}

// Validate reports whether the query was built by NewListPaymentsQuery.
func (q ListPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsQueryIsNotConstructed)
}

// Email returns the payer filter, or nil for every payer.
func (q ListPaymentsQuery) Email() *kernel.Email { return q.email }
