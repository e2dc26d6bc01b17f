package queries

import (
	"errors"
	"strings"

	"profast/internal/pkg/errs"
	"profast/internal/pkg/guard"
)

// SearchUsersLimit caps the number of users a search returns.
const SearchUsersLimit = 10

var ErrSearchUsersQueryIsNotConstructed = errors.New(
	"SearchUsersQuery must be created via NewSearchUsersQuery constructor",
)

// SearchUsersQuery finds users whose email contains a fragment, ignoring case.
type SearchUsersQuery struct {
	fragment string

	guard guard.ConstructorGuard
}

// NewSearchUsersQuery matches users whose email contains fragment, ignoring case.
func NewSearchUsersQuery(fragment string) (SearchUsersQuery, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return SearchUsersQuery{}, errs.NewValueIsRequiredError("email")
	}
	return SearchUsersQuery{fragment: fragment, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the query was built by NewSearchUsersQuery.
func (q SearchUsersQuery) Validate() error {
	return q.guard.Validate(ErrSearchUsersQueryIsNotConstructed)
}

func (q SearchUsersQuery) Fragment() string { return q.fragment }
