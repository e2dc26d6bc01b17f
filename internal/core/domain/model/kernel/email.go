package kernel

import (
	"fmt"
	"strings"

	"profast/internal/pkg/errs"
)

// Email is a normalized e-mail address. Identities coming from the token verifier,
// users, riders and the snapshot stored on an assigned parcel are all compared as
// Email values, so normalization happens once, here.
type Email struct {
	value string
}

// NewEmail trims and lower-cases s and checks that it has a non-empty local part and
// domain separated by exactly one '@'.
func NewEmail(s string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	local, domain, found := strings.Cut(normalized, "@")
	if !found || local == "" || domain == "" || strings.Contains(domain, "@") || strings.ContainsAny(normalized, " \t") {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid address", s))
	}

	return Email{value: normalized}, nil
}

// MustEmail is NewEmail for literals known to be valid. It panics otherwise.
func MustEmail(s string) Email {
	e, err := NewEmail(s)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Email) String() string {
	return e.value
}

func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

func (e Email) IsZero() bool {
	return e.value == ""
}

// Validate returns an error for the zero value.
func (e Email) Validate() error {
	if e.value == "" {
		return errs.NewValueIsRequiredError("email")
	}
	return nil
}
