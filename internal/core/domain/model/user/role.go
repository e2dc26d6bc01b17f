package user

import (
	"fmt"

	"profast/internal/pkg/errs"
)

// Role is the capability tier of an identity.
// Guest is never persisted: it is what the authorization layer derives for a
// verified identity that has no user record yet.
type Role int

const (
	Guest Role = iota
	RoleUser
	RoleRider
	RoleAdmin
)

var roleNames = map[Role]string{
	Guest:     "guest",
	RoleUser:  "user",
	RoleRider: "rider",
	RoleAdmin: "admin",
}

// ParseRole parses a persisted role. "guest" is rejected.
func ParseRole(s string) (Role, error) {
	for role, name := range roleNames {
		if name == s && role != Guest {
			return role, nil
		}
	}
	return Guest, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate accepts only roles that can be stored on a user.
func (r Role) Validate() error {
	if r != RoleUser && r != RoleRider && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%s cannot be assigned", r))
	}
	return nil
}

// String returns the stored name of the role.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}
