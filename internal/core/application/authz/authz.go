// Package authz is the authorization layer in front of every protected operation.
//
// Three tiers are checked, always in this order:
//   - Authenticated: the request carries a bearer token the TokenVerifier accepts
//   - Self: the identity acts on its own records only
//   - Role: the identity's stored role is in the allowed set
//
// A failed first tier is errs.ErrUnauthorized (401); failures of the other two are
// errs.ErrForbidden (403).
package authz

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/user"
	"profast/internal/core/ports"
	"profast/internal/pkg/errs"
)

const bearerScheme = "bearer"

// UserFinder looks up the stored role of a verified identity.
type UserFinder interface {
	GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error)
}

// Principal is an authenticated caller.
type Principal struct {
	Subject string
	Email   kernel.Email
	Role    user.Role
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == user.RoleAdmin
}

// Authorizer authenticates requests and resolves the caller's role.
type Authorizer struct {
	verifier ports.TokenVerifier
	users    UserFinder
}

// NewAuthorizer resolves principals with verifier and looks roles up in users.
func NewAuthorizer(verifier ports.TokenVerifier, users UserFinder) *Authorizer {
	return &Authorizer{verifier: verifier, users: users}
}

// Authenticate verifies the Authorization header value and returns the caller.
// Identities without a user record get user.Guest.
func (a *Authorizer) Authenticate(ctx context.Context, header string) (Principal, error) {
	token, err := bearerToken(header)
	if err != nil {
		return Principal{}, err
	}

	identity, err := a.verifier.Verify(ctx, token)
	if err != nil {
		return Principal{}, errs.NewUnauthorizedErrorWithCause("token verification failed", err)
	}
	if err = identity.Email.Validate(); err != nil {
		return Principal{}, errs.NewUnauthorizedErrorWithCause("token carries no email", err)
	}

	role := user.Guest
	u, err := a.users.GetByEmail(ctx, identity.Email)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
	case err != nil:
		return Principal{}, fmt.Errorf("resolve role of %s: %w", identity.Email, err)
	default:
		role = u.Role()
	}

	return Principal{Subject: identity.Subject, Email: identity.Email, Role: role}, nil
}

// RequireSelf fails unless email names the principal. The comparison is
// case-insensitive; an unparsable email never matches.
func RequireSelf(p Principal, email string) error {
	target, err := kernel.NewEmail(email)
	if err != nil || !target.IsEqual(p.Email) {
		return errs.NewForbiddenError("identity does not match the requested email")
	}
	return nil
}

// RequireRole fails unless the principal's role is one of roles.
func RequireRole(p Principal, roles ...user.Role) error {
	if slices.Contains(roles, p.Role) {
		return nil
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.String())
	}
	return errs.NewForbiddenError(fmt.Sprintf("role %s is not one of [%s]", p.Role, strings.Join(names, ", ")))
}

// RequireSelfOrAdmin lets admins act on anyone's records and everyone else on their own.
func RequireSelfOrAdmin(p Principal, email string) error {
	if p.IsAdmin() {
		return nil
	}
	return RequireSelf(p, email)
}

func bearerToken(header string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) || strings.TrimSpace(token) == "" {
		return "", errs.NewUnauthorizedError("missing bearer token")
	}
	return strings.TrimSpace(token), nil
}
