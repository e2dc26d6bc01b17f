package ports

import (
	"context"

	"profast/internal/core/domain/model/kernel"
)

// Identity is what a verified bearer token proves about its holder.
type Identity struct {
	Subject string
	Email   kernel.Email
}

// TokenVerifier checks a bearer token issued by the external identity provider.
// Any failure, including an expired or malformed token, is reported as an error;
// callers treat every error as an authentication failure.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}
