// Package jwtverifier verifies bearer tokens minted by the identity provider.
package jwtverifier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

var ErrEmailClaimMissing = errors.New("token carries no email claim")

// Claims is the payload the identity provider signs.
type Claims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified,omitempty"`
	jwt.RegisteredClaims
}

// Verifier checks HMAC-signed tokens against a shared secret.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

// New builds a verifier. An empty issuer accepts any issuer; leeway tolerates
// clock skew on exp and nbf.
func New(secret, issuer string, leeway time.Duration) (*Verifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	return &Verifier{secret: []byte(secret), parser: jwt.NewParser(opts...)}, nil
}

func (v *Verifier) Verify(_ context.Context, token string) (ports.Identity, error) {
	claims := &Claims{}
	if _, err := v.parser.ParseWithClaims(strings.TrimSpace(token), claims, v.key); err != nil {
		return ports.Identity{}, err
	}

	if claims.Email == "" {
		return ports.Identity{}, ErrEmailClaimMissing
	}
	email, err := kernel.NewEmail(claims.Email)
	if err != nil {
		return ports.Identity{}, fmt.Errorf("email claim: %w", err)
	}

	return ports.Identity{Subject: claims.Subject, Email: email}, nil
}

func (v *Verifier) key(*jwt.Token) (any, error) {
	return v.secret, nil
}

// Sign mints a token for email. Used by tests and local tooling.
func Sign(secret, issuer, subject, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
