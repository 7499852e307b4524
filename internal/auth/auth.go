// Package auth bridges the external auth provider into the API: it resolves a
// bearer token to the caller it belongs to.
package auth

import (
	"context"
	"errors"
)

// ErrUnauthorized is returned for every token that cannot be resolved to a
// caller. The reason is deliberately not distinguished.
var ErrUnauthorized = errors.New("unauthorized")

// Caller is the authenticated user behind a request.
type Caller struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Provider resolves an access token to its caller.
type Provider interface {
	GetUser(ctx context.Context, token string) (*Caller, error)
}

// PasswordResetter sends the provider's password-reset mail.
type PasswordResetter interface {
	SendPasswordReset(ctx context.Context, email, redirectTo string) error
}
