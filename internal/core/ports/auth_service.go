package ports

import (
	"context"

	"github.com/Nowell222/green-path-ai/internal/core/domain"
)

// AuthService owns the single session of one browsing context.
type AuthService interface {
	// Login resolves the credentials against the directory after a simulated
	// network delay. On success the profile is persisted and becomes the
	// current session. Returns domain.ErrMissingFields, ErrInvalidCredentials
	// or ErrLoginSuperseded on failure.
	Login(ctx context.Context, email, password string) (*domain.UserProfile, error)

	// Logout clears the persisted session and returns to the anonymous state
	// regardless of the prior one. Idempotent.
	Logout(ctx context.Context) error

	Session() domain.Session
	Authenticated() bool

	// Busy reports whether a login call is in flight.
	Busy() bool

	// Subscribe registers fn to run after every session change. The returned
	// function removes the subscription.
	Subscribe(fn func(domain.Session)) (unsubscribe func())
}
