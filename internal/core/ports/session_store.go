package ports

import (
	"context"

	"github.com/Nowell222/green-path-ai/internal/core/domain"
)

// SessionStore holds the serialized profile of the currently authenticated
// identity under a single fixed key, surviving restarts of the owning
// browsing context. The auth service is the sole writer; everything else
// reads the in-memory mirror through the service's accessors.
type SessionStore interface {
	// Save serializes the profile and writes it under the store's key.
	Save(ctx context.Context, profile *domain.UserProfile) error

	// Load returns the persisted profile, or nil when the entry is absent or
	// cannot be decoded. Corrupted data counts as no session; it is never
	// surfaced as an error.
	Load(ctx context.Context) *domain.UserProfile

	// Clear removes the entry. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
