package ports

import (
	"github.com/Nowell222/green-path-ai/internal/core/domain"
)

// CredentialDirectory resolves login credentials to a user profile.
// Implementations are populated once at process start and never mutated.
type CredentialDirectory interface {
	// Authenticate matches the identifier case-insensitively and the password
	// exactly. Any mismatch, including an unknown identifier, returns
	// domain.ErrInvalidCredentials. No side effects.
	Authenticate(email, password string) (*domain.UserProfile, error)
}
