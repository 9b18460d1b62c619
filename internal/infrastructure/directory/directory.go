// Package directory implements the fixed in-memory credential table used to
// simulate authentication.
package directory

import (
	"strings"

	"github.com/Nowell222/green-path-ai/internal/core/domain"
)

// Account seeds one directory entry.
type Account struct {
	Password string
	Profile  domain.UserProfile
}

// record pairs a plaintext password with a profile.
type record struct {
	password string
	profile  domain.UserProfile
}

// Directory is a static credential table keyed by lowercased email. It is
// populated once at construction and never mutated.
type Directory struct {
	records map[string]record
}

func New(accounts []Account) *Directory {
	d := &Directory{records: make(map[string]record, len(accounts))}
	for _, a := range accounts {
		d.records[strings.ToLower(a.Profile.Email)] = record{
			password: a.Password,
			profile:  a.Profile,
		}
	}
	return d
}

// Authenticate implements ports.CredentialDirectory. The identifier is
// lowercased before comparison; this is the only input sanitization in the
// login path, so callers must not bypass it. An unknown identifier and a
// wrong password are indistinguishable to the caller.
func (d *Directory) Authenticate(email, password string) (*domain.UserProfile, error) {
	rec, ok := d.records[strings.ToLower(email)]
	if !ok || rec.password != password {
		return nil, domain.ErrInvalidCredentials
	}
	profile := rec.profile
	return &profile, nil
}
