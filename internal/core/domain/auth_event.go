package domain

import "time"

// AuthEventKind classifies an entry in the authentication audit trail.
type AuthEventKind string

const (
	AuthEventLoginSucceeded AuthEventKind = "login_succeeded"
	AuthEventLoginFailed    AuthEventKind = "login_failed"
	AuthEventLogout         AuthEventKind = "logout"
)

// AuthEvent records a single authentication action for the audit trail.
type AuthEvent struct {
	ID        string
	ContextID string
	Kind      AuthEventKind
	Email     string
	Role      Role // empty when the action did not resolve to an identity
	Timestamp time.Time
}
