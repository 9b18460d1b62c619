package domain

// Session is the runtime record of the currently authenticated identity:
// either empty or holding exactly one profile. At most one session exists
// per browsing context.
type Session struct {
	Profile *UserProfile
}

// Authenticated reports whether the session holds an identity.
func (s Session) Authenticated() bool {
	return s.Profile != nil
}

// Role returns the session's role, or false when anonymous.
func (s Session) Role() (Role, bool) {
	if s.Profile == nil {
		return "", false
	}
	return s.Profile.Role, true
}
