// Package routing decides, for every navigable screen, whether the current
// identity may view it and where to send it if not.
package routing

import (
	"github.com/Nowell222/green-path-ai/internal/core/domain"
)

// Action is the outcome of a guard decision.
type Action string

const (
	ActionRender   Action = "render"
	ActionRedirect Action = "redirect"
)

// Decision tells the presentation layer what to do with a navigation request.
type Decision struct {
	Action   Action
	Target   string // redirect destination, empty when rendering
	NotFound bool   // render the not-found screen instead of the requested one
}

const loginPath = "/login"

// Protected guards role-scoped screens. An empty constraint admits any
// authenticated role. A role mismatch falls back to the identity's own
// landing path, never to an error screen; anonymous callers go to the login
// screen.
func Protected(sess domain.Session, allowed []domain.Role) Decision {
	role, ok := sess.Role()
	if !ok {
		return Decision{Action: ActionRedirect, Target: loginPath}
	}
	if len(allowed) == 0 {
		return Decision{Action: ActionRender}
	}
	for _, r := range allowed {
		if r == role {
			return Decision{Action: ActionRender}
		}
	}
	return Decision{Action: ActionRedirect, Target: role.LandingPath()}
}

// AnonymousOnly guards screens that only make sense logged out, such as the
// login screen. An authenticated identity is sent to its landing path.
func AnonymousOnly(sess domain.Session) Decision {
	if role, ok := sess.Role(); ok {
		return Decision{Action: ActionRedirect, Target: role.LandingPath()}
	}
	return Decision{Action: ActionRender}
}
