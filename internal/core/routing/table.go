package routing

import (
	"strings"

	"github.com/Nowell222/green-path-ai/internal/core/domain"
)

// GuardKind selects which decision procedure protects a route.
type GuardKind int

const (
	GuardProtected GuardKind = iota
	GuardAnonymousOnly
	GuardRedirect
)

// Route declares the guard and role constraint for one path pattern.
// Patterns ending in "/**" match the bare prefix and everything beneath it.
type Route struct {
	Pattern  string
	Kind     GuardKind
	Allowed  []domain.Role // empty means any authenticated role
	Redirect string        // only for GuardRedirect
}

// Table is the portal's navigation surface.
var Table = []Route{
	{Pattern: "/login", Kind: GuardAnonymousOnly},
	{Pattern: "/", Kind: GuardRedirect, Redirect: loginPath},
	{Pattern: "/resident/**", Kind: GuardProtected, Allowed: []domain.Role{domain.RoleResident}},
	{Pattern: "/admin/**", Kind: GuardProtected, Allowed: []domain.Role{domain.RoleAdministrator}},
	{Pattern: "/driver/**", Kind: GuardProtected, Allowed: []domain.Role{domain.RoleDriver}},
	{Pattern: "/official/**", Kind: GuardProtected, Allowed: []domain.Role{domain.RoleLocalOfficial}},
}

// Resolve returns the first route matching path, or false for unmatched paths.
func Resolve(path string) (Route, bool) {
	for _, route := range Table {
		if match(route.Pattern, path) {
			return route, true
		}
	}
	return Route{}, false
}

func match(pattern, path string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == pattern
}

// Decide runs the full navigation pipeline for path against the session.
// Unmatched paths are treated as protected with no role constraint and render
// the not-found screen when an identity is established.
func Decide(path string, sess domain.Session) Decision {
	route, ok := Resolve(path)
	if !ok {
		d := Protected(sess, nil)
		if d.Action == ActionRender {
			d.NotFound = true
		}
		return d
	}
	switch route.Kind {
	case GuardRedirect:
		return Decision{Action: ActionRedirect, Target: route.Redirect}
	case GuardAnonymousOnly:
		return AnonymousOnly(sess)
	default:
		return Protected(sess, route.Allowed)
	}
}
