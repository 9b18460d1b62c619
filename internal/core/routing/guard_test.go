package routing

import (
	"testing"

	"github.com/Nowell222/green-path-ai/internal/core/domain"
)

func authenticated(role domain.Role) domain.Session {
	return domain.Session{Profile: &domain.UserProfile{ID: "usr-1", Role: role}}
}

func TestProtected_AnonymousRedirectsToLogin(t *testing.T) {
	d := Protected(domain.Session{}, []domain.Role{domain.RoleResident})
	if d.Action != ActionRedirect || d.Target != "/login" {
		t.Fatalf("expected redirect to /login, got %+v", d)
	}
}

func TestProtected_AllowedRoleRenders(t *testing.T) {
	d := Protected(authenticated(domain.RoleDriver), []domain.Role{domain.RoleDriver})
	if d.Action != ActionRender {
		t.Fatalf("expected render, got %+v", d)
	}
}

func TestProtected_EmptyConstraintAdmitsAnyRole(t *testing.T) {
	for _, role := range domain.Roles {
		d := Protected(authenticated(role), nil)
		if d.Action != ActionRender {
			t.Fatalf("role %s: expected render, got %+v", role, d)
		}
	}
}

func TestProtected_RoleMismatchFallsBackToOwnLanding(t *testing.T) {
	// A mismatch sends the identity home, never to an error screen.
	d := Protected(authenticated(domain.RoleDriver), []domain.Role{domain.RoleAdministrator})
	if d.Action != ActionRedirect || d.Target != "/driver" {
		t.Fatalf("expected redirect to /driver, got %+v", d)
	}
}

func TestAnonymousOnly_AuthenticatedRedirectsToLanding(t *testing.T) {
	for _, role := range domain.Roles {
		d := AnonymousOnly(authenticated(role))
		if d.Action != ActionRedirect || d.Target != role.LandingPath() {
			t.Fatalf("role %s: expected redirect to %s, got %+v", role, role.LandingPath(), d)
		}
	}
}

func TestAnonymousOnly_AnonymousRenders(t *testing.T) {
	d := AnonymousOnly(domain.Session{})
	if d.Action != ActionRender {
		t.Fatalf("expected render, got %+v", d)
	}
}
