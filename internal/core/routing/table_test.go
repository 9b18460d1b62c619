package routing

import (
	"testing"

	"github.com/Nowell222/green-path-ai/internal/core/domain"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		path    string
		matched bool
		pattern string
	}{
		{"/login", true, "/login"},
		{"/", true, "/"},
		{"/resident", true, "/resident/**"},
		{"/resident/schedule", true, "/resident/**"},
		{"/admin", true, "/admin/**"},
		{"/admin/fleet/trucks", true, "/admin/**"},
		{"/driver", true, "/driver/**"},
		{"/official/reports", true, "/official/**"},
		{"/residents", false, ""},
		{"/unknown", false, ""},
	}

	for _, tt := range tests {
		route, ok := Resolve(tt.path)
		if ok != tt.matched {
			t.Fatalf("Resolve(%s): matched = %v, expected %v", tt.path, ok, tt.matched)
		}
		if ok && route.Pattern != tt.pattern {
			t.Fatalf("Resolve(%s): pattern = %s, expected %s", tt.path, route.Pattern, tt.pattern)
		}
	}
}

func TestDecide_RootAlwaysRedirectsToLogin(t *testing.T) {
	for _, sess := range []domain.Session{{}, authenticated(domain.RoleAdministrator)} {
		d := Decide("/", sess)
		if d.Action != ActionRedirect || d.Target != "/login" {
			t.Fatalf("expected unconditional redirect to /login, got %+v", d)
		}
	}
}

func TestDecide_LoginScreen(t *testing.T) {
	if d := Decide("/login", domain.Session{}); d.Action != ActionRender {
		t.Fatalf("anonymous /login: expected render, got %+v", d)
	}
	d := Decide("/login", authenticated(domain.RoleResident))
	if d.Action != ActionRedirect || d.Target != "/resident" {
		t.Fatalf("authenticated /login: expected redirect to /resident, got %+v", d)
	}
}

func TestDecide_UnmatchedPath(t *testing.T) {
	// Anonymous callers still land on the login screen.
	d := Decide("/no/such/screen", domain.Session{})
	if d.Action != ActionRedirect || d.Target != "/login" {
		t.Fatalf("anonymous unmatched: expected redirect to /login, got %+v", d)
	}

	// Any authenticated role renders the not-found screen, no redirect.
	d = Decide("/no/such/screen", authenticated(domain.RoleDriver))
	if d.Action != ActionRender || !d.NotFound {
		t.Fatalf("authenticated unmatched: expected not-found render, got %+v", d)
	}
}

func TestDecide_DriverScenario(t *testing.T) {
	driver := authenticated(domain.RoleDriver)

	d := Decide("/admin", driver)
	if d.Action != ActionRedirect || d.Target != "/driver" {
		t.Fatalf("/admin as driver: expected redirect to /driver, got %+v", d)
	}

	d = Decide("/driver", driver)
	if d.Action != ActionRender || d.NotFound {
		t.Fatalf("/driver as driver: expected render, got %+v", d)
	}
}

func TestDecide_EveryRoleOwnsItsSection(t *testing.T) {
	sections := map[domain.Role]string{
		domain.RoleResident:      "/resident",
		domain.RoleAdministrator: "/admin",
		domain.RoleDriver:        "/driver",
		domain.RoleLocalOfficial: "/official",
	}
	for role, section := range sections {
		sess := authenticated(role)
		if d := Decide(section, sess); d.Action != ActionRender {
			t.Fatalf("%s visiting %s: expected render, got %+v", role, section, d)
		}
		for other, otherSection := range sections {
			if other == role {
				continue
			}
			d := Decide(otherSection, sess)
			if d.Action != ActionRedirect || d.Target != role.LandingPath() {
				t.Fatalf("%s visiting %s: expected redirect to %s, got %+v",
					role, otherSection, role.LandingPath(), d)
			}
		}
	}
}
