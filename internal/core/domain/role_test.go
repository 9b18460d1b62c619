package domain

import "testing"

func TestRole_LandingPath_Total(t *testing.T) {
	want := map[Role]string{
		RoleResident:      "/resident",
		RoleAdministrator: "/admin",
		RoleDriver:        "/driver",
		RoleLocalOfficial: "/official",
	}
	for _, role := range Roles {
		path, ok := want[role]
		if !ok {
			t.Fatalf("no expectation for role %s", role)
		}
		if got := role.LandingPath(); got != path {
			t.Fatalf("landing path for %s: expected %s, got %s", role, path, got)
		}
	}
}

func TestRole_DisplayName_Total(t *testing.T) {
	for _, role := range Roles {
		if role.DisplayName() == "" {
			t.Fatalf("role %s has no display name", role)
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, role := range Roles {
		parsed, err := ParseRole(string(role))
		if err != nil {
			t.Fatalf("ParseRole(%s) returned error: %v", role, err)
		}
		if parsed != role {
			t.Fatalf("ParseRole(%s) = %s", role, parsed)
		}
	}

	if _, err := ParseRole("superuser"); err != ErrUnknownRole {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
	if _, err := ParseRole(""); err != ErrUnknownRole {
		t.Fatalf("expected ErrUnknownRole for empty string, got %v", err)
	}
}

func TestSession_Accessors(t *testing.T) {
	var empty Session
	if empty.Authenticated() {
		t.Fatalf("empty session must not be authenticated")
	}
	if _, ok := empty.Role(); ok {
		t.Fatalf("empty session must not have a role")
	}

	sess := Session{Profile: &UserProfile{ID: "usr-1", Role: RoleDriver}}
	if !sess.Authenticated() {
		t.Fatalf("session with profile must be authenticated")
	}
	role, ok := sess.Role()
	if !ok || role != RoleDriver {
		t.Fatalf("unexpected role: %s", role)
	}
}
