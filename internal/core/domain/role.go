package domain

// Role is the closed set of identity categories in the portal. Adding a role
// requires a landing path, a display name, and a directory entry.
type Role string

const (
	RoleResident      Role = "resident"
	RoleAdministrator Role = "administrator"
	RoleDriver        Role = "driver"
	RoleLocalOfficial Role = "local-official"
)

// Roles lists every valid role.
var Roles = []Role{RoleResident, RoleAdministrator, RoleDriver, RoleLocalOfficial}

// landingPaths maps every role to its canonical home screen. The landing path
// doubles as the post-login destination and the fallback target when a role
// requests a screen it may not view.
var landingPaths = map[Role]string{
	RoleResident:      "/resident",
	RoleAdministrator: "/admin",
	RoleDriver:        "/driver",
	RoleLocalOfficial: "/official",
}

// displayNames is a parallel lookup used only for presentation; it carries no
// authorization weight.
var displayNames = map[Role]string{
	RoleResident:      "Resident",
	RoleAdministrator: "Municipal Admin",
	RoleDriver:        "Truck Driver",
	RoleLocalOfficial: "District Official",
}

// ParseRole converts a raw string into a Role, rejecting anything outside the
// closed set.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrUnknownRole
	}
	return r, nil
}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	_, ok := landingPaths[r]
	return ok
}

// LandingPath returns the canonical home path for the role. Every valid role
// maps to exactly one path; an invalid role yields the empty string.
func (r Role) LandingPath() string {
	return landingPaths[r]
}

// DisplayName returns the human-readable label for the role.
func (r Role) DisplayName() string {
	return displayNames[r]
}
