package domain

// UserProfile identifies an authenticated actor in the portal.
//
// The JSON shape is also the persisted session layout: one durable entry
// holding exactly these fields. District is set for residents and local
// officials, VehicleID for drivers; the optional fields are populated by
// convention only, nothing enforces the pairing.
type UserProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	Avatar    string `json:"avatar,omitempty"`
	District  string `json:"district,omitempty"`
	Phone     string `json:"phone,omitempty"`
	VehicleID string `json:"vehicleId,omitempty"`
}
