package directory

import (
	"github.com/Nowell222/green-path-ai/internal/core/domain"
)

// DemoAccounts returns the four demonstration accounts, one per role.
func DemoAccounts() []Account {
	return []Account{
		{
			Password: "resident123",
			Profile: domain.UserProfile{
				ID:       "usr-001",
				Email:    "resident@greenpath.example",
				Name:     "Maria Santos",
				Role:     domain.RoleResident,
				District: "San Jose",
				Phone:    "0917-555-1234",
			},
		},
		{
			Password: "admin123",
			Profile: domain.UserProfile{
				ID:    "adm-001",
				Email: "admin@greenpath.example",
				Name:  "Juan Cruz",
				Role:  domain.RoleAdministrator,
				Phone: "0918-555-5678",
			},
		},
		{
			Password: "driver123",
			Profile: domain.UserProfile{
				ID:        "drv-001",
				Email:     "driver@greenpath.example",
				Name:      "Pedro Reyes",
				Role:      domain.RoleDriver,
				Phone:     "0919-555-9012",
				VehicleID: "TRK-247",
			},
		},
		{
			Password: "official123",
			Profile: domain.UserProfile{
				ID:       "off-001",
				Email:    "official@greenpath.example",
				Name:     "Jose Mendoza",
				Role:     domain.RoleLocalOfficial,
				District: "San Jose",
				Phone:    "0920-555-3456",
			},
		},
	}
}
