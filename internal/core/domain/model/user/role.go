package user

import "parceltrack/internal/pkg/errs"

// Role is the discriminator of the user union. It decides which profile
// payload a user carries and which operations the user may perform.
type Role int

const (
	// RoleUnknown is the zero value and is not a valid role.
	RoleUnknown Role = iota
	// Customer users create parcels and pay bills. Read-only on tracking.
	Customer
	// Driver users deliver parcels and report delivery outcomes.
	Driver
	// Warehouse users move parcels forward through the warehouse track.
	Warehouse
	// Admin users are unrestricted.
	Admin
	// CustomerService users are unrestricted, used for corrective action.
	CustomerService
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:     "unknown",
		Customer:        "customer",
		Driver:          "driver",
		Warehouse:       "warehouse",
		Admin:           "admin",
		CustomerService: "customer_service",
	}
}

func getValidRoleStrings() map[string]Role {
	return map[string]Role{
		"customer":         Customer,
		"driver":           Driver,
		"warehouse":        Warehouse,
		"admin":            Admin,
		"customer_service": CustomerService,
	}
}

// RoleFromString parses a role name. Unknown names yield a
// ValueIsInvalidError.
func RoleFromString(s string) (Role, error) {
	if role, ok := getValidRoleStrings()[s]; ok {
		return role, nil
	}
	return RoleUnknown, errs.NewValueIsInvalidError("role: " + s)
}

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// String returns the lowercase name of the role, or "unknown" when it is not
// a valid value.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return getRoleStrings()[RoleUnknown]
}
