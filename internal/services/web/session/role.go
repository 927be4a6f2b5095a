package session

import (
	"fmt"
	"strings"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleDonor     Role = "donor"
	RolePatient   Role = "patient"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

// Roles returns every role in registration-form order.
func Roles() []Role {
	return []Role{RoleDonor, RolePatient, RoleVolunteer, RoleAdmin}
}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RolePatient, RoleVolunteer, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole maps a form or storage value to a Role.
func ParseRole(value string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", value)
	}
	return role, nil
}

// BloodGroup is one of the eight ABO/Rh groups.
type BloodGroup string

const (
	APositive  BloodGroup = "A+"
	ANegative  BloodGroup = "A-"
	BPositive  BloodGroup = "B+"
	BNegative  BloodGroup = "B-"
	ABPositive BloodGroup = "AB+"
	ABNegative BloodGroup = "AB-"
	OPositive  BloodGroup = "O+"
	ONegative  BloodGroup = "O-"
)

// BloodGroups returns every group in display order.
func BloodGroups() []BloodGroup {
	return []BloodGroup{APositive, ANegative, BPositive, BNegative, ABPositive, ABNegative, OPositive, ONegative}
}

// Valid reports whether g is a known blood group.
func (g BloodGroup) Valid() bool {
	for _, known := range BloodGroups() {
		if g == known {
			return true
		}
	}
	return false
}

// ParseBloodGroup maps "ab+", " O- " and similar to a BloodGroup.
func ParseBloodGroup(value string) (BloodGroup, error) {
	group := BloodGroup(strings.ToUpper(strings.TrimSpace(value)))
	if !group.Valid() {
		return "", fmt.Errorf("unknown blood group %q", value)
	}
	return group, nil
}
