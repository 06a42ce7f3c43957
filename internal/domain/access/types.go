package access

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleCreator Role = "creator"
	RoleViewer  Role = "viewer"
)

type Capability string

const (
	CanPublish        Capability = "canPublish"
	CanSchedule       Capability = "canSchedule"
	CanDelete         Capability = "canDelete"
	CanManageUsers    Capability = "canManageUsers"
	CanManageAccounts Capability = "canManageAccounts"
	CanViewAnalytics  Capability = "canViewAnalytics"
	CanApproveContent Capability = "canApproveContent"
	CanManageBilling  Capability = "canManageBilling"
)

// Roles returns every role, most privileged first.
func Roles() []Role {
	return []Role{RoleOwner, RoleManager, RoleCreator, RoleViewer}
}

func Capabilities() []Capability {
	return []Capability{
		CanPublish,
		CanSchedule,
		CanDelete,
		CanManageUsers,
		CanManageAccounts,
		CanViewAnalytics,
		CanApproveContent,
		CanManageBilling,
	}
}

// ParseRole validates untrusted input (request bodies, DB rows, token claims).
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := rolePermissions[r]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

func ParseCapability(s string) (Capability, error) {
	c := Capability(strings.TrimSpace(s))
	for _, known := range Capabilities() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCapability, s)
}

func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

func (r Role) String() string {
	return string(r)
}
