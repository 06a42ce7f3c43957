package access

// PermissionSet is the fixed set of capability flags granted to a role.
type PermissionSet struct {
	CanPublish        bool `json:"canPublish"`
	CanSchedule       bool `json:"canSchedule"`
	CanDelete         bool `json:"canDelete"`
	CanManageUsers    bool `json:"canManageUsers"`
	CanManageAccounts bool `json:"canManageAccounts"`
	CanViewAnalytics  bool `json:"canViewAnalytics"`
	CanApproveContent bool `json:"canApproveContent"`
	CanManageBilling  bool `json:"canManageBilling"`
}

// Single source of truth. Never mutated after init; PermissionSet is a value type so
// lookups hand out copies.
var rolePermissions = map[Role]PermissionSet{
	RoleOwner: {
		CanPublish:        true,
		CanSchedule:       true,
		CanDelete:         true,
		CanManageUsers:    true,
		CanManageAccounts: true,
		CanViewAnalytics:  true,
		CanApproveContent: true,
		CanManageBilling:  true,
	},
	RoleManager: {
		CanPublish:        true,
		CanSchedule:       true,
		CanDelete:         true,
		CanManageUsers:    true,
		CanManageAccounts: true,
		CanViewAnalytics:  true,
		CanApproveContent: true,
		CanManageBilling:  false,
	},
	RoleCreator: {
		CanSchedule:      true,
		CanViewAnalytics: true,
	},
	RoleViewer: {
		CanViewAnalytics: true,
	},
}

// Has reports whether the capability is granted. Unknown capabilities are never granted.
func (p PermissionSet) Has(c Capability) bool {
	switch c {
	case CanPublish:
		return p.CanPublish
	case CanSchedule:
		return p.CanSchedule
	case CanDelete:
		return p.CanDelete
	case CanManageUsers:
		return p.CanManageUsers
	case CanManageAccounts:
		return p.CanManageAccounts
	case CanViewAnalytics:
		return p.CanViewAnalytics
	case CanApproveContent:
		return p.CanApproveContent
	case CanManageBilling:
		return p.CanManageBilling
	default:
		return false
	}
}

// Granted lists the granted capabilities in Capabilities() order.
func (p PermissionSet) Granted() []Capability {
	out := []Capability{}
	for _, c := range Capabilities() {
		if p.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
