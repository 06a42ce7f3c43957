package access

import "fmt"

func PermissionsFor(role Role) (PermissionSet, error) {
	p, ok := rolePermissions[role]
	if !ok {
		return PermissionSet{}, fmt.Errorf("%w: %q", ErrUnknownRole, string(role))
	}
	return p, nil
}

// HasPermission answers from the same table as PermissionsFor; there is no second path.
func HasPermission(role Role, c Capability) (bool, error) {
	p, err := PermissionsFor(role)
	if err != nil {
		return false, err
	}
	c, err = ParseCapability(string(c))
	if err != nil {
		return false, err
	}
	return p.Has(c), nil
}

// IsRole is an identity check only. An owner is not a manager; privilege comparisons
// go through HasPermission.
func IsRole(actual, expected Role) bool {
	return actual == expected
}
