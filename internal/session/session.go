// Package session resolves the current user and forwards every permission, role and
// entitlement question to the access and plans packages. Nothing is cached between
// requests, so a role or plan change applies to the very next query.
package session

import (
	"context"
	"fmt"

	"social-scheduler/internal/domain/access"
	"social-scheduler/internal/domain/plans"
	"social-scheduler/internal/domain/users"
)

type Session struct {
	User users.User
}

func (s *Session) Permissions() (access.PermissionSet, error) {
	return access.PermissionsFor(s.User.Role)
}

// Can fails closed: a corrupt role grants nothing.
func (s *Session) Can(c access.Capability) bool {
	ok, err := access.HasPermission(s.User.Role, c)
	return err == nil && ok
}

func (s *Session) Is(role access.Role) bool {
	return access.IsRole(s.User.Role, role)
}

func (s *Session) Entitlement() (plans.Entitlement, error) {
	return plans.EntitlementFor(s.User.Plan)
}

// HasFeature reports whether the plan includes any of the given features.
func (s *Session) HasFeature(features ...plans.Feature) bool {
	for _, f := range features {
		ok, err := plans.HasFeature(f, s.User.Plan)
		if err == nil && ok {
			return true
		}
	}
	return false
}

// Loader reads the user from the store on every call.
type Loader struct {
	users users.Repository
}

func NewLoader(repo users.Repository) *Loader {
	return &Loader{users: repo}
}

func (l *Loader) Load(ctx context.Context, userID uint) (*Session, error) {
	u, err := l.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load session user %d: %w", userID, err)
	}
	return &Session{User: *u}, nil
}
