package users

import (
	"context"
	"errors"

	"social-scheduler/internal/domain/access"
	"social-scheduler/internal/domain/plans"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")

	ErrCustomerLinked = errors.New("stripe customer already linked to another user")
)

// Repository is the persistent user store. Implementations must return
// ErrUserNotFound for missing rows.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByStripeCustomerID(ctx context.Context, customerID string) (*User, error)
	List(ctx context.Context) ([]User, error)
	UpdateRole(ctx context.Context, id uint, role access.Role) error
	UpdatePlan(ctx context.Context, id uint, plan plans.Plan) error
	LinkStripeCustomer(ctx context.Context, id uint, customerID string) error
}
