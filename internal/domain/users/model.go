package users

import (
	"time"

	"social-scheduler/internal/domain/access"
	"social-scheduler/internal/domain/plans"
)

type User struct {
	ID    uint   `gorm:"primaryKey"`
	Email string `gorm:"not null;uniqueIndex:idx_users_email"`
	Name  string

	// Stored as plain strings; always re-validated through the authorities on read.
	Role access.Role `gorm:"type:varchar(20);not null;default:'viewer'"`
	Plan plans.Plan  `gorm:"type:varchar(20);not null;default:'free'"`

	StripeCustomerID *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_users_stripe_customer_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
