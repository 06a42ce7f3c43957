package accounts

import (
	"time"

	"social-scheduler/internal/domain/plans"
)

// SocialAccount is a connected social-network profile owned by a user.
type SocialAccount struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    uint           `gorm:"not null;index;uniqueIndex:idx_accounts_user_platform_handle,priority:1" json:"user_id"`
	Platform  plans.Platform `gorm:"type:varchar(40);not null;uniqueIndex:idx_accounts_user_platform_handle,priority:2" json:"platform"`
	Handle    string         `gorm:"not null;uniqueIndex:idx_accounts_user_platform_handle,priority:3" json:"handle"`
	CreatedAt time.Time      `json:"created_at"`
}

type Usage struct {
	Plan      plans.Plan `json:"plan"`
	Connected int        `json:"connected"`
	Max       int        `json:"max"`
	Remaining int        `json:"remaining"`
}
