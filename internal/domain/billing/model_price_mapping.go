package billing

import (
	"time"

	"social-scheduler/internal/domain/plans"
)

// PriceMapping links a Stripe recurring price to the plan it sells.
type PriceMapping struct {
	ID            uint       `gorm:"primaryKey"`
	StripePriceID string     `gorm:"column:stripe_price_id;not null;uniqueIndex:idx_price_mappings_stripe_price_id"`
	Plan          plans.Plan `gorm:"type:varchar(20);not null"`
	Interval      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
