package database

import (
	"context"
	"errors"

	"social-scheduler/internal/domain/billing"
	"social-scheduler/internal/domain/plans"

	"gorm.io/gorm"
)

type PriceRepository struct {
	db *gorm.DB
}

func NewPriceRepository(db *gorm.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

func (r *PriceRepository) PlanForPrice(ctx context.Context, stripePriceID string) (plans.Plan, error) {
	var m billing.PriceMapping
	err := r.db.WithContext(ctx).Where("stripe_price_id = ?", stripePriceID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", billing.ErrPriceNotMapped
	}
	if err != nil {
		return "", err
	}
	// rows can predate a plan rename; never trust them blindly
	return plans.ParsePlan(string(m.Plan))
}

func (r *PriceRepository) Upsert(ctx context.Context, m *billing.PriceMapping) error {
	plan, err := plans.ParsePlan(string(m.Plan))
	if err != nil {
		return err
	}
	m.Plan = plan

	db := r.db.WithContext(ctx)
	var existing billing.PriceMapping
	err = db.Where("stripe_price_id = ?", m.StripePriceID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(m).Error
	}
	if err != nil {
		return err
	}

	existing.Plan = m.Plan
	if m.Interval != "" {
		existing.Interval = m.Interval
	}
	if err := db.Save(&existing).Error; err != nil {
		return err
	}
	*m = existing
	return nil
}

func (r *PriceRepository) List(ctx context.Context) ([]billing.PriceMapping, error) {
	var list []billing.PriceMapping
	err := r.db.WithContext(ctx).Order("stripe_price_id ASC").Find(&list).Error
	return list, err
}
