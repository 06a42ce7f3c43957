package billing

import (
	"context"
	"errors"

	"social-scheduler/internal/domain/plans"
)

var ErrPriceNotMapped = errors.New("stripe price is not mapped to a plan")

type PriceRepository interface {
	PlanForPrice(ctx context.Context, stripePriceID string) (plans.Plan, error)
	Upsert(ctx context.Context, m *PriceMapping) error
	List(ctx context.Context) ([]PriceMapping, error)
}
