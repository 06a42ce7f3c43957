package stripewebhooks

import (
	"context"

	"social-scheduler/internal/domain/plans"

	"github.com/stripe/stripe-go/v75"
)

func (h *Handler) handleSubscriptionDeleted(ctx context.Context, sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}

	user, err := h.findSubscriber(ctx, sub)
	if err != nil || user == nil {
		return err
	}
	return h.applyPlan(ctx, user, plans.PlanFree)
}
