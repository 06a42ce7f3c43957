package billing

import (
	"social-scheduler/internal/domain/plans"
	"social-scheduler/internal/infra/stripe"
)

// PlanForStatus decides which plan a user holds after a subscription event.
// The second return value is false when the current plan should be left alone.
func PlanForStatus(status string, pricedPlan plans.Plan) (plans.Plan, bool) {
	switch stripe.NormalizeStripeStatus(status) {
	case "active", "trialing":
		return pricedPlan, true
	case "canceled", "none":
		return plans.PlanFree, true
	default:
		// past_due and anything Stripe adds later: keep access until it resolves
		return "", false
	}
}
