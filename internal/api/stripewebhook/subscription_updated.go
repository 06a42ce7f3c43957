package stripewebhooks

import (
	"context"
	"errors"
	"fmt"

	"social-scheduler/internal/domain/billing"
	"social-scheduler/internal/domain/plans"
	"social-scheduler/internal/domain/users"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v75"
)

func (h *Handler) handleSubscriptionUpdated(ctx context.Context, sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}

	user, err := h.findSubscriber(ctx, sub)
	if err != nil || user == nil {
		return err
	}

	var priced plans.Plan
	if priceID := activePriceID(sub); priceID != "" {
		priced, err = h.Prices.PlanForPrice(ctx, priceID)
		if err != nil && !errors.Is(err, billing.ErrPriceNotMapped) {
			return fmt.Errorf("map price %s: %w", priceID, err)
		}
	}

	next, change := billing.PlanForStatus(string(sub.Status), priced)
	log := logrus.WithFields(logrus.Fields{
		"user_id":         user.ID,
		"subscription_id": sub.ID,
		"status":          sub.Status,
	})
	if !change || next == "" {
		// past_due, or an active price nobody mapped with /admin/sync-plans
		log.Info("subscription update leaves plan unchanged")
		return nil
	}

	return h.applyPlan(ctx, user, next)
}

func (h *Handler) applyPlan(ctx context.Context, user *users.User, next plans.Plan) error {
	if user.Plan == next {
		return nil
	}
	if err := h.Users.UpdatePlan(ctx, user.ID, next); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("update plan: %w", err)
	}

	h.Metrics.PlanChanged(string(next), "stripe")
	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"from":    user.Plan,
		"to":      next,
	}).Info("plan changed by subscription")
	return nil
}

// findSubscriber returns nil without error when the subscription belongs to nobody we know.
func (h *Handler) findSubscriber(ctx context.Context, sub *stripe.Subscription) (*users.User, error) {
	var (
		user *users.User
		err  error
	)
	if userID := userIDFromMetadata(sub.Metadata); userID != 0 {
		user, err = h.Users.FindByID(ctx, userID)
	} else if sub.Customer != nil && sub.Customer.ID != "" {
		user, err = h.Users.FindByStripeCustomerID(ctx, sub.Customer.ID)
	} else {
		return nil, nil
	}

	if errors.Is(err, users.ErrUserNotFound) {
		// acknowledge to avoid Stripe retries if user deleted
		logrus.WithField("subscription_id", sub.ID).Warn("subscription for unknown user")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find subscriber: %w", err)
	}
	return user, nil
}

func activePriceID(sub *stripe.Subscription) string {
	if sub.Items == nil || len(sub.Items.Data) == 0 || sub.Items.Data[0].Price == nil {
		return ""
	}
	return sub.Items.Data[0].Price.ID
}

func userIDFromMetadata(md map[string]string) uint {
	uid, err := userIDFromMetadataOrRef(md, "")
	if err != nil {
		return 0
	}
	return uid
}
