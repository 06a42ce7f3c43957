package stripewebhooks

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"social-scheduler/internal/domain/users"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v75"
)

// handleCheckoutSessionCompleted links the paying Stripe customer to our user so later
// subscription events can be matched by customer ID. The plan itself changes on the
// subscription events that follow.
func (h *Handler) handleCheckoutSessionCompleted(ctx context.Context, session *stripe.CheckoutSession) error {
	if session.Customer == nil || session.Customer.ID == "" {
		return nil
	}

	userID, err := userIDFromMetadataOrRef(session.Metadata, session.ClientReferenceID)
	if err != nil {
		logrus.WithError(err).WithField("session_id", session.ID).Warn("checkout session without user")
		return nil
	}

	err = h.Users.LinkStripeCustomer(ctx, userID, session.Customer.ID)
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		// acknowledge to avoid Stripe retries if user deleted
		logrus.WithField("user_id", userID).Warn("checkout for unknown user")
		return nil
	case errors.Is(err, users.ErrCustomerLinked):
		logrus.WithFields(logrus.Fields{"user_id": userID, "customer_id": session.Customer.ID}).
			Warn("stripe customer already linked to another user")
		return nil
	case err != nil:
		return fmt.Errorf("link stripe customer: %w", err)
	}
	return nil
}

func userIDFromMetadataOrRef(md map[string]string, clientRef string) (uint, error) {
	userIDStr := md["user_id"]
	if userIDStr == "" {
		userIDStr = clientRef
	}
	if userIDStr == "" {
		return 0, errors.New("missing user_id (metadata.user_id or client_reference_id)")
	}

	uid64, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil || uid64 == 0 {
		return 0, fmt.Errorf("invalid user_id %q", userIDStr)
	}
	return uint(uid64), nil
}
