package plans

import (
	"net/http"

	"social-scheduler/internal/domain/billing"
	"social-scheduler/internal/domain/plans"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/price"
)

// SyncPlansFromStripe maps every active recurring price carrying a "plan" (or "tier")
// metadata key onto that plan.
func (h *Handler) SyncPlansFromStripe(c *gin.Context) {
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	params := &stripe.PriceListParams{}
	params.Active = stripe.Bool(true)
	params.Type = stripe.String("recurring")
	params.AddExpand("data.product")

	it := price.List(params)

	synced := 0
	skipped := 0

	for it.Next() {
		m, ok := mappingFromPrice(it.Price(), h.ProductID)
		if !ok {
			skipped++
			continue
		}
		if err := h.Prices.Upsert(c.Request.Context(), m); err != nil {
			logrus.WithError(err).WithField("price_id", m.StripePriceID).Error("upsert price mapping")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save price mapping"})
			return
		}
		synced++
	}

	if err := it.Err(); err != nil {
		logrus.WithError(err).Error("list stripe prices")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch Stripe prices"})
		return
	}

	logrus.WithFields(logrus.Fields{"synced": synced, "skipped": skipped}).Info("stripe prices synced")
	c.JSON(http.StatusOK, gin.H{
		"synced":  synced,
		"skipped": skipped,
	})
}

// mappingFromPrice reports false for prices that should not sell a plan: inactive,
// one-off, hidden, from another product, or without a recognizable plan key.
func mappingFromPrice(p *stripe.Price, productID string) (*billing.PriceMapping, bool) {
	if p == nil || !p.Active || p.Recurring == nil || p.Product == nil || !p.Product.Active {
		return nil, false
	}
	if productID != "" && p.Product.ID != productID {
		return nil, false
	}
	if p.Metadata["visible"] == "false" {
		return nil, false
	}

	key := p.Metadata["plan"]
	if key == "" {
		key = p.Metadata["tier"]
	}
	plan, err := plans.ParsePlan(key)
	if err != nil {
		return nil, false
	}

	return &billing.PriceMapping{
		StripePriceID: p.ID,
		Plan:          plan,
		Interval:      string(p.Recurring.Interval),
	}, true
}
