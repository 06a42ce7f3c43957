package plans

import (
	"net/http"

	"social-scheduler/internal/domain/billing"
	"social-scheduler/internal/domain/plans"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Prices    billing.PriceRepository
	ProductID string
}

func NewHandler(prices billing.PriceRepository, productID string) *Handler {
	return &Handler{Prices: prices, ProductID: productID}
}

type PriceDTO struct {
	StripePriceID string `json:"stripe_price_id"`
	Interval      string `json:"interval"`
}

type PlanDTO struct {
	plans.Entitlement
	Rank   int        `json:"rank"`
	Prices []PriceDTO `json:"prices"`
}

func (h *Handler) ListPlans(c *gin.Context) {
	mappings, err := h.Prices.List(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("list price mappings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}

	out := make([]PlanDTO, 0, len(plans.Plans()))
	for _, p := range plans.Plans() {
		e, err := plans.EntitlementFor(p)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
			return
		}
		out = append(out, PlanDTO{Entitlement: e, Rank: p.Rank(), Prices: pricesFor(p, mappings)})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetPlan(c *gin.Context) {
	p, err := plans.ParsePlan(c.Param("plan"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "plans": plans.Plans()})
		return
	}
	e, err := plans.EntitlementFor(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plan"})
		return
	}

	mappings, err := h.Prices.List(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("list price mappings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plan"})
		return
	}
	c.JSON(http.StatusOK, PlanDTO{Entitlement: e, Rank: p.Rank(), Prices: pricesFor(p, mappings)})
}

// RecommendPlan answers GET /plans/recommend?platform=tiktok.
func RecommendPlan(c *gin.Context) {
	platform := plans.NormalizePlatform(c.Query("platform"))
	if platform == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "platform query parameter is required"})
		return
	}

	rec := plans.RecommendedPlan(platform)
	e, err := plans.EntitlementFor(rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"platform":    platform,
		"plan":        rec,
		"entitlement": e,
	})
}

func pricesFor(p plans.Plan, mappings []billing.PriceMapping) []PriceDTO {
	out := []PriceDTO{}
	for _, m := range mappings {
		if m.Plan == p {
			out = append(out, PriceDTO{StripePriceID: m.StripePriceID, Interval: m.Interval})
		}
	}
	return out
}
