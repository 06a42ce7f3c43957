package accountsapi

import (
	"errors"
	"net/http"

	"social-scheduler/internal/app/http/middleware"
	"social-scheduler/internal/domain/accounts"
	"social-scheduler/internal/domain/plans"
	"social-scheduler/internal/infra/metrics"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Provisioner *accounts.Provisioner
	Metrics     *metrics.Metrics
}

func NewHandler(p *accounts.Provisioner, m *metrics.Metrics) *Handler {
	return &Handler{Provisioner: p, Metrics: m}
}

type ConnectRequest struct {
	Platform string `json:"platform" binding:"required"`
	Handle   string `json:"handle" binding:"required"`
}

func (h *Handler) List(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	list, err := h.Provisioner.List(c.Request.Context(), s.User)
	if err != nil {
		logrus.WithError(err).WithField("user_id", s.User.ID).Error("list accounts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load accounts"})
		return
	}
	if list == nil {
		list = []accounts.SocialAccount{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) Usage(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	usage, err := h.Provisioner.Usage(c.Request.Context(), s.User)
	if errors.Is(err, plans.ErrUnknownPlan) {
		c.JSON(http.StatusConflict, gin.H{"error": "Account has an unrecognized plan"})
		return
	}
	if err != nil {
		logrus.WithError(err).WithField("user_id", s.User.ID).Error("account usage")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load usage"})
		return
	}
	c.JSON(http.StatusOK, usage)
}

func (h *Handler) Connect(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "platform and handle are required"})
		return
	}

	acct, err := h.Provisioner.Connect(c.Request.Context(), s.User, req.Platform, req.Handle)
	plan := string(s.User.Plan)
	if err != nil {
		h.writeConnectError(c, plan, err)
		return
	}

	h.Metrics.Connect(plan, "connected")
	logrus.WithFields(logrus.Fields{
		"user_id":  s.User.ID,
		"platform": acct.Platform,
	}).Info("account connected")
	c.JSON(http.StatusCreated, acct)
}

func (h *Handler) writeConnectError(c *gin.Context, plan string, err error) {
	var limitErr *accounts.LimitReachedError
	var platformErr *accounts.PlatformUnavailableError

	switch {
	case errors.As(err, &limitErr):
		h.Metrics.Connect(plan, "limit_reached")
		resp := gin.H{
			"error":   limitErr.Message,
			"current": limitErr.Current,
			"max":     limitErr.Max,
			"plan":    limitErr.Plan,
		}
		if next, ok := nextPlan(limitErr.Plan); ok {
			resp["recommended_plan"] = next
		}
		c.JSON(http.StatusPaymentRequired, resp)
	case errors.As(err, &platformErr):
		h.Metrics.Connect(plan, "platform_unavailable")
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":            platformErr.Error(),
			"platform":         platformErr.Platform,
			"plan":             platformErr.Plan,
			"recommended_plan": platformErr.Recommended,
		})
	case errors.Is(err, accounts.ErrAccountExists):
		h.Metrics.Connect(plan, "duplicate")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, accounts.ErrInvalidHandle), errors.Is(err, accounts.ErrInvalidPlatform):
		h.Metrics.Connect(plan, "invalid")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, plans.ErrUnknownPlan):
		h.Metrics.Connect(plan, "invalid")
		c.JSON(http.StatusConflict, gin.H{"error": "Account has an unrecognized plan"})
	default:
		h.Metrics.Connect(plan, "error")
		logrus.WithError(err).Error("connect account")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to connect account"})
	}
}

// nextPlan is the cheapest plan with a higher account ceiling.
func nextPlan(p plans.Plan) (plans.Plan, bool) {
	all := plans.Plans()
	r := p.Rank()
	if r < 0 || r+1 >= len(all) {
		return "", false
	}
	return all[r+1], true
}

func (h *Handler) Disconnect(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.Provisioner.Disconnect(c.Request.Context(), s.User, c.Param("id"))
	if errors.Is(err, accounts.ErrAccountNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}
	if err != nil {
		logrus.WithError(err).Error("disconnect account")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disconnect account"})
		return
	}
	c.Status(http.StatusNoContent)
}
