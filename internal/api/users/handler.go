package users

import (
	"net/http"

	"social-scheduler/internal/app/http/middleware"
	"social-scheduler/internal/domain/accounts"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Provisioner *accounts.Provisioner
}

func NewHandler(p *accounts.Provisioner) *Handler {
	return &Handler{Provisioner: p}
}

func (h *Handler) GetCurrentUser(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var usage *accounts.Usage
	if s.User.Plan.Valid() {
		u, err := h.Provisioner.Usage(c.Request.Context(), s.User)
		if err != nil {
			logrus.WithError(err).WithField("user_id", s.User.ID).Error("account usage")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load usage"})
			return
		}
		usage = &u
	}

	c.JSON(http.StatusOK, MeResponse{
		User:    BuildUserDTO(s.User),
		Access:  BuildAccessDTO(s.User.Role),
		Billing: BuildBillingDTO(s.User, usage),
	})
}
