package admin

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"social-scheduler/internal/app/http/middleware"
	"social-scheduler/internal/domain/access"
	"social-scheduler/internal/domain/plans"
	"social-scheduler/internal/domain/users"
	"social-scheduler/internal/infra/metrics"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Users   users.Repository
	Metrics *metrics.Metrics
}

func NewHandler(repo users.Repository, m *metrics.Metrics) *Handler {
	return &Handler{Users: repo, Metrics: m}
}

type AdminUser struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	Plan             string    `json:"plan"`
	StripeCustomerID *string   `json:"stripe_customer_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type AdminStats struct {
	TotalUsers   int            `json:"total_users"`
	UsersPerPlan map[string]int `json:"users_per_plan"`
	UsersPerRole map[string]int `json:"users_per_role"`
}

type updateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type updatePlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}

func (h *Handler) ListAllUsers(c *gin.Context) {
	list, err := h.Users.List(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("list users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	adminUsers := make([]AdminUser, 0, len(list))
	for _, u := range list {
		adminUsers = append(adminUsers, AdminUser{
			ID:               u.ID,
			Name:             u.Name,
			Email:            u.Email,
			Role:             string(u.Role),
			Plan:             string(u.Plan),
			StripeCustomerID: u.StripeCustomerID,
			CreatedAt:        u.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, adminUsers)
}

func (h *Handler) GetAdminStats(c *gin.Context) {
	list, err := h.Users.List(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("list users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	stats := AdminStats{
		TotalUsers:   len(list),
		UsersPerPlan: map[string]int{},
		UsersPerRole: map[string]int{},
	}
	for _, u := range list {
		stats.UsersPerPlan[string(u.Plan)]++
		stats.UsersPerRole[string(u.Role)]++
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) UpdateUserRole(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role is required"})
		return
	}
	role, err := access.ParseRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "roles": access.Roles()})
		return
	}

	ctx := c.Request.Context()
	target, err := h.Users.FindByID(ctx, id)
	if err != nil {
		h.writeUpdateError(c, err)
		return
	}

	s, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	// granting or revoking owner is reserved to owners
	if role == access.RoleOwner || target.Role == access.RoleOwner {
		allowed := s.Is(access.RoleOwner)
		h.Metrics.Decision("role", string(access.RoleOwner), allowed)
		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only an owner can grant or revoke the owner role"})
			return
		}
	}

	if target.Role == access.RoleOwner && role != access.RoleOwner {
		last, err := h.isLastOwner(ctx, target.ID)
		if err != nil {
			logrus.WithError(err).Error("count owners")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		if last {
			c.JSON(http.StatusConflict, gin.H{"error": "The workspace must keep at least one owner"})
			return
		}
	}

	// nobody changes their own role
	if s.User.ID == id && role != s.User.Role {
		c.JSON(http.StatusConflict, gin.H{"error": "You cannot change your own role"})
		return
	}

	if err := h.Users.UpdateRole(ctx, id, role); err != nil {
		h.writeUpdateError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": id, "role": role}).Info("role updated")
	c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
}

func (h *Handler) UpdateUserPlan(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	var req updatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan is required"})
		return
	}
	plan, err := plans.ParsePlan(req.Plan)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "plans": plans.Plans()})
		return
	}

	if err := h.Users.UpdatePlan(c.Request.Context(), id, plan); err != nil {
		h.writeUpdateError(c, err)
		return
	}

	h.Metrics.PlanChanged(string(plan), "admin")
	logrus.WithFields(logrus.Fields{"user_id": id, "plan": plan}).Info("plan updated")
	c.JSON(http.StatusOK, gin.H{"id": id, "plan": plan})
}

func (h *Handler) isLastOwner(ctx context.Context, id uint) (bool, error) {
	list, err := h.Users.List(ctx)
	if err != nil {
		return false, err
	}
	for _, u := range list {
		if u.ID != id && u.Role == access.RoleOwner {
			return false, nil
		}
	}
	return true, nil
}

func (h *Handler) writeUpdateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, access.ErrUnknownRole), errors.Is(err, plans.ErrUnknownPlan):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error("update user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
	}
}

func userIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return 0, false
	}
	return uint(id), true
}
