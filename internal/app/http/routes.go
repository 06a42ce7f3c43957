package routes

import (
	"net/http"

	accountsapi "social-scheduler/internal/api/accounts"
	adminapi "social-scheduler/internal/api/admin"
	plansapi "social-scheduler/internal/api/plans"
	"social-scheduler/internal/api/roles"
	stripewebhooks "social-scheduler/internal/api/stripewebhook"
	usersapi "social-scheduler/internal/api/users"
	"social-scheduler/internal/app/http/middleware"
	"social-scheduler/internal/domain/access"
	"social-scheduler/internal/domain/accounts"
	"social-scheduler/internal/domain/billing"
	"social-scheduler/internal/domain/plans"
	"social-scheduler/internal/domain/users"
	"social-scheduler/internal/infra/metrics"
	"social-scheduler/internal/session"

	"github.com/gin-gonic/gin"
)

// Deps is everything the HTTP layer needs from main.
type Deps struct {
	Users         users.Repository
	Accounts      accounts.Store
	Prices        billing.PriceRepository
	Metrics       *metrics.Metrics
	JWTSecret     []byte
	WebhookSecret string
	ProductID     string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	m := d.Metrics
	provisioner := accounts.NewProvisioner(d.Accounts)

	plansHandler := plansapi.NewHandler(d.Prices, d.ProductID)
	usersHandler := usersapi.NewHandler(provisioner)
	accountsHandler := accountsapi.NewHandler(provisioner, m)
	adminHandler := adminapi.NewHandler(d.Users, m)
	webhookHandler := stripewebhooks.NewHandler(d.Users, d.Prices, d.WebhookSecret, m)

	r.POST("/webhook", webhookHandler.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	r.GET("/roles", roles.ListRoles)
	r.GET("/plans", plansHandler.ListPlans)
	r.GET("/plans/recommend", plansapi.RecommendPlan)
	r.GET("/plans/:plan", plansHandler.GetPlan)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(d.JWTSecret, session.NewLoader(d.Users)))
	auth.Use(middleware.SanitizeAndCleanInputMiddleware())
	auth.GET("/me", usersHandler.GetCurrentUser)
	auth.GET("/accounts", accountsHandler.List)
	auth.GET("/accounts/usage", accountsHandler.Usage)

	manage := auth.Group("/")
	manage.Use(middleware.RequirePermission(m, access.CanManageAccounts))
	manage.POST("/accounts", accountsHandler.Connect)
	manage.DELETE("/accounts/:id", accountsHandler.Disconnect)

	// Admin routes
	admin := auth.Group("/admin")
	admin.GET("/users", middleware.RequirePermission(m, access.CanManageUsers), adminHandler.ListAllUsers)
	admin.GET("/stats", middleware.RequirePermission(m, access.CanManageUsers), adminHandler.GetAdminStats)
	admin.PUT("/users/:id/role",
		middleware.RequirePermission(m, access.CanManageUsers),
		middleware.RequireFeature(m, plans.FeatureTeamCollaboration, plans.FeatureUnlimitedTeam),
		adminHandler.UpdateUserRole,
	)
	admin.PUT("/users/:id/plan", middleware.RequirePermission(m, access.CanManageBilling), adminHandler.UpdateUserPlan)
	admin.POST("/sync-plans", middleware.RequirePermission(m, access.CanManageBilling), plansHandler.SyncPlansFromStripe)
}
