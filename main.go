package main

import (
	"os"
	"time"

	"social-scheduler/config"
	"social-scheduler/database"
	routes "social-scheduler/internal/app/http"
	"social-scheduler/internal/infra/logging"
	"social-scheduler/internal/infra/memory"
	"social-scheduler/internal/infra/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v75"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	logging.Setup(config.LOG_LEVEL, os.Stdout)

	stripe.Key = config.STRIPE_SECRET_KEY

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deps := routes.Deps{
		Metrics:       metrics.NewMetrics(registry),
		JWTSecret:     []byte(config.JWT_SECRET),
		WebhookSecret: config.STRIPE_WEBHOOK_SECRET,
		ProductID:     config.STRIPE_PRODUCT_ID,
	}

	if config.DB_URL == config.MemoryStore {
		logrus.Warn("using in-memory stores; data is lost on restart")
		deps.Users = memory.NewUserStore()
		deps.Accounts = memory.NewAccountStore()
		deps.Prices = memory.NewPriceStore()
	} else {
		database.InitDB()
		deps.Users = database.NewUserRepository(database.DB)
		deps.Accounts = database.NewAccountStore(database.DB)
		deps.Prices = database.NewPriceRepository(database.DB)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, deps)

	logrus.WithField("port", config.PORT).Info("listening")
	if err := r.Run(":" + config.PORT); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
