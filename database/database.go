package database

import (
	"social-scheduler/config"
	"social-scheduler/internal/domain/accounts"
	"social-scheduler/internal/domain/billing"
	"social-scheduler/internal/domain/users"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := config.DB_URL
	if dsn == "" {
		logrus.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	if err := Migrate(db); err != nil {
		logrus.WithError(err).Fatal("auto-migrate failed")
	}

	DB = db
	logrus.Info("connected and migrated")
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&accounts.SocialAccount{},
		&billing.PriceMapping{},
	)
}
