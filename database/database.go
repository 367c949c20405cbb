package database

import (
	"fmt"
	"log"
	"os"

	"streaming-app/internal/domain/admins"
	"streaming-app/internal/domain/ads"
	"streaming-app/internal/domain/catalog"
	"streaming-app/internal/domain/upcoming"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Migrate runs the schema migration for every domain model. Tests call it
// against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// catalog
		&catalog.ContentRecord{},
		&catalog.Movie{},
		&catalog.WebSeries{},
		&catalog.Season{},
		&catalog.Episode{},
		&catalog.Show{},

		// upcoming announcements
		&upcoming.UpcomingContent{},

		// advertisement intake
		&ads.AdvertisementRequest{},

		// admin auth
		&admins.AdminUser{},
		&admins.LoginAttempt{},
	)
}
