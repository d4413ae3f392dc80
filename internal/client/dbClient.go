package client

import (
	"guestpost-marketplace/internal/model"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func InitDBClient(databaseURL string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&model.Account{},
		&model.Publisher{},
		&model.Website{},
		&model.Offering{},
		&model.Order{},
		&model.OrderGroup{},
		&model.SiteSubmission{},
		&model.Workflow{},
		&model.Invitation{},
		&model.VettedSiteRequest{},
	); err != nil {
		log.Fatal(err)
	}

	return db
}
