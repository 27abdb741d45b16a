package main

import (
	"log"

	"kos-be-svc/internal/config"
	"kos-be-svc/internal/database"
	"kos-be-svc/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}

	if err := database.Seed(db.DB); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to seed database")
	}

	appLogger.Info("Seeding completed successfully")
	appLogger.Info("Admin login: admin@kos.com / password")
	appLogger.Info("Penyewa login: budi@gmail.com / password")
}
