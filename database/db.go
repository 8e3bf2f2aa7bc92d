package database

import (
	"fmt"
	"log/slog" // use slog for structured logging

	"apodhub/internal/config"
	"apodhub/internal/http-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the storage handle and applies schema migrations. Callers
// own the handle's lifecycle; nothing here is a process-wide singleton.
func ConnectDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify the connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		// close the db handle if ping fails to avoid resource leak
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.Comment{}, &models.Like{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Connected to the database successfully")
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB, logger *slog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to access database handle on close", "error", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
	}
}
