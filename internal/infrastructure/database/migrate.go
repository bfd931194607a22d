package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/model"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	if err := createExtensions(db); err != nil {
		logger.Error("Failed to create extensions", zap.Error(err))
		return err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Task{},
	); err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	if err := createCustomIndexes(db); err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createExtensions enables gen_random_uuid() on older PostgreSQL versions
func createExtensions(db *gorm.DB) error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
}

// createCustomIndexes creates indexes that GORM doesn't handle automatically
func createCustomIndexes(db *gorm.DB) error {
	// overdue lookups and reschedule counts only look at open tasks
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_tasks_user_open ON tasks (user_id, due_date) WHERE is_complete = false`).Error; err != nil {
		return err
	}
	return nil
}
