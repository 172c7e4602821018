package database

import (
	"fmt"

	"github.com/planit-app/planit-api/internal/apperrors"
	"github.com/planit-app/planit-api/internal/config"
	"github.com/planit-app/planit-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open establishes the database session for the configured driver. The
// returned handle is pooled and safe for concurrent use; callers inject it
// into each repository instead of sharing a package global. A failure here
// is a fatal startup condition, not something to retry.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(postgresDSN(cfg))
	default:
		dialector = mysql.Open(mysqlDSN(cfg))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConnection, err)
	}

	return db, nil
}

func mysqlDSN(cfg *config.Config) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
	)
}

func postgresDSN(cfg *config.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
	)
}

// Migrate creates or updates the five relations backing the data model.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Setting{},
		&models.User{},
		&models.Membership{},
		&models.Task{},
		&models.BoardEntry{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close releases the session. It is idempotent and safe on a nil or
// already-closed handle.
func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
