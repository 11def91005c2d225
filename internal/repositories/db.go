package repositories

import (
	"fmt"

	"github.com/rohits-web03/ideaforge/internal/config"
	"github.com/rohits-web03/ideaforge/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the configured database, sizes the pool and migrates the schema.
func Connect(cfg config.Config, log *zap.SugaredLogger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres", "postgresql":
		dialector = postgres.Open(cfg.DB_URL)
	case "sqlite", "sqlite3":
		dialector = sqlite.Open(cfg.DB_URL)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	logMode := gormlogger.Warn
	if cfg.Debug {
		logMode = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logMode),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Infow("Successfully connected to database", "driver", cfg.DBDriver)
	return db, nil
}

// Migrate creates or updates the users, ideas and search_history tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Idea{},
		&models.SearchHistory{},
	); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
