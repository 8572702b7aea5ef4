package database

import (
	"fmt"
	"log"

	"github.com/sangkips/pos-register/internal/config"
	"github.com/sangkips/pos-register/internal/domain/entity"
	"github.com/sangkips/pos-register/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for the catalog and discount tables
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Product{},
		&entity.CustomerDiscount{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// DefaultProducts is the starter catalog
func DefaultProducts(initialStock int) []entity.Product {
	return []entity.Product{
		{ItemID: 101, Description: "Coffee", Price: decimal.RequireFromString("15.00"), TaxRate: 25, Quantity: initialStock},
		{ItemID: 102, Description: "Croissant", Price: decimal.RequireFromString("2.50"), TaxRate: 12, Quantity: initialStock},
	}
}

// DefaultDiscounts is the starter discount table
func DefaultDiscounts() []entity.CustomerDiscount {
	return []entity.CustomerDiscount{
		{CustomerID: 1234, Kind: enum.DiscountKindPercentage, Percentage: 10, Amount: decimal.Zero},
	}
}
