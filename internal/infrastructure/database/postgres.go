package database

import (
	"fmt"
	"log"

	"github.com/rajshree/shopbill-api/internal/config"
	"github.com/rajshree/shopbill-api/internal/domain/entity"
	"github.com/rajshree/shopbill-api/pkg/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Unique-index violations must surface as gorm.ErrDuplicatedKey so
		// bill-number collisions can be retried.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Product{},
		&entity.Bill{},
		&entity.BillItem{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// SeedDefaultData inserts sample catalog entries on an empty database.
func SeedDefaultData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []struct {
		name  string
		size  string
		mrp   float64
		stock int
	}{
		{"Cotton Shirt", "M", 1200, 50},
		{"Jeans", "32", 1800, 30},
		{"T-Shirt", "L", 600, 100},
		{"Jacket", "XL", 2500, 20},
	}

	products := make([]entity.Product, 0, len(seed))
	for _, s := range seed {
		p := entity.Product{
			Name:     s.name,
			Size:     s.size,
			ScanCode: utils.NewScanCode(),
			Quantity: s.stock,
		}
		p.SetMRPFromDecimal(s.mrp)
		products = append(products, p)
	}

	if err := db.Create(&products).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d sample products", len(products))
	return nil
}
