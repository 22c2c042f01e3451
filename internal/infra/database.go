package infra

import (
	"fmt"

	"github.com/munjed80/Fancy-foods-app/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// for all entities. Schema changes are strictly additive (new columns), which
// AutoMigrate handles; there is no separate migration tooling.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)

	if err := db.AutoMigrate(
		&model.Product{},
		&model.Client{},
		&model.Supplier{},
		&model.Deal{},
		&model.Shipment{},
		&model.Order{},
		&model.OrderItem{},
		&model.EmailTemplate{},
		&model.Settings{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
