package config

import (
	"log/slog"

	"gorm.io/gorm"

	"marketplace_backend/models"
)

func Migrate(db *gorm.DB, log *slog.Logger) error {
	// Migrate the schema
	err := db.AutoMigrate(
		&models.Seller{},
		&models.Account{},
		&models.Product{},
		&models.Transaction{},
		&models.Category{},
	)

	if err != nil {
		log.Error("Failed to migrate database schema", "error", err)
		return err
	}

	log.Info("Database migrations completed successfully")

	// Ensure categories are seeded even on normal migration
	SeedCategories(db, log)

	return nil
}

func ResetAndMigrate(db *gorm.DB, log *slog.Logger) error {
	// Drop all tables
	tables := []interface{}{
		&models.Transaction{},
		&models.Product{},
		&models.Account{},
		&models.Seller{},
		&models.Category{},
	}

	if err := db.Migrator().DropTable(tables...); err != nil {
		log.Error("Failed to drop tables", "error", err)
		return err
	}

	log.Info("All tables dropped successfully")

	if err := db.AutoMigrate(tables...); err != nil {
		log.Error("Failed to auto migrate", "error", err)
		return err
	}

	SeedCategories(db, log)
	SeedDemoData(db, log)

	log.Info("Database reset and migration completed successfully")
	return nil
}
