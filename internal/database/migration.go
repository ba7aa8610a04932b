package database

import (
	"fmt"

	"shop-api/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
// The item<->tag join table is registered explicitly so its composite
// primary key enforces uniqueness of each (item, tag) pair.
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Item{}, "Tags", &models.ItemTag{}); err != nil {
		return fmt.Errorf("setup join table: %w", err)
	}
	if err := db.SetupJoinTable(&models.Tag{}, "Items", &models.ItemTag{}); err != nil {
		return fmt.Errorf("setup join table: %w", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Store{},
		&models.Item{},
		&models.Tag{},
		&models.ItemTag{},
		&models.RevokedToken{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
