package database

import (
	"duka/internal/deliveries"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&deliveries.Delivery{}); err != nil {
		return err
	}
	return MigrateConstraints(db)
}
