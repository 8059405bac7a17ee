package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints allows at most one successful delivery per event and
// endpoint, so concurrent redeliveries cannot both be recorded as done.
func MigrateConstraints(db *gorm.DB) error {
	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_delivery_succeeded_once
		ON webhook_deliveries (event_id, endpoint)
		WHERE succeeded;
	`).Error
}
