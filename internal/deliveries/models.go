package deliveries

import "time"

// Delivery is one processed event-trigger delivery. It is operational
// metadata only; domain rows live behind the GraphQL endpoint.
type Delivery struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EventID     string    `gorm:"type:varchar(64);index:idx_delivery_event_endpoint;not null" json:"event_id"`
	Endpoint    string    `gorm:"type:varchar(64);index:idx_delivery_event_endpoint;not null" json:"endpoint"`
	TriggerName string    `gorm:"type:varchar(128)" json:"trigger_name"`
	SourceTable string    `gorm:"type:varchar(128)" json:"source_table"`
	StatusCode  int       `gorm:"not null" json:"status_code"`
	Succeeded   bool      `gorm:"not null" json:"succeeded"`
	Message     string    `gorm:"type:text" json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName sets the table name for Delivery
func (Delivery) TableName() string {
	return "webhook_deliveries"
}
