package deliveries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, delivery *Delivery) error
	HasSucceeded(ctx context.Context, eventID, endpoint string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, delivery *Delivery) error {
	if err := r.db.WithContext(ctx).Create(delivery).Error; err != nil {
		return fmt.Errorf("failed to record delivery: %w", err)
	}
	return nil
}

func (r *repository) HasSucceeded(ctx context.Context, eventID, endpoint string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Delivery{}).
		Where("event_id = ? AND endpoint = ? AND succeeded = ?", eventID, endpoint, true).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to look up delivery: %w", err)
	}
	return count > 0, nil
}
