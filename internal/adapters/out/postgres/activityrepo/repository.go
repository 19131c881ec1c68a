package activityrepo

import (
	"context"

	"localmarket/internal/core/domain/model/activity"
	"localmarket/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormActivityRepository implements ActivityRepository using GORM.
type GormActivityRepository struct {
	db *gorm.DB
}

// NewGormActivityRepository creates a new GORM activity repository.
func NewGormActivityRepository(db *gorm.DB) *GormActivityRepository {
	return &GormActivityRepository{db: db}
}

// Add appends an activity entry to the stream.
func (r *GormActivityRepository) Add(ctx context.Context, entry *activity.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(entry)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllForOrder retrieves the entries of an order, oldest first.
func (r *GormActivityRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*activity.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*activity.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
