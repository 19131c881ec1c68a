package salesorderrepo

import (
	"context"
	"errors"

	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/core/domain/model/salesorder"
	"localmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSalesOrderRepository implements SalesOrderRepository using GORM.
type GormSalesOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSalesOrderRepository creates a new GORM sales order repository.
func NewGormSalesOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new sales order with its rows to the database.
func (r *GormSalesOrderRepository) Add(ctx context.Context, aggregate *salesorder.SalesOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing sales order to the database. Rows are replaced
// wholesale; their identity lives in the aggregate, not the row table.
func (r *GormSalesOrderRepository) Update(ctx context.Context, aggregate *salesorder.SalesOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&SalesOrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"ref":              dto.Ref,
		"date":             dto.Date,
		"occurrence_id":    dto.OccurrenceID,
		"buyer_firstname":  dto.Buyer.Firstname,
		"buyer_lastname":   dto.Buyer.Lastname,
		"buyer_address1":   dto.Buyer.Address1,
		"buyer_address2":   dto.Buyer.Address2,
		"buyer_zipcode":    dto.Buyer.Zipcode,
		"buyer_city":       dto.Buyer.City,
		"consumer_comment": dto.ConsumerComment,
		"total":            dto.Total,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Delete(&RowDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Rows) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Rows).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a sales order with its rows by ID.
func (r *GormSalesOrderRepository) Get(ctx context.Context, id kernel.UUID) (*salesorder.SalesOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SalesOrderDTO
	if err := r.db.WithContext(ctx).Preload("Rows").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("salesOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
