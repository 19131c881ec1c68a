package associationrepo

import (
	"context"
	"errors"

	"localmarket/internal/core/domain/model/association"
	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssociationRepository implements association persistence using GORM.
// Used by fixtures and administrative tooling; order processing touches
// associations only through GormReferenceCounters.
type GormAssociationRepository struct {
	db *gorm.DB
}

// NewGormAssociationRepository creates a new GORM association repository.
func NewGormAssociationRepository(db *gorm.DB) *GormAssociationRepository {
	return &GormAssociationRepository{db: db}
}

// Add saves a new association to the database.
func (r *GormAssociationRepository) Add(ctx context.Context, aggregate *association.Association) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an association by ID.
func (r *GormAssociationRepository) Get(ctx context.Context, id kernel.UUID) (*association.Association, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssociationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("association", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GormReferenceCounters implements ReferenceCounters using GORM.
// The increment and read happen in one statement, so the allocated value is
// unique even under concurrent transactions on the same association.
type GormReferenceCounters struct {
	db *gorm.DB
}

// NewGormReferenceCounters creates a new GORM reference counter source.
func NewGormReferenceCounters(db *gorm.DB) *GormReferenceCounters {
	return &GormReferenceCounters{db: db}
}

// Next increments the association's counter and returns the new value.
func (c *GormReferenceCounters) Next(ctx context.Context, associationID kernel.UUID) (int64, error) {
	if err := associationID.Validate(); err != nil {
		return 0, err
	}

	var counter int64
	err := c.db.WithContext(ctx).Raw(`
		UPDATE associations
		SET order_ref_counter = order_ref_counter + 1
		WHERE id = ?
		RETURNING order_ref_counter
	`, associationID.Bytes()).Scan(&counter).Error
	if err != nil {
		return 0, err
	}
	if counter == 0 {
		return 0, errs.NewObjectNotFoundError("association", associationID.String())
	}

	return counter, nil
}
