package occurrencerepo

import (
	"context"
	"errors"
	"time"

	"localmarket/internal/core/domain/model/association"
	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBranchOccurrenceRepository implements BranchOccurrenceRepository using GORM.
type GormBranchOccurrenceRepository struct {
	db *gorm.DB
}

// NewGormBranchOccurrenceRepository creates a new GORM branch occurrence repository.
func NewGormBranchOccurrenceRepository(db *gorm.DB) *GormBranchOccurrenceRepository {
	return &GormBranchOccurrenceRepository{db: db}
}

// Get retrieves a branch occurrence by ID.
func (r *GormBranchOccurrenceRepository) Get(ctx context.Context, id kernel.UUID) (*association.BranchOccurrence, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BranchOccurrenceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("branchOccurrence", id.String())
		}
		return nil, err
	}

	return occurrenceToDomain(dto)
}

// GetNextForBranch retrieves the next occurrence of the branch that has not ended yet.
func (r *GormBranchOccurrenceRepository) GetNextForBranch(ctx context.Context, branchID kernel.UUID) (*association.BranchOccurrence, error) {
	if err := branchID.Validate(); err != nil {
		return nil, err
	}

	var dto BranchOccurrenceDTO
	err := r.db.WithContext(ctx).
		Where("branch_id = ? AND ends > ?", branchID.Bytes(), time.Now()).
		Order("begins").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("branchOccurrence", branchID.String())
		}
		return nil, err
	}

	return occurrenceToDomain(dto)
}
