// Package occurrencerepo provides data transfer objects and mapping functions
// for branches and their occurrences. Order processing reads occurrences;
// writes happen through fixtures and administrative tooling.
package occurrencerepo

import (
	"time"

	"localmarket/internal/core/domain/model/association"
	"localmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BranchDTO represents the database structure for persisting branches.
type BranchDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssociationID uuid.UUID `gorm:"type:uuid;index"`
	Name          string
}

// TableName specifies the database table name for branches.
func (BranchDTO) TableName() string {
	return "branches"
}

// BranchOccurrenceDTO represents one dated occurrence of a branch.
type BranchOccurrenceDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	BranchID      uuid.UUID `gorm:"type:uuid;index"`
	AssociationID uuid.UUID `gorm:"type:uuid;index"`
	Begins        time.Time
	Ends          time.Time
}

// TableName specifies the database table name for branch occurrences.
func (BranchOccurrenceDTO) TableName() string {
	return "branch_occurrences"
}

// occurrenceFromDomain converts a branch occurrence to its database representation.
func occurrenceFromDomain(occurrence *association.BranchOccurrence) BranchOccurrenceDTO {
	return BranchOccurrenceDTO{
		ID:            occurrence.ID().Bytes(),
		BranchID:      occurrence.BranchID().Bytes(),
		AssociationID: occurrence.AssociationID().Bytes(),
		Begins:        occurrence.Begins(),
		Ends:          occurrence.Ends(),
	}
}

// occurrenceToDomain converts a database DTO to a branch occurrence.
func occurrenceToDomain(dto BranchOccurrenceDTO) (*association.BranchOccurrence, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
	if err != nil {
		return nil, err
	}

	associationID, err := kernel.UUIDFromBytes(dto.AssociationID[:])
	if err != nil {
		return nil, err
	}

	return association.NewBranchOccurrence(id, branchID, associationID, dto.Begins, dto.Ends)
}
