// Package associationrepo persists associations and hands out their order
// reference counters. The counter increment runs as a single UPDATE so two
// concurrent checkouts can never draw the same number.
package associationrepo

import (
	"localmarket/internal/core/domain/model/association"
	"localmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssociationDTO represents the database structure for persisting associations.
type AssociationDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"uniqueIndex"`
	OrderRefCounter int64
}

// TableName specifies the database table name for associations.
func (AssociationDTO) TableName() string {
	return "associations"
}

// fromDomain converts an association aggregate to its database representation.
func fromDomain(a *association.Association) AssociationDTO {
	return AssociationDTO{
		ID:              a.ID().Bytes(),
		Name:            a.Name(),
		OrderRefCounter: a.OrderRefCounter(),
	}
}

// toDomain converts a database DTO to an association aggregate.
func toDomain(dto AssociationDTO) (*association.Association, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return association.RestoreAssociation(id, dto.Name, dto.OrderRefCounter)
}
