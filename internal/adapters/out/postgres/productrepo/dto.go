// Package productrepo provides data transfer objects and mapping functions for
// product persistence.
package productrepo

import (
	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProducerID   uuid.UUID  `gorm:"type:uuid;index"`
	CategoryID   *uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Ref          string
	IsBio        bool
	Price        float64
	Availability int
	Stock        float64
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// CategoryDTO represents a catalog category. Categories are seeded by fixtures
// and referenced by products; the domain never loads them as aggregates.
type CategoryDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for categories.
func (CategoryDTO) TableName() string {
	return "categories"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	var categoryID *uuid.UUID
	if id := p.CategoryID(); id != nil {
		raw := id.Bytes()
		categoryID = &raw
	}

	return ProductDTO{
		ID:           p.ID().Bytes(),
		ProducerID:   p.ProducerID().Bytes(),
		CategoryID:   categoryID,
		Name:         p.Name(),
		Ref:          p.Ref(),
		IsBio:        p.IsBio(),
		Price:        p.Price(),
		Availability: int(p.Availability()),
		Stock:        p.Stock(),
	}
}

// toDomain converts a database DTO to a product aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	producerID, err := kernel.UUIDFromBytes(dto.ProducerID[:])
	if err != nil {
		return nil, err
	}

	var categoryID *kernel.UUID
	if dto.CategoryID != nil {
		cID, cErr := kernel.UUIDFromBytes((*dto.CategoryID)[:])
		if cErr != nil {
			return nil, cErr
		}
		categoryID = &cID
	}

	return product.RestoreProduct(
		id,
		producerID,
		categoryID,
		dto.Name,
		dto.Ref,
		dto.IsBio,
		dto.Price,
		product.Availability(dto.Availability),
		dto.Stock,
	)
}
