package ports

import (
	"context"

	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	// Used primarily to write back stock adjustments after order processing.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when the product no longer exists,
	// which callers treat as a deleted product rather than a failure.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
