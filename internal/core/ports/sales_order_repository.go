// Package ports defines repository interfaces for the sales order domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/core/domain/model/salesorder"
)

// SalesOrderRepository defines the persistence contract for sales order aggregates.
// Provides methods for storing, retrieving, and updating orders together with
// their rows and buyer snapshot.
type SalesOrderRepository interface {
	// Add persists a new sales order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *salesorder.SalesOrder) error

	// Update persists changes to an existing sales order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *salesorder.SalesOrder) error

	// Get retrieves a sales order aggregate by its unique identifier.
	// Returns the complete order with all rows and the buyer snapshot.
	Get(ctx context.Context, id kernel.UUID) (*salesorder.SalesOrder, error)
}
