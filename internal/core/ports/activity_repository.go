package ports

import (
	"context"

	"localmarket/internal/core/domain/model/activity"
	"localmarket/internal/core/domain/model/kernel"
)

// ActivityRepository defines the persistence contract for activity stream entries.
// Entries are append-only; they are never updated or removed.
type ActivityRepository interface {
	// Add persists a new activity entry to storage.
	Add(ctx context.Context, entry *activity.Entry) error

	// GetAllForOrder retrieves all entries recorded for a sales order,
	// oldest first.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*activity.Entry, error)
}
