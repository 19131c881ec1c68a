package ports

import (
	"context"

	"localmarket/internal/core/domain/model/kernel"
)

// ReferenceCounters hands out per-association order reference counters.
// Next must be atomic with respect to concurrent callers: two allocations for
// the same association never return the same value, even across processes.
type ReferenceCounters interface {
	// Next increments the counter of the association and returns the new value.
	Next(ctx context.Context, associationID kernel.UUID) (int64, error)
}
