package ports

import (
	"context"

	"localmarket/internal/core/domain/model/association"
	"localmarket/internal/core/domain/model/kernel"
)

// BranchOccurrenceRepository defines the persistence contract for branch occurrences.
// Occurrences are created by administrative tooling; order processing only reads them.
type BranchOccurrenceRepository interface {
	// Get retrieves a branch occurrence by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*association.BranchOccurrence, error)

	// GetNextForBranch retrieves the next occurrence of a branch that has not
	// ended yet, ordered by begin time. Returns errs.ErrObjectNotFound when the
	// branch has no upcoming occurrence.
	GetNextForBranch(ctx context.Context, branchID kernel.UUID) (*association.BranchOccurrence, error)
}
