// Package services contains stateless domain services of the order-processing
// core:
//   - ReferenceAllocator: formats association-scoped order references from
//     atomically issued counter values
//   - ChangeDetector: diffs row quantity/total against persisted baselines and
//     emits semantic change descriptors for the activity stream
//   - StockReconciler: applies incremental, delta-based stock adjustments for
//     stock-tracked products
//
// The services hold no persistent state; transactional concerns stay with the
// application layer and its unit of work.
package services
