// Package salesorder provides the order aggregate of the order-processing core.
//
// The package models the new/persisted distinction as two types:
//   - Draft: a not-yet-persisted order built from a cart, with no identity or reference
//   - SalesOrder: a persisted order with an immutable, association-unique reference
//
// Promote converts a Draft into a SalesOrder exactly once, at first save, when
// the association counter issues the reference.
//
// Rows carry snapshot fields (name, ref, bio flag, unit price) copied from the
// product at creation time, plus explicit persisted baselines of quantity and
// total. Change detection and stock reconciliation diff current values against
// those baselines instead of relying on implicit dirty tracking; MarkClean
// advances the baselines after a successful commit.
package salesorder
