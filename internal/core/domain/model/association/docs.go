// Package association provides the organizational aggregates of the platform:
// the Association (a local-food network), its Branches (distribution points),
// and their BranchOccurrences (dated distributions orders are placed against).
//
// The association owns the order-reference counter. Reference allocation is an
// atomic increment-and-read scoped by association identity, executed inside the
// transaction persisting the dependent order; the domain object only exposes a
// read of the last loaded counter value.
package association
