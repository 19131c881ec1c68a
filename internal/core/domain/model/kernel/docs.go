// Package kernel provides core domain primitives shared across the order-processing
// domain model. It implements fundamental building blocks following Domain-Driven
// Design principles.
//
// The package currently includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and thread-safe,
// making them suitable for concurrent use.
package kernel
