// Package product provides the catalog aggregate for products sold through the
// platform. It includes:
//   - Product: The aggregate root carrying producer, pricing, and stock state
//   - Availability: The ordering mode enumeration, including stock-tracked sales
//
// Key business rules:
//   - Products in AccordingToStock mode gate ordering on their stock level
//   - Stock is adjusted incrementally by signed deltas, never recomputed from orders
//   - Name, ref, bio flag, and unit price are copied into order rows as snapshots
//     at order-creation time; later catalog changes do not retroactively alter orders
package product
