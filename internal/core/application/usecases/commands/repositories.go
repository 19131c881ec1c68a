// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"localmarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SalesOrderRepoFactory provides access to the sales order repository within a transaction.
	SalesOrderRepoFactory interface {
		SalesOrderRepository() ports.SalesOrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// ActivityRepoFactory provides access to the activity repository within a transaction.
	ActivityRepoFactory interface {
		ActivityRepository() ports.ActivityRepository
	}

	// OccurrenceRepoFactory provides access to the branch occurrence repository within a transaction.
	OccurrenceRepoFactory interface {
		BranchOccurrenceRepository() ports.BranchOccurrenceRepository
	}

	// CountersFactory provides access to the order reference counters within a transaction.
	CountersFactory interface {
		ReferenceCounters() ports.ReferenceCounters
	}

	// SalesOrderUoW manages transactions for order processing.
	// Covers the order aggregate, stock write-back, reference allocation
	// and activity persistence.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   counter, err := uow.ReferenceCounters().Next(ctx, associationID)
	//   // ... promote draft, reconcile stock, add order
	//
	//   err = uow.Commit(ctx)
	SalesOrderUoW interface {
		TxManager
		SalesOrderRepoFactory
		ProductRepoFactory
		ActivityRepoFactory
		CountersFactory
	}

	// SalesOrderUoWFactory creates new order processing unit of work instances.
	SalesOrderUoWFactory interface {
		Create() SalesOrderUoW
	}

	// CheckoutUoW manages the read transaction of the checkout flow:
	// occurrence and product lookups needed to turn a cart into a draft.
	CheckoutUoW interface {
		TxManager
		OccurrenceRepoFactory
		ProductRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderEditUoW manages the read transaction of administrative row edits:
	// loading the persisted order and resolving its owning association.
	OrderEditUoW interface {
		TxManager
		SalesOrderRepoFactory
		OccurrenceRepoFactory
	}

	// OrderEditUoWFactory creates new order edit unit of work instances.
	OrderEditUoWFactory interface {
		Create() OrderEditUoW
	}
)
