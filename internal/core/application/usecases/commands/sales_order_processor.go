package commands

import (
	"context"
	"errors"
	"log/slog"

	"localmarket/internal/core/domain/model/activity"
	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/core/domain/model/salesorder"
	"localmarket/internal/core/domain/services"
	"localmarket/internal/core/ports"
	"localmarket/internal/pkg/errs"
)

// SalesOrderProcessor is the write path shared by every operation that saves a
// sales order. It owns the two-phase persistence protocol:
//
//  1. The order transaction: reference allocation (new orders), stock
//     write-back and the order itself commit atomically. Failure here rolls
//     everything back and the order is not saved.
//  2. The activity transaction: the entries describing what happened commit
//     separately, after the order is already durable. Failure here never undoes
//     the order; entries go to the backlog for a later retry.
//
// Change detection runs against the row baselines captured at load time, so a
// processor call on an unmodified order produces no activity at all.
type SalesOrderProcessor struct {
	uowFactory SalesOrderUoWFactory
	allocator  services.ReferenceAllocator
	detector   services.ChangeDetector
	reconciler services.StockReconciler
	backlog    ports.ActivityBacklog
	logger     *slog.Logger
}

// NewSalesOrderProcessor creates a SalesOrderProcessor.
// The allocator must have been built through its constructor; nil dependencies
// are rejected.
func NewSalesOrderProcessor(
	uowFactory SalesOrderUoWFactory,
	allocator services.ReferenceAllocator,
	backlog ports.ActivityBacklog,
	logger *slog.Logger,
) (*SalesOrderProcessor, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if err := allocator.Validate(); err != nil {
		return nil, err
	}
	if backlog == nil {
		return nil, errs.NewValueIsRequiredError("backlog")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &SalesOrderProcessor{
		uowFactory: uowFactory,
		allocator:  allocator,
		detector:   services.NewChangeDetector(),
		reconciler: services.NewStockReconciler(),
		backlog:    backlog,
		logger:     logger.With("component", "sales_order_processor"),
	}, nil
}

// SaveDraft persists a draft for the first time: allocates the order reference
// from the association counter, promotes the draft to a sales order, deducts
// stock for every row whose product tracks it, and records the creation entry.
// Returns the promoted order with its allocated reference.
func (p *SalesOrderProcessor) SaveDraft(
	ctx context.Context,
	draft *salesorder.Draft,
	associationID kernel.UUID,
	userID *kernel.UUID,
) (*salesorder.SalesOrder, error) {
	if draft == nil {
		return nil, errs.NewValueIsRequiredError("draft")
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if err := associationID.Validate(); err != nil {
		return nil, err
	}

	draft.Compute()

	uow := p.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	counter, err := uow.ReferenceCounters().Next(ctx, associationID)
	if err != nil {
		return nil, err
	}

	order, err := salesorder.Promote(draft, kernel.NewUUID(), p.allocator.Format(counter))
	if err != nil {
		return nil, err
	}

	created, err := activity.NewEntry(
		activity.KeySalesOrderCreated,
		map[string]string{"ref": order.Ref()},
		order.ID(),
		associationID,
		userID,
	)
	if err != nil {
		return nil, err
	}

	if err = p.reconcileStock(ctx, uow, order); err != nil {
		return nil, err
	}

	if err = uow.SalesOrderRepository().Add(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	order.MarkClean()
	p.persistActivities(ctx, []*activity.Entry{created})

	return order, nil
}

// SaveExisting persists changes to an already saved order: detects per-row
// quantity/total changes, adjusts stock by the quantity delta of each row, and
// records one activity entry per changed row. A call with no changed rows
// writes the order and nothing else.
func (p *SalesOrderProcessor) SaveExisting(
	ctx context.Context,
	order *salesorder.SalesOrder,
	associationID kernel.UUID,
	userID *kernel.UUID,
) error {
	if order == nil {
		return errs.NewValueIsRequiredError("order")
	}
	if err := order.Validate(); err != nil {
		return err
	}
	if err := associationID.Validate(); err != nil {
		return err
	}

	order.Compute()

	entries := make([]*activity.Entry, 0, len(order.Rows()))
	for _, row := range order.Rows() {
		change := p.detector.Detect(order.Ref(), row)
		if change == nil {
			continue
		}

		entry, err := activity.NewEntry(change.TransKey, change.Params, order.ID(), associationID, userID)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	uow := p.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := p.reconcileStock(ctx, uow, order); err != nil {
		return err
	}

	if err := uow.SalesOrderRepository().Update(ctx, order); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	order.MarkClean()
	p.persistActivities(ctx, entries)

	return nil
}

// reconcileStock writes back stock adjustments for every row whose product
// still exists and tracks stock. Rows pointing at deleted products are kept
// on the order untouched.
func (p *SalesOrderProcessor) reconcileStock(ctx context.Context, uow SalesOrderUoW, order *salesorder.SalesOrder) error {
	productRepo := uow.ProductRepository()

	for _, row := range order.Rows() {
		productID := row.ProductID()
		if productID == nil {
			continue
		}

		prod, err := productRepo.Get(ctx, *productID)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return err
		}

		if !p.reconciler.Reconcile(prod, row) {
			continue
		}

		if err = productRepo.Update(ctx, prod); err != nil {
			return err
		}
	}

	return nil
}

// persistActivities commits activity entries in their own transaction. The
// order is already durable at this point, so any failure is logged and the
// entries are handed to the backlog instead of being surfaced to the caller.
func (p *SalesOrderProcessor) persistActivities(ctx context.Context, entries []*activity.Entry) {
	if len(entries) == 0 {
		return
	}

	if err := p.storeActivities(ctx, entries); err != nil {
		p.logger.Warn("activity persistence failed, entries queued for retry",
			"error", err,
			"entries", len(entries),
		)
		p.backlog.Enqueue(entries...)
	}
}

func (p *SalesOrderProcessor) storeActivities(ctx context.Context, entries []*activity.Entry) error {
	uow := p.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	activityRepo := uow.ActivityRepository()
	for _, entry := range entries {
		if err := activityRepo.Add(ctx, entry); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
