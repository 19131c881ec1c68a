package commands

import (
	"context"

	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/core/domain/model/salesorder"
	"localmarket/internal/pkg/errs"
)

// UpdateOrderRowsCommandHandler handles administrative row quantity edits.
// Loads the persisted order, applies the requested quantities and hands the
// order to the processor, which detects changes, restocks or deducts the
// difference and records the matching activity entries.
type UpdateOrderRowsCommandHandler struct {
	uowFactory OrderEditUoWFactory
	processor  *SalesOrderProcessor
}

// NewUpdateOrderRowsCommandHandler creates a handler for row edit operations.
func NewUpdateOrderRowsCommandHandler(
	uowFactory OrderEditUoWFactory,
	processor *SalesOrderProcessor,
) (UpdateOrderRowsCommandHandler, error) {
	if uowFactory == nil {
		return UpdateOrderRowsCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if processor == nil {
		return UpdateOrderRowsCommandHandler{}, errs.NewValueIsRequiredError("processor")
	}

	return UpdateOrderRowsCommandHandler{
		uowFactory: uowFactory,
		processor:  processor,
	}, nil
}

// Handle processes the row edit command and returns the updated order.
func (h *UpdateOrderRowsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderRowsCommand) (*salesorder.SalesOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	order, associationID, err := h.loadOrder(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	for _, edit := range cmd.Edits() {
		row := order.RowByRef(edit.Ref)
		if row == nil {
			continue
		}
		if err = row.SetQuantity(edit.Quantity); err != nil {
			return nil, err
		}
	}

	if err = h.processor.SaveExisting(ctx, order, associationID, cmd.UserID()); err != nil {
		return nil, err
	}

	return order, nil
}

// loadOrder reads the order and resolves the association owning its occurrence
// inside one read transaction.
func (h *UpdateOrderRowsCommandHandler) loadOrder(ctx context.Context, orderID kernel.UUID) (*salesorder.SalesOrder, kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.SalesOrderRepository().Get(ctx, orderID)
	if err != nil {
		return nil, kernel.UUID{}, err
	}

	occurrence, err := uow.BranchOccurrenceRepository().Get(ctx, order.OccurrenceID())
	if err != nil {
		return nil, kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, kernel.UUID{}, err
	}

	return order, occurrence.AssociationID(), nil
}
