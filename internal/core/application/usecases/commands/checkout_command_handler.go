package commands

import (
	"context"
	"errors"
	"log/slog"

	"localmarket/internal/core/domain/model/cart"
	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/core/domain/model/salesorder"
	"localmarket/internal/core/ports"
	"localmarket/internal/pkg/errs"
)

// ErrCartIsEmpty is returned when a checkout targets an owner without any cart item.
var ErrCartIsEmpty = errors.New("cart is empty")

// CheckoutCommandHandler handles the business logic for checking out a cart.
// Loads the cart and the targeted occurrence, builds a draft order from the
// current product catalog and hands it to the processor for persistence.
// The cart is cleared only after the order is durable.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	cartStore  ports.CartStore
	processor  *SalesOrderProcessor
	logger     *slog.Logger
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	cartStore ports.CartStore,
	processor *SalesOrderProcessor,
	logger *slog.Logger,
) (CheckoutCommandHandler, error) {
	if uowFactory == nil {
		return CheckoutCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if cartStore == nil {
		return CheckoutCommandHandler{}, errs.NewValueIsRequiredError("cartStore")
	}
	if processor == nil {
		return CheckoutCommandHandler{}, errs.NewValueIsRequiredError("processor")
	}
	if logger == nil {
		return CheckoutCommandHandler{}, errs.NewValueIsRequiredError("logger")
	}

	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		cartStore:  cartStore,
		processor:  processor,
		logger:     logger.With("component", "checkout_handler"),
	}, nil
}

// Handle processes the checkout command and returns the created order.
// Cart items whose product no longer exists are dropped; a cart reduced to
// nothing that way is reported as empty. If the save fails the cart is left
// intact so the consumer can retry.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*salesorder.SalesOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ownerCart, err := h.cartStore.Get(ctx, cmd.OwnerID())
	if err != nil {
		return nil, err
	}
	if ownerCart.IsEmpty() {
		return nil, ErrCartIsEmpty
	}

	draft, associationID, err := h.buildDraft(ctx, cmd, ownerCart.Items())
	if err != nil {
		return nil, err
	}
	if len(draft.Rows()) == 0 {
		// Every product was removed since the items were added; an order with
		// no rows would only burn a reference.
		return nil, ErrCartIsEmpty
	}

	userID := cmd.OwnerID()
	order, err := h.processor.SaveDraft(ctx, draft, associationID, &userID)
	if err != nil {
		return nil, err
	}

	if err = h.cartStore.Clear(ctx, cmd.OwnerID()); err != nil {
		// The order is already durable; a stale cart is recoverable.
		h.logger.Warn("failed to clear cart after checkout",
			"error", err,
			"order_ref", order.Ref(),
		)
	}

	return order, nil
}

// buildDraft resolves the branch's next occurrence and the cart's products
// inside one read transaction and assembles the draft order. Returns the draft
// together with the identifier of the association owning the occurrence.
func (h *CheckoutCommandHandler) buildDraft(
	ctx context.Context,
	cmd CheckoutCommand,
	items []cart.CartItem,
) (*salesorder.Draft, kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	occurrence, err := uow.BranchOccurrenceRepository().GetNextForBranch(ctx, cmd.BranchID())
	if err != nil {
		return nil, kernel.UUID{}, err
	}

	draft, err := salesorder.NewDraft(occurrence.ID(), cmd.Buyer())
	if err != nil {
		return nil, kernel.UUID{}, err
	}
	if cmd.ConsumerComment() != "" {
		draft.SetConsumerComment(cmd.ConsumerComment())
	}

	productRepo := uow.ProductRepository()
	for _, item := range items {
		prod, err := productRepo.Get(ctx, item.ProductID())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				// Product removed since it was added to the cart.
				continue
			}
			return nil, kernel.UUID{}, err
		}

		row, err := salesorder.NewRowFromProduct(prod, item.Quantity())
		if err != nil {
			return nil, kernel.UUID{}, err
		}
		if err = draft.AddRow(row); err != nil {
			return nil, kernel.UUID{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, kernel.UUID{}, err
	}

	return draft, occurrence.AssociationID(), nil
}
