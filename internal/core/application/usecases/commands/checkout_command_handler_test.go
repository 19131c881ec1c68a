package commands_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"localmarket/internal/core/application/usecases/commands"
	"localmarket/internal/core/domain/model/association"
	"localmarket/internal/core/domain/model/cart"
	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/core/domain/model/salesorder"
	"localmarket/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testOccurrence(t *testing.T, associationID kernel.UUID) *association.BranchOccurrence {
	t.Helper()
	begins := time.Now().Add(24 * time.Hour)
	occurrence, err := association.NewBranchOccurrence(
		kernel.NewUUID(), kernel.NewUUID(), associationID, begins, begins.Add(4*time.Hour),
	)
	require.NoError(t, err)
	return occurrence
}

func testCartWith(t *testing.T, ownerID, productID kernel.UUID, quantity float64) *cart.Cart {
	t.Helper()
	ownerCart, err := cart.NewCart(ownerID)
	require.NoError(t, err)
	item, err := cart.NewCartItem(productID, quantity)
	require.NoError(t, err)
	require.NoError(t, ownerCart.AddItem(item))
	return ownerCart
}

func testCheckoutHandler(
	t *testing.T,
	uowFactory commands.CheckoutUoWFactory,
	cartStore *MockCartStore,
	processorFactory commands.SalesOrderUoWFactory,
) commands.CheckoutCommandHandler {
	t.Helper()
	processor := testProcessor(t, processorFactory, &stubBacklog{})
	handler, err := commands.NewCheckoutCommandHandler(uowFactory, cartStore, processor, slog.Default())
	require.NoError(t, err)
	return handler
}

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	associationID := kernel.NewUUID()
	occurrence := testOccurrence(t, associationID)
	prod := testTrackedProduct(t, 10)
	ownerCart := testCartWith(t, ownerID, prod.ID(), 2)

	cmd, err := commands.NewCheckoutCommand(ownerID, occurrence.BranchID(), testBuyer(t), "ring the bell")
	require.NoError(t, err)

	cartStore := new(MockCartStore)
	cartStore.On("Get", ctx, ownerID).Return(ownerCart, nil).Once()
	cartStore.On("Clear", ctx, ownerID).Return(nil).Once()

	occurrenceRepo := new(MockOccurrenceRepository)
	occurrenceRepo.On("GetNextForBranch", ctx, occurrence.BranchID()).Return(occurrence, nil).Once()

	readProductRepo := new(MockProductRepository)
	readProductRepo.On("Get", ctx, prod.ID()).Return(prod, nil).Once()

	checkoutUoW := new(MockCheckoutUoW)
	checkoutUoW.On("Begin", ctx).Return(nil).Once()
	checkoutUoW.On("BranchOccurrenceRepository").Return(occurrenceRepo).Once()
	checkoutUoW.On("ProductRepository").Return(readProductRepo).Once()
	checkoutUoW.On("Commit", ctx).Return(nil).Once()
	checkoutUoW.On("Rollback", ctx).Return(nil).Once()

	checkoutFactory := new(MockCheckoutUoWFactory)
	checkoutFactory.On("Create").Return(checkoutUoW).Once()

	counters := new(MockReferenceCounters)
	counters.On("Next", ctx, associationID).Return(int64(42), nil).Once()

	writeProductRepo := new(MockProductRepository)
	writeProductRepo.On("Get", ctx, prod.ID()).Return(prod, nil).Once()
	writeProductRepo.On("Update", ctx, prod).Return(nil).Once()

	orderRepo := new(MockSalesOrderRepository)
	orderRepo.On("Add", ctx, mock.MatchedBy(func(o *salesorder.SalesOrder) bool {
		return o.ConsumerComment() == "ring the bell" && len(o.Rows()) == 1
	})).Return(nil).Once()

	activityRepo := new(MockActivityRepository)
	activityRepo.On("Add", ctx, mock.AnythingOfType("*activity.Entry")).Return(nil).Once()

	orderUoW := new(MockSalesOrderUoW)
	orderUoW.On("Begin", ctx).Return(nil).Once()
	orderUoW.On("ReferenceCounters").Return(counters).Once()
	orderUoW.On("ProductRepository").Return(writeProductRepo).Once()
	orderUoW.On("SalesOrderRepository").Return(orderRepo).Once()
	orderUoW.On("Commit", ctx).Return(nil).Once()
	orderUoW.On("Rollback", ctx).Return(nil).Once()

	activityUoW := new(MockSalesOrderUoW)
	activityUoW.On("Begin", ctx).Return(nil).Once()
	activityUoW.On("ActivityRepository").Return(activityRepo).Once()
	activityUoW.On("Commit", ctx).Return(nil).Once()
	activityUoW.On("Rollback", ctx).Return(nil).Once()

	processorFactory := new(MockSalesOrderUoWFactory)
	processorFactory.On("Create").Return(orderUoW).Once()
	processorFactory.On("Create").Return(activityUoW).Once()

	handler := testCheckoutHandler(t, checkoutFactory, cartStore, processorFactory)

	order, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "CMD-0042", order.Ref())
	require.InDelta(t, 5, order.Total(), 1e-9)
	require.InDelta(t, 8, prod.Stock(), 1e-9)

	cartStore.AssertExpectations(t)
	checkoutUoW.AssertExpectations(t)
	orderUoW.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	emptyCart, err := cart.NewCart(ownerID)
	require.NoError(t, err)

	cmd, err := commands.NewCheckoutCommand(ownerID, kernel.NewUUID(), testBuyer(t), "")
	require.NoError(t, err)

	cartStore := new(MockCartStore)
	cartStore.On("Get", ctx, ownerID).Return(emptyCart, nil).Once()

	handler := testCheckoutHandler(t, new(MockCheckoutUoWFactory), cartStore, new(MockSalesOrderUoWFactory))

	order, err := handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	require.Nil(t, order)
	cartStore.AssertExpectations(t)
	cartStore.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

func TestCheckoutCommandHandler_Handle_SaveFailureKeepsCart(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	associationID := kernel.NewUUID()
	occurrence := testOccurrence(t, associationID)
	prod := testTrackedProduct(t, 10)
	ownerCart := testCartWith(t, ownerID, prod.ID(), 2)

	cmd, err := commands.NewCheckoutCommand(ownerID, occurrence.BranchID(), testBuyer(t), "")
	require.NoError(t, err)

	cartStore := new(MockCartStore)
	cartStore.On("Get", ctx, ownerID).Return(ownerCart, nil).Once()

	occurrenceRepo := new(MockOccurrenceRepository)
	occurrenceRepo.On("GetNextForBranch", ctx, occurrence.BranchID()).Return(occurrence, nil).Once()

	readProductRepo := new(MockProductRepository)
	readProductRepo.On("Get", ctx, prod.ID()).Return(prod, nil).Once()

	checkoutUoW := new(MockCheckoutUoW)
	checkoutUoW.On("Begin", ctx).Return(nil).Once()
	checkoutUoW.On("BranchOccurrenceRepository").Return(occurrenceRepo).Once()
	checkoutUoW.On("ProductRepository").Return(readProductRepo).Once()
	checkoutUoW.On("Commit", ctx).Return(nil).Once()
	checkoutUoW.On("Rollback", ctx).Return(nil).Once()

	checkoutFactory := new(MockCheckoutUoWFactory)
	checkoutFactory.On("Create").Return(checkoutUoW).Once()

	orderUoW := new(MockSalesOrderUoW)
	orderUoW.On("Begin", ctx).Return(errors.New("connection lost")).Once()

	processorFactory := new(MockSalesOrderUoWFactory)
	processorFactory.On("Create").Return(orderUoW).Once()

	handler := testCheckoutHandler(t, checkoutFactory, cartStore, processorFactory)

	order, err := handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.Nil(t, order)
	// Nothing was saved, the cart must survive for a retry.
	cartStore.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	require.False(t, ownerCart.IsEmpty())
}

func TestCheckoutCommandHandler_Handle_AllProductsRemoved(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	occurrence := testOccurrence(t, kernel.NewUUID())
	productID := kernel.NewUUID()
	ownerCart := testCartWith(t, ownerID, productID, 2)

	cmd, err := commands.NewCheckoutCommand(ownerID, occurrence.BranchID(), testBuyer(t), "")
	require.NoError(t, err)

	cartStore := new(MockCartStore)
	cartStore.On("Get", ctx, ownerID).Return(ownerCart, nil).Once()

	occurrenceRepo := new(MockOccurrenceRepository)
	occurrenceRepo.On("GetNextForBranch", ctx, occurrence.BranchID()).Return(occurrence, nil).Once()

	readProductRepo := new(MockProductRepository)
	readProductRepo.On("Get", ctx, productID).
		Return(nil, errs.NewObjectNotFoundError("product", productID.String())).Once()

	checkoutUoW := new(MockCheckoutUoW)
	checkoutUoW.On("Begin", ctx).Return(nil).Once()
	checkoutUoW.On("BranchOccurrenceRepository").Return(occurrenceRepo).Once()
	checkoutUoW.On("ProductRepository").Return(readProductRepo).Once()
	checkoutUoW.On("Commit", ctx).Return(nil).Once()
	checkoutUoW.On("Rollback", ctx).Return(nil).Once()

	checkoutFactory := new(MockCheckoutUoWFactory)
	checkoutFactory.On("Create").Return(checkoutUoW).Once()

	processorFactory := new(MockSalesOrderUoWFactory)
	handler := testCheckoutHandler(t, checkoutFactory, cartStore, processorFactory)

	order, err := handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	require.Nil(t, order)
	// No order and no reference were consumed, the cart survives.
	processorFactory.AssertNotCalled(t, "Create")
	cartStore.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

func TestCheckoutCommandHandler_Handle_NoUpcomingOccurrence(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	branchID := kernel.NewUUID()
	ownerCart := testCartWith(t, ownerID, kernel.NewUUID(), 2)

	cmd, err := commands.NewCheckoutCommand(ownerID, branchID, testBuyer(t), "")
	require.NoError(t, err)

	cartStore := new(MockCartStore)
	cartStore.On("Get", ctx, ownerID).Return(ownerCart, nil).Once()

	occurrenceRepo := new(MockOccurrenceRepository)
	occurrenceRepo.On("GetNextForBranch", ctx, branchID).
		Return(nil, errs.NewObjectNotFoundError("branchOccurrence", branchID.String())).Once()

	checkoutUoW := new(MockCheckoutUoW)
	checkoutUoW.On("Begin", ctx).Return(nil).Once()
	checkoutUoW.On("BranchOccurrenceRepository").Return(occurrenceRepo).Once()
	checkoutUoW.On("Rollback", ctx).Return(nil).Once()

	checkoutFactory := new(MockCheckoutUoWFactory)
	checkoutFactory.On("Create").Return(checkoutUoW).Once()

	handler := testCheckoutHandler(t, checkoutFactory, cartStore, new(MockSalesOrderUoWFactory))

	order, err := handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.Nil(t, order)
	cartStore.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}
