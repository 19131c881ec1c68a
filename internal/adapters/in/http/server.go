// Package http exposes the ordering operations over a REST API built on echo.
package http

import (
	"errors"
	"net/http"
	"time"

	"localmarket/internal/core/application/usecases/commands"
	"localmarket/internal/core/application/usecases/queries"
	"localmarket/internal/core/domain/model/cart"
	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/core/domain/model/salesorder"
	"localmarket/internal/core/ports"
	"localmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	checkoutHandler        commands.CheckoutCommandHandler
	updateOrderRowsHandler commands.UpdateOrderRowsCommandHandler
	producerOrdersHandler  queries.GetProducerOrdersQueryHandler
	orderActivityHandler   queries.GetOrderActivityQueryHandler
	cartStore              ports.CartStore
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	updateOrderRowsHandler commands.UpdateOrderRowsCommandHandler,
	producerOrdersHandler queries.GetProducerOrdersQueryHandler,
	orderActivityHandler queries.GetOrderActivityQueryHandler,
	cartStore ports.CartStore,
) *Server {
	return &Server{
		checkoutHandler:        checkoutHandler,
		updateOrderRowsHandler: updateOrderRowsHandler,
		producerOrdersHandler:  producerOrdersHandler,
		orderActivityHandler:   orderActivityHandler,
		cartStore:              cartStore,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.PUT("/api/v1/carts/:ownerId/items", s.AddCartItem)
	e.POST("/api/v1/checkout", s.Checkout)
	e.PUT("/api/v1/orders/:id/rows", s.UpdateOrderRows)
	e.GET("/api/v1/producers/:id/orders", s.GetProducerOrders)
	e.GET("/api/v1/orders/:id/activity", s.GetOrderActivity)
}

// Error is the JSON error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CartItemRequest is the body of PUT /api/v1/carts/:ownerId/items.
type CartItemRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

// BuyerRequest is the buyer snapshot submitted at checkout.
type BuyerRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	Zipcode   string `json:"zipcode"`
	City      string `json:"city"`
}

// CheckoutRequest is the body of POST /api/v1/checkout. The order is placed
// against the next occurrence of the given branch.
type CheckoutRequest struct {
	OwnerID  string       `json:"owner_id"`
	BranchID string       `json:"branch_id"`
	Buyer    BuyerRequest `json:"buyer"`
	Comment  string       `json:"comment"`
}

// RowEditRequest is one quantity change in PUT /api/v1/orders/:id/rows.
type RowEditRequest struct {
	Ref      string  `json:"ref"`
	Quantity float64 `json:"quantity"`
}

// UpdateOrderRowsRequest is the body of PUT /api/v1/orders/:id/rows.
type UpdateOrderRowsRequest struct {
	Edits  []RowEditRequest `json:"edits"`
	UserID string           `json:"user_id,omitempty"`
}

// OrderRowResponse is one row of an order in API responses.
type OrderRowResponse struct {
	Name      string  `json:"name"`
	Ref       string  `json:"ref"`
	IsBio     bool    `json:"is_bio"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  float64 `json:"quantity"`
	Total     float64 `json:"total"`
}

// OrderResponse is a sales order in API responses.
type OrderResponse struct {
	ID      string             `json:"id"`
	Ref     string             `json:"ref"`
	Date    time.Time          `json:"date"`
	Comment string             `json:"comment,omitempty"`
	Rows    []OrderRowResponse `json:"rows"`
	Total   float64            `json:"total"`
}

// ProducerOrderResponse is one row a producer has to prepare.
type ProducerOrderResponse struct {
	OrderID     string    `json:"order_id"`
	OrderRef    string    `json:"order_ref"`
	OrderDate   time.Time `json:"order_date"`
	ProductName string    `json:"product_name"`
	ProductRef  string    `json:"product_ref"`
	Quantity    float64   `json:"quantity"`
	Total       float64   `json:"total"`
}

// ActivityResponse is one rendered activity entry.
type ActivityResponse struct {
	Message    string    `json:"message"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// AddCartItem handles PUT /api/v1/carts/:ownerId/items - adds a product to the
// owner's cart, merging quantities when the product is already present.
func (s *Server) AddCartItem(ctx echo.Context) error {
	ownerID, err := kernel.UUIDFromString(ctx.Param("ownerId"))
	if err != nil {
		return badRequest(ctx, "Invalid owner id")
	}

	var req CartItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	item, err := cart.NewCartItem(productID, req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid cart item: "+err.Error())
	}

	requestCtx := ctx.Request().Context()
	ownerCart, err := s.cartStore.Get(requestCtx, ownerID)
	if err != nil {
		return internalError(ctx, "Failed to load cart")
	}
	if err = ownerCart.AddItem(item); err != nil {
		return badRequest(ctx, "Invalid cart item: "+err.Error())
	}
	if err = s.cartStore.Put(requestCtx, ownerCart); err != nil {
		return internalError(ctx, "Failed to store cart")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/checkout - turns the owner's cart into a sales order.
func (s *Server) Checkout(ctx echo.Context) error {
	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner id")
	}
	branchID, err := kernel.UUIDFromString(req.BranchID)
	if err != nil {
		return badRequest(ctx, "Invalid branch id")
	}

	buyer, err := salesorder.NewBuyer(
		req.Buyer.Firstname,
		req.Buyer.Lastname,
		req.Buyer.Address1,
		req.Buyer.Address2,
		req.Buyer.Zipcode,
		req.Buyer.City,
	)
	if err != nil {
		return badRequest(ctx, "Invalid buyer data: "+err.Error())
	}

	cmd, err := commands.NewCheckoutCommand(ownerID, branchID, buyer, req.Comment)
	if err != nil {
		return badRequest(ctx, "Invalid checkout data: "+err.Error())
	}

	order, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCartIsEmpty):
			return badRequest(ctx, "Cart is empty")
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, "No upcoming occurrence for this branch")
		default:
			return internalError(ctx, "Failed to process checkout")
		}
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(order))
}

// UpdateOrderRows handles PUT /api/v1/orders/:id/rows - administrative row edits.
func (s *Server) UpdateOrderRows(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderRowsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	edits := make([]commands.RowEdit, 0, len(req.Edits))
	for _, edit := range req.Edits {
		edits = append(edits, commands.RowEdit{Ref: edit.Ref, Quantity: edit.Quantity})
	}

	var userID *kernel.UUID
	if req.UserID != "" {
		id, idErr := kernel.UUIDFromString(req.UserID)
		if idErr != nil {
			return badRequest(ctx, "Invalid user id")
		}
		userID = &id
	}

	cmd, err := commands.NewUpdateOrderRowsCommand(orderID, edits, userID)
	if err != nil {
		return badRequest(ctx, "Invalid edit data: "+err.Error())
	}

	order, err := s.updateOrderRowsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx, "Failed to update order")
	}

	return ctx.JSON(http.StatusOK, orderToResponse(order))
}

// GetProducerOrders handles GET /api/v1/producers/:id/orders.
func (s *Server) GetProducerOrders(ctx echo.Context) error {
	producerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid producer id")
	}

	query, err := queries.NewGetProducerOrdersQuery(producerID)
	if err != nil {
		return badRequest(ctx, "Invalid producer id")
	}

	rows, err := s.producerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve producer orders")
	}

	response := make([]ProducerOrderResponse, len(rows))
	for i, row := range rows {
		response[i] = ProducerOrderResponse{
			OrderID:     row.OrderID.String(),
			OrderRef:    row.OrderRef,
			OrderDate:   row.OrderDate,
			ProductName: row.ProductName,
			ProductRef:  row.ProductRef,
			Quantity:    row.Quantity,
			Total:       row.Total,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderActivity handles GET /api/v1/orders/:id/activity.
func (s *Server) GetOrderActivity(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderActivityQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	entries, err := s.orderActivityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve order activity")
	}

	response := make([]ActivityResponse, len(entries))
	for i, entry := range entries {
		response[i] = ActivityResponse{
			Message:    entry.Message,
			RecordedAt: entry.RecordedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func orderToResponse(order *salesorder.SalesOrder) OrderResponse {
	rows := order.Rows()
	rowResponses := make([]OrderRowResponse, len(rows))
	for i, row := range rows {
		rowResponses[i] = OrderRowResponse{
			Name:      row.Name(),
			Ref:       row.Ref(),
			IsBio:     row.IsBio(),
			UnitPrice: row.UnitPrice(),
			Quantity:  row.Quantity(),
			Total:     row.Total(),
		}
	}

	return OrderResponse{
		ID:      order.ID().String(),
		Ref:     order.Ref(),
		Date:    order.Date(),
		Comment: order.ConsumerComment(),
		Rows:    rowResponses,
		Total:   order.Total(),
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: message})
}
