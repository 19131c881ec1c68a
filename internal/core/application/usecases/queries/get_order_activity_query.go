package queries

import (
	"errors"
	"time"

	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/pkg/guard"
)

var (
	ErrGetOrderActivityQueryIsNotConstructed = errors.New(
		"GetOrderActivityQuery must be created via NewGetOrderActivityQuery constructor",
	)
)

// GetOrderActivityQuery retrieves the activity stream recorded for one sales
// order: its creation and every row change made since.
//
// Example:
//
//	query, err := NewGetOrderActivityQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	entries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order activity: %w", err)
//	}
//	for _, entry := range entries {
//	    fmt.Println(entry.Message)
//	}
type GetOrderActivityQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderActivityQuery creates a query for the given order.
// Returns an error if the order ID is invalid.
func NewGetOrderActivityQuery(orderID kernel.UUID) (GetOrderActivityQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderActivityQuery{}, err
	}

	return GetOrderActivityQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderActivityQueryIsNotConstructed if validation fails.
func (q GetOrderActivityQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderActivityQueryIsNotConstructed)
}

// OrderID returns the identifier of the order.
func (q GetOrderActivityQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderActivityQueryResponse is one rendered activity entry, newest first.
type GetOrderActivityQueryResponse struct {
	TransKey   string
	Params     map[string]string
	Message    string
	UserID     *kernel.UUID
	RecordedAt time.Time
}
