// Package queries contains read-only operations over the persisted model.
// Query handlers bypass the domain aggregates and read projections straight
// from the database, following the CQRS split.
package queries

import (
	"errors"
	"time"

	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/pkg/guard"
)

var (
	ErrGetProducerOrdersQueryIsNotConstructed = errors.New(
		"GetProducerOrdersQuery must be created via NewGetProducerOrdersQuery constructor",
	)
)

// GetProducerOrdersQuery retrieves the order rows a producer has to prepare
// for the upcoming branch occurrences. Only occurrences that have not ended
// yet are considered.
//
// Example:
//
//	query, err := NewGetProducerOrdersQuery(producerID)
//	if err != nil {
//	    return fmt.Errorf("invalid producer: %w", err)
//	}
//
//	rows, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get producer orders: %w", err)
//	}
//	for _, row := range rows {
//	    fmt.Printf("%s x%.2f for order %s\n", row.ProductName, row.Quantity, row.OrderRef)
//	}
type GetProducerOrdersQuery struct {
	producerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProducerOrdersQuery creates a query for the given producer.
// Returns an error if the producer ID is invalid.
func NewGetProducerOrdersQuery(producerID kernel.UUID) (GetProducerOrdersQuery, error) {
	if err := producerID.Validate(); err != nil {
		return GetProducerOrdersQuery{}, err
	}

	return GetProducerOrdersQuery{
		producerID: producerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProducerOrdersQueryIsNotConstructed if validation fails.
func (q GetProducerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetProducerOrdersQueryIsNotConstructed)
}

// ProducerID returns the identifier of the producer.
func (q GetProducerOrdersQuery) ProducerID() kernel.UUID {
	return q.producerID
}

// GetProducerOrdersQueryResponse is one order row the producer has to prepare.
type GetProducerOrdersQueryResponse struct {
	OrderID      kernel.UUID
	OrderRef     string
	OrderDate    time.Time
	OccurrenceID kernel.UUID
	ProductName  string
	ProductRef   string
	Quantity     float64
	Total        float64
}
