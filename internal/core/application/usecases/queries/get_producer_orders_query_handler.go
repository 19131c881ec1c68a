package queries

import (
	"context"
	"time"

	"localmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProducerOrdersQueryHandler reads, per producer, the order rows bound for
// branch occurrences that are still open. Joins orders, rows and occurrences
// directly rather than loading whole aggregates.
type GetProducerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetProducerOrdersQueryHandler creates a handler for producer order queries.
// Requires a GORM database connection for query execution.
func NewGetProducerOrdersQueryHandler(db *gorm.DB) GetProducerOrdersQueryHandler {
	return GetProducerOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one entry per order row of the
// producer, oldest order first.
func (h GetProducerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetProducerOrdersQuery,
) ([]GetProducerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetProducerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.ref,
			o.date,
			o.occurrence_id,
			r.name,
			r.ref,
			r.quantity,
			r.total
		FROM sales_order_rows r
		JOIN sales_orders o ON o.id = r.order_id
		JOIN branch_occurrences bo ON bo.id = o.occurrence_id
		WHERE r.producer_id = ?
		  AND bo.ends > ?
		ORDER BY o.date, o.id
	`, query.ProducerID().Bytes(), time.Now()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetProducerOrdersQueryResponse
		var orderID, occurrenceID uuid.UUID

		err = rows.Scan(
			&orderID,
			&resp.OrderRef,
			&resp.OrderDate,
			&occurrenceID,
			&resp.ProductName,
			&resp.ProductRef,
			&resp.Quantity,
			&resp.Total,
		)
		if err != nil {
			return nil, err
		}

		resp.OrderID, err = kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return nil, err
		}
		resp.OccurrenceID, err = kernel.UUIDFromBytes(occurrenceID[:])
		if err != nil {
			return nil, err
		}

		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
