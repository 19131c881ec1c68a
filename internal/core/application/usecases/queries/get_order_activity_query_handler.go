package queries

import (
	"context"
	"encoding/json"

	"localmarket/internal/core/domain/model/activity"
	"localmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderActivityQueryHandler reads the activity entries of an order and
// renders their human readable messages through the activity formatter.
type GetOrderActivityQueryHandler struct {
	db        *gorm.DB
	formatter activity.Formatter
}

// NewGetOrderActivityQueryHandler creates a handler for order activity queries.
// Requires a GORM database connection for query execution.
func NewGetOrderActivityQueryHandler(db *gorm.DB) GetOrderActivityQueryHandler {
	return GetOrderActivityQueryHandler{
		db:        db,
		formatter: activity.NewFormatter(),
	}
}

// Handle executes the query and returns the order's entries, newest first.
func (h GetOrderActivityQueryHandler) Handle(
	ctx context.Context,
	query GetOrderActivityQuery,
) ([]GetOrderActivityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetOrderActivityQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			trans_key,
			params,
			user_id,
			created_at
		FROM activity_entries
		WHERE order_id = ?
		ORDER BY id DESC
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrderActivityQueryResponse
		var rawParams []byte
		var userID *uuid.UUID

		err = rows.Scan(
			&resp.TransKey,
			&rawParams,
			&userID,
			&resp.RecordedAt,
		)
		if err != nil {
			return nil, err
		}

		if len(rawParams) > 0 {
			if err = json.Unmarshal(rawParams, &resp.Params); err != nil {
				return nil, err
			}
		}

		if userID != nil {
			id, idErr := kernel.UUIDFromBytes((*userID)[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.UserID = &id
		}

		resp.Message = h.formatter.Format(resp.TransKey, resp.Params)
		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
