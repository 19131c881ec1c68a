package services

import (
	"localmarket/internal/core/domain/model/activity"
	"localmarket/internal/core/domain/model/salesorder"
)

// RowChange is the semantic descriptor of one detected row mutation, ready to
// become an activity entry: a translation key plus formatted parameters.
type RowChange struct {
	TransKey string
	Params   map[string]string
}

// ChangeDetector diffs a sales order row against its persisted baseline and
// emits at most one change descriptor per row.
//
// Only quantity and total participate in change tracking; mutations of any
// other row field are not reported. The three outcomes are mutually exclusive
// and checked in priority order:
//
//	quantity and total changed -> quantity_total_updated
//	quantity changed only      -> quantity_updated
//	total changed only         -> total_updated
//
// Numeric values are rendered with the fixed decimal-display rule of the
// activity stream, never as raw floats.
type ChangeDetector struct{}

// NewChangeDetector creates a ChangeDetector.
func NewChangeDetector() ChangeDetector {
	return ChangeDetector{}
}

// Detect compares the row's persisted-before-mutation quantity and total with
// its current values. Returns nil when neither changed.
func (ChangeDetector) Detect(orderRef string, row *salesorder.Row) *RowChange {
	quantityChanged := row.Quantity() != row.OldQuantity()
	totalChanged := row.Total() != row.OldTotal()

	switch {
	case quantityChanged && totalChanged:
		return &RowChange{
			TransKey: activity.KeyRowQuantityTotalUpdated,
			Params: map[string]string{
				"order_ref":    orderRef,
				"ref":          row.Ref(),
				"old_quantity": activity.FormatFloat(row.OldQuantity()),
				"quantity":     activity.FormatFloat(row.Quantity()),
				"old_total":    activity.FormatFloat(row.OldTotal()),
				"total":        activity.FormatFloat(row.Total()),
			},
		}
	case quantityChanged:
		return &RowChange{
			TransKey: activity.KeyRowQuantityUpdated,
			Params: map[string]string{
				"order_ref":    orderRef,
				"ref":          row.Ref(),
				"old_quantity": activity.FormatFloat(row.OldQuantity()),
				"quantity":     activity.FormatFloat(row.Quantity()),
			},
		}
	case totalChanged:
		return &RowChange{
			TransKey: activity.KeyRowTotalUpdated,
			Params: map[string]string{
				"order_ref": orderRef,
				"ref":       row.Ref(),
				"old_total": activity.FormatFloat(row.OldTotal()),
				"total":     activity.FormatFloat(row.Total()),
			},
		}
	default:
		return nil
	}
}
