package salesorder

import (
	"errors"
	"time"

	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/pkg/errs"
	"localmarket/internal/pkg/guard"
)

// ErrSalesOrderIsNotConstructed is returned when a SalesOrder was not created
// through Promote or RestoreSalesOrder.
var ErrSalesOrderIsNotConstructed = errors.New(
	"SalesOrder must be created via Promote or RestoreSalesOrder")

// SalesOrder is the persisted order aggregate.
//
// Invariants:
//   - The reference was assigned exactly once, at first persistence, and is
//     unique within the owning association; it never changes afterwards
//   - Buyer and row snapshot fields never track later source changes
//   - Row quantities and totals are the only mutable state; every mutation cycle
//     diffs against the row baselines captured at load time
type SalesOrder struct {
	id           kernel.UUID
	ref          string
	date         time.Time
	occurrenceID kernel.UUID
	buyer        Buyer

	consumerComment string
	rows            []*Row
	total           float64

	guard guard.ConstructorGuard
}

// RestoreSalesOrder reconstructs a persisted order from storage. The rows must
// have been restored with RestoreRow so their baselines match the stored state.
func RestoreSalesOrder(
	id kernel.UUID,
	ref string,
	date time.Time,
	occurrenceID kernel.UUID,
	buyer Buyer,
	consumerComment string,
	rows []*Row,
	total float64,
) (*SalesOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if ref == "" {
		return nil, errs.NewValueIsRequiredError("ref")
	}
	if err := occurrenceID.Validate(); err != nil {
		return nil, err
	}
	if err := buyer.Validate(); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return nil, err
		}
	}

	return &SalesOrder{
		id:              id,
		ref:             ref,
		date:            date,
		occurrenceID:    occurrenceID,
		buyer:           buyer,
		consumerComment: consumerComment,
		rows:            rows,
		total:           total,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was created through Promote or RestoreSalesOrder.
func (o *SalesOrder) Validate() error {
	if o == nil {
		return ErrSalesOrderIsNotConstructed
	}
	return o.guard.Validate(ErrSalesOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *SalesOrder) ID() kernel.UUID {
	return o.id
}

// Ref returns the immutable human-readable order reference.
func (o *SalesOrder) Ref() string {
	return o.ref
}

// Date returns the order creation time.
func (o *SalesOrder) Date() time.Time {
	return o.date
}

// OccurrenceID returns the branch occurrence the order was placed against.
func (o *SalesOrder) OccurrenceID() kernel.UUID {
	return o.occurrenceID
}

// Buyer returns the buyer snapshot.
func (o *SalesOrder) Buyer() Buyer {
	return o.buyer
}

// ConsumerComment returns the optional checkout comment.
func (o *SalesOrder) ConsumerComment() string {
	return o.consumerComment
}

// Rows returns the order's rows in persistence order.
// The rows themselves are shared: mutating a returned row mutates the order.
func (o *SalesOrder) Rows() []*Row {
	rows := make([]*Row, len(o.rows))
	copy(rows, o.rows)
	return rows
}

// RowByRef returns the row carrying the given product reference snapshot,
// or nil when no row matches.
func (o *SalesOrder) RowByRef(ref string) *Row {
	for _, row := range o.rows {
		if row.Ref() == ref {
			return row
		}
	}
	return nil
}

// Total returns the order total as of the last Compute call.
func (o *SalesOrder) Total() float64 {
	return o.total
}

// Compute recalculates the order total as the sum of row totals.
// It must run before every persistence attempt.
func (o *SalesOrder) Compute() {
	var total float64
	for _, row := range o.rows {
		total += row.Total()
	}
	o.total = total
}

// MarkClean moves every row baseline to its current values. It is called once
// a save commits, so the next update cycle detects only new changes and stock
// deltas are never applied twice.
func (o *SalesOrder) MarkClean() {
	for _, row := range o.rows {
		row.markClean()
	}
}

// IsEqual compares two orders by identity.
func (o *SalesOrder) IsEqual(other *SalesOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}
