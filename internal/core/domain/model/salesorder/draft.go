package salesorder

import (
	"errors"
	"time"

	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/pkg/errs"
	"localmarket/internal/pkg/guard"
)

// ErrDraftIsNotConstructed is returned when a Draft was not created via NewDraft.
var ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft constructor")

// Draft is a sales order that has not been persisted yet: it has no identity
// and no reference. Promotion to a persisted SalesOrder happens exactly once,
// at first save, when the association's counter issues a reference.
//
// Modelling new and persisted orders as distinct types makes the new/existing
// branch of the save flow a compile-time distinction instead of a nil check.
type Draft struct {
	date         time.Time
	occurrenceID kernel.UUID
	buyer        Buyer

	consumerComment string
	rows            []*Row
	total           float64

	guard guard.ConstructorGuard
}

// NewDraft starts a draft order against a branch occurrence, dated now, with
// the buyer snapshot taken from the ordering user at this instant. Rows are
// added afterwards, one per cart item.
func NewDraft(occurrenceID kernel.UUID, buyer Buyer) (*Draft, error) {
	if err := occurrenceID.Validate(); err != nil {
		return nil, err
	}
	if err := buyer.Validate(); err != nil {
		return nil, err
	}

	return &Draft{
		date:         time.Now(),
		occurrenceID: occurrenceID,
		buyer:        buyer,
		rows:         make([]*Row, 0),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the draft was created through NewDraft.
func (d *Draft) Validate() error {
	if d == nil {
		return ErrDraftIsNotConstructed
	}
	return d.guard.Validate(ErrDraftIsNotConstructed)
}

// Date returns the creation time of the draft.
func (d *Draft) Date() time.Time {
	return d.date
}

// OccurrenceID returns the branch occurrence the order is placed against.
func (d *Draft) OccurrenceID() kernel.UUID {
	return d.occurrenceID
}

// Buyer returns the buyer snapshot.
func (d *Draft) Buyer() Buyer {
	return d.buyer
}

// ConsumerComment returns the optional comment left at checkout.
func (d *Draft) ConsumerComment() string {
	return d.consumerComment
}

// SetConsumerComment stamps the consumer's checkout comment onto the draft.
func (d *Draft) SetConsumerComment(comment string) {
	d.consumerComment = comment
}

// Rows returns the draft's rows in insertion order.
func (d *Draft) Rows() []*Row {
	rows := make([]*Row, len(d.rows))
	copy(rows, d.rows)
	return rows
}

// AddRow appends a row built from a product snapshot.
func (d *Draft) AddRow(row *Row) error {
	if err := row.Validate(); err != nil {
		return err
	}
	d.rows = append(d.rows, row)
	return nil
}

// Total returns the order total as of the last Compute call.
func (d *Draft) Total() float64 {
	return d.total
}

// Compute recalculates the order total as the sum of row totals.
// It must run before every persistence attempt.
func (d *Draft) Compute() {
	var total float64
	for _, row := range d.rows {
		total += row.Total()
	}
	d.total = total
}

// Promote turns the draft into a persisted SalesOrder, assigning its identity
// and the reference issued by the association's counter. The reference is
// immutable from this point on.
//
// Row baselines stay at zero through promotion: the first save's stock
// reconciliation must see the full quantities as new demand. The caller marks
// the order clean once the save commits.
func Promote(d *Draft, id kernel.UUID, ref string) (*SalesOrder, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if ref == "" {
		return nil, errs.NewValueIsRequiredError("ref")
	}

	return &SalesOrder{
		id:              id,
		ref:             ref,
		date:            d.date,
		occurrenceID:    d.occurrenceID,
		buyer:           d.buyer,
		consumerComment: d.consumerComment,
		rows:            d.Rows(),
		total:           d.total,
		guard:           guard.NewConstructorGuard(),
	}, nil
}
