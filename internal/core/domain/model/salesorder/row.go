package salesorder

import (
	"errors"

	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/core/domain/model/product"
	"localmarket/internal/pkg/errs"
	"localmarket/internal/pkg/guard"
)

// ErrRowIsNotConstructed is returned when a Row was not created through
// NewRowFromProduct or RestoreRow.
var ErrRowIsNotConstructed = errors.New("Row must be created via NewRowFromProduct or RestoreRow")

// Row is one product line of a sales order.
//
// Name, ref, bio flag, and unit price are snapshots taken from the product at
// order-creation time and never track later catalog changes. The product
// reference itself may become nil if the product is later removed from the
// catalog; the snapshot fields keep the row meaningful regardless.
//
// Quantity and total are the only mutable fields. Each row also carries the
// persisted-before-mutation baseline of both, so change detection and stock
// reconciliation work on an explicit value pair instead of implicit dirty
// tracking. New rows have a zero baseline: their full quantity is a new demand
// on stock.
type Row struct {
	productID  *kernel.UUID
	producerID kernel.UUID
	name       string
	ref        string
	isBio      bool
	unitPrice  float64

	quantity float64
	total    float64

	baselineQuantity float64
	baselineTotal    float64

	guard guard.ConstructorGuard
}

// NewRowFromProduct builds a row for a brand-new order, copying the product's
// current name, ref, bio flag, producer, and unit price as snapshots.
// The total is derived from the snapshot price and the requested quantity.
func NewRowFromProduct(p *product.Product, quantity float64) (*Row, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidError("quantity")
	}

	productID := p.ID()
	return &Row{
		productID:  &productID,
		producerID: p.ProducerID(),
		name:       p.Name(),
		ref:        p.Ref(),
		isBio:      p.IsBio(),
		unitPrice:  p.Price(),
		quantity:   quantity,
		total:      p.Price() * quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreRow reconstructs a persisted row. The stored quantity and total become
// the baseline for subsequent change detection and stock reconciliation.
func RestoreRow(
	productID *kernel.UUID,
	producerID kernel.UUID,
	name string,
	ref string,
	isBio bool,
	unitPrice float64,
	quantity float64,
	total float64,
) (*Row, error) {
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return nil, err
		}
	}
	if err := producerID.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if ref == "" {
		return nil, errs.NewValueIsRequiredError("ref")
	}

	return &Row{
		productID:        productID,
		producerID:       producerID,
		name:             name,
		ref:              ref,
		isBio:            isBio,
		unitPrice:        unitPrice,
		quantity:         quantity,
		total:            total,
		baselineQuantity: quantity,
		baselineTotal:    total,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the row was created through a factory function.
func (r *Row) Validate() error {
	if r == nil {
		return ErrRowIsNotConstructed
	}
	return r.guard.Validate(ErrRowIsNotConstructed)
}

// ProductID returns the referenced product, or nil when the product was
// removed from the catalog after the order was created.
func (r *Row) ProductID() *kernel.UUID {
	return r.productID
}

// ProducerID returns the producer this row's revenue belongs to.
func (r *Row) ProducerID() kernel.UUID {
	return r.producerID
}

// Name returns the product name snapshot.
func (r *Row) Name() string {
	return r.name
}

// Ref returns the product reference snapshot.
func (r *Row) Ref() string {
	return r.ref
}

// IsBio returns the bio flag snapshot.
func (r *Row) IsBio() bool {
	return r.isBio
}

// UnitPrice returns the unit price snapshot.
func (r *Row) UnitPrice() float64 {
	return r.unitPrice
}

// Quantity returns the current quantity.
func (r *Row) Quantity() float64 {
	return r.quantity
}

// Total returns the current row total.
func (r *Row) Total() float64 {
	return r.total
}

// OldQuantity returns the persisted-before-mutation quantity.
// Zero for rows that have never been persisted.
func (r *Row) OldQuantity() float64 {
	return r.baselineQuantity
}

// OldTotal returns the persisted-before-mutation total.
func (r *Row) OldTotal() float64 {
	return r.baselineTotal
}

// QuantityDelta returns the signed difference between the current and the
// persisted quantity. This is the amount stock reconciliation deducts.
func (r *Row) QuantityDelta() float64 {
	return r.quantity - r.baselineQuantity
}

// SetQuantity mutates the quantity and recomputes the total from the unit
// price snapshot. The baseline is untouched until the order commits.
func (r *Row) SetQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	r.quantity = quantity
	r.total = r.unitPrice * quantity
	return nil
}

// SetTotal overrides the row total without touching the quantity, for manual
// price adjustments by the association.
func (r *Row) SetTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidError("total")
	}
	r.total = total
	return nil
}

// markClean moves the baseline to the current values. Called by the aggregate
// once a save commits, so the next update cycle diffs against the new state.
func (r *Row) markClean() {
	r.baselineQuantity = r.quantity
	r.baselineTotal = r.total
}
