package services

import (
	"localmarket/internal/core/domain/model/product"
	"localmarket/internal/core/domain/model/salesorder"
)

// StockReconciler adjusts product inventory from row quantity deltas.
//
// Reconciliation is strictly incremental: the new stock is the old stock minus
// the signed difference between the row's current and persisted quantity.
// A brand-new row deducts its full quantity; a quantity reduction restocks the
// difference. Because the adjustment is a delta, it must be applied exactly
// once per save per affected row.
type StockReconciler struct{}

// NewStockReconciler creates a StockReconciler.
func NewStockReconciler() StockReconciler {
	return StockReconciler{}
}

// Reconcile applies the row's quantity delta to the product's stock level.
// Returns true when the product was modified and needs persisting.
//
// Products whose availability does not track stock are left untouched, as are
// rows whose product disappeared from the catalog (nil product).
func (StockReconciler) Reconcile(p *product.Product, row *salesorder.Row) bool {
	if p == nil || !p.Availability().TracksStock() {
		return false
	}

	delta := row.QuantityDelta()
	if delta == 0 {
		return false
	}

	p.AdjustStock(-delta)
	return true
}
