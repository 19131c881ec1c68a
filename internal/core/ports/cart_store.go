package ports

import (
	"context"

	"localmarket/internal/core/domain/model/cart"
	"localmarket/internal/core/domain/model/kernel"
)

// CartStore defines the contract for keeping in-progress carts between requests.
// A missing cart is not an error: Get returns an empty cart for unknown owners.
type CartStore interface {
	// Get retrieves the cart of the given owner.
	Get(ctx context.Context, ownerID kernel.UUID) (*cart.Cart, error)

	// Put stores the cart under its owner key, replacing any previous content.
	Put(ctx context.Context, aggregate *cart.Cart) error

	// Clear removes the cart of the given owner.
	// Clearing an absent cart is a no-op.
	Clear(ctx context.Context, ownerID kernel.UUID) error
}
