package cart

import (
	"errors"

	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/pkg/errs"
	"localmarket/internal/pkg/guard"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart was not created via NewCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

	// ErrCartItemIsNotConstructed is returned when a CartItem was not created via NewCartItem.
	ErrCartItemIsNotConstructed = errors.New("CartItem must be created via NewCartItem constructor")
)

// CartItem is a single product line waiting for checkout.
// Quantity is always strictly positive; removing a product from the cart
// means dropping the item, not zeroing it.
type CartItem struct {
	productID kernel.UUID
	quantity  float64

	guard guard.ConstructorGuard
}

// NewCartItem creates a validated cart item.
func NewCartItem(productID kernel.UUID, quantity float64) (CartItem, error) {
	if err := productID.Validate(); err != nil {
		return CartItem{}, err
	}
	if quantity <= 0 {
		return CartItem{}, errs.NewValueIsInvalidError("quantity")
	}

	return CartItem{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through NewCartItem.
func (i CartItem) Validate() error {
	return i.guard.Validate(ErrCartItemIsNotConstructed)
}

// ProductID returns the referenced product.
func (i CartItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the requested quantity.
func (i CartItem) Quantity() float64 {
	return i.quantity
}

// Cart holds the line items a user intends to order.
// A cart belongs to a single owner and survives until its items are cleared
// after a successful checkout; the cart itself is never deleted by the core.
type Cart struct {
	ownerID kernel.UUID
	items   []CartItem

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart for the given owner.
func NewCart(ownerID kernel.UUID) (*Cart, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		ownerID: ownerID,
		items:   make([]CartItem, 0),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreCart reconstructs a cart with its items from storage.
func RestoreCart(ownerID kernel.UUID, items []CartItem) (*Cart, error) {
	c, err := NewCart(ownerID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err = c.AddItem(item); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Validate ensures the cart was created through NewCart or RestoreCart.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// OwnerID returns the identifier of the user owning this cart.
func (c *Cart) OwnerID() kernel.UUID {
	return c.ownerID
}

// Items returns a copy of the cart's line items in insertion order.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// AddItem appends a line item. An item for a product already present merges
// into the existing line by summing quantities.
func (c *Cart) AddItem(item CartItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	for i := range c.items {
		if c.items[i].productID.IsEqual(item.productID) {
			merged, err := NewCartItem(item.productID, c.items[i].quantity+item.quantity)
			if err != nil {
				return err
			}
			c.items[i] = merged
			return nil
		}
	}

	c.items = append(c.items, item)
	return nil
}

// Clear empties the cart. The cart remains usable afterwards.
func (c *Cart) Clear() {
	c.items = c.items[:0]
}
