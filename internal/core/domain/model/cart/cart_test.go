package cart_test

import (
	"testing"

	"localmarket/internal/core/domain/model/cart"
	"localmarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartItem(t *testing.T) {
	t.Run("creates valid item", func(t *testing.T) {
		productID := kernel.NewUUID()

		item, err := cart.NewCartItem(productID, 2.5)

		require.NoError(t, err)
		assert.True(t, item.ProductID().IsEqual(productID))
		assert.InDelta(t, 2.5, item.Quantity(), 1e-9)
		require.NoError(t, item.Validate())
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := cart.NewCartItem(kernel.NewUUID(), 0)
		require.Error(t, err)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := cart.NewCartItem(kernel.NewUUID(), -1)
		require.Error(t, err)
	})

	t.Run("rejects invalid product id", func(t *testing.T) {
		_, err := cart.NewCartItem(kernel.UUID{}, 1)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var item cart.CartItem
		require.ErrorIs(t, item.Validate(), cart.ErrCartItemIsNotConstructed)
	})
}

func TestCart(t *testing.T) {
	t.Run("new cart is empty", func(t *testing.T) {
		ownerID := kernel.NewUUID()

		c, err := cart.NewCart(ownerID)

		require.NoError(t, err)
		assert.True(t, c.OwnerID().IsEqual(ownerID))
		assert.True(t, c.IsEmpty())
		assert.Empty(t, c.Items())
	})

	t.Run("add item keeps insertion order", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)

		first, _ := cart.NewCartItem(kernel.NewUUID(), 2)
		second, _ := cart.NewCartItem(kernel.NewUUID(), 1)
		require.NoError(t, c.AddItem(first))
		require.NoError(t, c.AddItem(second))

		items := c.Items()
		require.Len(t, items, 2)
		assert.True(t, items[0].ProductID().IsEqual(first.ProductID()))
		assert.True(t, items[1].ProductID().IsEqual(second.ProductID()))
	})

	t.Run("adding same product merges quantities", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)

		productID := kernel.NewUUID()
		item1, _ := cart.NewCartItem(productID, 2)
		item2, _ := cart.NewCartItem(productID, 0.5)
		require.NoError(t, c.AddItem(item1))
		require.NoError(t, c.AddItem(item2))

		items := c.Items()
		require.Len(t, items, 1)
		assert.InDelta(t, 2.5, items[0].Quantity(), 1e-9)
	})

	t.Run("clear empties without invalidating cart", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)

		item, _ := cart.NewCartItem(kernel.NewUUID(), 1)
		require.NoError(t, c.AddItem(item))
		c.Clear()

		assert.True(t, c.IsEmpty())
		require.NoError(t, c.Validate())
		require.NoError(t, c.AddItem(item))
		assert.False(t, c.IsEmpty())
	})

	t.Run("restore rebuilds items", func(t *testing.T) {
		item1, _ := cart.NewCartItem(kernel.NewUUID(), 2)
		item2, _ := cart.NewCartItem(kernel.NewUUID(), 1)

		c, err := cart.RestoreCart(kernel.NewUUID(), []cart.CartItem{item1, item2})

		require.NoError(t, err)
		assert.Len(t, c.Items(), 2)
	})

	t.Run("items returns a copy", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)

		item, _ := cart.NewCartItem(kernel.NewUUID(), 1)
		require.NoError(t, c.AddItem(item))

		items := c.Items()
		items[0] = cart.CartItem{}

		require.NoError(t, c.Items()[0].Validate())
	})
}
