package product_test

import (
	"testing"

	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct(t *testing.T, availability product.Availability, stock float64) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(
		kernel.NewUUID(), kernel.NewUUID(), nil,
		"Tomatoes", "TOM-01", true, 3.5, availability, stock)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("creates valid product", func(t *testing.T) {
		id := kernel.NewUUID()
		producerID := kernel.NewUUID()

		p, err := product.NewProduct(id, producerID, nil, "Goat cheese", "CHE-12", false, 6.2, product.Available)

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.ProducerID().IsEqual(producerID))
		assert.Nil(t, p.CategoryID())
		assert.Equal(t, "Goat cheese", p.Name())
		assert.Equal(t, "CHE-12", p.Ref())
		assert.False(t, p.IsBio())
		assert.InDelta(t, 6.2, p.Price(), 1e-9)
		assert.Equal(t, product.Available, p.Availability())
		assert.Zero(t, p.Stock())
		require.NoError(t, p.Validate())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), nil, "", "REF", false, 1, product.Available)
		require.Error(t, err)
	})

	t.Run("rejects empty ref", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), nil, "Name", "", false, 1, product.Available)
		require.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), nil, "Name", "REF", false, -0.1, product.Available)
		require.Error(t, err)
	})

	t.Run("rejects invalid availability", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), nil, "Name", "REF", false, 1, product.UnknownAvailability)
		require.Error(t, err)
	})

	t.Run("rejects invalid producer id", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.UUID{}, nil, "Name", "REF", false, 1, product.Available)
		require.Error(t, err)
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var p product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})

	t.Run("nil product is not constructed", func(t *testing.T) {
		var p *product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestProduct_AdjustStock(t *testing.T) {
	p := validProduct(t, product.AccordingToStock, 10)

	p.AdjustStock(-3)
	assert.InDelta(t, 7, p.Stock(), 1e-9)

	p.AdjustStock(2)
	assert.InDelta(t, 9, p.Stock(), 1e-9)
}

func TestAvailability(t *testing.T) {
	t.Run("valid modes pass validation", func(t *testing.T) {
		for _, a := range []product.Availability{product.Available, product.AccordingToStock, product.Unavailable} {
			require.NoError(t, a.Validate())
		}
	})

	t.Run("unknown mode fails validation", func(t *testing.T) {
		require.Error(t, product.UnknownAvailability.Validate())
		require.Error(t, product.Availability(42).Validate())
	})

	t.Run("string representation", func(t *testing.T) {
		assert.Equal(t, "AccordingToStock", product.AccordingToStock.String())
		assert.Equal(t, "Unknown", product.Availability(42).String())
	})

	t.Run("only AccordingToStock tracks stock", func(t *testing.T) {
		assert.True(t, product.AccordingToStock.TracksStock())
		assert.False(t, product.Available.TracksStock())
		assert.False(t, product.Unavailable.TracksStock())
	})
}
