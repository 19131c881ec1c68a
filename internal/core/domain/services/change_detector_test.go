package services_test

import (
	"testing"

	"localmarket/internal/core/domain/model/activity"
	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/core/domain/model/salesorder"
	"localmarket/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoredRow(t *testing.T, quantity, total float64) *salesorder.Row {
	t.Helper()
	productID := kernel.NewUUID()
	row, err := salesorder.RestoreRow(&productID, kernel.NewUUID(), "Tomatoes", "TOM-01", false, 10, quantity, total)
	require.NoError(t, err)
	return row
}

func TestChangeDetector_Detect(t *testing.T) {
	detector := services.NewChangeDetector()

	t.Run("quantity and total changed", func(t *testing.T) {
		row := restoredRow(t, 5, 50)
		require.NoError(t, row.SetQuantity(7)) // total follows the unit price: 70

		change := detector.Detect("CMD-0001", row)

		require.NotNil(t, change)
		assert.Equal(t, activity.KeyRowQuantityTotalUpdated, change.TransKey)
		assert.Equal(t, map[string]string{
			"order_ref":    "CMD-0001",
			"ref":          "TOM-01",
			"old_quantity": "5",
			"quantity":     "7",
			"old_total":    "50",
			"total":        "70",
		}, change.Params)
	})

	t.Run("quantity changed only", func(t *testing.T) {
		row := restoredRow(t, 5, 50)
		require.NoError(t, row.SetQuantity(7))
		require.NoError(t, row.SetTotal(50)) // total manually held at its old value

		change := detector.Detect("CMD-0001", row)

		require.NotNil(t, change)
		assert.Equal(t, activity.KeyRowQuantityUpdated, change.TransKey)
		assert.Equal(t, map[string]string{
			"order_ref":    "CMD-0001",
			"ref":          "TOM-01",
			"old_quantity": "5",
			"quantity":     "7",
		}, change.Params)
	})

	t.Run("total changed only", func(t *testing.T) {
		row := restoredRow(t, 5, 50)
		require.NoError(t, row.SetTotal(45))

		change := detector.Detect("CMD-0001", row)

		require.NotNil(t, change)
		assert.Equal(t, activity.KeyRowTotalUpdated, change.TransKey)
		assert.Equal(t, map[string]string{
			"order_ref": "CMD-0001",
			"ref":       "TOM-01",
			"old_total": "50",
			"total":     "45",
		}, change.Params)
	})

	t.Run("no change emits nothing", func(t *testing.T) {
		row := restoredRow(t, 5, 50)

		assert.Nil(t, detector.Detect("CMD-0001", row))
	})

	t.Run("fractional values use display formatting", func(t *testing.T) {
		row := restoredRow(t, 0.5, 5)
		require.NoError(t, row.SetQuantity(1.5))

		change := detector.Detect("CMD-0002", row)

		require.NotNil(t, change)
		assert.Equal(t, "0.5", change.Params["old_quantity"])
		assert.Equal(t, "1.5", change.Params["quantity"])
	})
}
