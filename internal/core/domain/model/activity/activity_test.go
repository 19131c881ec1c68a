package activity_test

import (
	"testing"

	"localmarket/internal/core/domain/model/activity"
	"localmarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	orderID := kernel.NewUUID()
	associationID := kernel.NewUUID()

	t.Run("creates entry without user", func(t *testing.T) {
		e, err := activity.NewEntry(
			activity.KeySalesOrderCreated,
			map[string]string{"ref": "CMD-0001"},
			orderID, associationID, nil)

		require.NoError(t, err)
		assert.Equal(t, activity.KeySalesOrderCreated, e.TransKey())
		assert.Equal(t, map[string]string{"ref": "CMD-0001"}, e.Params())
		assert.True(t, e.OrderID().IsEqual(orderID))
		assert.True(t, e.AssociationID().IsEqual(associationID))
		assert.Nil(t, e.UserID())
		require.NoError(t, e.Validate())
	})

	t.Run("creates entry with acting user", func(t *testing.T) {
		userID := kernel.NewUUID()

		e, err := activity.NewEntry(activity.KeySalesOrderCreated, nil, orderID, associationID, &userID)

		require.NoError(t, err)
		require.NotNil(t, e.UserID())
		assert.True(t, e.UserID().IsEqual(userID))
	})

	t.Run("rejects empty translation key", func(t *testing.T) {
		_, err := activity.NewEntry("", nil, orderID, associationID, nil)
		require.Error(t, err)
	})

	t.Run("rejects invalid order id", func(t *testing.T) {
		_, err := activity.NewEntry(activity.KeySalesOrderCreated, nil, kernel.UUID{}, associationID, nil)
		require.Error(t, err)
	})

	t.Run("params are copied in both directions", func(t *testing.T) {
		params := map[string]string{"ref": "CMD-0001"}
		e, err := activity.NewEntry(activity.KeySalesOrderCreated, params, orderID, associationID, nil)
		require.NoError(t, err)

		params["ref"] = "mutated"
		assert.Equal(t, "CMD-0001", e.Params()["ref"])

		e.Params()["ref"] = "mutated again"
		assert.Equal(t, "CMD-0001", e.Params()["ref"])
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var e activity.Entry
		require.ErrorIs(t, e.Validate(), activity.ErrEntryIsNotConstructed)
	})
}

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{3, "3"},
		{2.5, "2.5"},
		{2.25, "2.25"},
		{2.255, "2.26"},
		{0, "0"},
		{-1.5, "-1.5"},
		{50, "50"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, activity.FormatFloat(tc.in), "FormatFloat(%v)", tc.in)
	}
}

func TestFormatter_Format(t *testing.T) {
	formatter := activity.NewFormatter()

	t.Run("substitutes placeholders", func(t *testing.T) {
		got := formatter.Format(activity.KeySalesOrderCreated, map[string]string{"ref": "CMD-0007"})
		assert.Equal(t, "Order CMD-0007 has been created", got)
	})

	t.Run("renders quantity update", func(t *testing.T) {
		got := formatter.Format(activity.KeyRowQuantityUpdated, map[string]string{
			"order_ref":    "CMD-0001",
			"ref":          "TOM-01",
			"old_quantity": "5",
			"quantity":     "7",
		})
		assert.Equal(t, "Order CMD-0001, product TOM-01: quantity changed from 5 to 7", got)
	})

	t.Run("unknown key falls back to key", func(t *testing.T) {
		assert.Equal(t, "some.unknown.key", formatter.Format("some.unknown.key", nil))
	})
}
