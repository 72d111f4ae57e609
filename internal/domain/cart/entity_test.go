//go:build unit

package cart_test

import (
	"math"
	"testing"
	"time"

	"storefront/internal/domain/cart"
	"storefront/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s got %s", want, got)
}

func TestCart_Add(t *testing.T) {
	t.Run("success: two units at 24.99", func(t *testing.T) {
		c := cart.New()
		c.Add(builder.NewProductBuilder().WithPrice("24.99").Build(), 2)

		assert.Equal(t, 2, c.TotalItems())
		assertDecimal(t, "49.98", c.TotalPrice())
		assertDecimal(t, "0", c.TotalSavings())
	})

	t.Run("success: cheaper re-add ratchets the price down", func(t *testing.T) {
		c := cart.New()
		c.Add(builder.NewProductBuilder().WithPrice("24.99").Build(), 1)
		c.Add(builder.NewProductBuilder().WithPrice("19.99").Build(), 1)

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
		assertDecimal(t, "19.99", items[0].Price)
		require.NotNil(t, items[0].OriginalPrice)
		assertDecimal(t, "24.99", *items[0].OriginalPrice)
		assertDecimal(t, "10.00", c.TotalSavings())
		assertDecimal(t, "39.98", c.TotalPrice())
	})

	t.Run("more expensive re-add keeps the stored price", func(t *testing.T) {
		c := cart.New()
		c.Add(builder.NewProductBuilder().WithPrice("19.99").Build(), 1)
		c.Add(builder.NewProductBuilder().WithPrice("24.99").Build(), 3)

		item, ok := c.Item("1")
		require.True(t, ok)
		assert.Equal(t, 4, item.Quantity)
		assertDecimal(t, "19.99", item.Price)
		assertDecimal(t, "0", c.TotalSavings())
	})

	t.Run("non-positive quantity is ignored", func(t *testing.T) {
		c := cart.New()
		c.Add(builder.NewProductBuilder().Build(), 0)
		c.Add(builder.NewProductBuilder().Build(), -3)

		assert.True(t, c.IsEmpty())
		assert.Equal(t, 0, c.TotalItems())
	})

	t.Run("promotion priced add records the list price", func(t *testing.T) {
		now := time.Date(2025, 7, 5, 12, 0, 0, 0, time.UTC)
		promo := builder.NewPromotionBuilder(now).WithID("A").Build()

		c := cart.New()
		c.Add(
			builder.NewProductBuilder().WithPrice("24").Build(),
			2,
			cart.WithPromotion(dec("30"), &promo),
		)

		item, ok := c.Item("1")
		require.True(t, ok)
		require.NotNil(t, item.AppliedPromotion)
		assert.Equal(t, "A", item.AppliedPromotion.ID)
		assertDecimal(t, "30", *item.OriginalPrice)
		assertDecimal(t, "12", c.TotalSavings())
	})

	t.Run("insertion order kept", func(t *testing.T) {
		c := cart.New()
		c.Add(builder.NewProductBuilder().WithID("b").Build(), 1)
		c.Add(builder.NewProductBuilder().WithID("a").Build(), 1)
		c.Add(builder.NewProductBuilder().WithID("b").Build(), 1)

		items := c.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "b", items[0].ID)
		assert.Equal(t, "a", items[1].ID)
	})
}

func TestCart_AddIsAssociative(t *testing.T) {
	for _, split := range [][2]int{{1, 1}, {1, 4}, {3, 2}, {7, 13}} {
		product := builder.NewProductBuilder().WithPrice("12.35").Build()

		twice := cart.New()
		twice.Add(product, split[0])
		twice.Add(product, split[1])

		once := cart.New()
		once.Add(product, split[0]+split[1])

		assert.Equal(t, once.TotalItems(), twice.TotalItems())
		assert.True(t, once.TotalPrice().Equal(twice.TotalPrice()))
		assert.True(t, once.TotalSavings().Equal(twice.TotalSavings()))
	}
}

func TestCart_QuantitySaturates(t *testing.T) {
	t.Run("success: repeated adds stop at the line cap", func(t *testing.T) {
		c := cart.New()
		product := builder.NewProductBuilder().WithPrice("2").Build()

		c.Add(product, math.MaxInt)
		c.Add(product, 1)

		item, ok := c.Item("1")
		require.True(t, ok)
		assert.Equal(t, cart.MaxQuantity, item.Quantity)
		assert.Equal(t, cart.MaxQuantity, c.TotalItems())
		assertDecimal(t, "1998", c.TotalPrice())
	})

	t.Run("success: update above the cap is clamped", func(t *testing.T) {
		c := cart.New()
		c.Add(builder.NewProductBuilder().Build(), 1)

		c.UpdateQuantity("1", math.MaxInt)

		assert.Equal(t, cart.MaxQuantity, c.TotalItems())
	})
}

func TestCart_Remove(t *testing.T) {
	c := cart.New()
	c.Add(builder.NewProductBuilder().WithID("1").Build(), 1)
	c.Add(builder.NewProductBuilder().WithID("2").Build(), 1)

	c.Remove("1")
	c.Remove("1")
	c.Remove("missing")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)
}

func TestCart_UpdateQuantity(t *testing.T) {
	t.Run("success: zero removes the line", func(t *testing.T) {
		c := cart.New()
		c.Add(builder.NewProductBuilder().WithID("1").Build(), 3)

		c.UpdateQuantity("1", 0)

		_, ok := c.Item("1")
		assert.False(t, ok)
		assert.True(t, c.IsEmpty())
	})

	t.Run("sets quantity exactly", func(t *testing.T) {
		c := cart.New()
		c.Add(builder.NewProductBuilder().WithID("1").Build(), 3)

		c.UpdateQuantity("1", 5)

		assert.Equal(t, 5, c.TotalItems())
	})

	t.Run("absent product is a no-op", func(t *testing.T) {
		c := cart.New()
		c.UpdateQuantity("1", 5)
		assert.True(t, c.IsEmpty())
	})
}

func TestCart_Clear(t *testing.T) {
	c := cart.New()
	c.Add(builder.NewProductBuilder().WithID("1").Build(), 3)
	c.Add(builder.NewProductBuilder().WithID("2").WithPrice("5").Build(), 1)

	c.Clear()

	assert.True(t, c.IsEmpty())
	assertDecimal(t, "0", c.TotalPrice())
	assertDecimal(t, "0", c.TotalSavings())
}

func TestCart_ItemsAreCopies(t *testing.T) {
	c := cart.New()
	c.Add(builder.NewProductBuilder().WithPrice("24.99").Build(), 1)
	c.Add(builder.NewProductBuilder().WithPrice("19.99").Build(), 1)

	items := c.Items()
	items[0].Quantity = 100
	*items[0].OriginalPrice = dec("1000")

	item, _ := c.Item("1")
	assert.Equal(t, 2, item.Quantity)
	assertDecimal(t, "24.99", *item.OriginalPrice)
}
