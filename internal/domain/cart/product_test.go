//go:build unit

package cart_test

import (
	"testing"

	"storefront/internal/domain/cart"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := cart.NewProduct(" 1 ", " Whey ", "desc", "img", " supplement ", dec("24.99"), true)

		require.NoError(t, err)
		assert.Equal(t, "1", p.ID)
		assert.Equal(t, "Whey", p.Name)
		assert.Equal(t, "supplement", p.Category)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := cart.NewProduct(" ", "Whey", "", "", "supplement", dec("1"), true)
		assert.True(t, errs.Is(err, cart.ErrEmptyProductID))
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := cart.NewProduct("1", "Whey", "", "", "supplement", dec("-1"), true)
		assert.True(t, errs.Is(err, cart.ErrNegativePrice))
	})
}
