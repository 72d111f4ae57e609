//go:build unit

package memstore_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/promotion"
	"storefront/internal/infra"
	"storefront/internal/infra/memstore"
	"storefront/internal/pkg/clock"
	"storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromotionStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 7, 5, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	seeded := builder.NewPromotionBuilder(now).WithID("seeded").Inactive().Build()
	store := memstore.NewPromotionStore(clk, seeded)

	draft, err := builder.NewPromotionBuilder(now).BuildDraft()
	require.NoError(t, err)

	id, err := store.Add(ctx, draft)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	t.Run("lists in insertion order", func(t *testing.T) {
		all, err := store.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "seeded", all[0].ID)
		assert.Equal(t, id, all[1].ID)
		assert.Equal(t, now, all[1].CreatedAt)
	})

	t.Run("active subset", func(t *testing.T) {
		active, err := store.GetActive(ctx)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, id, active[0].ID)
	})

	t.Run("update", func(t *testing.T) {
		clk.Add(time.Minute)
		discount := 35.0

		require.NoError(t, store.Update(ctx, id, promotion.Patch{Discount: &discount}))

		got, err := store.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 35.0, got.Discount)
		assert.Equal(t, now.Add(time.Minute), got.UpdatedAt)
	})

	t.Run("returned records do not alias the store", func(t *testing.T) {
		got, err := store.GetByID(ctx, id)
		require.NoError(t, err)
		got.ApplicableCategories[0] = "mutated"

		again, err := store.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "supplement", again.ApplicableCategories[0])
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "seeded"))

		_, err := store.GetByID(ctx, "seeded")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("missing ids are NOT_FOUND", func(t *testing.T) {
		discount := 1.0
		assert.True(t, infra.IsKind(store.Update(ctx, "missing", promotion.Patch{Discount: &discount}), infra.KindNotFound))
		assert.True(t, infra.IsKind(store.Delete(ctx, "missing"), infra.KindNotFound))
	})
}
