//go:build unit

package infra_test

import (
	"context"
	"testing"

	"storefront/internal/infra"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRepoErr(t *testing.T) {
	cause := errs.New("connection reset")

	t.Run("defaults to DB_FAILURE", func(t *testing.T) {
		err := infra.WrapRepoErr("failed to list promotions", cause)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.True(t, errs.Is(err, cause))
		assert.Contains(t, err.Error(), "DB_FAILURE: failed to list promotions")
	})

	t.Run("explicit kind wins", func(t *testing.T) {
		err := infra.WrapRepoErr("promotion not found", cause, infra.KindNotFound)

		kind, ok := infra.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, infra.KindNotFound, kind)
	})

	t.Run("context errors are UNAVAILABLE", func(t *testing.T) {
		err := infra.WrapRepoErr("failed to list promotions", context.DeadlineExceeded)
		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
	})

	t.Run("nil cause keeps the message", func(t *testing.T) {
		err := infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
		assert.Equal(t, "NOT_FOUND: promotion not found", err.Error())
	})

	t.Run("survives further wrapping", func(t *testing.T) {
		err := errs.Wrap(infra.WrapRepoErr("boom", cause, infra.KindPermissionDenied), "outer")
		assert.True(t, infra.IsKind(err, infra.KindPermissionDenied))
		assert.False(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("plain errors have no kind", func(t *testing.T) {
		_, ok := infra.KindOf(cause)
		assert.False(t, ok)
	})
}
