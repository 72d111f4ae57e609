//go:build unit

package repository_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/promotion"
	"storefront/internal/infra"
	"storefront/internal/infra/repository"
	"storefront/tests/common/builder"
	repositorymock "storefront/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func TestPromotionRepository_GetAll(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "generic failure", queryErr: errors.New("boom"), expectKind: infra.KindDBFailure},
		{name: "insufficient privilege", queryErr: &pgconn.PgError{Code: "42501"}, expectKind: infra.KindPermissionDenied},
		{name: "timeout", queryErr: context.DeadlineExceeded, expectKind: infra.KindUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			db := repositorymock.NewMockDBTX(ctrl)
			db.EXPECT().Query(ctx, gomock.Any()).Return(nil, tc.queryErr)

			_, err := repository.NewPromotionRepository(db).GetAll(ctx)

			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

func TestPromotionRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("malformed id is NOT_FOUND without a query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := repositorymock.NewMockDBTX(ctrl)

		_, err := repository.NewPromotionRepository(db).GetByID(ctx, "not-a-uuid")

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("no rows is NOT_FOUND", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := repositorymock.NewMockDBTX(ctrl)
		db.EXPECT().QueryRow(ctx, gomock.Any(), id).Return(errRow{err: pgx.ErrNoRows})

		_, err := repository.NewPromotionRepository(db).GetByID(ctx, id.String())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("scan failure is DB_FAILURE", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := repositorymock.NewMockDBTX(ctrl)
		db.EXPECT().QueryRow(ctx, gomock.Any(), id).Return(errRow{err: errors.New("bad column")})

		_, err := repository.NewPromotionRepository(db).GetByID(ctx, id.String())

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestPromotionRepository_Add(t *testing.T) {
	ctx := context.Background()
	draft, err := builder.NewPromotionBuilder(time.Now()).BuildDraft()
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	db := repositorymock.NewMockDBTX(ctrl)
	db.EXPECT().QueryRow(ctx, gomock.Any(), gomock.Any()).
		Return(errRow{err: &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}})

	_, err = repository.NewPromotionRepository(db).Add(ctx, draft)

	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func TestPromotionRepository_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("builds assignments for provided fields only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := repositorymock.NewMockDBTX(ctrl)

		title := "Winter sale"
		active := false
		empty := ""
		p := promotion.Patch{Title: &title, IsActive: &active, PromoCode: &empty}

		var gotSQL string
		var gotArgs []any
		db.EXPECT().Exec(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				gotSQL = sql
				gotArgs = args
				return pgconn.NewCommandTag("UPDATE 1"), nil
			})

		require.NoError(t, repository.NewPromotionRepository(db).Update(ctx, id.String(), p))

		assert.True(t, strings.HasPrefix(gotSQL, "UPDATE promotions SET title = $1, is_active = $2, promo_code = $3, updated_at = NOW()"), gotSQL)
		assert.True(t, strings.HasSuffix(gotSQL, "WHERE id = $4"), gotSQL)
		require.Len(t, gotArgs, 4)
		assert.Equal(t, "Winter sale", gotArgs[0])
		assert.Equal(t, false, gotArgs[1])
		assert.Equal(t, id, gotArgs[3])
	})

	t.Run("no affected rows is NOT_FOUND", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := repositorymock.NewMockDBTX(ctrl)
		db.EXPECT().Exec(ctx, gomock.Any(), gomock.Any()).Return(pgconn.NewCommandTag("UPDATE 0"), nil)

		discount := 10.0
		err := repository.NewPromotionRepository(db).Update(ctx, id.String(), promotion.Patch{Discount: &discount})

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestPromotionRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name       string
		tag        string
		execErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", tag: "DELETE 1"},
		{name: "missing", tag: "DELETE 0", expectKind: infra.KindNotFound},
		{name: "failure", execErr: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			db := repositorymock.NewMockDBTX(ctrl)
			db.EXPECT().Exec(ctx, gomock.Any(), id).Return(pgconn.NewCommandTag(tc.tag), tc.execErr)

			err := repository.NewPromotionRepository(db).Delete(ctx, id.String())

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}
