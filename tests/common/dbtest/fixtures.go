//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/promotion"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertPromotion writes p directly, bypassing the repository.
func InsertPromotion(t *testing.T, db DBLike, p promotion.Promotion) string {
	t.Helper()

	categories := p.ApplicableCategories
	if categories == nil {
		categories = []string{}
	}
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := db.Exec(context.Background(), `
		INSERT INTO promotions (id, title, description, image, discount, applicable_categories,
		                        valid_from, valid_until, is_active, promo_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`,
		p.ID, p.Title, p.Description, p.Image, p.Discount, categories,
		p.ValidFrom.Ptr(), p.ValidUntil.Ptr(), p.IsActive, p.PromoCode, createdAt)
	require.NoError(t, err)

	return p.ID
}

func CountPromotions(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM promotions").Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB empties every table the service owns.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE promotions RESTART IDENTITY")
	return err
}
