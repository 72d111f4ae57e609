package repository

import (
	"context"
	"strconv"
	"strings"

	"storefront/internal/domain/promotion"
	"storefront/internal/infra"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const promotionColumns = `id, title, description, image, discount, applicable_categories,
	valid_from, valid_until, is_active, promo_code, created_at, updated_at`

type PromotionRepository struct {
	db DBTX
}

func NewPromotionRepository(db DBTX) *PromotionRepository {
	return &PromotionRepository{db: db}
}

func (r *PromotionRepository) GetAll(ctx context.Context) ([]promotion.Promotion, error) {
	rows, err := r.db.Query(ctx, `SELECT `+promotionColumns+` FROM promotions ORDER BY seq`)
	if err != nil {
		return nil, wrapPgErr("failed to list promotions", err)
	}
	return collectPromotions(rows)
}

func (r *PromotionRepository) GetActive(ctx context.Context) ([]promotion.Promotion, error) {
	rows, err := r.db.Query(ctx, `SELECT `+promotionColumns+` FROM promotions WHERE is_active ORDER BY seq`)
	if err != nil {
		return nil, wrapPgErr("failed to list active promotions", err)
	}
	return collectPromotions(rows)
}

func (r *PromotionRepository) GetByID(ctx context.Context, id string) (*promotion.Promotion, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
	}

	row := r.db.QueryRow(ctx, `SELECT `+promotionColumns+` FROM promotions WHERE id = $1`, uid)
	p, err := scanPromotion(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, wrapPgErr("failed to get promotion", err)
	}
	return &p, nil
}

func (r *PromotionRepository) Add(ctx context.Context, draft promotion.Draft) (string, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO promotions (id, title, description, image, discount, applicable_categories,
			valid_from, valid_until, is_active, promo_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		uuid.New(),
		draft.Title,
		draft.Description,
		draft.Image,
		draft.Discount,
		categoriesParam(draft.ApplicableCategories),
		pgconv.TimePtrToPgtype(draft.ValidFrom.Ptr()),
		pgconv.TimePtrToPgtype(draft.ValidUntil.Ptr()),
		draft.IsActive,
		pgconv.StringPtrToPgtype(draft.PromoCode),
	).Scan(&id)
	if err != nil {
		return "", wrapPgErr("failed to create promotion", err)
	}
	return id.String(), nil
}

func (r *PromotionRepository) Update(ctx context.Context, id string, p promotion.Patch) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
	}

	set, args := patchAssignments(p)
	args = append(args, uid)
	query := `UPDATE promotions SET ` + strings.Join(set, ", ") + ` WHERE id = $` + strconv.Itoa(len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return wrapPgErr("failed to update promotion", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PromotionRepository) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, uid)
	if err != nil {
		return wrapPgErr("failed to delete promotion", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return nil
}

// patchAssignments always bumps updated_at so an empty patch is still a valid statement.
func patchAssignments(p promotion.Patch) ([]string, []any) {
	var (
		set  []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, column+" = $"+strconv.Itoa(len(args)))
	}

	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.Image != nil {
		add("image", *p.Image)
	}
	if p.Discount != nil {
		add("discount", *p.Discount)
	}
	if p.ApplicableCategories != nil {
		add("applicable_categories", categoriesParam(*p.ApplicableCategories))
	}
	if p.ValidFrom != nil {
		add("valid_from", pgconv.TimePtrToPgtype(p.ValidFrom.Ptr()))
	}
	if p.ValidUntil != nil {
		add("valid_until", pgconv.TimePtrToPgtype(p.ValidUntil.Ptr()))
	}
	if p.IsActive != nil {
		add("is_active", *p.IsActive)
	}
	if p.PromoCode != nil {
		code := p.PromoCode
		if *code == "" {
			code = nil
		}
		add("promo_code", pgconv.StringPtrToPgtype(code))
	}
	set = append(set, "updated_at = NOW()")
	return set, args
}

func categoriesParam(categories []string) []string {
	if categories == nil {
		return []string{}
	}
	return categories
}

func collectPromotions(rows pgx.Rows) ([]promotion.Promotion, error) {
	defer rows.Close()

	var out []promotion.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, wrapPgErr("failed to scan promotion", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to iterate promotions", err)
	}
	return out, nil
}

func scanPromotion(row pgx.Row) (promotion.Promotion, error) {
	var (
		id         uuid.UUID
		p          promotion.Promotion
		categories []string
		validFrom  pgtype.Timestamptz
		validUntil pgtype.Timestamptz
		promoCode  pgtype.Text
	)
	err := row.Scan(
		&id,
		&p.Title,
		&p.Description,
		&p.Image,
		&p.Discount,
		&categories,
		&validFrom,
		&validUntil,
		&p.IsActive,
		&promoCode,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return promotion.Promotion{}, err
	}

	p.ID = id.String()
	if len(categories) > 0 {
		p.ApplicableCategories = categories
	}
	p.ValidFrom = promotion.InstantFromPtr(pgconv.TimePtrFromPgtype(validFrom))
	p.ValidUntil = promotion.InstantFromPtr(pgconv.TimePtrFromPgtype(validUntil))
	p.PromoCode = pgconv.StringPtrFromPgtype(promoCode)
	return p, nil
}

func wrapPgErr(msg string, err error) error {
	if pgconv.IsConnectionError(err) {
		return infra.WrapRepoErr(msg, err, infra.KindUnavailable)
	}

	switch pgconv.SQLState(err) {
	case pgconv.CodeUniqueViolation:
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	case pgconv.CodeInsufficientPrivilege:
		return infra.WrapRepoErr(msg, err, infra.KindPermissionDenied)
	default:
		return infra.WrapRepoErr(msg, err)
	}
}
