//go:build unit || e2e

package builder

import (
	"time"

	"storefront/internal/domain/promotion"
	reqdto "storefront/internal/handler/dto/request"

	"github.com/google/uuid"
)

type PromotionBuilder struct {
	ID          string
	Title       string
	Description string
	Image       string
	Discount    float64
	Categories  []string
	ValidFrom   promotion.Instant
	ValidUntil  promotion.Instant
	IsActive    bool
	PromoCode   *string
	CreatedAt   time.Time
}

// NewPromotionBuilder defaults to a 20% supplement promotion valid from
// yesterday until tomorrow relative to now.
func NewPromotionBuilder(now time.Time) *PromotionBuilder {
	return &PromotionBuilder{
		ID:          uuid.NewString(),
		Title:       "Summer sale",
		Description: "20% off supplements",
		Image:       "https://images.example.com/summer.jpg",
		Discount:    20,
		Categories:  []string{"supplement"},
		ValidFrom:   promotion.InstantOf(now.Add(-24 * time.Hour)),
		ValidUntil:  promotion.InstantOf(now.Add(24 * time.Hour)),
		IsActive:    true,
		CreatedAt:   now.Add(-48 * time.Hour),
	}
}

func (b *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(b)
	return b
}

func (b *PromotionBuilder) WithID(id string) *PromotionBuilder {
	b.ID = id
	return b
}

func (b *PromotionBuilder) WithDiscount(d float64) *PromotionBuilder {
	b.Discount = d
	return b
}

func (b *PromotionBuilder) WithCategories(categories ...string) *PromotionBuilder {
	b.Categories = categories
	return b
}

func (b *PromotionBuilder) WithWindow(from, until promotion.Instant) *PromotionBuilder {
	b.ValidFrom = from
	b.ValidUntil = until
	return b
}

func (b *PromotionBuilder) Inactive() *PromotionBuilder {
	b.IsActive = false
	return b
}

// Build methods
func (b *PromotionBuilder) Build() promotion.Promotion {
	return promotion.Promotion{
		ID:                   b.ID,
		Title:                b.Title,
		Description:          b.Description,
		Image:                b.Image,
		Discount:             b.Discount,
		ApplicableCategories: b.Categories,
		ValidFrom:            b.ValidFrom,
		ValidUntil:           b.ValidUntil,
		IsActive:             b.IsActive,
		PromoCode:            b.PromoCode,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.CreatedAt,
	}
}

func (b *PromotionBuilder) BuildDraft() (promotion.Draft, error) {
	return promotion.NewDraft(
		b.Title,
		b.Description,
		b.Image,
		b.Discount,
		b.Categories,
		b.ValidFrom,
		b.ValidUntil,
		b.IsActive,
		b.PromoCode,
	)
}

func (b *PromotionBuilder) BuildCreateRequestDTO() reqdto.CreatePromotionRequest {
	isActive := b.IsActive
	return reqdto.CreatePromotionRequest{
		Title:                b.Title,
		Description:          b.Description,
		Image:                b.Image,
		Discount:             b.Discount,
		ApplicableCategories: b.Categories,
		ValidFrom:            b.ValidFrom,
		ValidUntil:           b.ValidUntil,
		IsActive:             &isActive,
		PromoCode:            b.PromoCode,
	}
}
