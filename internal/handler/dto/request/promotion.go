package request

import (
	"storefront/internal/domain/promotion"
	"storefront/internal/pkg/patch"
)

type CreatePromotionRequest struct {
	Title                string            `json:"title" binding:"required"`
	Description          string            `json:"description"`
	Image                string            `json:"image"`
	Discount             float64           `json:"discount" binding:"min=0"`
	ApplicableCategories []string          `json:"applicableCategories"`
	ValidFrom            promotion.Instant `json:"validFrom" swaggertype:"string" example:"2025-07-01T00:00:00Z"`
	ValidUntil           promotion.Instant `json:"validUntil" swaggertype:"string" example:"2025-07-31T23:59:59Z"`
	IsActive             *bool             `json:"isActive"`
	PromoCode            *string           `json:"promoCode"`
}

// ToDomain defaults IsActive to true when omitted.
func (r *CreatePromotionRequest) ToDomain() (promotion.Draft, error) {
	return promotion.NewDraft(
		r.Title,
		r.Description,
		r.Image,
		r.Discount,
		r.ApplicableCategories,
		r.ValidFrom,
		r.ValidUntil,
		patch.Coalesce(r.IsActive, true),
		r.PromoCode,
	)
}

// UpdatePromotionRequest: omitted fields are left untouched and an empty
// promoCode clears the code.
type UpdatePromotionRequest struct {
	Title                *string            `json:"title"`
	Description          *string            `json:"description"`
	Image                *string            `json:"image"`
	Discount             *float64           `json:"discount" binding:"omitempty,min=0"`
	ApplicableCategories *[]string          `json:"applicableCategories"`
	ValidFrom            *promotion.Instant `json:"validFrom" swaggertype:"string"`
	ValidUntil           *promotion.Instant `json:"validUntil" swaggertype:"string"`
	IsActive             *bool              `json:"isActive"`
	PromoCode            *string            `json:"promoCode"`
}

func (r *UpdatePromotionRequest) ToDomain() promotion.Patch {
	return promotion.Patch{
		Title:                r.Title,
		Description:          r.Description,
		Image:                r.Image,
		Discount:             r.Discount,
		ApplicableCategories: r.ApplicableCategories,
		ValidFrom:            r.ValidFrom,
		ValidUntil:           r.ValidUntil,
		IsActive:             r.IsActive,
		PromoCode:            r.PromoCode,
	}
}

type TogglePromotionRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
