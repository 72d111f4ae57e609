package response

import (
	"time"

	"storefront/internal/domain/promotion"
	"storefront/internal/pkg/patch"
	"storefront/internal/usecase/promotions"

	"github.com/jinzhu/copier"
)

type PromotionResponse struct {
	ID                   string            `json:"id"`
	Title                string            `json:"title"`
	Description          string            `json:"description"`
	Image                string            `json:"image"`
	Discount             float64           `json:"discount"`
	ApplicableCategories []string          `json:"applicableCategories"`
	ValidFrom            promotion.Instant `json:"validFrom" swaggertype:"string"`
	ValidUntil           promotion.Instant `json:"validUntil" swaggertype:"string"`
	IsActive             bool              `json:"isActive"`
	PromoCode            *string           `json:"promoCode,omitempty"`
	CreatedAt            time.Time         `json:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
}

func FromPromotion(p promotion.Promotion) PromotionResponse {
	var res PromotionResponse
	// Instant has no exported fields, so the copy stays shallow.
	_ = copier.Copy(&res, &p)
	res.ApplicableCategories = patch.CloneSlice(p.ApplicableCategories)
	if res.ApplicableCategories == nil {
		res.ApplicableCategories = []string{}
	}
	return res
}

func FromPromotions(ps []promotion.Promotion) []PromotionResponse {
	res := make([]PromotionResponse, len(ps))
	for i, p := range ps {
		res[i] = FromPromotion(p)
	}
	return res
}

type CatalogStatusResponse struct {
	Loading   bool       `json:"loading"`
	Loaded    bool       `json:"loaded"`
	LoadedAt  *time.Time `json:"loadedAt,omitempty"`
	LastError string     `json:"lastError,omitempty"`
	Count     int        `json:"count"`
	Active    int        `json:"active"`
}

func FromStatus(s promotions.Status) CatalogStatusResponse {
	res := CatalogStatusResponse{
		Loading:   s.Loading,
		Loaded:    s.Loaded,
		LastError: s.LastError,
		Count:     s.Count,
		Active:    s.Active,
	}
	if !s.LoadedAt.IsZero() {
		loadedAt := s.LoadedAt
		res.LoadedAt = &loadedAt
	}
	return res
}

type PromotionListResponse struct {
	Promotions []PromotionResponse    `json:"promotions"`
	Status     CatalogStatusResponse `json:"status"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type PriceQuoteResponse struct {
	Category        string             `json:"category"`
	OriginalPrice   string             `json:"originalPrice"`
	DiscountedPrice string             `json:"discountedPrice"`
	Discount        float64            `json:"discount"`
	Promotion       *PromotionResponse `json:"promotion,omitempty"`
}

func FromPricing(category string, p promotion.Pricing) PriceQuoteResponse {
	res := PriceQuoteResponse{
		Category:        category,
		OriginalPrice:   p.OriginalPrice.StringFixed(2),
		DiscountedPrice: p.DiscountedPrice.StringFixed(2),
		Discount:        p.Discount,
	}
	if p.Promotion != nil {
		promo := FromPromotion(*p.Promotion)
		res.Promotion = &promo
	}
	return res
}
