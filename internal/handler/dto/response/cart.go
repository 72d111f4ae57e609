package response

import (
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/usecase/carts"
)

type LineItemResponse struct {
	ProductID        string             `json:"productId"`
	Name             string             `json:"name"`
	Description      string             `json:"description"`
	Image            string             `json:"image"`
	Category         string             `json:"category"`
	Price            string             `json:"price"`
	InStock          bool               `json:"inStock"`
	Quantity         int                `json:"quantity"`
	OriginalPrice    *string            `json:"originalPrice,omitempty"`
	AppliedPromotion *PromotionResponse `json:"appliedPromotion,omitempty"`
	Subtotal         string             `json:"subtotal"`
	Savings          string             `json:"savings"`
}

type CartResponse struct {
	ID           string             `json:"id"`
	Items        []LineItemResponse `json:"items"`
	TotalItems   int                `json:"totalItems"`
	TotalPrice   string             `json:"totalPrice"`
	TotalSavings string             `json:"totalSavings"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

func FromCartView(v carts.CartView) CartResponse {
	items := make([]LineItemResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = fromLineItem(it)
	}
	return CartResponse{
		ID:           v.ID,
		Items:        items,
		TotalItems:   v.TotalItems,
		TotalPrice:   v.TotalPrice.StringFixed(2),
		TotalSavings: v.TotalSavings.StringFixed(2),
		UpdatedAt:    v.UpdatedAt,
	}
}

func fromLineItem(it cart.LineItem) LineItemResponse {
	res := LineItemResponse{
		ProductID:   it.ID,
		Name:        it.Name,
		Description: it.Description,
		Image:       it.Image,
		Category:    it.Category,
		Price:       it.Price.StringFixed(2),
		InStock:     it.InStock,
		Quantity:    it.Quantity,
		Subtotal:    it.Subtotal().StringFixed(2),
		Savings:     it.Savings().StringFixed(2),
	}
	if it.OriginalPrice != nil {
		original := it.OriginalPrice.StringFixed(2)
		res.OriginalPrice = &original
	}
	if it.AppliedPromotion != nil {
		promo := FromPromotion(*it.AppliedPromotion)
		res.AppliedPromotion = &promo
	}
	return res
}
