package request

import (
	"storefront/internal/domain/cart"

	"github.com/shopspring/decimal"
)

// AddCartItemRequest carries the product snapshot the storefront displayed.
type AddCartItemRequest struct {
	ProductID   string          `json:"productId" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"24.99"`
	InStock     bool            `json:"inStock"`
	Quantity    *int            `json:"quantity" example:"1"`
}

// QuantityOrDefault adds a single unit when quantity is omitted.
func (r *AddCartItemRequest) QuantityOrDefault() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

func (r *AddCartItemRequest) ToDomain() (cart.Product, error) {
	return cart.NewProduct(r.ProductID, r.Name, r.Description, r.Image, r.Category, r.Price, r.InStock)
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
