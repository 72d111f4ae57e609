//go:build unit || e2e

package builder

import (
	"storefront/internal/domain/cart"
	reqdto "storefront/internal/handler/dto/request"

	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID          string
	Name        string
	Description string
	Image       string
	Category    string
	Price       decimal.Decimal
	InStock     bool
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:          "1",
		Name:        "Whey protein",
		Description: "Vanilla, 1kg",
		Image:       "https://images.example.com/whey.jpg",
		Category:    "supplement",
		Price:       decimal.RequireFromString("24.99"),
		InStock:     true,
	}
}

func (b *ProductBuilder) WithID(id string) *ProductBuilder {
	b.ID = id
	return b
}

func (b *ProductBuilder) WithCategory(category string) *ProductBuilder {
	b.Category = category
	return b
}

func (b *ProductBuilder) WithPrice(price string) *ProductBuilder {
	b.Price = decimal.RequireFromString(price)
	return b
}

// Build methods
func (b *ProductBuilder) Build() cart.Product {
	return cart.Product{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Image:       b.Image,
		Category:    b.Category,
		Price:       b.Price,
		InStock:     b.InStock,
	}
}

func (b *ProductBuilder) BuildAddItemRequestDTO(quantity int) reqdto.AddCartItemRequest {
	return reqdto.AddCartItemRequest{
		ProductID:   b.ID,
		Name:        b.Name,
		Description: b.Description,
		Image:       b.Image,
		Category:    b.Category,
		Price:       b.Price,
		InStock:     b.InStock,
		Quantity:    &quantity,
	}
}
