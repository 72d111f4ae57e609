package cart

import (
	"strings"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProductID  = errs.New("product id cannot be empty")
	ErrNegativePrice   = errs.New("product price cannot be negative")
	ErrInvalidQuantity = errs.New("quantity must be between 1 and 999")
)

// MaxQuantity bounds a single line; adds beyond it saturate.
const MaxQuantity = 999

// ValidateQuantity rejects quantities a caller may not request for one line.
func ValidateQuantity(quantity int) error {
	if quantity <= 0 || quantity > MaxQuantity {
		return ErrInvalidQuantity
	}
	return nil
}

// Product is the snapshot of a catalog product taken when it enters a cart.
type Product struct {
	ID          string
	Name        string
	Description string
	Image       string
	Category    string
	Price       decimal.Decimal
	InStock     bool
}

func NewProduct(id, name, description, image, category string, price decimal.Decimal, inStock bool) (Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Product{}, ErrEmptyProductID
	}
	if price.IsNegative() {
		return Product{}, ErrNegativePrice
	}

	return Product{
		ID:          id,
		Name:        strings.TrimSpace(name),
		Description: description,
		Image:       image,
		Category:    strings.TrimSpace(category),
		Price:       price,
		InStock:     inStock,
	}, nil
}

// WithPrice returns a copy priced at p.
func (p Product) WithPrice(price decimal.Decimal) Product {
	p.Price = price
	return p
}
