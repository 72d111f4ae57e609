package cart

import (
	"storefront/internal/domain/promotion"
	"storefront/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

type LineItem struct {
	Product
	Quantity         int
	OriginalPrice    *decimal.Decimal
	AppliedPromotion *promotion.Promotion
}

// Savings is (OriginalPrice - Price) * Quantity, or zero without a recorded discount.
func (li LineItem) Savings() decimal.Decimal {
	if li.OriginalPrice == nil || !li.OriginalPrice.GreaterThan(li.Price) {
		return decimal.Zero
	}
	return li.OriginalPrice.Sub(li.Price).Mul(decimal.NewFromInt(int64(li.Quantity)))
}

func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

func (li LineItem) clone() LineItem {
	li.OriginalPrice = patch.Clone(li.OriginalPrice)
	if li.AppliedPromotion != nil {
		p := li.AppliedPromotion.Clone()
		li.AppliedPromotion = &p
	}
	return li
}

type addOptions struct {
	listPrice *decimal.Decimal
	promotion *promotion.Promotion
}

type AddOption func(*addOptions)

// WithPromotion marks the incoming price as the result of promo applied to listPrice.
func WithPromotion(listPrice decimal.Decimal, promo *promotion.Promotion) AddOption {
	return func(o *addOptions) {
		o.listPrice = &listPrice
		if promo != nil {
			p := promo.Clone()
			o.promotion = &p
		}
	}
}

// Cart keeps at most one line per product id, in insertion order.
type Cart struct {
	items []*LineItem
}

func New() *Cart {
	return &Cart{}
}

// Add accumulates quantity on an existing line, saturating at MaxQuantity.
// The stored price only moves down: a cheaper incoming price records the
// previous one as OriginalPrice.
func (c *Cart) Add(product Product, quantity int, opts ...AddOption) {
	if quantity <= 0 {
		return
	}

	var o addOptions
	for _, opt := range opts {
		opt(&o)
	}

	if item := c.find(product.ID); item != nil {
		item.Quantity = addQuantity(item.Quantity, quantity)
		if product.Price.LessThan(item.Price) {
			old := item.Price
			item.OriginalPrice = &old
			item.Price = product.Price
			item.AppliedPromotion = o.promotion
		}
		return
	}

	original := product.Price
	if o.listPrice != nil {
		original = *o.listPrice
	}
	c.items = append(c.items, &LineItem{
		Product:          product,
		Quantity:         min(quantity, MaxQuantity),
		OriginalPrice:    &original,
		AppliedPromotion: o.promotion,
	})
}

func (c *Cart) Remove(productID string) {
	for i, item := range c.items {
		if item.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity, capped at MaxQuantity; zero or less removes the line.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	if item := c.find(productID); item != nil {
		item.Quantity = min(quantity, MaxQuantity)
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns copies of the lines; mutating them does not affect the cart.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item.clone())
	}
	return out
}

func (c *Cart) Item(productID string) (LineItem, bool) {
	item := c.find(productID)
	if item == nil {
		return LineItem{}, false
	}
	return item.clone(), true
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (c *Cart) TotalSavings() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Savings())
	}
	return total
}

func addQuantity(current, extra int) int {
	if extra >= MaxQuantity-current {
		return MaxQuantity
	}
	return current + extra
}

func (c *Cart) find(productID string) *LineItem {
	for _, item := range c.items {
		if item.ID == productID {
			return item
		}
	}
	return nil
}
