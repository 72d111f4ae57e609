package promotion

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Pricing is the outcome of pricing one product. Promotion is nil when no
// promotion applied; it is a display reference only.
type Pricing struct {
	OriginalPrice   decimal.Decimal
	DiscountedPrice decimal.Decimal
	Discount        float64
	Promotion       *Promotion
}

func (p Pricing) IsDiscounted() bool {
	return p.Promotion != nil
}

// ValidAt uses an inclusive window: validFrom <= now <= validUntil.
func (p Promotion) ValidAt(now time.Time) bool {
	from, okFrom := p.ValidFrom.Time()
	until, okUntil := p.ValidUntil.Time()
	if !okFrom || !okUntil {
		return false
	}
	return !now.Before(from) && !now.After(until)
}

// AppliesToCategory is true for every category when no category is listed.
func (p Promotion) AppliesToCategory(category string) bool {
	if len(p.ApplicableCategories) == 0 {
		return true
	}
	return slices.Contains(p.ApplicableCategories, category)
}

func (p Promotion) AppliesAt(category string, now time.Time) bool {
	return p.IsActive && p.ValidAt(now) && p.AppliesToCategory(category)
}

// Applicable keeps the input order.
func Applicable(promotions []Promotion, category string, now time.Time) []Promotion {
	out := make([]Promotion, 0, len(promotions))
	for _, p := range promotions {
		if p.AppliesAt(category, now) {
			out = append(out, p)
		}
	}
	return out
}

// Best picks the largest discount; the first one encountered wins ties.
func Best(candidates []Promotion) (Promotion, bool) {
	if len(candidates) == 0 {
		return Promotion{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Discount > best.Discount {
			best = c
		}
	}
	return best, true
}

// ApplyDiscount clamps at zero so discounts above 100 never go negative.
func ApplyDiscount(price decimal.Decimal, discount float64) decimal.Decimal {
	amount := price.Mul(decimal.NewFromFloat(discount)).Div(hundred)
	result := price.Sub(amount)
	if result.IsNegative() {
		return decimal.Zero
	}
	return result
}

func CalculateDiscountedPrice(promotions []Promotion, originalPrice decimal.Decimal, category string, now time.Time) Pricing {
	best, ok := Best(Applicable(promotions, category, now))
	if !ok {
		return Pricing{
			OriginalPrice:   originalPrice,
			DiscountedPrice: originalPrice,
		}
	}

	winner := best.Clone()
	return Pricing{
		OriginalPrice:   originalPrice,
		DiscountedPrice: ApplyDiscount(originalPrice, best.Discount),
		Discount:        best.Discount,
		Promotion:       &winner,
	}
}
