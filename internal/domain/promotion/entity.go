package promotion

import (
	"slices"
	"strings"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/patch"
)

var (
	ErrEmptyTitle       = errs.New("promotion title must not be empty")
	ErrNegativeDiscount = errs.New("discount cannot be negative")
	ErrInvalidValidity  = errs.New("validity dates are missing or unparsable")
	ErrInvertedValidity = errs.New("validFrom must not be after validUntil")
)

type Promotion struct {
	ID                   string
	Title                string
	Description          string
	Image                string
	Discount             float64
	ApplicableCategories []string
	ValidFrom            Instant
	ValidUntil           Instant
	IsActive             bool
	PromoCode            *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Clone returns a deep copy so cached records are never shared with callers.
func (p Promotion) Clone() Promotion {
	p.ApplicableCategories = patch.CloneSlice(p.ApplicableCategories)
	p.PromoCode = patch.Clone(p.PromoCode)
	return p
}

// Draft is a promotion that the repository has not assigned an id to yet.
type Draft struct {
	Title                string
	Description          string
	Image                string
	Discount             float64
	ApplicableCategories []string
	ValidFrom            Instant
	ValidUntil           Instant
	IsActive             bool
	PromoCode            *string
}

func NewDraft(
	title, description, image string,
	discount float64,
	categories []string,
	validFrom, validUntil Instant,
	isActive bool,
	promoCode *string,
) (Draft, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Draft{}, ErrEmptyTitle
	}
	if discount < 0 {
		return Draft{}, ErrNegativeDiscount
	}
	if err := validateWindow(validFrom, validUntil); err != nil {
		return Draft{}, err
	}

	return Draft{
		Title:                title,
		Description:          strings.TrimSpace(description),
		Image:                strings.TrimSpace(image),
		Discount:             discount,
		ApplicableCategories: normalizeCategories(categories),
		ValidFrom:            validFrom,
		ValidUntil:           validUntil,
		IsActive:             isActive,
		PromoCode:            normalizePromoCode(promoCode),
	}, nil
}

// ToPromotion is used by stores to materialise a freshly inserted record.
func (d Draft) ToPromotion(id string, now time.Time) Promotion {
	return Promotion{
		ID:                   id,
		Title:                d.Title,
		Description:          d.Description,
		Image:                d.Image,
		Discount:             d.Discount,
		ApplicableCategories: patch.CloneSlice(d.ApplicableCategories),
		ValidFrom:            d.ValidFrom,
		ValidUntil:           d.ValidUntil,
		IsActive:             d.IsActive,
		PromoCode:            patch.Clone(d.PromoCode),
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// Patch is a partial update; nil fields are left untouched.
type Patch struct {
	Title                *string
	Description          *string
	Image                *string
	Discount             *float64
	ApplicableCategories *[]string
	ValidFrom            *Instant
	ValidUntil           *Instant
	IsActive             *bool
	PromoCode            *string
}

func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// TouchesAvailability reports whether the active subset may have changed.
func (p Patch) TouchesAvailability() bool {
	return p.IsActive != nil || p.ValidFrom != nil || p.ValidUntil != nil
}

func (p Patch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrEmptyTitle
	}
	if p.Discount != nil && *p.Discount < 0 {
		return ErrNegativeDiscount
	}
	if p.ValidFrom != nil && !p.ValidFrom.IsValid() {
		return ErrInvalidValidity
	}
	if p.ValidUntil != nil && !p.ValidUntil.IsValid() {
		return ErrInvalidValidity
	}
	if p.ValidFrom != nil && p.ValidUntil != nil {
		return validateWindow(*p.ValidFrom, *p.ValidUntil)
	}
	return nil
}

// ValidateAgainst also rejects a window that only becomes inverted once the
// patch is merged into base. Stored bounds that do not parse are left alone.
func (p Patch) ValidateAgainst(base Promotion) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ValidFrom == nil && p.ValidUntil == nil {
		return nil
	}
	merged := p.Apply(base)
	f, okFrom := merged.ValidFrom.Time()
	u, okUntil := merged.ValidUntil.Time()
	if okFrom && okUntil && f.After(u) {
		return ErrInvertedValidity
	}
	return nil
}

// Normalized trims and de-duplicates the same way NewDraft does.
func (p Patch) Normalized() Patch {
	if p.Title != nil {
		p.Title = patch.Clone(p.Title)
		*p.Title = strings.TrimSpace(*p.Title)
	}
	if p.ApplicableCategories != nil {
		cats := normalizeCategories(*p.ApplicableCategories)
		p.ApplicableCategories = &cats
	}
	if p.PromoCode != nil {
		p.PromoCode = normalizePromoCode(p.PromoCode)
		if p.PromoCode == nil {
			empty := ""
			p.PromoCode = &empty
		}
	}
	return p
}

// Apply merges the patch into a copy of p. An empty PromoCode clears it.
func (p Patch) Apply(base Promotion) Promotion {
	out := base.Clone()
	out.Title = patch.Coalesce(p.Title, out.Title)
	out.Description = patch.Coalesce(p.Description, out.Description)
	out.Image = patch.Coalesce(p.Image, out.Image)
	out.Discount = patch.Coalesce(p.Discount, out.Discount)
	out.ValidFrom = patch.Coalesce(p.ValidFrom, out.ValidFrom)
	out.ValidUntil = patch.Coalesce(p.ValidUntil, out.ValidUntil)
	out.IsActive = patch.Coalesce(p.IsActive, out.IsActive)
	if p.ApplicableCategories != nil {
		out.ApplicableCategories = patch.CloneSlice(*p.ApplicableCategories)
	}
	if p.PromoCode != nil {
		if *p.PromoCode == "" {
			out.PromoCode = nil
		} else {
			out.PromoCode = patch.Clone(p.PromoCode)
		}
	}
	return out
}

func validateWindow(from, until Instant) error {
	f, okFrom := from.Time()
	u, okUntil := until.Time()
	if !okFrom || !okUntil {
		return ErrInvalidValidity
	}
	if f.After(u) {
		return ErrInvertedValidity
	}
	return nil
}

func normalizeCategories(categories []string) []string {
	if len(categories) == 0 {
		return nil
	}
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" || slices.Contains(out, c) {
			continue
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func normalizePromoCode(code *string) *string {
	if code == nil {
		return nil
	}
	c := strings.ToUpper(strings.TrimSpace(*code))
	if c == "" {
		return nil
	}
	return &c
}
