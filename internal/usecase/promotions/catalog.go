package promotions

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"storefront/internal/domain/promotion"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type Service interface {
	GetActivePromotionsForCategory(category string, now time.Time) []promotion.Promotion
	CalculateDiscountedPrice(originalPrice decimal.Decimal, category string, now time.Time) promotion.Pricing
	LoadPromotions(ctx context.Context, force bool) error
	LoadActivePromotions(ctx context.Context, force bool) error
	EnsureLoaded(ctx context.Context) error
	GetPromotionByID(ctx context.Context, id string) (promotion.Promotion, error)
	AddPromotion(ctx context.Context, draft promotion.Draft) (string, error)
	UpdatePromotion(ctx context.Context, id string, p promotion.Patch) error
	DeletePromotion(ctx context.Context, id string) error
	TogglePromotion(ctx context.Context, id string, isActive bool) error
	Refresh(ctx context.Context) error
	Promotions() []promotion.Promotion
	ActivePromotions() []promotion.Promotion
	Status() Status
}

var _ Service = (*Catalog)(nil)

type Status struct {
	Loading   bool
	Loaded    bool
	LoadedAt  time.Time
	LastError string
	Count     int
	Active    int
}

// Catalog caches promotions pulled from the repository. A failed load keeps
// the previous cache; concurrent loads are not de-duplicated, last write wins.
type Catalog struct {
	repo     Repository
	notifier ChangeNotifier
	clock    clock.Clock
	logger   *slog.Logger

	mu        sync.RWMutex
	all       []promotion.Promotion
	active    []promotion.Promotion
	loading   int
	loaded    bool
	loadedAt  time.Time
	lastError string
}

func NewCatalog(repo Repository, notifier ChangeNotifier, clk clock.Clock, logger *slog.Logger) *Catalog {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &Catalog{
		repo:     repo,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

func (c *Catalog) GetActivePromotionsForCategory(category string, now time.Time) []promotion.Promotion {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cloneAll(promotion.Applicable(c.all, category, now))
}

func (c *Catalog) CalculateDiscountedPrice(originalPrice decimal.Decimal, category string, now time.Time) promotion.Pricing {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return promotion.CalculateDiscountedPrice(c.all, originalPrice, category, now)
}

// LoadPromotions is a no-op when the cache already holds promotions, unless forced.
func (c *Catalog) LoadPromotions(ctx context.Context, force bool) error {
	c.mu.Lock()
	if len(c.all) > 0 && !force {
		c.mu.Unlock()
		return nil
	}
	c.loading++
	c.mu.Unlock()

	rows, err := c.repo.GetAll(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading--
	if err != nil {
		c.lastError = err.Error()
		c.logger.Error("failed to load promotions", "error", err)
		return errs.Mark(errs.Wrap(err, "load promotions"), errs.ErrRepositoryFailure)
	}
	c.all = rows
	c.loaded = true
	c.loadedAt = c.clock.Now()
	c.lastError = ""
	return nil
}

func (c *Catalog) LoadActivePromotions(ctx context.Context, force bool) error {
	c.mu.Lock()
	if len(c.active) > 0 && !force {
		c.mu.Unlock()
		return nil
	}
	c.loading++
	c.mu.Unlock()

	rows, err := c.repo.GetActive(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading--
	if err != nil {
		c.lastError = err.Error()
		c.logger.Error("failed to load active promotions", "error", err)
		return errs.Mark(errs.Wrap(err, "load active promotions"), errs.ErrRepositoryFailure)
	}
	c.active = rows
	c.lastError = ""
	return nil
}

// EnsureLoaded fills an empty cache. A load failure is only reported when
// nothing was ever loaded; otherwise the last-known-good cache is served.
func (c *Catalog) EnsureLoaded(ctx context.Context) error {
	err := c.LoadPromotions(ctx, false)
	if err == nil {
		return nil
	}

	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if !loaded {
		return err
	}
	c.logger.Warn("serving cached promotions after load failure", "error", err)
	return nil
}

func (c *Catalog) GetPromotionByID(ctx context.Context, id string) (promotion.Promotion, error) {
	c.mu.RLock()
	if i := indexOf(c.all, id); i >= 0 {
		p := c.all[i].Clone()
		c.mu.RUnlock()
		return p, nil
	}
	c.mu.RUnlock()

	p, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return promotion.Promotion{}, classify(err, "get promotion")
	}
	if p == nil {
		return promotion.Promotion{}, errs.ErrPromotionNotFound
	}
	return *p, nil
}

// AddPromotion returns the new id even when the follow-up reload fails.
func (c *Catalog) AddPromotion(ctx context.Context, draft promotion.Draft) (string, error) {
	id, err := c.repo.Add(ctx, draft)
	if err != nil {
		return "", classify(err, "add promotion")
	}

	if err := c.LoadPromotions(ctx, true); err != nil {
		c.logger.Warn("reload after add failed", "promotionId", id, "error", err)
	}
	if err := c.LoadActivePromotions(ctx, true); err != nil {
		c.logger.Warn("active reload after add failed", "promotionId", id, "error", err)
	}

	c.notify(ctx, ChangeCreated, id)
	return id, nil
}

func (c *Catalog) UpdatePromotion(ctx context.Context, id string, p promotion.Patch) error {
	p = p.Normalized()
	if err := p.Validate(); err != nil {
		return err
	}
	if cached, ok := c.cached(id); ok {
		if err := p.ValidateAgainst(cached); err != nil {
			return err
		}
	}

	if err := c.repo.Update(ctx, id, p); err != nil {
		return classify(err, "update promotion")
	}

	now := c.clock.Now()
	c.mu.Lock()
	if i := indexOf(c.all, id); i >= 0 {
		c.all[i] = p.Apply(c.all[i])
		c.all[i].UpdatedAt = now
	}
	if i := indexOf(c.active, id); i >= 0 {
		c.active[i] = p.Apply(c.active[i])
		c.active[i].UpdatedAt = now
	}
	c.mu.Unlock()

	if p.TouchesAvailability() {
		if err := c.LoadActivePromotions(ctx, true); err != nil {
			c.logger.Warn("active reload after update failed", "promotionId", id, "error", err)
		}
	}

	c.notify(ctx, ChangeUpdated, id)
	return nil
}

func (c *Catalog) DeletePromotion(ctx context.Context, id string) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		return classify(err, "delete promotion")
	}

	c.mu.Lock()
	c.all = slices.DeleteFunc(c.all, func(p promotion.Promotion) bool { return p.ID == id })
	c.active = slices.DeleteFunc(c.active, func(p promotion.Promotion) bool { return p.ID == id })
	c.mu.Unlock()

	c.notify(ctx, ChangeDeleted, id)
	return nil
}

func (c *Catalog) TogglePromotion(ctx context.Context, id string, isActive bool) error {
	return c.UpdatePromotion(ctx, id, promotion.Patch{IsActive: &isActive})
}

// Refresh force-reloads both caches, typically after another instance changed them.
func (c *Catalog) Refresh(ctx context.Context) error {
	errAll := c.LoadPromotions(ctx, true)
	errActive := c.LoadActivePromotions(ctx, true)
	if errAll != nil {
		return errAll
	}
	return errActive
}

func (c *Catalog) Promotions() []promotion.Promotion {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAll(c.all)
}

func (c *Catalog) ActivePromotions() []promotion.Promotion {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAll(c.active)
}

func (c *Catalog) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Status{
		Loading:   c.loading > 0,
		Loaded:    c.loaded,
		LoadedAt:  c.loadedAt,
		LastError: c.lastError,
		Count:     len(c.all),
		Active:    len(c.active),
	}
}

func (c *Catalog) notify(ctx context.Context, kind ChangeKind, id string) {
	event := ChangeEvent{Kind: kind, PromotionID: id, OccurredAt: c.clock.Now()}
	if err := c.notifier.PromotionsChanged(ctx, event); err != nil {
		c.logger.Warn("failed to publish promotion change", "kind", kind, "promotionId", id, "error", err)
	}
}

func classify(err error, msg string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Wrap(err, msg), errs.ErrPromotionNotFound)
	}
	return errs.Mark(errs.Wrap(err, msg), errs.ErrRepositoryFailure)
}

func (c *Catalog) cached(id string) (promotion.Promotion, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := indexOf(c.all, id); i >= 0 {
		return c.all[i].Clone(), true
	}
	return promotion.Promotion{}, false
}

func indexOf(list []promotion.Promotion, id string) int {
	return slices.IndexFunc(list, func(p promotion.Promotion) bool { return p.ID == id })
}

func cloneAll(list []promotion.Promotion) []promotion.Promotion {
	out := make([]promotion.Promotion, len(list))
	for i, p := range list {
		out[i] = p.Clone()
	}
	return out
}
