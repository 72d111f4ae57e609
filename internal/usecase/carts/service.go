package carts

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/promotion"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultIdleTTL = 2 * time.Hour

type Service interface {
	Create(ctx context.Context) (CartView, error)
	Get(ctx context.Context, cartID string) (CartView, error)
	AddItem(ctx context.Context, cartID string, product cart.Product, quantity int) (CartView, error)
	RemoveItem(ctx context.Context, cartID, productID string) (CartView, error)
	UpdateQuantity(ctx context.Context, cartID, productID string, quantity int) (CartView, error)
	Clear(ctx context.Context, cartID string) (CartView, error)
	Discard(ctx context.Context, cartID string) error
}

// PriceQuoter is the part of the promotion catalog a cart needs at add time.
type PriceQuoter interface {
	EnsureLoaded(ctx context.Context) error
	CalculateDiscountedPrice(originalPrice decimal.Decimal, category string, now time.Time) promotion.Pricing
}

type CartView struct {
	ID           string
	Items        []cart.LineItem
	TotalItems   int
	TotalPrice   decimal.Decimal
	TotalSavings decimal.Decimal
	UpdatedAt    time.Time
}

type session struct {
	cart     *cart.Cart
	lastSeen time.Time
}

type sessionService struct {
	quoter  PriceQuoter
	clock   clock.Clock
	logger  *slog.Logger
	idleTTL time.Duration

	mu       sync.Mutex
	sessions map[string]*session
}

func NewService(quoter PriceQuoter, clk clock.Clock, logger *slog.Logger, idleTTL time.Duration) Service {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	return &sessionService{
		quoter:   quoter,
		clock:    clk,
		logger:   logger,
		idleTTL:  idleTTL,
		sessions: make(map[string]*session),
	}
}

func (s *sessionService) Create(_ context.Context) (CartView, error) {
	now := s.clock.Now()
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpired(now)

	sess := &session{cart: cart.New(), lastSeen: now}
	s.sessions[id] = sess
	return view(id, sess), nil
}

func (s *sessionService) Get(_ context.Context, cartID string) (CartView, error) {
	return s.with(cartID, func(*cart.Cart) {})
}

// AddItem prices the product through the promotion catalog at the current
// instant. If promotions cannot be loaded the cached set is used.
func (s *sessionService) AddItem(ctx context.Context, cartID string, product cart.Product, quantity int) (CartView, error) {
	if err := cart.ValidateQuantity(quantity); err != nil {
		return CartView{}, err
	}
	if err := s.quoter.EnsureLoaded(ctx); err != nil {
		s.logger.Warn("pricing without fresh promotions", "cartId", cartID, "error", err)
	}

	return s.with(cartID, func(c *cart.Cart) {
		pricing := s.quoter.CalculateDiscountedPrice(product.Price, product.Category, s.clock.Now())
		if !pricing.IsDiscounted() {
			c.Add(product, quantity)
			return
		}
		c.Add(product.WithPrice(pricing.DiscountedPrice), quantity, cart.WithPromotion(product.Price, pricing.Promotion))
	})
}

func (s *sessionService) RemoveItem(_ context.Context, cartID, productID string) (CartView, error) {
	return s.with(cartID, func(c *cart.Cart) { c.Remove(productID) })
}

// UpdateQuantity removes the line for quantities of zero or less.
func (s *sessionService) UpdateQuantity(_ context.Context, cartID, productID string, quantity int) (CartView, error) {
	if quantity > cart.MaxQuantity {
		return CartView{}, cart.ErrInvalidQuantity
	}
	return s.with(cartID, func(c *cart.Cart) { c.UpdateQuantity(productID, quantity) })
}

func (s *sessionService) Clear(_ context.Context, cartID string) (CartView, error) {
	return s.with(cartID, func(c *cart.Cart) { c.Clear() })
}

func (s *sessionService) Discard(_ context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpired(s.clock.Now())

	if _, ok := s.sessions[cartID]; !ok {
		return errs.ErrCartNotFound
	}
	delete(s.sessions, cartID)
	return nil
}

func (s *sessionService) with(cartID string, fn func(*cart.Cart)) (CartView, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpired(now)

	sess, ok := s.sessions[cartID]
	if !ok {
		return CartView{}, errs.ErrCartNotFound
	}
	fn(sess.cart)
	sess.lastSeen = now
	return view(cartID, sess), nil
}

// evictExpired must be called with mu held.
func (s *sessionService) evictExpired(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.idleTTL {
			delete(s.sessions, id)
			s.logger.Debug("cart session expired", "cartId", id)
		}
	}
}

func view(id string, sess *session) CartView {
	return CartView{
		ID:           id,
		Items:        sess.cart.Items(),
		TotalItems:   sess.cart.TotalItems(),
		TotalPrice:   sess.cart.TotalPrice(),
		TotalSavings: sess.cart.TotalSavings(),
		UpdatedAt:    sess.lastSeen,
	}
}
