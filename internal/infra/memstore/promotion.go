package memstore

import (
	"context"
	"slices"
	"sync"

	"storefront/internal/domain/promotion"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"

	"github.com/google/uuid"
)

// PromotionStore keeps promotions in insertion order. It backs local runs and tests.
type PromotionStore struct {
	clock clock.Clock

	mu   sync.RWMutex
	rows []promotion.Promotion
}

func NewPromotionStore(clk clock.Clock, seed ...promotion.Promotion) *PromotionStore {
	s := &PromotionStore{clock: clk}
	for _, p := range seed {
		s.rows = append(s.rows, p.Clone())
	}
	return s
}

func (s *PromotionStore) GetAll(_ context.Context) ([]promotion.Promotion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]promotion.Promotion, 0, len(s.rows))
	for _, p := range s.rows {
		out = append(out, p.Clone())
	}
	return out, nil
}

// GetActive returns the promotions flagged active; the validity window is left to the catalog.
func (s *PromotionStore) GetActive(_ context.Context) ([]promotion.Promotion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]promotion.Promotion, 0, len(s.rows))
	for _, p := range s.rows {
		if p.IsActive {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

func (s *PromotionStore) GetByID(_ context.Context, id string) (*promotion.Promotion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	p := s.rows[i].Clone()
	return &p, nil
}

func (s *PromotionStore) Add(_ context.Context, draft promotion.Draft) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.rows = append(s.rows, draft.ToPromotion(id, s.clock.Now()))
	return id, nil
}

func (s *PromotionStore) Update(_ context.Context, id string, p promotion.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	updated := p.Apply(s.rows[i])
	updated.UpdatedAt = s.clock.Now()
	s.rows[i] = updated
	return nil
}

func (s *PromotionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	s.rows = slices.Delete(s.rows, i, i+1)
	return nil
}

func (s *PromotionStore) indexOf(id string) int {
	return slices.IndexFunc(s.rows, func(p promotion.Promotion) bool { return p.ID == id })
}
