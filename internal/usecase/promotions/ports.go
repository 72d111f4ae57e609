package promotions

import (
	"context"
	"time"

	"storefront/internal/domain/promotion"
)

// Repository errors are infra.RepositoryError values; a missing promotion is KindNotFound.
type Repository interface {
	GetAll(ctx context.Context) ([]promotion.Promotion, error)
	GetActive(ctx context.Context) ([]promotion.Promotion, error)
	GetByID(ctx context.Context, id string) (*promotion.Promotion, error)
	Add(ctx context.Context, draft promotion.Draft) (string, error)
	Update(ctx context.Context, id string, p promotion.Patch) error
	Delete(ctx context.Context, id string) error
}

type ChangeKind string

const (
	ChangeCreated ChangeKind = "created"
	ChangeUpdated ChangeKind = "updated"
	ChangeDeleted ChangeKind = "deleted"
)

type ChangeEvent struct {
	Kind        ChangeKind `json:"kind"`
	PromotionID string     `json:"promotionId"`
	OccurredAt  time.Time  `json:"occurredAt"`
}

// ChangeNotifier tells other instances that their cached promotions are stale.
type ChangeNotifier interface {
	PromotionsChanged(ctx context.Context, event ChangeEvent) error
}

type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

func (NoopNotifier) PromotionsChanged(context.Context, ChangeEvent) error {
	return nil
}
