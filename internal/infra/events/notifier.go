package events

import (
	"context"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/promotions"

	"github.com/twmb/franz-go/pkg/kgo"
)

// DefaultPublishTimeout bounds how long a mutation waits on the broker.
const DefaultPublishTimeout = 5 * time.Second

// Producer is the subset of *kgo.Client the notifier needs.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

type KafkaNotifier struct {
	producer       Producer
	topic          string
	instanceID     string
	publishTimeout time.Duration
}

type NotifierOption func(*KafkaNotifier)

// WithPublishTimeout overrides DefaultPublishTimeout; non-positive values are ignored.
func WithPublishTimeout(d time.Duration) NotifierOption {
	return func(n *KafkaNotifier) {
		if d > 0 {
			n.publishTimeout = d
		}
	}
}

func NewKafkaNotifier(producer Producer, topic, instanceID string, opts ...NotifierOption) *KafkaNotifier {
	n := &KafkaNotifier{
		producer:       producer,
		topic:          topic,
		instanceID:     instanceID,
		publishTimeout: DefaultPublishTimeout,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// PromotionsChanged publishes on its own deadline, detached from the caller's
// cancellation, so a committed mutation is still announced after the client leaves.
func (n *KafkaNotifier) PromotionsChanged(ctx context.Context, event promotions.ChangeEvent) error {
	record, err := EncodeChange(n.topic, n.instanceID, event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.publishTimeout)
	defer cancel()
	if err := n.producer.ProduceSync(ctx, record).FirstErr(); err != nil {
		return errs.Wrapf(err, "failed to publish %s event for promotion %s", event.Kind, event.PromotionID)
	}
	return nil
}

var _ promotions.ChangeNotifier = (*KafkaNotifier)(nil)
