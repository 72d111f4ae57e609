package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/promotions"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	HeaderInstanceID = "instance-id"
	HeaderKind       = "change-kind"
)

// NewClient builds a client that both produces change events and consumes them.
// Each instance gets its own consumer group so every instance sees every event.
func NewClient(cfg config.KafkaConfig) (*kgo.Client, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID("storefront-"+cfg.InstanceID),
		kgo.ConsumerGroup("storefront-catalog-"+cfg.InstanceID),
		kgo.ConsumeTopics(cfg.Topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtEnd()),
		kgo.DisableAutoCommit(),
		kgo.DefaultProduceTopic(cfg.Topic),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create kafka client")
	}
	return client, nil
}

func EnsureTopic(ctx context.Context, client *kgo.Client, cfg config.KafkaConfig, logger *slog.Logger) error {
	adm := kadm.NewClient(client)

	resp, err := adm.CreateTopics(ctx, cfg.Partitions, cfg.Replicas, nil, cfg.Topic)
	if err != nil {
		return errs.Wrapf(err, "failed to create topic %s", cfg.Topic)
	}
	for _, detail := range resp {
		if detail.Err != nil && !strings.Contains(detail.Err.Error(), "already exists") {
			return errs.Wrapf(detail.Err, "failed to create topic %s", detail.Topic)
		}
	}

	logger.Info("promotion topic ensured", "topic", cfg.Topic)
	return nil
}

// EncodeChange builds the record published for a catalog mutation.
func EncodeChange(topic, instanceID string, event promotions.ChangeEvent) (*kgo.Record, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode change event")
	}
	return &kgo.Record{
		Topic: topic,
		Key:   []byte(event.PromotionID),
		Value: payload,
		Headers: []kgo.RecordHeader{
			{Key: HeaderInstanceID, Value: []byte(instanceID)},
			{Key: HeaderKind, Value: []byte(event.Kind)},
		},
	}, nil
}

func DecodeChange(record *kgo.Record) (promotions.ChangeEvent, error) {
	var event promotions.ChangeEvent
	if err := json.Unmarshal(record.Value, &event); err != nil {
		return promotions.ChangeEvent{}, errs.Wrap(err, "failed to decode change event")
	}
	return event, nil
}

func headerValue(record *kgo.Record, key string) string {
	for _, h := range record.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
