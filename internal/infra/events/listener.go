package events

import (
	"context"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Refresher reloads cached promotions from the store.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Fetcher is the subset of *kgo.Client the listener needs.
type Fetcher interface {
	PollFetches(ctx context.Context) kgo.Fetches
	CommitRecords(ctx context.Context, rs ...*kgo.Record) error
}

// Listener refreshes the local catalog when another instance mutates promotions.
type Listener struct {
	client     Fetcher
	refresher  Refresher
	instanceID string
	logger     *slog.Logger
}

func NewListener(client Fetcher, refresher Refresher, instanceID string, logger *slog.Logger) *Listener {
	return &Listener{
		client:     client,
		refresher:  refresher,
		instanceID: instanceID,
		logger:     logger,
	}
}

// Start blocks until ctx is cancelled or the client is closed.
func (l *Listener) Start(ctx context.Context) {
	for {
		fetches := l.client.PollFetches(ctx)
		if fetches.IsClientClosed() || ctx.Err() != nil {
			return
		}
		fetches.EachError(func(topic string, partition int32, err error) {
			l.logger.Warn("promotion event poll failed", "topic", topic, "partition", partition, "error", err)
		})

		l.HandleBatch(ctx, fetches.Records())

		if err := l.client.CommitRecords(ctx, fetches.Records()...); err != nil {
			l.logger.Warn("failed to commit promotion events", "error", err)
		}
	}
}

// HandleBatch refreshes at most once per batch. It reports whether a refresh ran.
func (l *Listener) HandleBatch(ctx context.Context, records []*kgo.Record) bool {
	stale := false
	for _, record := range records {
		if headerValue(record, HeaderInstanceID) == l.instanceID {
			continue
		}
		event, err := DecodeChange(record)
		if err != nil {
			l.logger.Warn("skipping malformed promotion event", "offset", record.Offset, "error", err)
			continue
		}
		l.logger.Debug("promotion changed elsewhere", "kind", event.Kind, "promotionId", event.PromotionID)
		stale = true
	}
	if !stale {
		return false
	}

	if err := l.refresher.Refresh(ctx); err != nil {
		l.logger.Error("failed to refresh promotions after remote change", "error", err)
	}
	return true
}
