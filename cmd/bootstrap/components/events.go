package components

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/infra/events"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/promotions"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventBus,
		NewChangeNotifier,
	),
	fx.Invoke(StartChangeListener),
)

// EventBus holds the Kafka client; Client is nil when KAFKA_BROKERS is empty.
type EventBus struct {
	Client *kgo.Client
	Config config.KafkaConfig
}

func NewEventBus(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*EventBus, error) {
	if !cfg.Kafka.Enabled() {
		logger.Info("kafka disabled; promotion changes stay local to this instance")
		return &EventBus{Config: cfg.Kafka}, nil
	}

	kc := cfg.Kafka
	if kc.InstanceID == "" {
		kc.InstanceID = uuid.NewString()
	}

	client, err := events.NewClient(kc)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := events.EnsureTopic(ctx, client, kc, logger); err != nil {
		client.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			client.Close()
			return nil
		},
	})

	logger.Info("kafka connected", "brokers", kc.Brokers, "topic", kc.Topic, "instance", kc.InstanceID)
	return &EventBus{Client: client, Config: kc}, nil
}

func NewChangeNotifier(bus *EventBus) promotions.ChangeNotifier {
	if bus.Client == nil {
		return promotions.NewNoopNotifier()
	}
	return events.NewKafkaNotifier(bus.Client, bus.Config.Topic, bus.Config.InstanceID,
		events.WithPublishTimeout(bus.Config.PublishTimeout))
}

func StartChangeListener(lc fx.Lifecycle, bus *EventBus, catalog promotions.Service, logger *slog.Logger) {
	if bus.Client == nil {
		return
	}

	listener := events.NewListener(bus.Client, catalog, bus.Config.InstanceID, logger)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				listener.Start(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
