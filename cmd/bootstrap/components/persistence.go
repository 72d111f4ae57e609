package components

import (
	"context"
	"log/slog"

	"storefront/internal/infra/db"
	"storefront/internal/infra/docstore"
	"storefront/internal/infra/memstore"
	"storefront/internal/infra/repository"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/promotions"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPromotionRepository,
	),
)

// NewPromotionRepository connects only the backend selected by PROMOTION_STORE.
func NewPromotionRepository(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (promotions.Repository, error) {
	switch cfg.Promotion.Store {
	case config.StoreMongo:
		return newMongoStore(lc, cfg.Mongo, clk, logger)
	case config.StoreMemory:
		logger.Warn("using in-memory promotion store; data is lost on restart")
		return memstore.NewPromotionStore(clk), nil
	default:
		return newPostgresRepository(lc, cfg.DB, logger)
	}
}

func newPostgresRepository(lc fx.Lifecycle, cfg config.DBConfig, logger *slog.Logger) (*repository.PromotionRepository, error) {
	ctx := context.Background()
	pool, cleanup, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(ctx, pool, logger); err != nil {
		cleanup()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	logger.Info("promotion store ready", "backend", config.StorePostgres, "host", cfg.Host, "database", cfg.DBName)
	return repository.NewPromotionRepository(pool), nil
}

func newMongoStore(lc fx.Lifecycle, cfg config.MongoConfig, clk clock.Clock, logger *slog.Logger) (*docstore.PromotionStore, error) {
	ctx := context.Background()
	client, disconnect, err := docstore.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := docstore.NewPromotionStore(client.Database(cfg.Database), cfg.Collection, clk)
	indexCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := store.EnsureIndexes(indexCtx); err != nil {
		_ = disconnect(ctx)
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: disconnect,
	})

	logger.Info("promotion store ready", "backend", config.StoreMongo, "database", cfg.Database, "collection", cfg.Collection)
	return store, nil
}
