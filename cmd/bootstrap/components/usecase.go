package components

import (
	"context"
	"log/slog"

	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase"
	"storefront/internal/usecase/carts"
	"storefront/internal/usecase/promotions"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCatalogModule,
	usecaseCartsModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCatalogModule = fx.Module("usecase/promotions",
	fx.Provide(
		fx.Annotate(
			promotions.NewCatalog,
			fx.As(new(promotions.Service)),
			fx.As(new(carts.PriceQuoter)),
		),
	),
	fx.Invoke(warmCatalog),
)

var usecaseCartsModule = fx.Module("usecase/carts",
	fx.Provide(
		func(quoter carts.PriceQuoter, clk clock.Clock, logger *slog.Logger, cfg config.Config) carts.Service {
			return carts.NewService(quoter, clk, logger, cfg.Cart.IdleTTL)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// warmCatalog loads promotions at start; a failure is logged and retried lazily.
func warmCatalog(lc fx.Lifecycle, catalog promotions.Service, logger *slog.Logger) {
	lc.Append(fx.StartHook(func(ctx context.Context) {
		if err := catalog.Refresh(ctx); err != nil {
			logger.Warn("initial promotion load failed", "error", err)
		}
	}))
}
