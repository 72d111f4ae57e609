package components

import (
	"storefront/internal/handler"
	"storefront/internal/handler/api"
	"storefront/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPromotionHandler,
		api.NewPricingHandler,
		api.NewCartHandler,
		middleware.NewAuthMiddleware,
		func(p *api.PromotionHandler, pr *api.PricingHandler, c *api.CartHandler) handler.Handlers {
			return handler.Handlers{Promotion: p, Pricing: pr, Cart: c}
		},
	),
	fx.Invoke(handler.NewRouter),
)
