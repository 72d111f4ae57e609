package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/internal/handler/api"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Promotion *api.PromotionHandler
	Pricing   *api.PricingHandler
	Cart      *api.CartHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	admin := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireAdmin()}

	apiGroup := engine.Group("/api")
	{
		promotions := apiGroup.Group("/promotions")
		addRoutes(promotions, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Promotion.List},
			{Method: http.MethodGet, Path: "/active", Handler: h.Promotion.ListActive},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Promotion.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Promotion.Create, Mw: admin},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Promotion.Update, Mw: admin},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Promotion.Delete, Mw: admin},
			{Method: http.MethodPut, Path: "/:id/active", Handler: h.Promotion.Toggle, Mw: admin},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/categories/:category/promotions", Handler: h.Pricing.CategoryPromotions},
			{Method: http.MethodGet, Path: "/pricing/quote", Handler: h.Pricing.Quote},
		})

		carts := apiGroup.Group("/carts")
		addRoutes(carts, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Cart.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Cart.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Cart.Discard},
			{Method: http.MethodPost, Path: "/:id/items", Handler: h.Cart.AddItem},
			{Method: http.MethodDelete, Path: "/:id/items", Handler: h.Cart.Clear},
			{Method: http.MethodPut, Path: "/:id/items/:productId", Handler: h.Cart.UpdateQuantity},
			{Method: http.MethodDelete, Path: "/:id/items/:productId", Handler: h.Cart.RemoveItem},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
