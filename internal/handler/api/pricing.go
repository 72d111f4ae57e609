package api

import (
	"net/http"

	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/promotions"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var ErrInvalidPrice = errs.New("price must be a non-negative decimal")

type PricingHandler struct {
	catalog promotions.Service
	clock   clock.Clock
}

func NewPricingHandler(catalog promotions.Service, clk clock.Clock) *PricingHandler {
	return &PricingHandler{catalog: catalog, clock: clk}
}

// @Summary Promotions for a category
// @Description Promotions that apply to the category right now
// @Tags pricing
// @Produce json
// @Param category path string true "Product category"
// @Success 200 {array} resdto.PromotionResponse
// @Failure 503 {object} httperr.Response
// @Router /api/categories/{category}/promotions [get]
func (h *PricingHandler) CategoryPromotions(c *gin.Context) {
	if err := h.catalog.EnsureLoaded(c.Request.Context()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	list := h.catalog.GetActivePromotionsForCategory(c.Param("category"), h.clock.Now())
	c.JSON(http.StatusOK, resdto.FromPromotions(list))
}

// @Summary Quote a price
// @Description Apply the best promotion for the category to a price
// @Tags pricing
// @Produce json
// @Param category query string false "Product category"
// @Param price query string true "List price"
// @Success 200 {object} resdto.PriceQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/pricing/quote [get]
func (h *PricingHandler) Quote(c *gin.Context) {
	price, err := decimal.NewFromString(c.Query("price"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, ErrInvalidPrice.Error(), nil)
		return
	}
	if price.IsNegative() {
		httperr.AbortWithError(c, http.StatusBadRequest, ErrInvalidPrice, ErrInvalidPrice.Error(), nil)
		return
	}
	if err := h.catalog.EnsureLoaded(c.Request.Context()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	category := c.Query("category")
	pricing := h.catalog.CalculateDiscountedPrice(price, category, h.clock.Now())
	c.JSON(http.StatusOK, resdto.FromPricing(category, pricing))
}
