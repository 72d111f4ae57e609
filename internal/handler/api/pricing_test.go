//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"storefront/internal/domain/promotion"
	"storefront/internal/handler/api"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/tests/common/builder"
	"storefront/tests/common/httptest"
	promotionsmock "storefront/tests/mock/promotions"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockCatalog *promotionsmock.MockService
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCatalog = promotionsmock.NewMockService(s.mockCtrl)
	handler := api.NewPricingHandler(s.mockCatalog, clock.NewMockClock(now))

	s.router.GET("/categories/:category/promotions", handler.CategoryPromotions)
	s.router.GET("/pricing/quote", handler.Quote)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

func (s *PricingHandlerTestSuite) TestCategoryPromotions() {
	s.Run("success: evaluates at the current time", func() {
		promo := builder.NewPromotionBuilder(now).Build()
		s.mockCatalog.EXPECT().EnsureLoaded(gomock.Any()).Return(nil)
		s.mockCatalog.EXPECT().GetActivePromotionsForCategory("supplement", now).Return([]promotion.Promotion{promo})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/categories/supplement/promotions", nil, "")

		var res []resdto.PromotionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res, 1)
	})

	s.Run("success: no matches is an empty list", func() {
		s.mockCatalog.EXPECT().EnsureLoaded(gomock.Any()).Return(nil)
		s.mockCatalog.EXPECT().GetActivePromotionsForCategory("books", now).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/categories/books/promotions", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 503 when the catalog never loaded", func() {
		s.mockCatalog.EXPECT().EnsureLoaded(gomock.Any()).
			Return(errs.Mark(errors.New("offline"), errs.ErrRepositoryFailure))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/categories/books/promotions", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}

func (s *PricingHandlerTestSuite) TestQuote() {
	s.Run("success: applies the best promotion", func() {
		promo := builder.NewPromotionBuilder(now).Build()
		s.mockCatalog.EXPECT().EnsureLoaded(gomock.Any()).Return(nil)
		s.mockCatalog.EXPECT().CalculateDiscountedPrice(gomock.Any(), "supplement", now).
			DoAndReturn(func(price decimal.Decimal, _ string, _ any) promotion.Pricing {
				s.True(price.Equal(decimal.RequireFromString("30")))
				return promotion.Pricing{
					OriginalPrice:   price,
					DiscountedPrice: decimal.RequireFromString("24"),
					Discount:        20,
					Promotion:       &promo,
				}
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pricing/quote?category=supplement&price=30", nil, "")

		var res resdto.PriceQuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("30.00", res.OriginalPrice)
		s.Equal("24.00", res.DiscountedPrice)
		s.Equal(20.0, res.Discount)
		s.NotNil(res.Promotion)
	})

	s.Run("error: 400 on bad prices", func() {
		for _, q := range []string{"", "price=abc", "price=-1"} {
			s.Run(q, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pricing/quote?category=supplement&"+q, nil, "")

				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "price")
			})
		}
	})
}
