//go:build e2e

package cart_test

import (
	"net/http"
	"testing"
	"time"

	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/handler/dto/response"
	"storefront/tests/common/authtest"
	"storefront/tests/common/builder"
	"storefront/tests/common/httptest"
	"storefront/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	cartsURL      = "/api/carts"
	promotionsURL = "/api/promotions"
)

type CartSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *CartSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.Auth)
}

func (s *CartSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, promotionsURL+"?refresh=true", nil, "")
	require.Equal(s.T(), http.StatusOK, w.Code)
}

func TestCartSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CartSuite))
}

func (s *CartSuite) newCart() string {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartsURL, nil, "")
	var cart response.CartResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &cart)
	require.NotEmpty(t, cart.ID)
	return cart.ID
}

func (s *CartSuite) addItem(cartID string, req reqdto.AddCartItemRequest) response.CartResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartsURL+"/"+cartID+"/items", req, "")
	var cart response.CartResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &cart)
	return cart
}

func (s *CartSuite) TestCartLifecycle() {
	s.Run("Normal case: promotion price is locked in at add time", func() {
		t := s.T()
		now := time.Now()

		promoReq := builder.NewPromotionBuilder(now).WithDiscount(20).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL, promoReq, s.jwt.AdminToken(t))
		var created response.CreatedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		cartID := s.newCart()
		cart := s.addItem(cartID, builder.NewProductBuilder().WithPrice("50").BuildAddItemRequestDTO(2))

		require.Len(t, cart.Items, 1)
		item := cart.Items[0]
		assert.Equal(t, "40.00", item.Price)
		require.NotNil(t, item.OriginalPrice)
		assert.Equal(t, "50.00", *item.OriginalPrice)
		require.NotNil(t, item.AppliedPromotion)
		assert.Equal(t, created.ID, item.AppliedPromotion.ID)
		assert.Equal(t, "80.00", cart.TotalPrice)
		assert.Equal(t, "20.00", cart.TotalSavings)
		assert.Equal(t, 2, cart.TotalItems)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, promotionsURL+"/"+created.ID, nil, s.jwt.AdminToken(t))
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, cartsURL+"/"+cartID, nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cart)
		assert.Equal(t, "80.00", cart.TotalPrice)
	})

	s.Run("Normal case: quantities merge and can be edited", func() {
		t := s.T()
		cartID := s.newCart()
		product := builder.NewProductBuilder().WithCategory("apparel").WithPrice("10")

		s.addItem(cartID, product.BuildAddItemRequestDTO(1))
		cart := s.addItem(cartID, product.BuildAddItemRequestDTO(2))
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 3, cart.Items[0].Quantity)

		quantity := 5
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, cartsURL+"/"+cartID+"/items/"+product.ID,
			reqdto.UpdateQuantityRequest{Quantity: &quantity}, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cart)
		assert.Equal(t, "50.00", cart.TotalPrice)

		quantity = 0
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, cartsURL+"/"+cartID+"/items/"+product.ID,
			reqdto.UpdateQuantityRequest{Quantity: &quantity}, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cart)
		assert.Empty(t, cart.Items)
		assert.Equal(t, "0.00", cart.TotalPrice)
	})

	s.Run("Normal case: clear then discard", func() {
		t := s.T()
		cartID := s.newCart()
		s.addItem(cartID, builder.NewProductBuilder().BuildAddItemRequestDTO(1))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, cartsURL+"/"+cartID+"/items", nil, "")
		var cart response.CartResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cart)
		assert.Empty(t, cart.Items)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, cartsURL+"/"+cartID, nil, "")
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, cartsURL+"/"+cartID, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})

	s.Run("Error case: product id is required", func() {
		t := s.T()
		cartID := s.newCart()
		req := builder.NewProductBuilder().BuildAddItemRequestDTO(1)
		req.ProductID = ""

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartsURL+"/"+cartID+"/items", req, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}
