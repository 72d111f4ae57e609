//go:build e2e

package promotion_test

import (
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/identity"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/handler/dto/response"
	"storefront/tests/common/authtest"
	"storefront/tests/common/builder"
	"storefront/tests/common/dbtest"
	"storefront/tests/common/httptest"
	"storefront/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	promotionsURL = "/api/promotions"
	quoteURL      = "/api/pricing/quote"
)

type PromotionSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *PromotionSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.Auth)
}

func (s *PromotionSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.reload()
}

func TestPromotionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PromotionSuite))
}

// reload drops whatever the catalog cached from a previous subtest.
func (s *PromotionSuite) reload() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, promotionsURL+"?refresh=true", nil, "")
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
}

func (s *PromotionSuite) listPromotions(url string) response.PromotionListResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
	var res response.PromotionListResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res
}

func (s *PromotionSuite) createPromotion(req reqdto.CreatePromotionRequest) string {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL, req, s.jwt.AdminToken(t))
	var created response.CreatedResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	require.NotEmpty(t, created.ID)
	return created.ID
}

// =============================================================================
// Listing
// =============================================================================

func (s *PromotionSuite) TestListPromotions() {
	s.Run("Normal case: stored promotions are listed in storage order", func() {
		t := s.T()
		now := time.Now()

		first := builder.NewPromotionBuilder(now).With(func(b *builder.PromotionBuilder) {
			b.Title = "First"
		}).Build()
		second := builder.NewPromotionBuilder(now).With(func(b *builder.PromotionBuilder) {
			b.Title = "Second"
		}).Inactive().Build()
		dbtest.InsertPromotion(t, s.DB, first)
		dbtest.InsertPromotion(t, s.DB, second)

		res := s.listPromotions(promotionsURL + "?refresh=true")

		require.Len(t, res.Promotions, 2)
		assert.Equal(t, []string{"First", "Second"}, []string{res.Promotions[0].Title, res.Promotions[1].Title})
		assert.True(t, res.Status.Loaded)
		assert.Equal(t, 2, res.Status.Count)
	})

	s.Run("Normal case: active listing excludes disabled promotions", func() {
		t := s.T()
		now := time.Now()

		active := builder.NewPromotionBuilder(now).Build()
		dbtest.InsertPromotion(t, s.DB, active)
		dbtest.InsertPromotion(t, s.DB, builder.NewPromotionBuilder(now).Inactive().Build())

		res := s.listPromotions(promotionsURL + "/active?refresh=true")

		require.Len(t, res.Promotions, 1)
		assert.Equal(t, active.ID, res.Promotions[0].ID)
	})

	s.Run("Normal case: an empty store lists nothing", func() {
		res := s.listPromotions(promotionsURL + "?refresh=true")

		assert.Empty(s.T(), res.Promotions)
		assert.NotNil(s.T(), res.Promotions)
	})
}

// =============================================================================
// Administration
// =============================================================================

func (s *PromotionSuite) TestManagePromotions() {
	s.Run("Normal case: admin creates, edits, toggles and deletes a promotion", func() {
		t := s.T()
		now := time.Now()
		token := s.jwt.AdminToken(t)

		reqBody := builder.NewPromotionBuilder(now).WithCategories("Supplement", " snacks ").BuildCreateRequestDTO()
		id := s.createPromotion(reqBody)
		assert.Equal(t, 1, dbtest.CountPromotions(t, s.DB))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, promotionsURL+"/"+id, nil, "")
		var got response.PromotionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		want := response.PromotionResponse{
			ID:                   id,
			Title:                reqBody.Title,
			Description:          reqBody.Description,
			Image:                reqBody.Image,
			Discount:             reqBody.Discount,
			ApplicableCategories: []string{"Supplement", "snacks"},
			IsActive:             true,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.PromotionResponse{}, "ValidFrom", "ValidUntil", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(want, got, opts...); diff != "" {
			t.Errorf("promotion mismatch (-want +got):\n%s", diff)
		}

		title := "Winter sale"
		discount := 35.0
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, promotionsURL+"/"+id,
			reqdto.UpdatePromotionRequest{Title: &title, Discount: &discount}, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, "Winter sale", got.Title)
		assert.Equal(t, 35.0, got.Discount)

		inactive := false
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, promotionsURL+"/"+id+"/active",
			reqdto.TogglePromotionRequest{IsActive: &inactive}, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.False(t, got.IsActive)
		assert.Empty(t, s.listPromotions(promotionsURL+"/active").Promotions)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, promotionsURL+"/"+id, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, 0, dbtest.CountPromotions(t, s.DB))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, promotionsURL+"/"+id, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})

	s.Run("Error case: invalid window is rejected", func() {
		t := s.T()
		now := time.Now()

		reqBody := builder.NewPromotionBuilder(now).BuildCreateRequestDTO()
		reqBody.ValidFrom, reqBody.ValidUntil = reqBody.ValidUntil, reqBody.ValidFrom

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL, reqBody, s.jwt.AdminToken(t))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
		assert.Equal(t, 0, dbtest.CountPromotions(t, s.DB))
	})

	s.Run("Error case: unknown promotion cannot be updated", func() {
		t := s.T()
		title := "Ghost"

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, promotionsURL+"/00000000-0000-0000-0000-000000000000",
			reqdto.UpdatePromotionRequest{Title: &title}, s.jwt.AdminToken(t))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})

	s.Run("Auth test: anonymous callers cannot create promotions", func() {
		t := s.T()
		reqBody := builder.NewPromotionBuilder(time.Now()).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})

	s.Run("Auth test: customers cannot delete promotions", func() {
		t := s.T()
		p := builder.NewPromotionBuilder(time.Now()).Build()
		dbtest.InsertPromotion(t, s.DB, p)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, promotionsURL+"/"+p.ID, nil, s.jwt.CustomerToken(t))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
		assert.Equal(t, 1, dbtest.CountPromotions(t, s.DB))
	})

	s.Run("Auth test: expired tokens are rejected", func() {
		t := s.T()
		token := s.jwt.CreateExpiredToken(t, "admin-1", identity.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, promotionsURL+"/anything", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})
}

// =============================================================================
// Pricing
// =============================================================================

func (s *PromotionSuite) TestQuote() {
	s.Run("Normal case: best active promotion wins", func() {
		t := s.T()
		now := time.Now()

		s.createPromotion(builder.NewPromotionBuilder(now).WithDiscount(10).BuildCreateRequestDTO())
		s.createPromotion(builder.NewPromotionBuilder(now).WithDiscount(25).BuildCreateRequestDTO())
		s.createPromotion(builder.NewPromotionBuilder(now).WithDiscount(90).Inactive().BuildCreateRequestDTO())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, quoteURL+"?category=supplement&price=100", nil, "")
		var quote response.PriceQuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)

		assert.Equal(t, "100.00", quote.OriginalPrice)
		assert.Equal(t, "75.00", quote.DiscountedPrice)
		assert.Equal(t, 25.0, quote.Discount)
		require.NotNil(t, quote.Promotion)
	})

	s.Run("Normal case: other categories pay list price", func() {
		t := s.T()
		s.createPromotion(builder.NewPromotionBuilder(time.Now()).BuildCreateRequestDTO())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, quoteURL+"?category=apparel&price=19.5", nil, "")
		var quote response.PriceQuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)

		assert.Equal(t, "19.50", quote.DiscountedPrice)
		assert.Nil(t, quote.Promotion)
	})

	s.Run("Error case: price must be a number", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, quoteURL+"?category=supplement&price=abc", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})
}
