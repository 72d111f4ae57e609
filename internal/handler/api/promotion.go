package api

import (
	"net/http"
	"strconv"

	"storefront/internal/domain/promotion"
	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase/promotions"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	catalog promotions.Service
}

func NewPromotionHandler(catalog promotions.Service) *PromotionHandler {
	return &PromotionHandler{catalog: catalog}
}

// @Summary List promotions
// @Description List every promotion in the catalog cache, loading it on first use
// @Tags promotions
// @Produce json
// @Param refresh query bool false "Force a reload from the store"
// @Success 200 {object} resdto.PromotionListResponse
// @Failure 503 {object} httperr.Response
// @Router /api/promotions [get]
func (h *PromotionHandler) List(c *gin.Context) {
	err := h.catalog.LoadPromotions(c.Request.Context(), forceRefresh(c))
	h.respondWithList(c, err, h.catalog.Promotions)
}

// @Summary List active promotions
// @Description List promotions flagged active, regardless of their validity window
// @Tags promotions
// @Produce json
// @Param refresh query bool false "Force a reload from the store"
// @Success 200 {object} resdto.PromotionListResponse
// @Failure 503 {object} httperr.Response
// @Router /api/promotions/active [get]
func (h *PromotionHandler) ListActive(c *gin.Context) {
	err := h.catalog.LoadActivePromotions(c.Request.Context(), forceRefresh(c))
	h.respondWithList(c, err, h.catalog.ActivePromotions)
}

// A failed load still answers from the last good cache; the failure is only
// reported when there is nothing cached to serve.
func (h *PromotionHandler) respondWithList(c *gin.Context, loadErr error, snapshot func() []promotion.Promotion) {
	items := snapshot()
	if loadErr != nil && len(items) == 0 {
		abortWithUsecaseError(c, loadErr)
		return
	}
	c.JSON(http.StatusOK, resdto.PromotionListResponse{
		Promotions: resdto.FromPromotions(items),
		Status:     resdto.FromStatus(h.catalog.Status()),
	})
}

// @Summary Get promotion
// @Description Get a promotion by id, from the cache when possible
// @Tags promotions
// @Produce json
// @Param id path string true "Promotion ID"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/promotions/{id} [get]
func (h *PromotionHandler) Get(c *gin.Context) {
	p, err := h.catalog.GetPromotionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotion(p))
}

// @Summary Create promotion
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePromotionRequest true "Create promotion request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/promotions [post]
func (h *PromotionHandler) Create(c *gin.Context) {
	var req reqdto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	draft, err := req.ToDomain()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	id, err := h.catalog.AddPromotion(c.Request.Context(), draft)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/promotions/"+id)
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update promotion
// @Description Partially update a promotion; omitted fields are left untouched
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Param request body reqdto.UpdatePromotionRequest true "Update promotion request"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/promotions/{id} [patch]
func (h *PromotionHandler) Update(c *gin.Context) {
	var req reqdto.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id := c.Param("id")
	if err := h.catalog.UpdatePromotion(c.Request.Context(), id, req.ToDomain()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithPromotion(c, id)
}

// @Summary Toggle promotion
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Param request body reqdto.TogglePromotionRequest true "Toggle request"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/promotions/{id}/active [put]
func (h *PromotionHandler) Toggle(c *gin.Context) {
	var req reqdto.TogglePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id := c.Param("id")
	if err := h.catalog.TogglePromotion(c.Request.Context(), id, *req.IsActive); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithPromotion(c, id)
}

// @Summary Delete promotion
// @Tags promotions
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/promotions/{id} [delete]
func (h *PromotionHandler) Delete(c *gin.Context) {
	if err := h.catalog.DeletePromotion(c.Request.Context(), c.Param("id")); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PromotionHandler) respondWithPromotion(c *gin.Context, id string) {
	p, err := h.catalog.GetPromotionByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotion(p))
}

func forceRefresh(c *gin.Context) bool {
	force, _ := strconv.ParseBool(c.Query("refresh"))
	return force
}
