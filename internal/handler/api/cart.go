package api

import (
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase/carts"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	carts carts.Service
}

func NewCartHandler(carts carts.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

// @Summary Create cart
// @Tags carts
// @Produce json
// @Success 201 {object} resdto.CartResponse
// @Router /api/carts [post]
func (h *CartHandler) Create(c *gin.Context) {
	view, err := h.carts.Create(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/carts/"+view.ID)
	c.JSON(http.StatusCreated, resdto.FromCartView(view))
}

// @Summary Get cart
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} httperr.Response
// @Router /api/carts/{id} [get]
func (h *CartHandler) Get(c *gin.Context) {
	h.respond(c)(h.carts.Get(c.Request.Context(), c.Param("id")))
}

// @Summary Add item
// @Description Add a product to the cart, priced with the best promotion for its category
// @Tags carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body reqdto.AddCartItemRequest true "Product snapshot and quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/carts/{id}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	product, err := req.ToDomain()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respond(c)(h.carts.AddItem(c.Request.Context(), c.Param("id"), product, req.QuantityOrDefault()))
}

// @Summary Update quantity
// @Description Set the quantity of a line; zero or less removes it
// @Tags carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param productId path string true "Product ID"
// @Param request body reqdto.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/carts/{id}/items/{productId} [put]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req reqdto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.respond(c)(h.carts.UpdateQuantity(c.Request.Context(), c.Param("id"), c.Param("productId"), *req.Quantity))
}

// @Summary Remove item
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} httperr.Response
// @Router /api/carts/{id}/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.respond(c)(h.carts.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("productId")))
}

// @Summary Clear cart
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} httperr.Response
// @Router /api/carts/{id}/items [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	h.respond(c)(h.carts.Clear(c.Request.Context(), c.Param("id")))
}

// @Summary Discard cart
// @Tags carts
// @Param id path string true "Cart ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/carts/{id} [delete]
func (h *CartHandler) Discard(c *gin.Context) {
	if err := h.carts.Discard(c.Request.Context(), c.Param("id")); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) respond(c *gin.Context) func(carts.CartView, error) {
	return func(view carts.CartView, err error) {
		if err != nil {
			abortWithUsecaseError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromCartView(view))
	}
}
