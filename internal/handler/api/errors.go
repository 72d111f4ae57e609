package api

import (
	"net/http"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/promotion"
	"storefront/internal/handler/httperr"
	"storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var validationErrors = []error{
	errs.ErrDomainValidation,
	promotion.ErrEmptyTitle,
	promotion.ErrNegativeDiscount,
	promotion.ErrInvalidValidity,
	promotion.ErrInvertedValidity,
	cart.ErrEmptyProductID,
	cart.ErrNegativePrice,
	cart.ErrInvalidQuantity,
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errs.Is(err, target) {
			return true
		}
	}
	return false
}

// abortWithUsecaseError maps usecase and domain errors onto the JSON error envelope.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case isValidationError(err):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrPromotionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Promotion not found", nil)
	case errs.Is(err, errs.ErrCartNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Cart not found", nil)
	case errs.Is(err, errs.ErrRepositoryFailure):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Promotion store unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
