package public

import (
	"errors"

	"github.com/mebel-next/internal/http/response"
	"github.com/mebel-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps a business error to an API error response.
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var cartCommonErrorRules = []mappedHandlerError{
	{target: service.ErrSessionInvalid, code: response.CodeUnauthorized, key: "error.session_invalid"},
	{target: service.ErrInvalidCartItem, code: response.CodeBadRequest, key: "error.cart_item_invalid"},
	{target: service.ErrCartItemNotFound, code: response.CodeBadRequest, key: "error.cart_item_not_found"},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, key: "error.product_not_available"},
	{target: service.ErrProductSizeInvalid, code: response.CodeBadRequest, key: "error.product_size_invalid"},
	{target: service.ErrMechanismUnavailable, code: response.CodeBadRequest, key: "error.mechanism_unavailable"},
}

var cartPromoExtraErrorRules = []mappedHandlerError{
	{target: service.ErrPromoCodeEmpty, code: response.CodeBadRequest, key: "error.promo_code_empty"},
	{target: service.ErrPromoCodeInvalid, code: response.CodeBadRequest, key: "error.promo_code_invalid"},
}

var cartDeliveryExtraErrorRules = []mappedHandlerError{
	{target: service.ErrDeliveryMethodInvalid, code: response.CodeBadRequest, key: "error.delivery_method_invalid"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrSessionInvalid, code: response.CodeUnauthorized, key: "error.session_invalid"},
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrDeliveryMethodInvalid, code: response.CodeBadRequest, key: "error.delivery_method_invalid"},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, key: "error.product_not_available"},
	{target: service.ErrQueueUnavailable, code: response.CodeInternal, key: "error.queue_unavailable"},
}

var favoritesErrorRules = []mappedHandlerError{
	{target: service.ErrSessionInvalid, code: response.CodeUnauthorized, key: "error.session_invalid"},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, key: "error.product_not_available"},
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "error.cart_update_failed")
}

func respondCartPromoError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(cartCommonErrorRules, cartPromoExtraErrorRules), response.CodeInternal, "error.cart_update_failed")
}

func respondCartDeliveryError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(cartCommonErrorRules, cartDeliveryExtraErrorRules), response.CodeInternal, "error.cart_update_failed")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.checkout_failed")
}

func respondFavoritesError(c *gin.Context, err error) {
	respondWithMappedError(c, err, favoritesErrorRules, response.CodeInternal, "error.favorites_update_failed")
}
