package service

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP
// status codes and localized messages.
var (
	ErrNotFound              = errors.New("record not found")
	ErrInvalidCartItem       = errors.New("invalid cart item")
	ErrCartItemNotFound      = errors.New("cart item not found")
	ErrCartEmpty             = errors.New("cart is empty")
	ErrProductNotAvailable   = errors.New("product not available")
	ErrProductSizeInvalid    = errors.New("product size invalid")
	ErrMechanismUnavailable  = errors.New("lifting mechanism unavailable")
	ErrPromoCodeEmpty        = errors.New("promo code empty")
	ErrPromoCodeInvalid      = errors.New("promo code invalid")
	ErrDeliveryMethodInvalid = errors.New("delivery method invalid")
	ErrPaymentMethodInvalid  = errors.New("payment method invalid")
	ErrSocialChannelInvalid  = errors.New("social channel invalid")
	ErrOrderFormInvalid      = errors.New("order form invalid")
	ErrQueueUnavailable      = errors.New("queue unavailable")
	ErrSessionInvalid        = errors.New("session invalid")
)
