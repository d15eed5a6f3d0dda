package public

import (
	"strconv"

	"github.com/mebel-next/internal/http/response"
	"github.com/mebel-next/internal/i18n"
	"github.com/mebel-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest identifies a cart line and its quantity.
type CartItemRequest struct {
	ProductID     uint `json:"product_id" binding:"required"`
	SizeID        uint `json:"size_id"`
	WithMechanism bool `json:"with_mechanism"`
	Quantity      int  `json:"quantity"`
}

// PromoRequest carries a promo code to apply.
type PromoRequest struct {
	Code string `json:"code"`
}

// DeliveryRequest selects a delivery method.
type DeliveryRequest struct {
	MethodID string `json:"method_id" binding:"required"`
}

// GetCart returns the cart snapshot with totals.
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}

	view, err := h.CartService.Get(sessionID)
	if err != nil {
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "error.cart_fetch_failed")
		return
	}
	response.Success(c, view)
}

// AddCartItem adds a line to the cart, merging quantity into an
// existing line with the same product, size and mechanism choice.
func (h *Handler) AddCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	view, err := h.CartService.AddItem(service.AddCartItemInput{
		SessionID:     sessionID,
		ProductID:     req.ProductID,
		SizeID:        req.SizeID,
		WithMechanism: req.WithMechanism,
		Quantity:      req.Quantity,
	})
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// UpdateCartItem changes the quantity of an existing line.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	view, err := h.CartService.UpdateQuantity(service.UpdateCartItemInput{
		SessionID:     sessionID,
		ProductID:     req.ProductID,
		SizeID:        req.SizeID,
		WithMechanism: req.WithMechanism,
		Quantity:      req.Quantity,
	})
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// DeleteCartItem removes one line from the cart. The line is identified
// by product_id plus the size_id and with_mechanism query parameters.
func (h *Handler) DeleteCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
		return
	}
	sizeID, _ := strconv.ParseUint(c.DefaultQuery("size_id", "0"), 10, 64)
	withMechanism := c.Query("with_mechanism") == "true"

	view, err := h.CartService.RemoveItem(sessionID, uint(productID), uint(sizeID), withMechanism)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// ClearCart removes every line and the applied promo code.
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(sessionID); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}

// ApplyPromo applies a promo code, replacing any previous one.
func (h *Handler) ApplyPromo(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	view, err := h.CartService.ApplyPromo(sessionID, req.Code)
	if err != nil {
		respondCartPromoError(c, err)
		return
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "msg.promo_applied"), view)
}

// RemovePromo removes the applied promo code.
func (h *Handler) RemovePromo(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	view, err := h.CartService.RemovePromo(sessionID)
	if err != nil {
		respondCartPromoError(c, err)
		return
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "msg.promo_removed"), view)
}

// SelectDelivery selects the delivery method for the cart.
func (h *Handler) SelectDelivery(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req DeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	view, err := h.CartService.SelectDelivery(sessionID, req.MethodID)
	if err != nil {
		respondCartDeliveryError(c, err)
		return
	}
	response.Success(c, view)
}
