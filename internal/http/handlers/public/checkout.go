package public

import (
	"errors"

	"github.com/mebel-next/internal/http/response"
	"github.com/mebel-next/internal/i18n"
	"github.com/mebel-next/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderFormRequest is the checkout contact form payload.
type OrderFormRequest struct {
	FullName        string `json:"full_name"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	City            string `json:"city"`
	Comment         string `json:"comment"`
	SocialChannelID string `json:"social_channel_id"`
	SocialHandle    string `json:"social_handle"`
	PaymentMethodID string `json:"payment_method_id"`
}

func (req OrderFormRequest) toForm() service.OrderForm {
	return service.OrderForm{
		FullName:        req.FullName,
		Phone:           req.Phone,
		Address:         req.Address,
		City:            req.City,
		Comment:         req.Comment,
		SocialChannelID: req.SocialChannelID,
		SocialHandle:    req.SocialHandle,
		PaymentMethodID: req.PaymentMethodID,
	}
}

func localizeViolations(c *gin.Context, violations map[string]string) map[string]string {
	locale := i18n.ResolveLocale(c)
	localized := make(map[string]string, len(violations))
	for field, key := range violations {
		localized[field] = i18n.T(locale, key)
	}
	return localized
}

// ValidateOrderForm checks the order form against the current cart
// without submitting, returning every violation at once.
func (h *Handler) ValidateOrderForm(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req OrderFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	deliveryMethodID := ""
	if view, err := h.CartService.Get(sessionID); err == nil && view.DeliveryMethod != nil {
		deliveryMethodID = view.DeliveryMethod.ID
	}

	violations := h.CheckoutService.ValidateOrderForm(req.toForm(), deliveryMethodID)
	response.Success(c, gin.H{
		"valid":      len(violations) == 0,
		"violations": localizeViolations(c, violations),
	})
}

// SubmitOrder submits the order. Confirmation is scheduled after a
// short delay; the response carries the receipt with totals.
func (h *Handler) SubmitOrder(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req OrderFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	result, violations, err := h.CheckoutService.Submit(sessionID, req.toForm())
	if err != nil {
		if errors.Is(err, service.ErrOrderFormInvalid) {
			respondErrorWithData(c, response.CodeBadRequest, "error.order_form_invalid", gin.H{
				"violations": localizeViolations(c, violations),
			}, nil)
			return
		}
		respondCheckoutError(c, err)
		return
	}

	requestLog(c).Infow("checkout_submitted", "order_no", result.OrderNo, "session_id", sessionID)
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "msg.order_accepted"), result)
}
