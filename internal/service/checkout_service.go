package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mebel-next/internal/constants"
	"github.com/mebel-next/internal/logger"
	"github.com/mebel-next/internal/queue"

	"github.com/google/uuid"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
var whitespacePattern = regexp.MustCompile(`\s+`)

// OrderForm is the checkout contact form.
type OrderForm struct {
	FullName        string `json:"full_name"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	City            string `json:"city"`
	Comment         string `json:"comment"`
	SocialChannelID string `json:"social_channel_id"`
	SocialHandle    string `json:"social_handle"`
	PaymentMethodID string `json:"payment_method_id"`
}

// CheckoutResult is the accepted order receipt.
type CheckoutResult struct {
	OrderNo             string     `json:"order_no"`
	Status              string     `json:"status"`
	Totals              CartTotals `json:"totals"`
	ConfirmDelaySeconds int        `json:"confirm_delay_seconds"`
}

// CheckoutService validates order forms and submits orders. Submission
// schedules a delayed confirmation task that clears the cart.
type CheckoutService struct {
	cartService  *CartService
	registry     *RegistryService
	queueClient  *queue.Client
	confirmDelay time.Duration
}

// NewCheckoutService creates a checkout service.
func NewCheckoutService(cartService *CartService, registry *RegistryService, queueClient *queue.Client, confirmDelaySeconds int) *CheckoutService {
	if confirmDelaySeconds <= 0 {
		confirmDelaySeconds = 2
	}
	return &CheckoutService{
		cartService:  cartService,
		registry:     registry,
		queueClient:  queueClient,
		confirmDelay: time.Duration(confirmDelaySeconds) * time.Second,
	}
}

// normalizePhone strips all whitespace before matching.
func normalizePhone(raw string) string {
	return whitespacePattern.ReplaceAllString(strings.TrimSpace(raw), "")
}

// ValidateOrderForm checks the form and returns all violations keyed by
// field name. Values are message catalog keys for the handler to
// localize. Pickup delivery exempts address and city.
func (s *CheckoutService) ValidateOrderForm(form OrderForm, deliveryMethodID string) map[string]string {
	violations := make(map[string]string)

	if strings.TrimSpace(form.FullName) == "" {
		violations["full_name"] = "validation.full_name_required"
	}
	if !phonePattern.MatchString(normalizePhone(form.Phone)) {
		violations["phone"] = "validation.phone_invalid"
	}

	if deliveryMethodID != constants.DeliveryMethodPickup {
		if strings.TrimSpace(form.Address) == "" {
			violations["address"] = "validation.address_required"
		}
		if strings.TrimSpace(form.City) == "" {
			violations["city"] = "validation.city_required"
		}
	}

	if strings.TrimSpace(form.SocialHandle) == "" {
		violations["social_handle"] = "validation.social_required"
	}
	if strings.TrimSpace(form.SocialChannelID) != "" {
		if _, err := s.registry.ResolveSocialChannel(form.SocialChannelID); err != nil {
			violations["social_channel_id"] = "error.social_channel_invalid"
		}
	}

	if strings.TrimSpace(form.PaymentMethodID) != "" {
		if _, err := s.registry.ResolvePaymentMethod(form.PaymentMethodID); err != nil {
			violations["payment_method_id"] = "error.payment_method_invalid"
		}
	}

	return violations
}

func newOrderNo() string {
	return fmt.Sprintf("MB-%s-%s",
		time.Now().Format("20060102"),
		strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10]),
	)
}

// Submit accepts an order: the form must be valid, the cart non-empty
// and a delivery method selected. A delayed confirmation task clears
// the cart after the confirmation window.
func (s *CheckoutService) Submit(sessionID string, form OrderForm) (*CheckoutResult, map[string]string, error) {
	if sessionID == "" {
		return nil, nil, ErrSessionInvalid
	}

	view, err := s.cartService.Get(sessionID)
	if err != nil {
		return nil, nil, err
	}
	if len(view.Items) == 0 {
		return nil, nil, ErrCartEmpty
	}
	if view.DeliveryMethod == nil {
		return nil, nil, ErrDeliveryMethodInvalid
	}

	violations := s.ValidateOrderForm(form, view.DeliveryMethod.ID)
	if len(violations) > 0 {
		return nil, violations, ErrOrderFormInvalid
	}

	orderNo := newOrderNo()
	payload := queue.OrderConfirmPayload{OrderNo: orderNo, SessionID: sessionID}
	if s.queueClient.Enabled() {
		if err := s.queueClient.EnqueueOrderConfirm(payload, s.confirmDelay); err != nil {
			logger.Errorw("order_confirm_enqueue_failed", "order_no", orderNo, "error", err)
			return nil, nil, ErrQueueUnavailable
		}
	} else {
		// No queue: confirm inline so the cart still resets.
		if err := s.cartService.Clear(sessionID); err != nil {
			return nil, nil, err
		}
	}

	logger.Infow("order_accepted",
		"order_no", orderNo,
		"session_id", sessionID,
		"items", len(view.Items),
		"total", view.Totals.Total.String(),
		"delivery_method", view.DeliveryMethod.ID,
		"payment_method", form.PaymentMethodID,
	)

	return &CheckoutResult{
		OrderNo:             orderNo,
		Status:              "accepted",
		Totals:              view.Totals,
		ConfirmDelaySeconds: int(s.confirmDelay / time.Second),
	}, nil, nil
}

// ConfirmOrder finalizes a submitted order: the session cart and promo
// are cleared. Invoked by the queue worker after the confirmation
// delay.
func (s *CheckoutService) ConfirmOrder(orderNo, sessionID string) error {
	if sessionID == "" {
		return ErrSessionInvalid
	}
	if err := s.cartService.Clear(sessionID); err != nil {
		return err
	}
	logger.Infow("order_confirmed", "order_no", orderNo, "session_id", sessionID)
	return nil
}
