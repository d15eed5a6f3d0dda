package public

import (
	"github.com/mebel-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetConfig returns the storefront registries the frontend renders:
// delivery methods, payment methods and social channels. Promo codes
// are not exposed.
func (h *Handler) GetConfig(c *gin.Context) {
	response.Success(c, gin.H{
		"currency":         "RUB",
		"languages":        []string{"ru-RU", "en-US"},
		"delivery_methods": h.RegistryService.DeliveryMethods(),
		"payment_methods":  h.RegistryService.PaymentMethods(),
		"social_channels":  h.RegistryService.SocialChannels(),
	})
}
