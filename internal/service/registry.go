package service

import (
	"strings"

	"github.com/mebel-next/internal/config"
	"github.com/mebel-next/internal/models"
)

// PromoRule is a resolved promo code.
type PromoRule struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discount_percent"`
	FreeShipping    bool   `json:"free_shipping"`
}

// DeliveryMethod is a resolved delivery method.
type DeliveryMethod struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Price models.Money `json:"price"`
}

// PaymentMethod is a resolved payment method.
type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SocialChannel is a resolved social contact channel.
type SocialChannel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RegistryService resolves the storefront registries configured for the
// shop: promo codes, delivery methods, payment methods and social
// channels.
type RegistryService struct {
	store config.StoreConfig
}

// NewRegistryService creates a registry service.
func NewRegistryService(store config.StoreConfig) *RegistryService {
	return &RegistryService{store: store}
}

// NormalizePromoCode trims surrounding whitespace and uppercases the
// code so lookups are case-insensitive.
func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ResolvePromoCode validates a raw promo code against the registry.
func (s *RegistryService) ResolvePromoCode(raw string) (*PromoRule, error) {
	normalized := NormalizePromoCode(raw)
	if normalized == "" {
		return nil, ErrPromoCodeEmpty
	}
	for _, entry := range s.store.PromoCodes {
		if NormalizePromoCode(entry.Code) == normalized {
			return &PromoRule{
				Code:            NormalizePromoCode(entry.Code),
				DiscountPercent: entry.DiscountPercent,
				FreeShipping:    entry.FreeShipping,
			}, nil
		}
	}
	return nil, ErrPromoCodeInvalid
}

// DeliveryMethods returns all configured delivery methods.
func (s *RegistryService) DeliveryMethods() []DeliveryMethod {
	methods := make([]DeliveryMethod, 0, len(s.store.DeliveryMethods))
	for _, entry := range s.store.DeliveryMethods {
		methods = append(methods, DeliveryMethod{
			ID:    entry.ID,
			Name:  entry.Name,
			Price: models.NewMoneyFromInt(entry.Price),
		})
	}
	return methods
}

// ResolveDeliveryMethod looks up a delivery method by ID.
func (s *RegistryService) ResolveDeliveryMethod(id string) (*DeliveryMethod, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrDeliveryMethodInvalid
	}
	for _, entry := range s.store.DeliveryMethods {
		if entry.ID == id {
			return &DeliveryMethod{
				ID:    entry.ID,
				Name:  entry.Name,
				Price: models.NewMoneyFromInt(entry.Price),
			}, nil
		}
	}
	return nil, ErrDeliveryMethodInvalid
}

// PaymentMethods returns all configured payment methods.
func (s *RegistryService) PaymentMethods() []PaymentMethod {
	methods := make([]PaymentMethod, 0, len(s.store.PaymentMethods))
	for _, entry := range s.store.PaymentMethods {
		methods = append(methods, PaymentMethod{ID: entry.ID, Name: entry.Name})
	}
	return methods
}

// ResolvePaymentMethod looks up a payment method by ID.
func (s *RegistryService) ResolvePaymentMethod(id string) (*PaymentMethod, error) {
	id = strings.TrimSpace(id)
	for _, entry := range s.store.PaymentMethods {
		if entry.ID == id {
			return &PaymentMethod{ID: entry.ID, Name: entry.Name}, nil
		}
	}
	return nil, ErrPaymentMethodInvalid
}

// SocialChannels returns all configured social channels.
func (s *RegistryService) SocialChannels() []SocialChannel {
	channels := make([]SocialChannel, 0, len(s.store.SocialChannels))
	for _, entry := range s.store.SocialChannels {
		channels = append(channels, SocialChannel{ID: entry.ID, Name: entry.Name})
	}
	return channels
}

// ResolveSocialChannel looks up a social channel by ID.
func (s *RegistryService) ResolveSocialChannel(id string) (*SocialChannel, error) {
	id = strings.TrimSpace(id)
	for _, entry := range s.store.SocialChannels {
		if entry.ID == id {
			return &SocialChannel{ID: entry.ID, Name: entry.Name}, nil
		}
	}
	return nil, ErrSocialChannelInvalid
}
