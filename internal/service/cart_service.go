package service

import (
	"time"

	"github.com/mebel-next/internal/models"
	"github.com/mebel-next/internal/repository"

	"github.com/shopspring/decimal"
)

// CartLineView is one cart line with its resolved price.
type CartLineView struct {
	ID            uint            `json:"id"`
	ProductID     uint            `json:"product_id"`
	SizeID        uint            `json:"size_id"`
	SizeLabel     string          `json:"size_label,omitempty"`
	WithMechanism bool            `json:"with_mechanism"`
	Quantity      int             `json:"quantity"`
	UnitPrice     models.Money    `json:"unit_price"`
	LineTotal     models.Money    `json:"line_total"`
	Product       *models.Product `json:"product,omitempty"`
}

// CartView is the full cart snapshot returned to clients.
type CartView struct {
	Items          []CartLineView  `json:"items"`
	PromoCode      string          `json:"promo_code,omitempty"`
	Promo          *PromoRule      `json:"promo,omitempty"`
	DeliveryMethod *DeliveryMethod `json:"delivery_method,omitempty"`
	Totals         CartTotals      `json:"totals"`
}

// AddCartItemInput describes a line to add or merge.
type AddCartItemInput struct {
	SessionID     string
	ProductID     uint
	SizeID        uint
	WithMechanism bool
	Quantity      int
}

// UpdateCartItemInput describes a quantity change for an existing line.
type UpdateCartItemInput struct {
	SessionID     string
	ProductID     uint
	SizeID        uint
	WithMechanism bool
	Quantity      int
}

// CartService manages session carts: lines, the applied promo code and
// the selected delivery method.
type CartService struct {
	cartRepo    repository.CartRepository
	stateRepo   repository.CartStateRepository
	productRepo repository.ProductRepository
	registry    *RegistryService
}

// NewCartService creates a cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	stateRepo repository.CartStateRepository,
	productRepo repository.ProductRepository,
	registry *RegistryService,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		stateRepo:   stateRepo,
		productRepo: productRepo,
		registry:    registry,
	}
}

// resolveUnitPrice computes the configured unit price of a line: the
// size variant price when a size is chosen, the base price otherwise,
// plus the lifting mechanism surcharge when selected.
func resolveUnitPrice(product *models.Product, sizeID uint, withMechanism bool) (models.Money, string, error) {
	price := product.PriceAmount
	label := ""
	if sizeID != 0 {
		found := false
		for _, size := range product.Sizes {
			if size.ID == sizeID {
				price = size.PriceAmount
				label = size.Label
				found = true
				break
			}
		}
		if !found {
			return models.Money{}, "", ErrProductSizeInvalid
		}
	}
	if withMechanism {
		if product.LiftingMechanismPrice == nil {
			return models.Money{}, "", ErrMechanismUnavailable
		}
		price = models.NewMoneyFromDecimal(price.Decimal.Add(product.LiftingMechanismPrice.Decimal))
	}
	return price, label, nil
}

// Get returns the cart snapshot for a session. Lines whose product is
// gone or inactive are dropped from the cart.
func (s *CartService) Get(sessionID string) (*CartView, error) {
	if sessionID == "" {
		return nil, ErrSessionInvalid
	}
	items, err := s.cartRepo.ListBySession(sessionID)
	if err != nil {
		return nil, err
	}

	views := make([]CartLineView, 0, len(items))
	lines := make([]PricingLine, 0, len(items))
	for _, item := range items {
		product := item.Product
		if product == nil || product.ID == 0 {
			product, err = s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
		}
		if product == nil || !product.IsActive {
			_ = s.cartRepo.DeleteLine(sessionID, item.ProductID, item.SizeID, item.WithMechanism)
			continue
		}

		unitPrice, sizeLabel, err := resolveUnitPrice(product, item.SizeID, item.WithMechanism)
		if err != nil {
			_ = s.cartRepo.DeleteLine(sessionID, item.ProductID, item.SizeID, item.WithMechanism)
			continue
		}

		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		lineTotal := models.NewMoneyFromDecimal(unitPrice.Decimal.Mul(decimal.NewFromInt(int64(quantity))))
		views = append(views, CartLineView{
			ID:            item.ID,
			ProductID:     item.ProductID,
			SizeID:        item.SizeID,
			SizeLabel:     sizeLabel,
			WithMechanism: item.WithMechanism,
			Quantity:      quantity,
			UnitPrice:     unitPrice,
			LineTotal:     lineTotal,
			Product:       product,
		})
		lines = append(lines, PricingLine{UnitPrice: unitPrice, Quantity: quantity})
	}

	state, err := s.stateRepo.GetOrCreate(sessionID)
	if err != nil {
		return nil, err
	}

	var promo *PromoRule
	if state.PromoCode != "" {
		rule, err := s.registry.ResolvePromoCode(state.PromoCode)
		if err == nil {
			promo = rule
		} else {
			// Stored code no longer in the registry.
			_ = s.stateRepo.ClearPromo(sessionID)
		}
	}

	var delivery *DeliveryMethod
	if state.DeliveryMethodID != "" {
		method, err := s.registry.ResolveDeliveryMethod(state.DeliveryMethodID)
		if err == nil {
			delivery = method
		}
	}

	view := &CartView{
		Items:          views,
		Promo:          promo,
		DeliveryMethod: delivery,
		Totals:         ComputeTotals(lines, promo, delivery),
	}
	if promo != nil {
		view.PromoCode = promo.Code
	}
	return view, nil
}

// AddItem adds a configured line to the cart or merges quantities with
// an existing line of the same configuration.
func (s *CartService) AddItem(input AddCartItemInput) (*CartView, error) {
	if input.SessionID == "" {
		return nil, ErrSessionInvalid
	}
	if input.ProductID == 0 {
		return nil, ErrInvalidCartItem
	}
	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotAvailable
	}
	if _, _, err := resolveUnitPrice(product, input.SizeID, input.WithMechanism); err != nil {
		return nil, err
	}

	existing, err := s.cartRepo.GetLine(input.SessionID, input.ProductID, input.SizeID, input.WithMechanism)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		quantity += existing.Quantity
	}

	now := time.Now()
	item := &models.CartItem{
		SessionID:     input.SessionID,
		ProductID:     input.ProductID,
		SizeID:        input.SizeID,
		WithMechanism: input.WithMechanism,
		Quantity:      quantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.cartRepo.Upsert(item); err != nil {
		return nil, err
	}
	return s.Get(input.SessionID)
}

// UpdateQuantity sets the quantity of an existing line. Values below
// one are clamped to one.
func (s *CartService) UpdateQuantity(input UpdateCartItemInput) (*CartView, error) {
	if input.SessionID == "" {
		return nil, ErrSessionInvalid
	}
	existing, err := s.cartRepo.GetLine(input.SessionID, input.ProductID, input.SizeID, input.WithMechanism)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrCartItemNotFound
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}
	existing.Quantity = quantity
	existing.UpdatedAt = time.Now()
	if err := s.cartRepo.Upsert(existing); err != nil {
		return nil, err
	}
	return s.Get(input.SessionID)
}

// RemoveItem deletes one line from the cart.
func (s *CartService) RemoveItem(sessionID string, productID, sizeID uint, withMechanism bool) (*CartView, error) {
	if sessionID == "" {
		return nil, ErrSessionInvalid
	}
	existing, err := s.cartRepo.GetLine(sessionID, productID, sizeID, withMechanism)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrCartItemNotFound
	}
	if err := s.cartRepo.DeleteLine(sessionID, productID, sizeID, withMechanism); err != nil {
		return nil, err
	}
	return s.Get(sessionID)
}

// Clear removes all lines and resets the promo code. The delivery
// selection is kept.
func (s *CartService) Clear(sessionID string) error {
	if sessionID == "" {
		return ErrSessionInvalid
	}
	if err := s.cartRepo.ClearBySession(sessionID); err != nil {
		return err
	}
	return s.stateRepo.ClearPromo(sessionID)
}

// ApplyPromo validates and stores a promo code. Applying a second code
// replaces the first: at most one promo is active per cart.
func (s *CartService) ApplyPromo(sessionID, code string) (*CartView, error) {
	if sessionID == "" {
		return nil, ErrSessionInvalid
	}
	rule, err := s.registry.ResolvePromoCode(code)
	if err != nil {
		return nil, err
	}
	state, err := s.stateRepo.GetOrCreate(sessionID)
	if err != nil {
		return nil, err
	}
	state.PromoCode = rule.Code
	if err := s.stateRepo.Save(state); err != nil {
		return nil, err
	}
	return s.Get(sessionID)
}

// RemovePromo drops the applied promo code.
func (s *CartService) RemovePromo(sessionID string) (*CartView, error) {
	if sessionID == "" {
		return nil, ErrSessionInvalid
	}
	if err := s.stateRepo.ClearPromo(sessionID); err != nil {
		return nil, err
	}
	return s.Get(sessionID)
}

// SelectDelivery stores the delivery method choice.
func (s *CartService) SelectDelivery(sessionID, methodID string) (*CartView, error) {
	if sessionID == "" {
		return nil, ErrSessionInvalid
	}
	method, err := s.registry.ResolveDeliveryMethod(methodID)
	if err != nil {
		return nil, err
	}
	state, err := s.stateRepo.GetOrCreate(sessionID)
	if err != nil {
		return nil, err
	}
	state.DeliveryMethodID = method.ID
	if err := s.stateRepo.Save(state); err != nil {
		return nil, err
	}
	return s.Get(sessionID)
}
