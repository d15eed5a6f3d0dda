package models

import "time"

// CartState holds per-session cart settings: the applied promo code and
// the selected delivery method. At most one promo code is stored, which
// keeps the at-most-one-applied rule in the schema itself. Shipping cost
// is never stored here; it is always derived from the selected method.
type CartState struct {
	SessionID        string    `gorm:"primarykey;type:varchar(64)" json:"session_id"`              // guest session
	PromoCode        string    `gorm:"type:varchar(50);not null;default:''" json:"promo_code"`     // applied promo, empty = none
	DeliveryMethodID string    `gorm:"type:varchar(20);not null;default:''" json:"delivery_method_id"` // selected delivery method
	UpdatedAt        time.Time `json:"updated_at"`                                                 // update time
}

// TableName sets the table name.
func (CartState) TableName() string {
	return "cart_states"
}
