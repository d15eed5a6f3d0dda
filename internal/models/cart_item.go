package models

import (
	"time"
)

// CartItem is a cart line scoped to a guest session. A line is identified
// by product, size variant and the lifting-mechanism flag, so the same
// product in a different configuration becomes a separate line.
// Lines are hard-deleted: a soft-delete marker would keep dead rows in
// the unique line index and block re-adding a removed configuration.
type CartItem struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                                           // primary key
	SessionID     string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_session_line" json:"session_id"`  // guest session
	ProductID     uint      `gorm:"not null;uniqueIndex:idx_cart_session_line" json:"product_id"`                   // product
	SizeID        uint      `gorm:"not null;default:0;uniqueIndex:idx_cart_session_line" json:"size_id"`            // size variant, 0 = base
	WithMechanism bool      `gorm:"not null;default:false;uniqueIndex:idx_cart_session_line" json:"with_mechanism"` // bed lifting mechanism
	Quantity      int       `gorm:"not null" json:"quantity"`                                                       // quantity, >= 1
	CreatedAt     time.Time `gorm:"index" json:"created_at"`                                                        // creation time
	UpdatedAt     time.Time `gorm:"index" json:"updated_at"`                                                        // update time

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // linked product
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart_items"
}
