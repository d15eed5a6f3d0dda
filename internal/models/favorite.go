package models

import (
	"time"
)

// Favorite is a wishlist entry scoped to a guest session. Entries are
// hard-deleted so a removed product can be favorited again without the
// unique (session, product) index rejecting the re-insert.
type Favorite struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                                            // primary key
	SessionID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_fav_session_product" json:"session_id"` // guest session
	ProductID uint      `gorm:"not null;uniqueIndex:idx_fav_session_product" json:"product_id"`                  // product
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                                         // added time

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // linked product
}

// TableName sets the table name.
func (Favorite) TableName() string {
	return "favorites"
}
