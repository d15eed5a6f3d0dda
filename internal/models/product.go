package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalog item (sofa or bed).
type Product struct {
	ID                    uint           `gorm:"primarykey" json:"id"`                                        // primary key
	Kind                  string         `gorm:"type:varchar(20);not null;index" json:"kind"`                 // sofa / bed
	Slug                  string         `gorm:"uniqueIndex;not null" json:"slug"`                            // unique identifier
	Name                  string         `gorm:"type:varchar(200);not null;index" json:"name"`                // display name
	Description           string         `gorm:"type:text" json:"description"`                                // short description
	PriceAmount           Money          `gorm:"type:decimal(20,2);not null;default:0;index" json:"price_amount"` // base price
	OldPriceAmount        *Money         `gorm:"type:decimal(20,2)" json:"old_price_amount,omitempty"`        // pre-discount price
	DiscountPercent       int            `gorm:"not null;default:0" json:"discount_percent"`                  // catalog badge percent
	Popularity            int            `gorm:"not null;default:0;index" json:"popularity"`                  // popularity score
	LiftingMechanismPrice *Money         `gorm:"type:decimal(20,2)" json:"lifting_mechanism_price,omitempty"` // bed option surcharge
	Images                StringArray    `gorm:"type:json" json:"images"`                                     // image paths
	Tags                  StringArray    `gorm:"type:json" json:"tags"`                                       // tag list
	IsActive              bool           `gorm:"default:true;index" json:"is_active"`                         // listed in catalog
	SortOrder             int            `gorm:"default:0;index" json:"sort_order"`                           // manual ordering weight
	CreatedAt             time.Time      `gorm:"index" json:"created_at"`                                     // creation time
	UpdatedAt             time.Time      `json:"updated_at"`                                                  // update time
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`                                              // soft delete time

	Sizes []ProductSize `gorm:"foreignKey:ProductID" json:"sizes,omitempty"` // size variants
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}

// ProductSize is a size variant with its own price.
type ProductSize struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                        // primary key
	ProductID   uint           `gorm:"not null;index" json:"product_id"`                            // parent product
	Label       string         `gorm:"type:varchar(50);not null" json:"label"`                      // e.g. 140x200
	PriceAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"`   // variant price
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`                           // ordering weight
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                              // soft delete time
}

// TableName sets the table name.
func (ProductSize) TableName() string {
	return "product_sizes"
}
