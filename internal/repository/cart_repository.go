package repository

import (
	"errors"

	"github.com/mebel-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository is the cart data access interface.
type CartRepository interface {
	ListBySession(sessionID string) ([]models.CartItem, error)
	GetLine(sessionID string, productID, sizeID uint, withMechanism bool) (*models.CartItem, error)
	Upsert(item *models.CartItem) error
	DeleteLine(sessionID string, productID, sizeID uint, withMechanism bool) error
	ClearBySession(sessionID string) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListBySession returns all cart lines of a session.
func (r *GormCartRepository) ListBySession(sessionID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Preload("Product.Sizes").
		Where("session_id = ?", sessionID).
		Order("created_at asc, id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetLine returns one cart line, nil when absent.
func (r *GormCartRepository) GetLine(sessionID string, productID, sizeID uint, withMechanism bool) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where(
		"session_id = ? AND product_id = ? AND size_id = ? AND with_mechanism = ?",
		sessionID, productID, sizeID, withMechanism,
	).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Upsert inserts a cart line or updates its quantity.
func (r *GormCartRepository) Upsert(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	existing, err := r.GetLine(item.SessionID, item.ProductID, item.SizeID, item.WithMechanism)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.Create(item).Error
	}
	updates := map[string]interface{}{
		"quantity":   item.Quantity,
		"updated_at": item.UpdatedAt,
	}
	return r.db.Model(existing).Updates(updates).Error
}

// DeleteLine removes one cart line.
func (r *GormCartRepository) DeleteLine(sessionID string, productID, sizeID uint, withMechanism bool) error {
	return r.db.Where(
		"session_id = ? AND product_id = ? AND size_id = ? AND with_mechanism = ?",
		sessionID, productID, sizeID, withMechanism,
	).Delete(&models.CartItem{}).Error
}

// ClearBySession removes all cart lines of a session.
func (r *GormCartRepository) ClearBySession(sessionID string) error {
	return r.db.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
}
