package repository

import (
	"strings"

	"github.com/mebel-next/internal/constants"
	"github.com/mebel-next/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository is the wishlist data access interface.
type FavoriteRepository interface {
	ListBySession(filter FavoriteListFilter) ([]models.Favorite, error)
	Exists(sessionID string, productID uint) (bool, error)
	Add(favorite *models.Favorite) error
	Remove(sessionID string, productID uint) error
	ClearBySession(sessionID string) error
	CountBySession(sessionID string) (int64, error)
	WithTx(tx *gorm.DB) *GormFavoriteRepository
}

// GormFavoriteRepository is the GORM implementation.
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a favorite repository.
func NewFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormFavoriteRepository) WithTx(tx *gorm.DB) *GormFavoriteRepository {
	if tx == nil {
		return r
	}
	return &GormFavoriteRepository{db: tx}
}

// ListBySession returns sorted favorites of a session with products preloaded.
// Price and name sorts join the products table.
func (r *GormFavoriteRepository) ListBySession(filter FavoriteListFilter) ([]models.Favorite, error) {
	query := r.db.Model(&models.Favorite{}).
		Preload("Product").
		Preload("Product.Sizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Where("favorites.session_id = ?", filter.SessionID)

	query = applyFavoritesSort(query, filter.Sort)

	var favorites []models.Favorite
	if err := query.Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

func applyFavoritesSort(query *gorm.DB, sort string) *gorm.DB {
	joinProducts := func(q *gorm.DB) *gorm.DB {
		return q.Joins("JOIN products ON products.id = favorites.product_id")
	}
	switch strings.TrimSpace(sort) {
	case "", constants.FavoritesSortDateNewest:
		return query.Order("favorites.created_at DESC, favorites.id DESC")
	case constants.FavoritesSortDateOldest:
		return query.Order("favorites.created_at ASC, favorites.id ASC")
	case constants.FavoritesSortPriceLow:
		return joinProducts(query).Order("products.price_amount ASC, favorites.id ASC")
	case constants.FavoritesSortPriceHigh:
		return joinProducts(query).Order("products.price_amount DESC, favorites.id ASC")
	case constants.FavoritesSortNameAsc:
		return joinProducts(query).Order("products.name ASC, favorites.id ASC")
	case constants.FavoritesSortNameDesc:
		return joinProducts(query).Order("products.name DESC, favorites.id ASC")
	default:
		return query.Order("favorites.created_at DESC, favorites.id DESC")
	}
}

// Exists reports whether a product is in the session's favorites.
func (r *GormFavoriteRepository) Exists(sessionID string, productID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add inserts a favorite. Adding an existing entry is a no-op.
func (r *GormFavoriteRepository) Add(favorite *models.Favorite) error {
	if favorite == nil {
		return nil
	}
	exists, err := r.Exists(favorite.SessionID, favorite.ProductID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return r.db.Create(favorite).Error
}

// Remove deletes a favorite entry.
func (r *GormFavoriteRepository) Remove(sessionID string, productID uint) error {
	return r.db.Where("session_id = ? AND product_id = ?", sessionID, productID).
		Delete(&models.Favorite{}).Error
}

// ClearBySession removes all favorites of a session.
func (r *GormFavoriteRepository) ClearBySession(sessionID string) error {
	return r.db.Where("session_id = ?", sessionID).Delete(&models.Favorite{}).Error
}

// CountBySession returns how many favorites a session has.
func (r *GormFavoriteRepository) CountBySession(sessionID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	return count, err
}
