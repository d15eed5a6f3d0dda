package repository

import (
	"errors"
	"time"

	"github.com/mebel-next/internal/models"

	"gorm.io/gorm"
)

// CartStateRepository manages per-session cart settings.
type CartStateRepository interface {
	GetOrCreate(sessionID string) (*models.CartState, error)
	Save(state *models.CartState) error
	ClearPromo(sessionID string) error
	WithTx(tx *gorm.DB) *GormCartStateRepository
}

// GormCartStateRepository is the GORM implementation.
type GormCartStateRepository struct {
	db *gorm.DB
}

// NewCartStateRepository creates a cart state repository.
func NewCartStateRepository(db *gorm.DB) *GormCartStateRepository {
	return &GormCartStateRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormCartStateRepository) WithTx(tx *gorm.DB) *GormCartStateRepository {
	if tx == nil {
		return r
	}
	return &GormCartStateRepository{db: tx}
}

// GetOrCreate returns the session state, creating an empty row when absent.
func (r *GormCartStateRepository) GetOrCreate(sessionID string) (*models.CartState, error) {
	var state models.CartState
	err := r.db.Where("session_id = ?", sessionID).First(&state).Error
	if err == nil {
		return &state, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	state = models.CartState{SessionID: sessionID, UpdatedAt: time.Now()}
	if err := r.db.Create(&state).Error; err != nil {
		return nil, err
	}
	return &state, nil
}

// Save persists the session state.
func (r *GormCartStateRepository) Save(state *models.CartState) error {
	if state == nil {
		return nil
	}
	state.UpdatedAt = time.Now()
	return r.db.Save(state).Error
}

// ClearPromo drops the applied promo code for a session.
func (r *GormCartStateRepository) ClearPromo(sessionID string) error {
	return r.db.Model(&models.CartState{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]interface{}{
			"promo_code": "",
			"updated_at": time.Now(),
		}).Error
}
