package service

import (
	"time"

	"github.com/mebel-next/internal/models"
	"github.com/mebel-next/internal/repository"
)

// FavoriteView is one wishlist entry with its product.
type FavoriteView struct {
	ProductID uint            `json:"product_id"`
	AddedAt   time.Time       `json:"added_at"`
	Product   *models.Product `json:"product"`
}

// FavoritesService manages the session wishlist.
type FavoritesService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
}

// NewFavoritesService creates a favorites service.
func NewFavoritesService(favoriteRepo repository.FavoriteRepository, productRepo repository.ProductRepository) *FavoritesService {
	return &FavoritesService{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
	}
}

// List returns the session's favorites in the requested order. Entries
// whose product is gone or inactive are dropped.
func (s *FavoritesService) List(sessionID, sort string) ([]FavoriteView, error) {
	if sessionID == "" {
		return nil, ErrSessionInvalid
	}
	favorites, err := s.favoriteRepo.ListBySession(repository.FavoriteListFilter{
		SessionID: sessionID,
		Sort:      sort,
	})
	if err != nil {
		return nil, err
	}

	views := make([]FavoriteView, 0, len(favorites))
	for _, favorite := range favorites {
		product := favorite.Product
		if product == nil || !product.IsActive {
			_ = s.favoriteRepo.Remove(sessionID, favorite.ProductID)
			continue
		}
		views = append(views, FavoriteView{
			ProductID: favorite.ProductID,
			AddedAt:   favorite.CreatedAt,
			Product:   product,
		})
	}
	return views, nil
}

// Add puts a product on the wishlist. Re-adding is a no-op.
func (s *FavoritesService) Add(sessionID string, productID uint) error {
	if sessionID == "" {
		return ErrSessionInvalid
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil || !product.IsActive {
		return ErrProductNotAvailable
	}
	return s.favoriteRepo.Add(&models.Favorite{
		SessionID: sessionID,
		ProductID: productID,
		CreatedAt: time.Now(),
	})
}

// Toggle flips the wishlist state of a product and reports the new
// state.
func (s *FavoritesService) Toggle(sessionID string, productID uint) (bool, error) {
	if sessionID == "" {
		return false, ErrSessionInvalid
	}
	exists, err := s.favoriteRepo.Exists(sessionID, productID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, s.favoriteRepo.Remove(sessionID, productID)
	}
	return true, s.Add(sessionID, productID)
}

// Remove takes a product off the wishlist.
func (s *FavoritesService) Remove(sessionID string, productID uint) error {
	if sessionID == "" {
		return ErrSessionInvalid
	}
	return s.favoriteRepo.Remove(sessionID, productID)
}

// Clear empties the wishlist.
func (s *FavoritesService) Clear(sessionID string) error {
	if sessionID == "" {
		return ErrSessionInvalid
	}
	return s.favoriteRepo.ClearBySession(sessionID)
}

// Count returns the wishlist size.
func (s *FavoritesService) Count(sessionID string) (int64, error) {
	if sessionID == "" {
		return 0, ErrSessionInvalid
	}
	return s.favoriteRepo.CountBySession(sessionID)
}
