package repository

import (
	"errors"
	"strings"

	"github.com/mebel-next/internal/constants"
	"github.com/mebel-next/internal/models"

	"gorm.io/gorm"
)

// ProductRepository is the catalog data access interface.
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	Count(filter ProductListFilter) (int64, error)
	GetBySlug(slug string, onlyActive bool) (*models.Product, error)
	GetByID(id uint) (*models.Product, error)
	ListByIDs(ids []uint) ([]models.Product, error)
	GetSizeByID(sizeID uint) (*models.ProductSize, error)
	PriceRange(onlyActive bool) (int64, int64, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository is the GORM implementation.
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a product repository.
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

func (r *GormProductRepository) buildListQuery(filter ProductListFilter) *gorm.DB {
	query := r.db.Model(&models.Product{})
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if kind := strings.TrimSpace(filter.Kind); kind != "" && kind != constants.CatalogCategoryAll {
		query = query.Where("kind = ?", kind)
	}
	if filter.PriceMin != nil {
		query = query.Where("price_amount >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price_amount <= ?", *filter.PriceMax)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	return query
}

// List returns a filtered, sorted catalog page and the total count.
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.buildListQuery(filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.WithSizes {
		query = query.Preload("Sizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		})
	}

	query = applyCatalogSort(query, filter.Sort)
	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// Count returns how many products match the filter.
func (r *GormProductRepository) Count(filter ProductListFilter) (int64, error) {
	var total int64
	if err := r.buildListQuery(filter).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func applyCatalogSort(query *gorm.DB, sort string) *gorm.DB {
	switch strings.TrimSpace(sort) {
	case "", constants.CatalogSortPopularity:
		return query.Order("popularity DESC, id ASC")
	case constants.CatalogSortPriceAsc:
		return query.Order("price_amount ASC, id ASC")
	case constants.CatalogSortPriceDesc:
		return query.Order("price_amount DESC, id ASC")
	case constants.CatalogSortNameAsc:
		return query.Order("name ASC, id ASC")
	case constants.CatalogSortNameDesc:
		return query.Order("name DESC, id ASC")
	default:
		return query.Order("popularity DESC, id ASC")
	}
}

// GetBySlug returns a product by slug, nil when absent.
func (r *GormProductRepository) GetBySlug(slug string, onlyActive bool) (*models.Product, error) {
	query := r.db.Where("slug = ?", slug)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	query = query.Preload("Sizes", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, id ASC")
	})

	var product models.Product
	if err := query.First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetByID returns a product by ID, nil when absent.
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.
		Preload("Sizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListByIDs returns products for a set of IDs.
func (r *GormProductRepository) ListByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	if err := r.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetSizeByID returns a size variant by ID, nil when absent.
func (r *GormProductRepository) GetSizeByID(sizeID uint) (*models.ProductSize, error) {
	var size models.ProductSize
	if err := r.db.First(&size, sizeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &size, nil
}

// PriceRange returns the min and max base price over the catalog.
func (r *GormProductRepository) PriceRange(onlyActive bool) (int64, int64, error) {
	type rangeRow struct {
		Min *float64
		Max *float64
	}
	query := r.db.Model(&models.Product{}).
		Select("MIN(price_amount) AS min, MAX(price_amount) AS max")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var row rangeRow
	if err := query.Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	if row.Min == nil || row.Max == nil {
		return 0, 0, nil
	}
	return int64(*row.Min), int64(*row.Max), nil
}

// Create inserts a product.
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update saves a product.
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}
