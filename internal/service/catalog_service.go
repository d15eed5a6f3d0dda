package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mebel-next/internal/cache"
	"github.com/mebel-next/internal/constants"
	"github.com/mebel-next/internal/debounce"
	"github.com/mebel-next/internal/logger"
	"github.com/mebel-next/internal/models"
	"github.com/mebel-next/internal/repository"
)

const (
	priceRangeCacheKey  = "catalog:price_range"
	countCacheKeyPrefix = "catalog:count"
	defaultCatalogPage  = 1
	defaultCatalogLimit = 12
	maxCatalogPageSize  = 100
)

// CatalogListInput narrows a catalog page request.
type CatalogListInput struct {
	Page     int
	PageSize int
	Kind     string
	PriceMin *int64
	PriceMax *int64
	Search   string
	Sort     string
}

// CatalogPage is one page of catalog results.
type CatalogPage struct {
	Items    []models.Product `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// PriceRange is the catalog price span used by the filter slider.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// CatalogService serves catalog browsing: filtered listings, product
// detail, counts and the price range. Counts and the price range are
// cached in Redis; price range recomputation is debounced so bursts of
// catalog changes refresh it once.
type CatalogService struct {
	productRepo    repository.ProductRepository
	countTTL       time.Duration
	rangeTTL       time.Duration
	rangeDebouncer *debounce.Debouncer
}

// NewCatalogService creates a catalog service.
func NewCatalogService(productRepo repository.ProductRepository, countTTLSeconds, rangeDebounceMS, rangeTTLSeconds int) *CatalogService {
	svc := &CatalogService{
		productRepo: productRepo,
		countTTL:    time.Duration(normalizeSeconds(countTTLSeconds, 30)) * time.Second,
		rangeTTL:    time.Duration(normalizeSeconds(rangeTTLSeconds, 300)) * time.Second,
	}
	delay := time.Duration(normalizeSeconds(rangeDebounceMS, 300)) * time.Millisecond
	svc.rangeDebouncer = debounce.New(delay, svc.warmPriceRange)
	return svc
}

func normalizeSeconds(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}

func normalizeListInput(input CatalogListInput) CatalogListInput {
	if input.Page < 1 {
		input.Page = defaultCatalogPage
	}
	if input.PageSize <= 0 {
		input.PageSize = defaultCatalogLimit
	}
	if input.PageSize > maxCatalogPageSize {
		input.PageSize = maxCatalogPageSize
	}
	input.Kind = strings.TrimSpace(input.Kind)
	input.Search = strings.TrimSpace(input.Search)
	input.Sort = strings.TrimSpace(input.Sort)
	return input
}

func (input CatalogListInput) filter(withSizes bool) repository.ProductListFilter {
	return repository.ProductListFilter{
		Page:       input.Page,
		PageSize:   input.PageSize,
		Kind:       input.Kind,
		PriceMin:   input.PriceMin,
		PriceMax:   input.PriceMax,
		Search:     input.Search,
		Sort:       input.Sort,
		OnlyActive: true,
		WithSizes:  withSizes,
	}
}

// List returns a filtered, sorted catalog page.
func (s *CatalogService) List(input CatalogListInput) (*CatalogPage, error) {
	input = normalizeListInput(input)
	items, total, err := s.productRepo.List(input.filter(true))
	if err != nil {
		return nil, err
	}
	return &CatalogPage{
		Items:    items,
		Total:    total,
		Page:     input.Page,
		PageSize: input.PageSize,
	}, nil
}

// GetBySlug returns one active product with its size variants.
func (s *CatalogService) GetBySlug(slug string) (*models.Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrNotFound
	}
	product, err := s.productRepo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

func countCacheKey(input CatalogListInput) string {
	min := ""
	if input.PriceMin != nil {
		min = fmt.Sprintf("%d", *input.PriceMin)
	}
	max := ""
	if input.PriceMax != nil {
		max = fmt.Sprintf("%d", *input.PriceMax)
	}
	kind := input.Kind
	if kind == "" {
		kind = constants.CatalogCategoryAll
	}
	return fmt.Sprintf("%s:%s:%s:%s:%s", countCacheKeyPrefix, kind, min, max, input.Search)
}

// Count returns how many products match the filter, served from cache
// when fresh.
func (s *CatalogService) Count(ctx context.Context, input CatalogListInput) (int64, error) {
	input = normalizeListInput(input)
	key := countCacheKey(input)

	var cached int64
	if hit, err := cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	total, err := s.productRepo.Count(input.filter(false))
	if err != nil {
		return 0, err
	}
	if err := cache.SetJSON(ctx, key, total, s.countTTL); err != nil {
		logger.Warnw("catalog_count_cache_write_failed", "error", err)
	}
	return total, nil
}

// PriceRange returns the min and max catalog price, served from cache
// when fresh.
func (s *CatalogService) PriceRange(ctx context.Context) (*PriceRange, error) {
	var cached PriceRange
	if hit, err := cache.GetJSON(ctx, priceRangeCacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	min, max, err := s.productRepo.PriceRange(true)
	if err != nil {
		return nil, err
	}
	result := &PriceRange{Min: min, Max: max}
	if err := cache.SetJSON(ctx, priceRangeCacheKey, result, s.rangeTTL); err != nil {
		logger.Warnw("catalog_price_range_cache_write_failed", "error", err)
	}
	return result, nil
}

// InvalidatePriceRange schedules a debounced price range recomputation
// after catalog changes.
func (s *CatalogService) InvalidatePriceRange() {
	s.rangeDebouncer.Trigger()
}

// Close stops background timers.
func (s *CatalogService) Close() {
	s.rangeDebouncer.Stop()
}

func (s *CatalogService) warmPriceRange() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	min, max, err := s.productRepo.PriceRange(true)
	if err != nil {
		logger.Warnw("catalog_price_range_refresh_failed", "error", err)
		return
	}
	result := &PriceRange{Min: min, Max: max}
	if err := cache.SetJSON(ctx, priceRangeCacheKey, result, s.rangeTTL); err != nil {
		logger.Warnw("catalog_price_range_cache_write_failed", "error", err)
	}
}
