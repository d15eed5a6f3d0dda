package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mebel-next/internal/constants"
	"github.com/mebel-next/internal/models"
	"github.com/mebel-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCatalogServiceTest(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:catalog_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.ProductSize{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	svc := NewCatalogService(repository.NewProductRepository(db), 30, 300, 300)
	t.Cleanup(svc.Close)
	return svc, db
}

func seedCatalogServiceProduct(t *testing.T, db *gorm.DB, slug, kind string, price int64, popularity int) *models.Product {
	t.Helper()
	product := &models.Product{
		Kind:        kind,
		Slug:        slug,
		Name:        "Товар " + slug,
		PriceAmount: models.NewMoneyFromInt(price),
		Popularity:  popularity,
		IsActive:    true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestCatalogListPaginatesAndNormalizesInput(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	for i := 0; i < 5; i++ {
		seedCatalogServiceProduct(t, db, fmt.Sprintf("cat-page-%d", i), constants.ProductKindSofa, int64(10000+i*1000), i)
	}

	page, err := svc.List(CatalogListInput{Page: 1, PageSize: 2, Sort: constants.CatalogSortPriceAsc})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 5 {
		t.Fatalf("total want 5 got %d", page.Total)
	}
	if len(page.Items) != 2 {
		t.Fatalf("page size want 2 got %d", len(page.Items))
	}
	if page.Items[0].Slug != "cat-page-0" {
		t.Fatalf("first item want cat-page-0 got %s", page.Items[0].Slug)
	}

	page, err = svc.List(CatalogListInput{Page: -3, PageSize: 0})
	if err != nil {
		t.Fatalf("list with bad paging failed: %v", err)
	}
	if page.Page != 1 || page.PageSize != defaultCatalogLimit {
		t.Fatalf("paging normalize want page=1 size=%d got page=%d size=%d",
			defaultCatalogLimit, page.Page, page.PageSize)
	}
}

func TestCatalogGetBySlug(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	product := seedCatalogServiceProduct(t, db, "cat-detail", constants.ProductKindBed, 50000, 1)

	got, err := svc.GetBySlug(product.Slug)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if got.ID != product.ID {
		t.Fatalf("product want id=%d got id=%d", product.ID, got.ID)
	}

	if _, err := svc.GetBySlug("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing slug want ErrNotFound got %v", err)
	}
	if _, err := svc.GetBySlug("   "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("blank slug want ErrNotFound got %v", err)
	}
}

func TestCatalogCountAndPriceRangeWithoutCache(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	seedCatalogServiceProduct(t, db, "cat-count-sofa", constants.ProductKindSofa, 20000, 1)
	seedCatalogServiceProduct(t, db, "cat-count-bed", constants.ProductKindBed, 70000, 1)

	ctx := context.Background()

	total, err := svc.Count(ctx, CatalogListInput{Kind: constants.ProductKindBed})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("count want 1 got %d", total)
	}

	priceRange, err := svc.PriceRange(ctx)
	if err != nil {
		t.Fatalf("price range failed: %v", err)
	}
	if priceRange.Min != 20000 || priceRange.Max != 70000 {
		t.Fatalf("price range want 20000..70000 got %d..%d", priceRange.Min, priceRange.Max)
	}
}
