package service

import (
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

func setupFavoritesServiceTest(t *testing.T) (*FavoritesService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:favorites_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.ProductSize{}, &models.Favorite{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	svc := NewFavoritesService(
		repository.NewFavoriteRepository(db),
		repository.NewProductRepository(db),
	)
	return svc, db
}

func seedFavoritesProduct(t *testing.T, db *gorm.DB, slug string, price int64) *models.Product {
	t.Helper()
	product := &models.Product{
		Kind:        constants.ProductKindSofa,
		Slug:        slug,
		Name:        "Диван " + slug,
		PriceAmount: models.NewMoneyFromInt(price),
		IsActive:    true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestFavoritesAddListRemove(t *testing.T) {
	svc, db := setupFavoritesServiceTest(t)
	product := seedFavoritesProduct(t, db, "fav-svc-basic", 30000)
	session := "fav-svc-basic"

	if err := svc.Add(session, product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Add(session, product.ID); err != nil {
		t.Fatalf("re-add failed: %v", err)
	}

	views, err := svc.List(session, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 1 || views[0].ProductID != product.ID {
		t.Fatalf("list want 1 entry got %+v", views)
	}
	if views[0].Product == nil || views[0].Product.Slug != product.Slug {
		t.Fatalf("product preload missing: %+v", views[0])
	}

	if err := svc.Remove(session, product.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	count, err := svc.Count(session)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count want 0 got %d", count)
	}
}

func TestFavoritesAddRejectsUnknownProduct(t *testing.T) {
	svc, _ := setupFavoritesServiceTest(t)

	if err := svc.Add("fav-svc-unknown", 99999); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("unknown product want ErrProductNotAvailable got %v", err)
	}
	if err := svc.Add("", 1); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("blank session want ErrSessionInvalid got %v", err)
	}
}

func TestFavoritesToggle(t *testing.T) {
	svc, db := setupFavoritesServiceTest(t)
	product := seedFavoritesProduct(t, db, "fav-svc-toggle", 25000)
	session := "fav-svc-toggle"

	added, err := svc.Toggle(session, product.ID)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !added {
		t.Fatalf("first toggle want added=true")
	}

	added, err = svc.Toggle(session, product.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if added {
		t.Fatalf("second toggle want added=false")
	}

	count, err := svc.Count(session)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count after double toggle want 0 got %d", count)
	}

	// Toggling off must not block toggling back on.
	added, err = svc.Toggle(session, product.ID)
	if err != nil {
		t.Fatalf("third toggle failed: %v", err)
	}
	if !added {
		t.Fatalf("third toggle want added=true")
	}
	count, err = svc.Count(session)
	if err != nil {
		t.Fatalf("count after third toggle failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count after third toggle want 1 got %d", count)
	}
}

func TestFavoritesListDropsInactiveProducts(t *testing.T) {
	svc, db := setupFavoritesServiceTest(t)
	product := seedFavoritesProduct(t, db, "fav-svc-inactive", 40000)
	session := "fav-svc-inactive"

	if err := svc.Add(session, product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	views, err := svc.List(session, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("inactive product should be dropped got %+v", views)
	}

	count, err := svc.Count(session)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("entry should be removed from storage got %d", count)
	}
}

func TestFavoritesClear(t *testing.T) {
	svc, db := setupFavoritesServiceTest(t)
	session := "fav-svc-clear"
	for i := 0; i < 3; i++ {
		product := seedFavoritesProduct(t, db, fmt.Sprintf("fav-svc-clear-%d", i), int64(20000+i*1000))
		if err := svc.Add(session, product.ID); err != nil {
			t.Fatalf("add %d failed: %v", i, err)
		}
	}

	if err := svc.Clear(session); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	count, err := svc.Count(session)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count after clear want 0 got %d", count)
	}
}
