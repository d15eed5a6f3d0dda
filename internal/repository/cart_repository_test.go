package repository

import (
	"testing"

	"github.com/mebel-next/internal/constants"
	"github.com/mebel-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.ProductSize{}, &models.CartItem{}, &models.CartState{}); err != nil {
		t.Fatalf("migrate cart tables failed: %v", err)
	}
	return NewCartRepository(db), db
}

func createCartProduct(t *testing.T, db *gorm.DB, slug string, price int64) *models.Product {
	t.Helper()
	product := &models.Product{
		Kind:        constants.ProductKindSofa,
		Slug:        slug,
		Name:        "Тест " + slug,
		PriceAmount: models.NewMoneyFromInt(price),
		IsActive:    true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestCartUpsertCreatesAndMergesLines(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := createCartProduct(t, db, "cart-upsert", 30000)
	session := "cart-upsert-session"

	if err := repo.Upsert(&models.CartItem{
		SessionID: session,
		ProductID: product.ID,
		Quantity:  1,
	}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	if err := repo.Upsert(&models.CartItem{
		SessionID: session,
		ProductID: product.ID,
		Quantity:  3,
	}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	items, err := repo.ListBySession(session)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("lines want 1 got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("quantity want 3 got %d", items[0].Quantity)
	}
	if items[0].Product == nil || items[0].Product.Slug != product.Slug {
		t.Fatalf("product preload missing: %+v", items[0].Product)
	}
}

func TestCartLineIdentityBySizeAndMechanism(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := createCartProduct(t, db, "cart-identity", 40000)
	session := "cart-identity-session"

	lines := []models.CartItem{
		{SessionID: session, ProductID: product.ID, SizeID: 0, WithMechanism: false, Quantity: 1},
		{SessionID: session, ProductID: product.ID, SizeID: 7, WithMechanism: false, Quantity: 1},
		{SessionID: session, ProductID: product.ID, SizeID: 7, WithMechanism: true, Quantity: 1},
	}
	for i := range lines {
		if err := repo.Upsert(&lines[i]); err != nil {
			t.Fatalf("upsert line %d failed: %v", i, err)
		}
	}

	items, err := repo.ListBySession(session)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("distinct lines want 3 got %d", len(items))
	}

	got, err := repo.GetLine(session, product.ID, 7, true)
	if err != nil {
		t.Fatalf("get line failed: %v", err)
	}
	if got == nil || !got.WithMechanism || got.SizeID != 7 {
		t.Fatalf("get line want size=7 mechanism=true got %+v", got)
	}
}

func TestCartDeleteLineAndClear(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := createCartProduct(t, db, "cart-delete", 20000)
	other := createCartProduct(t, db, "cart-delete-other", 25000)
	session := "cart-delete-session"

	if err := repo.Upsert(&models.CartItem{SessionID: session, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := repo.Upsert(&models.CartItem{SessionID: session, ProductID: other.ID, Quantity: 1}); err != nil {
		t.Fatalf("upsert other failed: %v", err)
	}

	if err := repo.DeleteLine(session, product.ID, 0, false); err != nil {
		t.Fatalf("delete line failed: %v", err)
	}
	items, err := repo.ListBySession(session)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != other.ID {
		t.Fatalf("after delete want only other line got %+v", items)
	}

	// The deleted configuration must be insertable again.
	if err := repo.Upsert(&models.CartItem{SessionID: session, ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("re-add after delete failed: %v", err)
	}
	items, err = repo.ListBySession(session)
	if err != nil {
		t.Fatalf("list after re-add failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("after re-add want 2 lines got %d", len(items))
	}

	if err := repo.ClearBySession(session); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	items, err = repo.ListBySession(session)
	if err != nil {
		t.Fatalf("list after clear failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("after clear want empty got %d lines", len(items))
	}

	if err := repo.Upsert(&models.CartItem{SessionID: session, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("re-add after clear failed: %v", err)
	}
	line, err := repo.GetLine(session, product.ID, 0, false)
	if err != nil {
		t.Fatalf("get line after clear failed: %v", err)
	}
	if line == nil || line.Quantity != 2 {
		t.Fatalf("re-added line want qty 2 got %+v", line)
	}
}

func TestCartStateGetOrCreateAndPromoLifecycle(t *testing.T) {
	_, db := setupCartRepositoryTest(t)
	stateRepo := NewCartStateRepository(db)
	session := "cart-state-session"

	state, err := stateRepo.GetOrCreate(session)
	if err != nil {
		t.Fatalf("get or create failed: %v", err)
	}
	if state.PromoCode != "" || state.DeliveryMethodID != "" {
		t.Fatalf("new state want empty got %+v", state)
	}

	state.PromoCode = "МЕБЕЛЬ15"
	state.DeliveryMethodID = constants.DeliveryMethodExpress
	if err := stateRepo.Save(state); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reloaded, err := stateRepo.GetOrCreate(session)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.PromoCode != "МЕБЕЛЬ15" || reloaded.DeliveryMethodID != constants.DeliveryMethodExpress {
		t.Fatalf("reload want saved values got %+v", reloaded)
	}

	if err := stateRepo.ClearPromo(session); err != nil {
		t.Fatalf("clear promo failed: %v", err)
	}
	reloaded, err = stateRepo.GetOrCreate(session)
	if err != nil {
		t.Fatalf("reload after clear failed: %v", err)
	}
	if reloaded.PromoCode != "" {
		t.Fatalf("promo after clear want empty got %q", reloaded.PromoCode)
	}
	if reloaded.DeliveryMethodID != constants.DeliveryMethodExpress {
		t.Fatalf("delivery should survive promo clear got %q", reloaded.DeliveryMethodID)
	}
}
