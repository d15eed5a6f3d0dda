package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/mebel-next/internal/constants"
	"github.com/mebel-next/internal/models"
	"github.com/mebel-next/internal/queue"
	"github.com/mebel-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCheckoutServiceTest(t *testing.T) (*CheckoutService, *CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:checkout_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Product{},
		&models.ProductSize{},
		&models.CartItem{},
		&models.CartState{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	registry := NewRegistryService(testStoreConfig())
	cartSvc := NewCartService(
		repository.NewCartRepository(db),
		repository.NewCartStateRepository(db),
		repository.NewProductRepository(db),
		registry,
	)
	queueClient, err := queue.NewClient(nil) // disabled queue: confirm runs inline
	if err != nil {
		t.Fatalf("create queue client failed: %v", err)
	}
	checkoutSvc := NewCheckoutService(cartSvc, registry, queueClient, 2)
	return checkoutSvc, cartSvc, db
}

func validOrderForm() OrderForm {
	return OrderForm{
		FullName:        "Иванов Иван Иванович",
		Phone:           "+7 912 345 67 89",
		Address:         "ул. Ленина, д. 1, кв. 2",
		City:            "Москва",
		SocialChannelID: "telegram",
		SocialHandle:    "@ivanov",
		PaymentMethodID: "cash",
	}
}

func seedCheckoutCart(t *testing.T, cartSvc *CartService, db *gorm.DB, session string) {
	t.Helper()
	product := &models.Product{
		Kind:        constants.ProductKindSofa,
		Slug:        "checkout-" + session,
		Name:        "Диван " + session,
		PriceAmount: models.NewMoneyFromInt(30000),
		IsActive:    true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if _, err := cartSvc.AddItem(AddCartItemInput{SessionID: session, ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if _, err := cartSvc.SelectDelivery(session, "courier"); err != nil {
		t.Fatalf("select delivery failed: %v", err)
	}
}

func TestValidateOrderFormCollectsAllViolations(t *testing.T) {
	svc, _, _ := setupCheckoutServiceTest(t)

	violations := svc.ValidateOrderForm(OrderForm{}, constants.DeliveryMethodCourier)
	wantFields := []string{"full_name", "phone", "address", "city", "social_handle"}
	if len(violations) != len(wantFields) {
		t.Fatalf("violations want %d got %d: %v", len(wantFields), len(violations), violations)
	}
	for _, field := range wantFields {
		if violations[field] == "" {
			t.Fatalf("missing violation for %s: %v", field, violations)
		}
	}
}

func TestValidateOrderFormPickupExemptsAddressAndCity(t *testing.T) {
	svc, _, _ := setupCheckoutServiceTest(t)

	form := validOrderForm()
	form.Address = ""
	form.City = ""

	violations := svc.ValidateOrderForm(form, constants.DeliveryMethodPickup)
	if len(violations) != 0 {
		t.Fatalf("pickup want no violations got %v", violations)
	}

	violations = svc.ValidateOrderForm(form, constants.DeliveryMethodCourier)
	if violations["address"] == "" || violations["city"] == "" {
		t.Fatalf("courier want address/city violations got %v", violations)
	}
}

func TestValidateOrderFormPhonePattern(t *testing.T) {
	svc, _, _ := setupCheckoutServiceTest(t)

	check := func(phone string, wantValid bool) {
		form := validOrderForm()
		form.Phone = phone
		violations := svc.ValidateOrderForm(form, constants.DeliveryMethodCourier)
		gotValid := violations["phone"] == ""
		if gotValid != wantValid {
			t.Fatalf("phone %q want valid=%v got violations=%v", phone, wantValid, violations)
		}
	}

	check("+79123456789", true)
	check("8 912 345 67 89", true) // whitespace stripped before matching
	check("9123456789", true)
	check("+7912345", false)   // too short
	check("abc12345678", false)
	check("", false)
	check("+7 (912) 345-67-89", false) // punctuation is not stripped
}

func TestCheckoutSubmitHappyPath(t *testing.T) {
	svc, cartSvc, db := setupCheckoutServiceTest(t)
	session := "checkout-happy"
	seedCheckoutCart(t, cartSvc, db, session)

	result, violations, err := svc.Submit(session, validOrderForm())
	if err != nil {
		t.Fatalf("submit failed: %v (violations %v)", err, violations)
	}
	if !strings.HasPrefix(result.OrderNo, "MB-") {
		t.Fatalf("order no want MB- prefix got %s", result.OrderNo)
	}
	if result.Status != "accepted" {
		t.Fatalf("status want accepted got %s", result.Status)
	}
	if result.Totals.Total.String() != "30300" {
		t.Fatalf("total want 30300 got %s", result.Totals.Total)
	}

	// Queue is disabled in tests, so confirmation runs inline.
	view, err := cartSvc.Get(session)
	if err != nil {
		t.Fatalf("get cart after submit failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("cart should be cleared after submit got %d lines", len(view.Items))
	}
}

func TestCheckoutSubmitRejectsInvalidForm(t *testing.T) {
	svc, cartSvc, db := setupCheckoutServiceTest(t)
	session := "checkout-invalid-form"
	seedCheckoutCart(t, cartSvc, db, session)

	form := validOrderForm()
	form.Phone = "123"
	_, violations, err := svc.Submit(session, form)
	if !errors.Is(err, ErrOrderFormInvalid) {
		t.Fatalf("want ErrOrderFormInvalid got %v", err)
	}
	if violations["phone"] == "" {
		t.Fatalf("want phone violation got %v", violations)
	}

	// Failed submission must not touch the cart.
	view, err := cartSvc.Get(session)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("cart should be untouched got %d lines", len(view.Items))
	}
}

func TestCheckoutSubmitRequiresCartAndDelivery(t *testing.T) {
	svc, cartSvc, db := setupCheckoutServiceTest(t)

	_, _, err := svc.Submit("checkout-empty", validOrderForm())
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("empty cart want ErrCartEmpty got %v", err)
	}

	session := "checkout-no-delivery"
	product := &models.Product{
		Kind:        constants.ProductKindSofa,
		Slug:        "checkout-no-delivery",
		Name:        "Диван без доставки",
		PriceAmount: models.NewMoneyFromInt(10000),
		IsActive:    true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if _, err := cartSvc.AddItem(AddCartItemInput{SessionID: session, ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	_, _, err = svc.Submit(session, validOrderForm())
	if !errors.Is(err, ErrDeliveryMethodInvalid) {
		t.Fatalf("no delivery want ErrDeliveryMethodInvalid got %v", err)
	}
}

func TestConfirmOrderClearsCart(t *testing.T) {
	svc, cartSvc, db := setupCheckoutServiceTest(t)
	session := "checkout-confirm"
	seedCheckoutCart(t, cartSvc, db, session)

	if err := svc.ConfirmOrder("MB-TEST", session); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	view, err := cartSvc.Get(session)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("cart should be cleared got %d lines", len(view.Items))
	}
}
