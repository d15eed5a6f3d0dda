package service

import (
	"testing"

	"github.com/mebel-next/internal/models"
)

func rubles(amount int64) models.Money {
	return models.NewMoneyFromInt(amount)
}

func TestComputeSubtotalSumsLinesAndClampsQuantity(t *testing.T) {
	lines := []PricingLine{
		{UnitPrice: rubles(10000), Quantity: 2},
		{UnitPrice: rubles(5000), Quantity: 1},
		{UnitPrice: rubles(3000), Quantity: 0},
	}
	got := ComputeSubtotal(lines)
	if got.String() != "28000" {
		t.Fatalf("subtotal want 28000 got %s", got)
	}

	empty := ComputeSubtotal(nil)
	if empty.String() != "0" {
		t.Fatalf("empty subtotal want 0 got %s", empty)
	}
}

func TestComputeDiscountPercent(t *testing.T) {
	promo := &PromoRule{Code: "МЕБЕЛЬ15", DiscountPercent: 15}
	got := ComputeDiscount(rubles(10000), promo)
	if got.String() != "1500" {
		t.Fatalf("discount want 1500 got %s", got)
	}

	ten := &PromoRule{Code: "ДИВАН10", DiscountPercent: 10}
	got = ComputeDiscount(rubles(45990), ten)
	if got.String() != "4599" {
		t.Fatalf("discount want 4599 got %s", got)
	}
}

func TestComputeDiscountRoundsToWholeRubles(t *testing.T) {
	promo := &PromoRule{Code: "МЕБЕЛЬ15", DiscountPercent: 15}
	// 15% of 10003 = 1500.45 -> 1500
	got := ComputeDiscount(rubles(10003), promo)
	if got.String() != "1500" {
		t.Fatalf("discount want 1500 got %s", got)
	}
	// 15% of 10030 = 1504.5 -> 1505
	got = ComputeDiscount(rubles(10030), promo)
	if got.String() != "1505" {
		t.Fatalf("discount want 1505 got %s", got)
	}
}

func TestComputeDiscountFreeShippingPromoGivesZero(t *testing.T) {
	promo := &PromoRule{Code: "ДОСТАВКА", DiscountPercent: 0, FreeShipping: true}
	got := ComputeDiscount(rubles(10000), promo)
	if got.String() != "0" {
		t.Fatalf("discount want 0 got %s", got)
	}
	got = ComputeDiscount(rubles(10000), nil)
	if got.String() != "0" {
		t.Fatalf("discount without promo want 0 got %s", got)
	}
}

func TestComputeShippingPromoAndMethodInteraction(t *testing.T) {
	express := &DeliveryMethod{ID: "express", Name: "Экспресс-доставка", Price: rubles(500)}
	freeShipping := &PromoRule{Code: "ДОСТАВКА", FreeShipping: true}
	percentOnly := &PromoRule{Code: "ДИВАН10", DiscountPercent: 10}

	if got := ComputeShipping(express, nil); got.String() != "500" {
		t.Fatalf("shipping want 500 got %s", got)
	}
	if got := ComputeShipping(express, percentOnly); got.String() != "500" {
		t.Fatalf("percent promo should not change shipping got %s", got)
	}
	if got := ComputeShipping(express, freeShipping); got.String() != "0" {
		t.Fatalf("free shipping promo want 0 got %s", got)
	}
	if got := ComputeShipping(nil, nil); got.String() != "0" {
		t.Fatalf("no method want 0 got %s", got)
	}
}

func TestComputeTotalsFullPass(t *testing.T) {
	lines := []PricingLine{
		{UnitPrice: rubles(10000), Quantity: 1},
	}
	promo := &PromoRule{Code: "МЕБЕЛЬ15", DiscountPercent: 15}
	courier := &DeliveryMethod{ID: "courier", Name: "Курьером", Price: rubles(300)}

	totals := ComputeTotals(lines, promo, courier)
	if totals.Subtotal.String() != "10000" {
		t.Fatalf("subtotal want 10000 got %s", totals.Subtotal)
	}
	if totals.Discount.String() != "1500" {
		t.Fatalf("discount want 1500 got %s", totals.Discount)
	}
	if totals.Shipping.String() != "300" {
		t.Fatalf("shipping want 300 got %s", totals.Shipping)
	}
	if totals.Total.String() != "8800" {
		t.Fatalf("total want 8800 got %s", totals.Total)
	}
}

func TestComputeTotalsShippingRestoredAfterPromoRemoval(t *testing.T) {
	lines := []PricingLine{{UnitPrice: rubles(20000), Quantity: 1}}
	express := &DeliveryMethod{ID: "express", Name: "Экспресс-доставка", Price: rubles(500)}
	freeShipping := &PromoRule{Code: "ДОСТАВКА", FreeShipping: true}

	withPromo := ComputeTotals(lines, freeShipping, express)
	if withPromo.Shipping.String() != "0" || withPromo.Total.String() != "20000" {
		t.Fatalf("with promo want shipping=0 total=20000 got shipping=%s total=%s",
			withPromo.Shipping, withPromo.Total)
	}

	withoutPromo := ComputeTotals(lines, nil, express)
	if withoutPromo.Shipping.String() != "500" || withoutPromo.Total.String() != "20500" {
		t.Fatalf("without promo want shipping=500 total=20500 got shipping=%s total=%s",
			withoutPromo.Shipping, withoutPromo.Total)
	}
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil, nil, nil)
	if totals.Subtotal.String() != "0" || totals.Discount.String() != "0" ||
		totals.Shipping.String() != "0" || totals.Total.String() != "0" {
		t.Fatalf("empty cart want all zero got %+v", totals)
	}
}
