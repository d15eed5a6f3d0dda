package service

import (
	"github.com/mebel-next/internal/models"

	"github.com/shopspring/decimal"
)

// PricingLine is one cart line as seen by the pricing engine.
type PricingLine struct {
	UnitPrice models.Money
	Quantity  int
}

// CartTotals is the result of a pricing pass.
type CartTotals struct {
	Subtotal models.Money `json:"subtotal"`
	Discount models.Money `json:"discount"`
	Shipping models.Money `json:"shipping"`
	Total    models.Money `json:"total"`
}

// ComputeSubtotal sums unit price times quantity over all lines.
// Quantities below one count as one.
func ComputeSubtotal(lines []PricingLine) models.Money {
	sum := decimal.Zero
	for _, line := range lines {
		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}
		sum = sum.Add(line.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(quantity))))
	}
	return models.NewMoneyFromDecimal(sum)
}

// ComputeDiscount applies a promo's percentage to the subtotal, rounded
// to whole rubles. A nil promo or a free-shipping-only promo yields zero.
func ComputeDiscount(subtotal models.Money, promo *PromoRule) models.Money {
	if promo == nil || promo.DiscountPercent <= 0 {
		return models.NewMoneyFromInt(0)
	}
	percent := decimal.NewFromInt(int64(promo.DiscountPercent)).Div(decimal.NewFromInt(100))
	return models.NewMoneyFromDecimal(subtotal.Decimal.Mul(percent))
}

// ComputeShipping returns the delivery method's price, or zero when the
// promo grants free shipping or no method is selected.
func ComputeShipping(method *DeliveryMethod, promo *PromoRule) models.Money {
	if method == nil {
		return models.NewMoneyFromInt(0)
	}
	if promo != nil && promo.FreeShipping {
		return models.NewMoneyFromInt(0)
	}
	return method.Price
}

// ComputeTotals runs the full pricing pass: subtotal, promo discount,
// shipping, and total = subtotal - discount + shipping.
func ComputeTotals(lines []PricingLine, promo *PromoRule, method *DeliveryMethod) CartTotals {
	subtotal := ComputeSubtotal(lines)
	discount := ComputeDiscount(subtotal, promo)
	shipping := ComputeShipping(method, promo)
	total := subtotal.Decimal.Sub(discount.Decimal).Add(shipping.Decimal)
	return CartTotals{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Total:    models.NewMoneyFromDecimal(total),
	}
}
