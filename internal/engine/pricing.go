package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/venuecraft/banquet-service/internal/models"
)

var (
	defaultGSTPercent = decimal.NewFromInt(5)
	oneHundred        = decimal.NewFromInt(100)
)

// PricingInput carries everything the calculator needs, already resolved:
// menu/addon records looked up by the caller, plus the booking's discount,
// GST and override settings.
type PricingInput struct {
	GuestCount       int
	MenuItems        []models.MenuItem
	Addons           []models.MenuItem
	CustomPrices     map[uint]decimal.Decimal
	DiscountType     models.DiscountType
	DiscountValue    decimal.Decimal
	GSTOption        models.GSTOption
	CustomGSTPercent decimal.Decimal
}

// Quote is the full cost breakdown for a booking. All amounts are
// non-negative; the signed balance lives in the split ledger, not here.
type Quote struct {
	FoodCharge     decimal.Decimal `json:"food_charge"`
	AddonCharge    decimal.Decimal `json:"addon_charge"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	AfterDiscount  decimal.Decimal `json:"after_discount"`
	GSTPercent     decimal.Decimal `json:"gst_percent"`
	GSTAmount      decimal.Decimal `json:"gst_amount"`
	Total          decimal.Decimal `json:"total_amount"`
}

/// ComputeQuote prices a booking. It is a pure function: same input, same
// quote, no side effects, cheap enough to run on every edit.
func ComputeQuote(in PricingInput) (Quote, error) {
	if in.GuestCount <= 0 {
		return Quote{}, fmt.Errorf("%w: guest count must be positive, got %d", ErrInvalidPricingInput, in.GuestCount)
	}
	if in.DiscountValue.IsNegative() {
		return Quote{}, fmt.Errorf("%w: discount value is negative", ErrInvalidPricingInput)
	}
	for id, price := range in.CustomPrices {
		if price.IsNegative() {
			return Quote{}, fmt.Errorf("%w: override price for item %d is negative", ErrInvalidPricingInput, id)
		}
	}

	guests := decimal.NewFromInt(int64(in.GuestCount))
	foodCharge := chargeFor(in.MenuItems, in.CustomPrices, guests)
	addonCharge := chargeFor(in.Addons, in.CustomPrices, guests)
	subtotal := foodCharge.Add(addonCharge)

	var discount decimal.Decimal
	switch in.DiscountType {
	case models.DiscountFixed:
		discount = decimal.Min(in.DiscountValue, subtotal)
	default: // percent
		discount = subtotal.Mul(in.DiscountValue).Div(oneHundred)
	}

	afterDiscount := subtotal.Sub(discount)
	if afterDiscount.IsNegative() {
		afterDiscount = decimal.Zero
	}

	var gstPercent decimal.Decimal
	switch in.GSTOption {
	case models.GSTOff:
		gstPercent = decimal.Zero
	case models.GSTCustom:
		gstPercent = clampPercent(in.CustomGSTPercent)
	default: // on
		gstPercent = defaultGSTPercent
	}
	gstAmount := afterDiscount.Mul(gstPercent).Div(oneHundred)

	return Quote{
		FoodCharge:     foodCharge,
		AddonCharge:    addonCharge,
		Subtotal:       subtotal,
		DiscountAmount: discount,
		AfterDiscount:  afterDiscount,
		GSTPercent:     gstPercent,
		GSTAmount:      gstAmount,
		Total:          afterDiscount.Add(gstAmount),
	}, nil
}

// chargeFor sums item prices: an override wins outright, otherwise per-plate
// prices scale by guest count and fixed prices do not.
func chargeFor(items []models.MenuItem, overrides map[uint]decimal.Decimal, guests decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if override, ok := overrides[item.ID]; ok {
			total = total.Add(override)
			continue
		}
		if item.PricingType == models.PricingFixed {
			total = total.Add(item.Price)
		} else {
			total = total.Add(item.Price.Mul(guests))
		}
	}
	return total
}

func clampPercent(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(oneHundred) {
		return oneHundred
	}
	return p
}
