package engine

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuecraft/banquet-service/internal/models"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func sampleWeddingInput() PricingInput {
	return PricingInput{
		GuestCount: 100,
		MenuItems: []models.MenuItem{
			{ID: 1, Name: "Royal Thali", PricingType: models.PricingPerPlate, Price: d("500")},
		},
		Addons: []models.MenuItem{
			{ID: 2, Name: "Stage Decoration", Kind: models.MenuKindAddon, PricingType: models.PricingFixed, Price: d("5000")},
		},
		DiscountType:  models.DiscountPercent,
		DiscountValue: d("10"),
		GSTOption:     models.GSTOn,
	}
}

func TestComputeQuote_EndToEnd(t *testing.T) {
	quote, err := ComputeQuote(sampleWeddingInput())
	require.NoError(t, err)

	assert.True(t, quote.FoodCharge.Equal(d("50000")), "food charge: %s", quote.FoodCharge)
	assert.True(t, quote.AddonCharge.Equal(d("5000")), "addon charge: %s", quote.AddonCharge)
	assert.True(t, quote.Subtotal.Equal(d("55000")), "subtotal: %s", quote.Subtotal)
	assert.True(t, quote.DiscountAmount.Equal(d("5500")), "discount: %s", quote.DiscountAmount)
	assert.True(t, quote.AfterDiscount.Equal(d("49500")), "after discount: %s", quote.AfterDiscount)
	assert.True(t, quote.GSTAmount.Equal(d("2475")), "gst: %s", quote.GSTAmount)
	assert.True(t, quote.Total.Equal(d("51975")), "total: %s", quote.Total)
}

func TestComputeQuote_Idempotent(t *testing.T) {
	in := sampleWeddingInput()

	first, err := ComputeQuote(in)
	require.NoError(t, err)
	second, err := ComputeQuote(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeQuote_GSTOff(t *testing.T) {
	in := sampleWeddingInput()
	in.GSTOption = models.GSTOff

	quote, err := ComputeQuote(in)
	require.NoError(t, err)

	assert.True(t, quote.GSTPercent.IsZero())
	assert.True(t, quote.GSTAmount.IsZero(), "gst off must leave no residual amount")
	assert.True(t, quote.Total.Equal(quote.AfterDiscount))
}

func TestComputeQuote_CustomGSTClamped(t *testing.T) {
	in := sampleWeddingInput()
	in.GSTOption = models.GSTCustom
	in.CustomGSTPercent = d("150")

	quote, err := ComputeQuote(in)
	require.NoError(t, err)
	assert.True(t, quote.GSTPercent.Equal(d("100")))

	in.CustomGSTPercent = d("-3")
	quote, err = ComputeQuote(in)
	require.NoError(t, err)
	assert.True(t, quote.GSTPercent.IsZero())
}

func TestComputeQuote_FixedDiscountCappedAtSubtotal(t *testing.T) {
	in := sampleWeddingInput()
	in.DiscountType = models.DiscountFixed
	in.DiscountValue = d("99999999")

	quote, err := ComputeQuote(in)
	require.NoError(t, err)

	assert.True(t, quote.DiscountAmount.Equal(quote.Subtotal))
	assert.True(t, quote.AfterDiscount.IsZero())
	assert.True(t, quote.Total.IsZero())
}

func TestComputeQuote_OverrideWinsOverUnitPrice(t *testing.T) {
	in := sampleWeddingInput()
	in.CustomPrices = map[uint]decimal.Decimal{1: d("42000")}

	quote, err := ComputeQuote(in)
	require.NoError(t, err)

	assert.True(t, quote.FoodCharge.Equal(d("42000")))
}

func TestComputeQuote_PerPlateAddonScalesByGuests(t *testing.T) {
	in := sampleWeddingInput()
	in.Addons = []models.MenuItem{
		{ID: 3, Name: "Welcome Drink", Kind: models.MenuKindAddon, PricingType: models.PricingPerPlate, Price: d("50")},
	}

	quote, err := ComputeQuote(in)
	require.NoError(t, err)

	assert.True(t, quote.AddonCharge.Equal(d("5000")))
}

func TestComputeQuote_InvalidInput(t *testing.T) {
	in := sampleWeddingInput()
	in.GuestCount = 0
	_, err := ComputeQuote(in)
	assert.True(t, errors.Is(err, ErrInvalidPricingInput))

	in = sampleWeddingInput()
	in.DiscountValue = d("-1")
	_, err = ComputeQuote(in)
	assert.True(t, errors.Is(err, ErrInvalidPricingInput))

	in = sampleWeddingInput()
	in.CustomPrices = map[uint]decimal.Decimal{1: d("-100")}
	_, err = ComputeQuote(in)
	assert.True(t, errors.Is(err, ErrInvalidPricingInput))
}

func TestComputeQuote_TotalNeverBelowAfterDiscount(t *testing.T) {
	for _, opt := range []models.GSTOption{models.GSTOn, models.GSTOff, models.GSTCustom} {
		for _, dt := range []models.DiscountType{models.DiscountPercent, models.DiscountFixed} {
			in := sampleWeddingInput()
			in.GSTOption = opt
			in.CustomGSTPercent = d("12")
			in.DiscountType = dt
			in.DiscountValue = d("30")

			quote, err := ComputeQuote(in)
			require.NoError(t, err)
			assert.True(t, quote.Total.GreaterThanOrEqual(quote.AfterDiscount), "%s/%s", opt, dt)
			assert.False(t, quote.AfterDiscount.IsNegative(), "%s/%s", opt, dt)
		}
	}
}
