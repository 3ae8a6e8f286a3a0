package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuecraft/banquet-service/internal/models"
)

func TestValidateSplits_PartialPayment(t *testing.T) {
	splits := []models.PaymentSplit{
		{Method: models.PaymentCash, Amount: d("10000")},
		{Method: models.PaymentUPI, Amount: d("15000")},
	}

	ledger, err := ValidateSplits(splits, d("0"), d("51975"))
	require.NoError(t, err)

	assert.True(t, ledger.AdvancePaid.Equal(d("25000")))
	assert.True(t, ledger.BalanceDue.Equal(d("26975")))
	assert.Equal(t, models.PaymentPartial, ledger.State)
}

func TestValidateSplits_RejectsOverpayment(t *testing.T) {
	splits := []models.PaymentSplit{
		{Method: models.PaymentCash, Amount: d("30000")},
		{Method: models.PaymentCard, Amount: d("30000")},
	}

	_, err := ValidateSplits(splits, d("0"), d("51975"))
	assert.True(t, errors.Is(err, ErrOverpayment))
}

func TestValidateSplits_ExactPaymentIsPaid(t *testing.T) {
	splits := []models.PaymentSplit{{Method: models.PaymentCard, Amount: d("51975")}}

	ledger, err := ValidateSplits(splits, d("0"), d("51975"))
	require.NoError(t, err)

	assert.True(t, ledger.BalanceDue.IsZero())
	assert.Equal(t, models.PaymentPaid, ledger.State)
}

func TestValidateSplits_LegacyAdvanceFallback(t *testing.T) {
	ledger, err := ValidateSplits(nil, d("20000"), d("51975"))
	require.NoError(t, err)

	assert.True(t, ledger.AdvancePaid.Equal(d("20000")))
	assert.True(t, ledger.BalanceDue.Equal(d("31975")))
	assert.Equal(t, models.PaymentPartial, ledger.State)
}

func TestValidateSplits_LegacyOverpaymentSurfacesSignedBalance(t *testing.T) {
	// Legacy advances predate validation, so overpayment is kept and
	// surfaced rather than rejected or clamped.
	ledger, err := ValidateSplits(nil, d("60000"), d("51975"))
	require.NoError(t, err)

	assert.True(t, ledger.BalanceDue.Equal(d("-8025")))
	assert.Equal(t, models.PaymentOverpaid, ledger.State)
	assert.True(t, ledger.DisplayBalance().IsZero(), "display balance is clamped, signed value kept")
}

func TestValidateSplits_NegativeAmountRejected(t *testing.T) {
	splits := []models.PaymentSplit{{Method: models.PaymentCash, Amount: d("-5")}}

	_, err := ValidateSplits(splits, d("0"), d("1000"))
	assert.True(t, errors.Is(err, ErrInvalidPricingInput))
}

func TestValidateSplits_UnknownMethodRejected(t *testing.T) {
	splits := []models.PaymentSplit{{Method: "cheque", Amount: d("100")}}

	_, err := ValidateSplits(splits, d("0"), d("1000"))
	assert.True(t, errors.Is(err, ErrInvalidPricingInput))
}

func TestSplitTotalsByMethod(t *testing.T) {
	splits := []models.PaymentSplit{
		{Method: models.PaymentCash, Amount: d("100")},
		{Method: models.PaymentCash, Amount: d("50")},
		{Method: models.PaymentUPI, Amount: d("200")},
	}

	totals := SplitTotalsByMethod(splits)

	assert.True(t, totals[models.PaymentCash].Equal(d("150")))
	assert.True(t, totals[models.PaymentUPI].Equal(d("200")))
}
