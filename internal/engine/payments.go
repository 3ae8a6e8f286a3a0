package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/venuecraft/banquet-service/internal/models"
)

// Ledger is the result of reconciling a booking's advance payments against
// its total. BalanceDue keeps its sign: negative means the customer has
// overpaid, which callers must surface, not clamp away.
type Ledger struct {
	AdvancePaid decimal.Decimal     `json:"advance_paid"`
	BalanceDue  decimal.Decimal     `json:"balance_due"`
	State       models.PaymentState `json:"state"`
}

// DisplayBalance is the zero-clamped balance for presentation. The signed
// value in BalanceDue stays canonical.
func (l Ledger) DisplayBalance() decimal.Decimal {
	if l.BalanceDue.IsNegative() {
		return decimal.Zero
	}
	return l.BalanceDue
}

// ValidateSplits validates and aggregates a booking's payment splits against
// the priced total. A split set whose sum exceeds the total is rejected with
// ErrOverpayment and must leave the caller's prior state unchanged. When no
// splits exist, legacyAdvance (the pre-split advance_amount field) is used.
func ValidateSplits(splits []models.PaymentSplit, legacyAdvance, total decimal.Decimal) (Ledger, error) {
	if total.IsNegative() {
		return Ledger{}, fmt.Errorf("%w: total is negative", ErrInvalidPricingInput)
	}

	advance := legacyAdvance
	if len(splits) > 0 {
		advance = decimal.Zero
		for _, s := range splits {
			if s.Amount.IsNegative() {
				return Ledger{}, fmt.Errorf("%w: split amount for %s is negative", ErrInvalidPricingInput, s.Method)
			}
			if _, err := models.ParsePaymentMethod(string(s.Method)); err != nil {
				return Ledger{}, fmt.Errorf("%w: %v", ErrInvalidPricingInput, err)
			}
			advance = advance.Add(s.Amount)
		}
		if advance.GreaterThan(total) {
			return Ledger{}, fmt.Errorf("%w: splits sum to %s against total %s", ErrOverpayment, advance, total)
		}
	}

	balance := total.Sub(advance)
	return Ledger{
		AdvancePaid: advance,
		BalanceDue:  balance,
		State:       paymentState(advance, total),
	}, nil
}

// PaymentStateFor derives the display state from a stored booking's advance
// and total, without revalidating splits.
func PaymentStateFor(advance, total decimal.Decimal) models.PaymentState {
	return paymentState(advance, total)
}

// paymentState derives the display state. The legacy-advance path can exceed
// the total (old records were never validated), which is exactly the
// overpaid state this keeps visible.
func paymentState(advance, total decimal.Decimal) models.PaymentState {
	switch {
	case advance.GreaterThan(total):
		return models.PaymentOverpaid
	case total.IsPositive() && advance.GreaterThanOrEqual(total):
		return models.PaymentPaid
	case advance.IsPositive():
		return models.PaymentPartial
	default:
		return models.PaymentUnpaid
	}
}

// SplitTotalsByMethod aggregates split amounts per payment method.
func SplitTotalsByMethod(splits []models.PaymentSplit) map[models.PaymentMethod]decimal.Decimal {
	totals := make(map[models.PaymentMethod]decimal.Decimal, len(splits))
	for _, s := range splits {
		totals[s.Method] = totals[s.Method].Add(s.Amount)
	}
	return totals
}
