// Package engine holds the deterministic core of the banquet platform:
// pricing, payment splitting, vendor/staff planning, readiness scoring,
// change detection and profit reconciliation. Everything here is a pure
// function over plain records; persistence and transport live elsewhere.
package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPricingInput rejects malformed numeric input before any
	// computation; callers get no partial result.
	ErrInvalidPricingInput = errors.New("invalid pricing input")

	// ErrOverpayment rejects payment splits whose sum exceeds the booking
	// total. The write is refused, prior state stays untouched.
	ErrOverpayment = errors.New("payment splits exceed booking total")

	// ErrDuplicateCategory rejects a second vendor assignment for an
	// exclusive (non-"other") category.
	ErrDuplicateCategory = errors.New("vendor category already assigned")
)

// StaleConfigWarning signals a tenant policy version regression or mismatch.
// It is advisory: callers should refetch configuration, never abort.
type StaleConfigWarning struct {
	TenantID    string
	SeenVersion int64
	WantVersion int64
}

func (w *StaleConfigWarning) Error() string {
	return fmt.Sprintf("stale tenant policy for %s: have version %d, expected at least %d",
		w.TenantID, w.SeenVersion, w.WantVersion)
}
