package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseCategory string

const (
	ExpenseVendor ExpenseCategory = "vendor"
	ExpenseStaff  ExpenseCategory = "staff"
	ExpenseFood   ExpenseCategory = "food"
	ExpenseMisc   ExpenseCategory = "misc"
)

// Expense is a party-level cost line; BookingID is nil for general expenses
// that are not attributed to a single event.
type Expense struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	TenantID    string          `gorm:"index;not null" json:"tenant_id"`
	BookingID   *uint           `gorm:"index" json:"booking_id,omitempty"`
	Category    ExpenseCategory `gorm:"type:varchar(20);not null;default:'misc'" json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	SpentAt     time.Time       `json:"spent_at"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type VendorPayment struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	TenantID  string          `gorm:"index;not null" json:"tenant_id"`
	BookingID *uint           `gorm:"index" json:"booking_id,omitempty"`
	VendorID  uint            `gorm:"index;not null" json:"vendor_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Note      string          `json:"note"`
	PaidAt    time.Time       `json:"paid_at"`
	CreatedAt time.Time       `json:"created_at"`
}
