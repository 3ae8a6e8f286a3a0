package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PricingType string

const (
	PricingPerPlate PricingType = "per_plate"
	PricingFixed    PricingType = "fixed"
)

func ParsePricingType(s string) (PricingType, error) {
	switch PricingType(s) {
	case PricingPerPlate, PricingFixed:
		return PricingType(s), nil
	}
	return "", fmt.Errorf("invalid pricing type %q", s)
}

type MenuKind string

const (
	MenuKindMenu  MenuKind = "menu"
	MenuKindAddon MenuKind = "addon"
)

// MenuItem covers both menu items and add-ons; per-plate prices scale by
// guest count, fixed prices do not.
type MenuItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	TenantID    string          `gorm:"index;not null" json:"tenant_id"`
	Name        string          `gorm:"not null" json:"name"`
	Kind        MenuKind        `gorm:"type:varchar(10);not null;default:'menu'" json:"kind"`
	PricingType PricingType     `gorm:"type:varchar(10);not null;default:'per_plate'" json:"pricing_type"`
	Price       decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type Hall struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TenantID  string    `gorm:"index;not null" json:"tenant_id"`
	Name      string    `gorm:"not null" json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TenantID  string    `gorm:"index;not null" json:"tenant_id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Vendor struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	TenantID  string         `gorm:"index;not null" json:"tenant_id"`
	Name      string         `gorm:"not null" json:"name"`
	Category  VendorCategory `gorm:"type:varchar(20)" json:"category"`
	Phone     string         `json:"phone"`
	Email     string         `json:"email"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
