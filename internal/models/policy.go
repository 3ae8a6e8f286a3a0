package models

import "time"

// WorkflowRules are the tenant-tunable thresholds consumed by the pricing,
// staffing, readiness and profit computations.
type WorkflowRules struct {
	AdvanceRequiredPercent        int  `json:"advance_required_percent"`
	VendorsMandatoryBeforeConfirm bool `json:"vendors_mandatory_before_confirm"`
	StaffMandatoryBeforeEvent     bool `json:"staff_mandatory_before_event"`
	ProfitMarginWarningPercent    int  `json:"profit_margin_warning_percent"`
	VendorUnpaidWarningDays       int  `json:"vendor_unpaid_warning_days"`
}

// TenantPolicy is the versioned configuration bag for one tenant. Version
// increases monotonically on every write so dependents can detect staleness.
type TenantPolicy struct {
	TenantID    string              `gorm:"primaryKey" json:"tenant_id"`
	Version     int64               `gorm:"not null;default:1" json:"version"`
	Features    map[string]bool     `gorm:"serializer:json" json:"features"`
	Rules       WorkflowRules       `gorm:"serializer:json" json:"rules"`
	Permissions map[string][]string `gorm:"serializer:json" json:"permissions"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
