package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/venuecraft/banquet-service/internal/models"
	"github.com/venuecraft/banquet-service/internal/service"
)

type PaymentSplitRequest struct {
	Method string          `json:"method" validate:"required,oneof=cash upi card"`
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

type BookingRequest struct {
	CustomerID       uint                     `json:"customer_id" validate:"required"`
	HallID           uint                     `json:"hall_id" validate:"required"`
	EventType        string                   `json:"event_type" validate:"required"`
	EventDate        time.Time                `json:"event_date" validate:"required"`
	Slot             string                   `json:"slot" validate:"required,oneof=day night"`
	GuestCount       int                      `json:"guest_count" validate:"required,gt=0"`
	MenuItemIDs      []uint                   `json:"menu_item_ids"`
	AddonIDs         []uint                   `json:"addon_ids"`
	CustomPrices     map[uint]decimal.Decimal `json:"custom_prices"`
	DiscountType     string                   `json:"discount_type" validate:"omitempty,oneof=percent fixed"`
	DiscountValue    decimal.Decimal          `json:"discount_value"`
	GSTOption        string                   `json:"gst_option" validate:"omitempty,oneof=on off custom"`
	CustomGSTPercent decimal.Decimal          `json:"custom_gst_percent"`
	PaymentSplits    []PaymentSplitRequest    `json:"payment_splits"`
	AdvanceAmount    decimal.Decimal          `json:"advance_amount"`
}

// ToInput parses the raw enum strings. Missing discount/GST options fall
// back to the defaults the calculator assumes.
func (r *BookingRequest) ToInput() (service.BookingInput, error) {
	eventType, err := models.ParseEventType(r.EventType)
	if err != nil {
		return service.BookingInput{}, err
	}
	slot, err := models.ParseSlot(r.Slot)
	if err != nil {
		return service.BookingInput{}, err
	}

	discountType := models.DiscountPercent
	if r.DiscountType != "" {
		if discountType, err = models.ParseDiscountType(r.DiscountType); err != nil {
			return service.BookingInput{}, err
		}
	}
	gstOption := models.GSTOn
	if r.GSTOption != "" {
		if gstOption, err = models.ParseGSTOption(r.GSTOption); err != nil {
			return service.BookingInput{}, err
		}
	}

	splits := make([]models.PaymentSplit, 0, len(r.PaymentSplits))
	for _, s := range r.PaymentSplits {
		method, err := models.ParsePaymentMethod(s.Method)
		if err != nil {
			return service.BookingInput{}, err
		}
		splits = append(splits, models.PaymentSplit{Method: method, Amount: s.Amount})
	}

	return service.BookingInput{
		CustomerID:       r.CustomerID,
		HallID:           r.HallID,
		EventType:        eventType,
		EventDate:        r.EventDate,
		Slot:             slot,
		GuestCount:       r.GuestCount,
		MenuItemIDs:      r.MenuItemIDs,
		AddonIDs:         r.AddonIDs,
		CustomPrices:     r.CustomPrices,
		DiscountType:     discountType,
		DiscountValue:    r.DiscountValue,
		GSTOption:        gstOption,
		CustomGSTPercent: r.CustomGSTPercent,
		PaymentSplits:    splits,
		AdvanceAmount:    r.AdvanceAmount,
	}, nil
}

type AddPaymentRequest struct {
	Method string          `json:"method" validate:"required,oneof=cash upi card"`
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreatePlanRequest struct {
	Notes string `json:"notes"`
}

type AssignVendorRequest struct {
	Category    string          `json:"category" validate:"required"`
	VendorID    *uint           `json:"vendor_id"`
	VendorName  string          `json:"vendor_name"`
	VendorPhone string          `json:"vendor_phone"`
	VendorEmail string          `json:"vendor_email"`
	Cost        decimal.Decimal `json:"cost"`
	AdvancePaid decimal.Decimal `json:"advance_paid"`
}

type VendorStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type StaffAssignmentRequest struct {
	Role       string          `json:"role" validate:"required"`
	Count      int             `json:"count" validate:"required,gt=0"`
	WageType   string          `json:"wage_type" validate:"omitempty,oneof=fixed per_head"`
	Wage       decimal.Decimal `json:"wage"`
	Headcount  int             `json:"headcount"`
	ShiftStart string          `json:"shift_start"`
	ShiftEnd   string          `json:"shift_end"`
}

type SetStaffRequest struct {
	Staff []StaffAssignmentRequest `json:"staff" validate:"required,dive"`
}

func (r *SetStaffRequest) ToStaff() ([]models.StaffAssignment, error) {
	staff := make([]models.StaffAssignment, 0, len(r.Staff))
	for _, s := range r.Staff {
		role, err := models.ParseStaffRole(s.Role)
		if err != nil {
			return nil, err
		}
		wageType := models.WageFixed
		if s.WageType == string(models.WagePerHead) {
			wageType = models.WagePerHead
		}
		staff = append(staff, models.StaffAssignment{
			Role:       role,
			Count:      s.Count,
			WageType:   wageType,
			Wage:       s.Wage,
			Headcount:  s.Headcount,
			ShiftStart: s.ShiftStart,
			ShiftEnd:   s.ShiftEnd,
		})
	}
	return staff, nil
}

type AddTaskRequest struct {
	Time      string `json:"time"`
	Title     string `json:"title" validate:"required"`
	Owner     string `json:"owner"`
	OwnerType string `json:"owner_type" validate:"omitempty,oneof=vendor staff internal"`
}

type ExpenseRequest struct {
	BookingID   *uint           `json:"booking_id"`
	Category    string          `json:"category" validate:"omitempty,oneof=vendor staff food misc"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	SpentAt     time.Time       `json:"spent_at"`
}

type VendorPaymentRequest struct {
	BookingID *uint           `json:"booking_id"`
	VendorID  uint            `json:"vendor_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	Note      string          `json:"note"`
	PaidAt    time.Time       `json:"paid_at"`
}

type UpdatePolicyRequest struct {
	Features    map[string]bool      `json:"features"`
	Rules       models.WorkflowRules `json:"rules"`
	Permissions map[string][]string  `json:"permissions"`
}
