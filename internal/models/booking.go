package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingDraft     BookingStatus = "draft"
	BookingEnquiry   BookingStatus = "enquiry"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingDraft, BookingEnquiry, BookingConfirmed, BookingCompleted, BookingCancelled:
		return BookingStatus(s), nil
	}
	return "", fmt.Errorf("invalid booking status %q", s)
}

type EventType string

const (
	EventWedding    EventType = "wedding"
	EventReception  EventType = "reception"
	EventEngagement EventType = "engagement"
	EventBirthday   EventType = "birthday"
	EventCorporate  EventType = "corporate"
	EventCustom     EventType = "custom"
)

func ParseEventType(s string) (EventType, error) {
	switch EventType(s) {
	case EventWedding, EventReception, EventEngagement, EventBirthday, EventCorporate, EventCustom:
		return EventType(s), nil
	}
	return "", fmt.Errorf("invalid event type %q", s)
}

type Slot string

const (
	SlotDay   Slot = "day"
	SlotNight Slot = "night"
)

func ParseSlot(s string) (Slot, error) {
	switch Slot(s) {
	case SlotDay, SlotNight:
		return Slot(s), nil
	}
	return "", fmt.Errorf("invalid slot %q", s)
}

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

func ParseDiscountType(s string) (DiscountType, error) {
	switch DiscountType(s) {
	case DiscountPercent, DiscountFixed:
		return DiscountType(s), nil
	}
	return "", fmt.Errorf("invalid discount type %q", s)
}

type GSTOption string

const (
	GSTOn     GSTOption = "on"
	GSTOff    GSTOption = "off"
	GSTCustom GSTOption = "custom"
)

func ParseGSTOption(s string) (GSTOption, error) {
	switch GSTOption(s) {
	case GSTOn, GSTOff, GSTCustom:
		return GSTOption(s), nil
	}
	return "", fmt.Errorf("invalid gst option %q", s)
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentUPI  PaymentMethod = "upi"
	PaymentCard PaymentMethod = "card"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentUPI, PaymentCard:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("invalid payment method %q", s)
}

// PaymentState is derived from advance vs total, never stored authoritatively.
type PaymentState string

const (
	PaymentUnpaid   PaymentState = "unpaid"
	PaymentPartial  PaymentState = "partial"
	PaymentPaid     PaymentState = "paid"
	PaymentOverpaid PaymentState = "overpaid"
)

type PaymentSplit struct {
	ID     string          `json:"id"`
	Method PaymentMethod   `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

type Booking struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	TenantID   string        `gorm:"index;not null" json:"tenant_id"`
	CustomerID uint          `gorm:"not null" json:"customer_id"`
	HallID     uint          `gorm:"not null" json:"hall_id"`
	EventType  EventType     `gorm:"type:varchar(20);not null" json:"event_type"`
	EventDate  time.Time     `gorm:"not null" json:"event_date"`
	Slot       Slot          `gorm:"type:varchar(10);not null" json:"slot"`
	GuestCount int           `gorm:"not null" json:"guest_count"`
	Status     BookingStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`

	MenuItemIDs  []uint                   `gorm:"serializer:json" json:"menu_item_ids"`
	AddonIDs     []uint                   `gorm:"serializer:json" json:"addon_ids"`
	CustomPrices map[uint]decimal.Decimal `gorm:"serializer:json" json:"custom_prices"`

	DiscountType     DiscountType    `gorm:"type:varchar(10);default:'percent'" json:"discount_type"`
	DiscountValue    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount_value"`
	GSTOption        GSTOption       `gorm:"type:varchar(10);default:'on'" json:"gst_option"`
	CustomGSTPercent decimal.Decimal `gorm:"type:decimal(20,4);default:5" json:"custom_gst_percent"`

	FoodCharge     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"food_charge"`
	AddonCharge    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"addon_charge"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount_amount"`
	GSTAmount      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"gst_amount"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_amount"`

	PaymentSplits []PaymentSplit `gorm:"serializer:json" json:"payment_splits"`
	// AdvanceAmount is the legacy single-field advance kept for bookings
	// created before split support; ignored once splits exist.
	AdvanceAmount decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"advance_amount"`
	AdvancePaid   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"advance_paid"`
	// BalanceDue keeps its sign; negative means overpaid.
	BalanceDue decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"balance_due"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanTransitionTo enforces the draft→enquiry→confirmed→completed lifecycle,
// with cancellation allowed from any state before completion.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if next == BookingCancelled {
		return b.Status != BookingCompleted && b.Status != BookingCancelled
	}
	order := map[BookingStatus]int{
		BookingDraft:     0,
		BookingEnquiry:   1,
		BookingConfirmed: 2,
		BookingCompleted: 3,
	}
	cur, ok := order[b.Status]
	if !ok {
		return false
	}
	nxt, ok := order[next]
	if !ok {
		return false
	}
	return nxt == cur+1
}
