package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/venuecraft/banquet-service/internal/engine"
	"github.com/venuecraft/banquet-service/internal/models"
)

type BookingResponse struct {
	ID         uint                 `json:"id"`
	TenantID   string               `json:"tenant_id"`
	CustomerID uint                 `json:"customer_id"`
	HallID     uint                 `json:"hall_id"`
	EventType  models.EventType     `json:"event_type"`
	EventDate  time.Time            `json:"event_date"`
	Slot       models.Slot          `json:"slot"`
	GuestCount int                  `json:"guest_count"`
	Status     models.BookingStatus `json:"status"`

	FoodCharge     decimal.Decimal `json:"food_charge"`
	AddonCharge    decimal.Decimal `json:"addon_charge"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	GSTAmount      decimal.Decimal `json:"gst_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`

	PaymentSplits  []models.PaymentSplit `json:"payment_splits"`
	AdvancePaid    decimal.Decimal       `json:"advance_paid"`
	BalanceDue     decimal.Decimal       `json:"balance_due"`
	DisplayBalance decimal.Decimal       `json:"display_balance"`
	PaymentState   models.PaymentState   `json:"payment_state"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	ledger := engine.Ledger{AdvancePaid: b.AdvancePaid, BalanceDue: b.BalanceDue}
	return BookingResponse{
		ID:             b.ID,
		TenantID:       b.TenantID,
		CustomerID:     b.CustomerID,
		HallID:         b.HallID,
		EventType:      b.EventType,
		EventDate:      b.EventDate,
		Slot:           b.Slot,
		GuestCount:     b.GuestCount,
		Status:         b.Status,
		FoodCharge:     b.FoodCharge,
		AddonCharge:    b.AddonCharge,
		DiscountAmount: b.DiscountAmount,
		GSTAmount:      b.GSTAmount,
		TotalAmount:    b.TotalAmount,
		PaymentSplits:  b.PaymentSplits,
		AdvancePaid:    b.AdvancePaid,
		BalanceDue:     b.BalanceDue,
		DisplayBalance: ledger.DisplayBalance(),
		PaymentState:   engine.PaymentStateFor(b.AdvancePaid, b.TotalAmount),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
