package engine

import (
	"fmt"

	"github.com/venuecraft/banquet-service/internal/models"
)

// TakeSnapshot captures the booking fields material to planning. The plan
// stores it at save time and again on acknowledgement.
func TakeSnapshot(booking *models.Booking) models.BookingSnapshot {
	return models.BookingSnapshot{
		GuestCount: booking.GuestCount,
		EventDate:  booking.EventDate,
		Slot:       booking.Slot,
		HallID:     booking.HallID,
		EventType:  booking.EventType,
	}
}

// ChangeReport compares a live booking against the plan's stored snapshot.
// Changed stays true until the operator explicitly acknowledges; nothing
// here auto-resolves.
type ChangeReport struct {
	Changed  bool     `json:"booking_changed"`
	Warnings []string `json:"change_warnings,omitempty"`
}

// DiffSnapshot produces a human-readable warning per drifted field.
func DiffSnapshot(snapshot models.BookingSnapshot, booking *models.Booking) ChangeReport {
	var warnings []string

	if !snapshot.EventDate.Equal(booking.EventDate) {
		warnings = append(warnings, fmt.Sprintf("Event date changed from %s to %s",
			snapshot.EventDate.Format("2006-01-02"), booking.EventDate.Format("2006-01-02")))
	}
	if snapshot.Slot != booking.Slot {
		warnings = append(warnings, fmt.Sprintf("Slot changed from %s to %s", snapshot.Slot, booking.Slot))
	}
	if snapshot.GuestCount != booking.GuestCount {
		warnings = append(warnings, fmt.Sprintf("Guest count changed from %d to %d",
			snapshot.GuestCount, booking.GuestCount))
	}
	if snapshot.HallID != booking.HallID {
		warnings = append(warnings, "Hall/Venue changed")
	}
	if snapshot.EventType != booking.EventType {
		warnings = append(warnings, fmt.Sprintf("Event type changed from %s to %s",
			snapshot.EventType, booking.EventType))
	}

	return ChangeReport{Changed: len(warnings) > 0, Warnings: warnings}
}
