package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuecraft/banquet-service/internal/models"
)

func snapshotBooking() *models.Booking {
	return &models.Booking{
		GuestCount: 100,
		EventDate:  time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		Slot:       models.SlotNight,
		HallID:     7,
		EventType:  models.EventWedding,
	}
}

func TestDiffSnapshot_NoDrift(t *testing.T) {
	booking := snapshotBooking()
	snapshot := TakeSnapshot(booking)

	report := DiffSnapshot(snapshot, booking)

	assert.False(t, report.Changed)
	assert.Empty(t, report.Warnings)
}

func TestDiffSnapshot_GuestCountChanged(t *testing.T) {
	booking := snapshotBooking()
	snapshot := TakeSnapshot(booking)
	booking.GuestCount = 150

	report := DiffSnapshot(snapshot, booking)

	assert.True(t, report.Changed)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "Guest count changed from 100 to 150", report.Warnings[0])
}

func TestDiffSnapshot_MultipleFieldsDrifted(t *testing.T) {
	booking := snapshotBooking()
	snapshot := TakeSnapshot(booking)
	booking.GuestCount = 180
	booking.Slot = models.SlotDay
	booking.HallID = 9
	booking.EventDate = booking.EventDate.AddDate(0, 0, 7)

	report := DiffSnapshot(snapshot, booking)

	assert.True(t, report.Changed)
	assert.Len(t, report.Warnings, 4)
	assert.Contains(t, report.Warnings, "Slot changed from night to day")
	assert.Contains(t, report.Warnings, "Hall/Venue changed")
	assert.Contains(t, report.Warnings, "Event date changed from 2026-10-15 to 2026-10-22")
}

func TestDiffSnapshot_AcknowledgeClearsWarnings(t *testing.T) {
	booking := snapshotBooking()
	snapshot := TakeSnapshot(booking)
	booking.GuestCount = 150

	report := DiffSnapshot(snapshot, booking)
	require.True(t, report.Changed)

	// Acknowledge re-captures the snapshot from the live booking.
	snapshot = TakeSnapshot(booking)

	report = DiffSnapshot(snapshot, booking)
	assert.False(t, report.Changed)
	assert.Empty(t, report.Warnings)
}
