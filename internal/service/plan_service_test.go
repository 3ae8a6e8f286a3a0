package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/venuecraft/banquet-service/internal/models"
)

func sampleBooking() *models.Booking {
	return &models.Booking{
		ID:         1,
		TenantID:   "tenant-a",
		HallID:     1,
		EventType:  models.EventWedding,
		EventDate:  time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC),
		Slot:       models.SlotNight,
		GuestCount: 200,
		Status:     models.BookingConfirmed,
	}
}

func TestCreatePlan_GeneratesTimelineAndSnapshot(t *testing.T) {
	booking := sampleBooking()
	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, tenantID string, id uint) (*models.Booking, error) {
			return booking, nil
		},
	}
	planRepo := &mockPlanRepo{
		findByBookingIDFn: func(ctx context.Context, tenantID string, bookingID uint) (*models.Plan, error) {
			return nil, gorm.ErrRecordNotFound
		},
		createFn: func(ctx context.Context, tx *gorm.DB, plan *models.Plan) error {
			plan.ID = 1
			return nil
		},
	}

	svc := NewPlanService(planRepo, bookingRepo, &mockPolicyRepo{}, nil)
	detail, err := svc.CreatePlan(context.Background(), "tenant-a", 1, "VIP client")

	require.NoError(t, err)
	assert.NotEmpty(t, detail.Plan.TimelineTasks)
	for _, task := range detail.Plan.TimelineTasks {
		assert.Equal(t, models.OriginGenerated, task.Origin)
	}
	assert.Equal(t, 200, detail.Plan.BookingSnapshot.GuestCount)
	assert.Equal(t, models.SlotNight, detail.Plan.BookingSnapshot.Slot)
	assert.False(t, detail.Changes.Changed)
}

func TestCreatePlan_DuplicateRejected(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, tenantID string, id uint) (*models.Booking, error) {
			return sampleBooking(), nil
		},
	}
	planRepo := &mockPlanRepo{
		findByBookingIDFn: func(ctx context.Context, tenantID string, bookingID uint) (*models.Plan, error) {
			return &models.Plan{ID: 1, BookingID: 1}, nil
		},
	}

	svc := NewPlanService(planRepo, bookingRepo, &mockPolicyRepo{}, nil)
	_, err := svc.CreatePlan(context.Background(), "tenant-a", 1, "")

	assert.ErrorIs(t, err, ErrPlanExists)
}

func TestCreatePlan_CancelledBookingRejected(t *testing.T) {
	booking := sampleBooking()
	booking.Status = models.BookingCancelled
	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, tenantID string, id uint) (*models.Booking, error) {
			return booking, nil
		},
	}

	svc := NewPlanService(&mockPlanRepo{}, bookingRepo, &mockPolicyRepo{}, nil)
	_, err := svc.CreatePlan(context.Background(), "tenant-a", 1, "")

	assert.ErrorIs(t, err, ErrBookingCancelled)
}

func TestGetPlan_DetectsBookingDrift(t *testing.T) {
	booking := sampleBooking()
	booking.GuestCount = 250 // drifted since the snapshot below

	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, tenantID string, id uint) (*models.Booking, error) {
			return booking, nil
		},
	}
	planRepo := &mockPlanRepo{
		findByBookingIDFn: func(ctx context.Context, tenantID string, bookingID uint) (*models.Plan, error) {
			return &models.Plan{
				ID:        1,
				BookingID: 1,
				BookingSnapshot: models.BookingSnapshot{
					GuestCount: 200,
					EventDate:  booking.EventDate,
					Slot:       booking.Slot,
					HallID:     booking.HallID,
					EventType:  booking.EventType,
				},
			}, nil
		},
	}

	svc := NewPlanService(planRepo, bookingRepo, &mockPolicyRepo{}, nil)
	detail, err := svc.GetPlan(context.Background(), "tenant-a", 1)

	require.NoError(t, err)
	assert.True(t, detail.Changes.Changed)
	assert.Contains(t, detail.Changes.Warnings, "Guest count changed from 200 to 250")
}

func TestGetPlan_CancelledBookingZeroesScore(t *testing.T) {
	booking := sampleBooking()
	booking.Status = models.BookingCancelled

	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, tenantID string, id uint) (*models.Booking, error) {
			return booking, nil
		},
	}
	planRepo := &mockPlanRepo{
		findByBookingIDFn: func(ctx context.Context, tenantID string, bookingID uint) (*models.Plan, error) {
			return &models.Plan{
				ID:        1,
				BookingID: 1,
				VendorAssignments: []models.VendorAssignment{
					{ID: 1, Category: models.VendorDecor, Status: models.VendorConfirmed, HighestStatus: models.VendorConfirmed},
				},
				StaffAssignments: []models.StaffAssignment{{ID: "s1", Role: models.RoleWaiter, Count: 20}},
			}, nil
		},
	}

	svc := NewPlanService(planRepo, bookingRepo, &mockPolicyRepo{}, nil)
	detail, err := svc.GetPlan(context.Background(), "tenant-a", 1)

	require.NoError(t, err)
	assert.Equal(t, 0, detail.Readiness.Score)
	assert.NotEmpty(t, detail.Readiness.Breakdown, "breakdown stays readable for history")
}

func TestGetPlan_NotFound(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, tenantID string, id uint) (*models.Booking, error) {
			return sampleBooking(), nil
		},
	}
	planRepo := &mockPlanRepo{
		findByBookingIDFn: func(ctx context.Context, tenantID string, bookingID uint) (*models.Plan, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewPlanService(planRepo, bookingRepo, &mockPolicyRepo{}, nil)
	_, err := svc.GetPlan(context.Background(), "tenant-a", 1)

	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestSuggestStaff_UsesBookingProfile(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, tenantID string, id uint) (*models.Booking, error) {
			return sampleBooking(), nil
		},
	}

	svc := NewPlanService(&mockPlanRepo{}, bookingRepo, &mockPolicyRepo{}, nil)
	staff, err := svc.SuggestStaff(context.Background(), "tenant-a", 1)

	require.NoError(t, err)
	byRole := make(map[models.StaffRole]int)
	for _, s := range staff {
		byRole[s.Role] = s.Count
	}
	// wedding with 200 guests: 10 + ceil(200*0.08) = 26 waiters
	assert.Equal(t, 26, byRole[models.RoleWaiter])
}
