package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/venuecraft/banquet-service/internal/engine"
	"github.com/venuecraft/banquet-service/internal/models"
)

func TestGetProfit_FullReconciliation(t *testing.T) {
	booking := sampleBooking()
	booking.TotalAmount = dec("100000")
	booking.AdvancePaid = dec("40000")

	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, tenantID string, id uint) (*models.Booking, error) {
			return booking, nil
		},
	}
	planRepo := &mockPlanRepo{
		findByBookingIDFn: func(ctx context.Context, tenantID string, bookingID uint) (*models.Plan, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	expenseRepo := &mockExpenseRepo{
		findByBookingFn: func(ctx context.Context, tenantID string, bookingID uint) ([]models.Expense, error) {
			return []models.Expense{
				{Amount: dec("15000"), Category: models.ExpenseFood},
				{Amount: dec("5000"), Category: models.ExpenseMisc},
			}, nil
		},
	}
	paymentRepo := &mockVendorPaymentRepo{
		findByBookingFn: func(ctx context.Context, tenantID string, bookingID uint) ([]models.VendorPayment, error) {
			return []models.VendorPayment{{VendorID: 1, Amount: dec("20000")}}, nil
		},
	}

	svc := NewProfitService(bookingRepo, planRepo, expenseRepo, paymentRepo, &mockPolicyRepo{})
	snapshot, err := svc.GetProfit(context.Background(), "tenant-a", 1)

	require.NoError(t, err)
	assert.True(t, snapshot.BookingRevenue.Equal(dec("100000")))
	assert.True(t, snapshot.TotalExpenses.Equal(dec("40000")))
	assert.True(t, snapshot.EstimatedProfit.Equal(dec("60000")))
	assert.True(t, snapshot.ProfitMargin.Equal(dec("60")), "margin = %s", snapshot.ProfitMargin)
	assert.Empty(t, snapshot.Alerts)
}

func TestGetProfit_MissingLinkedRecordsDegrade(t *testing.T) {
	booking := sampleBooking()
	booking.TotalAmount = dec("50000")

	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, tenantID string, id uint) (*models.Booking, error) {
			return booking, nil
		},
	}
	planRepo := &mockPlanRepo{
		findByBookingIDFn: func(ctx context.Context, tenantID string, bookingID uint) (*models.Plan, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	expenseRepo := &mockExpenseRepo{
		findByBookingFn: func(ctx context.Context, tenantID string, bookingID uint) ([]models.Expense, error) {
			return nil, assert.AnError
		},
	}
	paymentRepo := &mockVendorPaymentRepo{
		findByBookingFn: func(ctx context.Context, tenantID string, bookingID uint) ([]models.VendorPayment, error) {
			return nil, assert.AnError
		},
	}

	svc := NewProfitService(bookingRepo, planRepo, expenseRepo, paymentRepo, &mockPolicyRepo{})
	snapshot, err := svc.GetProfit(context.Background(), "tenant-a", 1)

	require.NoError(t, err)
	assert.True(t, snapshot.TotalExpenses.IsZero())
	assert.True(t, snapshot.EstimatedProfit.Equal(dec("50000")))
}

func TestGetProfit_BookingMissing(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, tenantID string, id uint) (*models.Booking, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewProfitService(bookingRepo, &mockPlanRepo{}, &mockExpenseRepo{}, &mockVendorPaymentRepo{}, &mockPolicyRepo{})
	_, err := svc.GetProfit(context.Background(), "tenant-a", 999)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestAddExpense_NegativeAmountRejected(t *testing.T) {
	svc := NewProfitService(&mockBookingRepo{}, &mockPlanRepo{}, &mockExpenseRepo{}, &mockVendorPaymentRepo{}, &mockPolicyRepo{})

	err := svc.AddExpense(context.Background(), &models.Expense{
		TenantID: "tenant-a",
		Amount:   dec("-100"),
	})

	assert.ErrorIs(t, err, engine.ErrInvalidPricingInput)
}

func TestAddExpense_DefaultsSpentAt(t *testing.T) {
	var saved *models.Expense
	expenseRepo := &mockExpenseRepo{
		createFn: func(ctx context.Context, expense *models.Expense) error {
			saved = expense
			return nil
		},
	}

	svc := NewProfitService(&mockBookingRepo{}, &mockPlanRepo{}, expenseRepo, &mockVendorPaymentRepo{}, &mockPolicyRepo{})
	err := svc.AddExpense(context.Background(), &models.Expense{
		TenantID: "tenant-a",
		Amount:   dec("2500"),
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.False(t, saved.SpentAt.IsZero())
}

func TestAddVendorPayment_KeepsExplicitPaidAt(t *testing.T) {
	paidAt := time.Date(2027, 3, 1, 12, 0, 0, 0, time.UTC)
	var saved *models.VendorPayment
	paymentRepo := &mockVendorPaymentRepo{
		createFn: func(ctx context.Context, payment *models.VendorPayment) error {
			saved = payment
			return nil
		},
	}

	svc := NewProfitService(&mockBookingRepo{}, &mockPlanRepo{}, &mockExpenseRepo{}, paymentRepo, &mockPolicyRepo{})
	err := svc.AddVendorPayment(context.Background(), &models.VendorPayment{
		TenantID: "tenant-a",
		VendorID: 1,
		Amount:   dec("10000"),
		PaidAt:   paidAt,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.True(t, saved.PaidAt.Equal(paidAt))
}
