package service

import (
	"context"
	"fmt"
	"time"

	"github.com/venuecraft/banquet-service/internal/engine"
	"github.com/venuecraft/banquet-service/internal/models"
	"github.com/venuecraft/banquet-service/internal/repository"
)

type ProfitService interface {
	GetProfit(ctx context.Context, tenantID string, bookingID uint) (*engine.ProfitSnapshot, error)
	AddExpense(ctx context.Context, expense *models.Expense) error
	AddVendorPayment(ctx context.Context, payment *models.VendorPayment) error
	ListExpenses(ctx context.Context, tenantID string, bookingID uint) ([]models.Expense, error)
	DeleteExpense(ctx context.Context, tenantID string, id uint) error
}

type profitService struct {
	bookingRepo repository.BookingRepository
	planRepo    repository.PlanRepository
	expenseRepo repository.ExpenseRepository
	paymentRepo repository.VendorPaymentRepository
	policyRepo  repository.PolicyRepository
	now         func() time.Time
}

func NewProfitService(
	bookingRepo repository.BookingRepository,
	planRepo repository.PlanRepository,
	expenseRepo repository.ExpenseRepository,
	paymentRepo repository.VendorPaymentRepository,
	policyRepo repository.PolicyRepository,
) ProfitService {
	return &profitService{
		bookingRepo: bookingRepo,
		planRepo:    planRepo,
		expenseRepo: expenseRepo,
		paymentRepo: paymentRepo,
		policyRepo:  policyRepo,
		now:         time.Now,
	}
}

// GetProfit recomputes the snapshot on demand. Missing plan, expenses or
// payments degrade to empty; only a missing booking is an error.
func (s *profitService) GetProfit(ctx context.Context, tenantID string, bookingID uint) (*engine.ProfitSnapshot, error) {
	booking, err := s.bookingRepo.FindByID(ctx, tenantID, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	plan, err := s.planRepo.FindByBookingID(ctx, tenantID, bookingID)
	if err != nil {
		plan = nil
	}
	expenses, err := s.expenseRepo.FindByBooking(ctx, tenantID, bookingID)
	if err != nil {
		expenses = nil
	}
	payments, err := s.paymentRepo.FindByBooking(ctx, tenantID, bookingID)
	if err != nil {
		payments = nil
	}

	var policy *models.TenantPolicy
	if p, err := s.policyRepo.FindByTenant(ctx, tenantID); err == nil {
		policy = p
	}
	rules := engine.ResolvePolicy(policy).WorkflowRules()

	snapshot := engine.ReconcileProfit(booking, plan, expenses, payments, rules, s.now())
	return &snapshot, nil
}

func (s *profitService) AddExpense(ctx context.Context, expense *models.Expense) error {
	if expense.Amount.IsNegative() {
		return fmt.Errorf("%w: expense amount is negative", engine.ErrInvalidPricingInput)
	}
	if expense.SpentAt.IsZero() {
		expense.SpentAt = s.now()
	}
	return s.expenseRepo.Create(ctx, expense)
}

func (s *profitService) AddVendorPayment(ctx context.Context, payment *models.VendorPayment) error {
	if payment.Amount.IsNegative() {
		return fmt.Errorf("%w: payment amount is negative", engine.ErrInvalidPricingInput)
	}
	if payment.PaidAt.IsZero() {
		payment.PaidAt = s.now()
	}
	return s.paymentRepo.Create(ctx, payment)
}

func (s *profitService) ListExpenses(ctx context.Context, tenantID string, bookingID uint) ([]models.Expense, error) {
	return s.expenseRepo.FindByBooking(ctx, tenantID, bookingID)
}

func (s *profitService) DeleteExpense(ctx context.Context, tenantID string, id uint) error {
	return s.expenseRepo.Delete(ctx, tenantID, id)
}
