package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/venuecraft/banquet-service/internal/models"
)

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn           func(ctx context.Context, booking *models.Booking) error
	findByIDFn         func(ctx context.Context, tenantID string, id uint) (*models.Booking, error)
	findByTenantFn     func(ctx context.Context, tenantID string, status *models.BookingStatus) ([]models.Booking, error)
	saveFn             func(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	findSlotConflictFn func(ctx context.Context, tenantID string, hallID uint, eventDate time.Time, slot models.Slot, excludeID uint) (*models.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	return m.createFn(ctx, booking)
}
func (m *mockBookingRepo) FindByID(ctx context.Context, tenantID string, id uint) (*models.Booking, error) {
	return m.findByIDFn(ctx, tenantID, id)
}
func (m *mockBookingRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, tenantID string, id uint) (*models.Booking, error) {
	return m.findByIDFn(ctx, tenantID, id)
}
func (m *mockBookingRepo) FindByTenant(ctx context.Context, tenantID string, status *models.BookingStatus) ([]models.Booking, error) {
	return m.findByTenantFn(ctx, tenantID, status)
}
func (m *mockBookingRepo) Save(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return m.saveFn(ctx, tx, booking)
}
func (m *mockBookingRepo) FindSlotConflict(ctx context.Context, tenantID string, hallID uint, eventDate time.Time, slot models.Slot, excludeID uint) (*models.Booking, error) {
	return m.findSlotConflictFn(ctx, tenantID, hallID, eventDate, slot, excludeID)
}
func (m *mockBookingRepo) GetDB() *gorm.DB { return nil }

// --- Mock PlanRepository ---

type mockPlanRepo struct {
	createFn           func(ctx context.Context, tx *gorm.DB, plan *models.Plan) error
	findByBookingIDFn  func(ctx context.Context, tenantID string, bookingID uint) (*models.Plan, error)
	saveFn             func(ctx context.Context, tx *gorm.DB, plan *models.Plan) error
	createAssignmentFn func(ctx context.Context, tx *gorm.DB, assignment *models.VendorAssignment) error
	saveAssignmentFn   func(ctx context.Context, tx *gorm.DB, assignment *models.VendorAssignment) error
	deleteAssignmentFn func(ctx context.Context, tx *gorm.DB, id uint) error
}

func (m *mockPlanRepo) Create(ctx context.Context, tx *gorm.DB, plan *models.Plan) error {
	return m.createFn(ctx, tx, plan)
}
func (m *mockPlanRepo) FindByBookingID(ctx context.Context, tenantID string, bookingID uint) (*models.Plan, error) {
	return m.findByBookingIDFn(ctx, tenantID, bookingID)
}
func (m *mockPlanRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, tenantID string, id uint) (*models.Plan, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockPlanRepo) Save(ctx context.Context, tx *gorm.DB, plan *models.Plan) error {
	return m.saveFn(ctx, tx, plan)
}
func (m *mockPlanRepo) CreateAssignment(ctx context.Context, tx *gorm.DB, assignment *models.VendorAssignment) error {
	return m.createAssignmentFn(ctx, tx, assignment)
}
func (m *mockPlanRepo) FindAssignment(ctx context.Context, id uint) (*models.VendorAssignment, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockPlanRepo) SaveAssignment(ctx context.Context, tx *gorm.DB, assignment *models.VendorAssignment) error {
	return m.saveAssignmentFn(ctx, tx, assignment)
}
func (m *mockPlanRepo) DeleteAssignment(ctx context.Context, tx *gorm.DB, id uint) error {
	return m.deleteAssignmentFn(ctx, tx, id)
}
func (m *mockPlanRepo) GetDB() *gorm.DB { return nil }

// --- Mock MenuRepository ---

type mockMenuRepo struct {
	findByIDsFn func(ctx context.Context, tenantID string, ids []uint) ([]models.MenuItem, error)
}

func (m *mockMenuRepo) FindByIDs(ctx context.Context, tenantID string, ids []uint) ([]models.MenuItem, error) {
	return m.findByIDsFn(ctx, tenantID, ids)
}

// --- Mock PolicyRepository ---

type mockPolicyRepo struct {
	findByTenantFn func(ctx context.Context, tenantID string) (*models.TenantPolicy, error)
	updateFn       func(ctx context.Context, policy *models.TenantPolicy) error
	upsertFn       func(ctx context.Context, policy *models.TenantPolicy) error
}

func (m *mockPolicyRepo) FindByTenant(ctx context.Context, tenantID string) (*models.TenantPolicy, error) {
	if m.findByTenantFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findByTenantFn(ctx, tenantID)
}
func (m *mockPolicyRepo) Update(ctx context.Context, policy *models.TenantPolicy) error {
	return m.updateFn(ctx, policy)
}
func (m *mockPolicyRepo) Upsert(ctx context.Context, policy *models.TenantPolicy) error {
	return m.upsertFn(ctx, policy)
}

// --- Mock ExpenseRepository ---

type mockExpenseRepo struct {
	createFn        func(ctx context.Context, expense *models.Expense) error
	findByBookingFn func(ctx context.Context, tenantID string, bookingID uint) ([]models.Expense, error)
}

func (m *mockExpenseRepo) Create(ctx context.Context, expense *models.Expense) error {
	return m.createFn(ctx, expense)
}
func (m *mockExpenseRepo) FindByBooking(ctx context.Context, tenantID string, bookingID uint) ([]models.Expense, error) {
	return m.findByBookingFn(ctx, tenantID, bookingID)
}
func (m *mockExpenseRepo) Delete(ctx context.Context, tenantID string, id uint) error {
	return nil
}

// --- Mock VendorPaymentRepository ---

type mockVendorPaymentRepo struct {
	createFn        func(ctx context.Context, payment *models.VendorPayment) error
	findByBookingFn func(ctx context.Context, tenantID string, bookingID uint) ([]models.VendorPayment, error)
}

func (m *mockVendorPaymentRepo) Create(ctx context.Context, payment *models.VendorPayment) error {
	return m.createFn(ctx, payment)
}
func (m *mockVendorPaymentRepo) FindByBooking(ctx context.Context, tenantID string, bookingID uint) ([]models.VendorPayment, error) {
	return m.findByBookingFn(ctx, tenantID, bookingID)
}
