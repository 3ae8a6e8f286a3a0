package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/venuecraft/banquet-service/internal/models"
)

type ExpenseRepository interface {
	Create(ctx context.Context, expense *models.Expense) error
	FindByBooking(ctx context.Context, tenantID string, bookingID uint) ([]models.Expense, error)
	Delete(ctx context.Context, tenantID string, id uint) error
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) FindByBooking(ctx context.Context, tenantID string, bookingID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND booking_id = ?", tenantID, bookingID).
		Order("spent_at ASC, id ASC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepository) Delete(ctx context.Context, tenantID string, id uint) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Delete(&models.Expense{}, id).Error
}

type VendorPaymentRepository interface {
	Create(ctx context.Context, payment *models.VendorPayment) error
	FindByBooking(ctx context.Context, tenantID string, bookingID uint) ([]models.VendorPayment, error)
}

type vendorPaymentRepository struct {
	db *gorm.DB
}

func NewVendorPaymentRepository(db *gorm.DB) VendorPaymentRepository {
	return &vendorPaymentRepository{db: db}
}

func (r *vendorPaymentRepository) Create(ctx context.Context, payment *models.VendorPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *vendorPaymentRepository) FindByBooking(ctx context.Context, tenantID string, bookingID uint) ([]models.VendorPayment, error) {
	var payments []models.VendorPayment
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND booking_id = ?", tenantID, bookingID).
		Order("paid_at ASC, id ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
