package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/venuecraft/banquet-service/internal/models"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, tenantID string, id uint) (*models.Booking, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, tenantID string, id uint) (*models.Booking, error)
	FindByTenant(ctx context.Context, tenantID string, status *models.BookingStatus) ([]models.Booking, error)
	Save(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindSlotConflict(ctx context.Context, tenantID string, hallID uint, eventDate time.Time, slot models.Slot, excludeID uint) (*models.Booking, error)
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, tenantID string, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindByIDForUpdate acquires a row-level lock on the booking within the given transaction.
func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, tenantID string, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		Where("tenant_id = ?", tenantID).
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByTenant(ctx context.Context, tenantID string, status *models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("event_date ASC, id ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) Save(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Save(booking).Error
}

// FindSlotConflict looks for another confirmed booking holding the same
// hall, date and slot.
func (r *bookingRepository) FindSlotConflict(ctx context.Context, tenantID string, hallID uint, eventDate time.Time, slot models.Slot, excludeID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND hall_id = ? AND event_date = ? AND slot = ? AND status = ? AND id <> ?",
			tenantID, hallID, eventDate, slot, models.BookingConfirmed, excludeID).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
