package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/venuecraft/banquet-service/internal/models"
)

type PlanRepository interface {
	Create(ctx context.Context, tx *gorm.DB, plan *models.Plan) error
	FindByBookingID(ctx context.Context, tenantID string, bookingID uint) (*models.Plan, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, tenantID string, id uint) (*models.Plan, error)
	Save(ctx context.Context, tx *gorm.DB, plan *models.Plan) error
	CreateAssignment(ctx context.Context, tx *gorm.DB, assignment *models.VendorAssignment) error
	FindAssignment(ctx context.Context, id uint) (*models.VendorAssignment, error)
	SaveAssignment(ctx context.Context, tx *gorm.DB, assignment *models.VendorAssignment) error
	DeleteAssignment(ctx context.Context, tx *gorm.DB, id uint) error
	GetDB() *gorm.DB
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *planRepository) Create(ctx context.Context, tx *gorm.DB, plan *models.Plan) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) FindByBookingID(ctx context.Context, tenantID string, bookingID uint) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.WithContext(ctx).
		Preload("VendorAssignments").
		Where("tenant_id = ? AND booking_id = ?", tenantID, bookingID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// FindByIDForUpdate locks the plan row; plan writes are serialized per plan.
func (r *planRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, tenantID string, id uint) (*models.Plan, error) {
	var plan models.Plan
	err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		Where("tenant_id = ?", tenantID).
		First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	if err := tx.WithContext(ctx).Where("plan_id = ?", plan.ID).Find(&plan.VendorAssignments).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) Save(ctx context.Context, tx *gorm.DB, plan *models.Plan) error {
	if tx == nil {
		tx = r.db
	}
	// Assignments are managed through their own methods; saving the plan
	// must not cascade into them.
	return tx.WithContext(ctx).Omit("VendorAssignments").Save(plan).Error
}

func (r *planRepository) CreateAssignment(ctx context.Context, tx *gorm.DB, assignment *models.VendorAssignment) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(assignment).Error
}

func (r *planRepository) FindAssignment(ctx context.Context, id uint) (*models.VendorAssignment, error) {
	var assignment models.VendorAssignment
	if err := r.db.WithContext(ctx).First(&assignment, id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *planRepository) SaveAssignment(ctx context.Context, tx *gorm.DB, assignment *models.VendorAssignment) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Save(assignment).Error
}

func (r *planRepository) DeleteAssignment(ctx context.Context, tx *gorm.DB, id uint) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Delete(&models.VendorAssignment{}, id).Error
}
