package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/venuecraft/banquet-service/internal/models"
)

type PolicyRepository interface {
	FindByTenant(ctx context.Context, tenantID string) (*models.TenantPolicy, error)
	// Update persists the policy and bumps its version atomically.
	Update(ctx context.Context, policy *models.TenantPolicy) error
	// Upsert applies a policy pushed from the tenant-admin service as-is,
	// keeping whichever version is newer.
	Upsert(ctx context.Context, policy *models.TenantPolicy) error
}

type policyRepository struct {
	db *gorm.DB
}

func NewPolicyRepository(db *gorm.DB) PolicyRepository {
	return &policyRepository{db: db}
}

func (r *policyRepository) FindByTenant(ctx context.Context, tenantID string) (*models.TenantPolicy, error) {
	var policy models.TenantPolicy
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&policy).Error
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

func (r *policyRepository) Update(ctx context.Context, policy *models.TenantPolicy) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.TenantPolicy
		err := tx.Set("gorm:query_option", "FOR UPDATE").
			Where("tenant_id = ?", policy.TenantID).
			First(&current).Error
		switch {
		case err == nil:
			policy.Version = current.Version + 1
			return tx.Save(policy).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			policy.Version = 1
			return tx.Create(policy).Error
		default:
			return err
		}
	})
}

func (r *policyRepository) Upsert(ctx context.Context, policy *models.TenantPolicy) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"version", "features", "rules", "permissions", "updated_at",
		}),
	}).Create(policy).Error
}
