package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/venuecraft/banquet-service/internal/models"
)

func TestGetPolicy_UnconfiguredTenantGetsDefaults(t *testing.T) {
	repo := &mockPolicyRepo{
		findByTenantFn: func(ctx context.Context, tenantID string) (*models.TenantPolicy, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewPolicyService(repo, nil)
	policy, err := svc.GetPolicy(context.Background(), "tenant-new")

	require.NoError(t, err)
	assert.Equal(t, int64(0), policy.Version)
	assert.Equal(t, 50, policy.Rules.AdvanceRequiredPercent)
	assert.Equal(t, 20, policy.Rules.ProfitMarginWarningPercent)
	assert.False(t, policy.Rules.VendorsMandatoryBeforeConfirm)
}

func TestGetPolicy_StoredRulesMergeOverDefaults(t *testing.T) {
	repo := &mockPolicyRepo{
		findByTenantFn: func(ctx context.Context, tenantID string) (*models.TenantPolicy, error) {
			return &models.TenantPolicy{
				TenantID: tenantID,
				Version:  3,
				Features: map[string]bool{"profit_module": false},
				Rules: models.WorkflowRules{
					AdvanceRequiredPercent:        30,
					VendorsMandatoryBeforeConfirm: true,
				},
			}, nil
		},
	}

	svc := NewPolicyService(repo, nil)
	policy, err := svc.GetPolicy(context.Background(), "tenant-a")

	require.NoError(t, err)
	assert.Equal(t, int64(3), policy.Version)
	assert.Equal(t, 30, policy.Rules.AdvanceRequiredPercent)
	assert.True(t, policy.Rules.VendorsMandatoryBeforeConfirm)
	// unset thresholds fall back to defaults
	assert.Equal(t, 20, policy.Rules.ProfitMarginWarningPercent)
	assert.Equal(t, 14, policy.Rules.VendorUnpaidWarningDays)
	assert.False(t, policy.Features["profit_module"])
}

func TestUpdatePolicy_BumpsVersion(t *testing.T) {
	repo := &mockPolicyRepo{
		updateFn: func(ctx context.Context, policy *models.TenantPolicy) error {
			policy.Version = 4
			return nil
		},
	}

	svc := NewPolicyService(repo, nil)
	updated, err := svc.UpdatePolicy(context.Background(), &models.TenantPolicy{TenantID: "tenant-a"})

	require.NoError(t, err)
	assert.Equal(t, int64(4), updated.Version)
}

func TestCheckVersion_Stale(t *testing.T) {
	repo := &mockPolicyRepo{
		findByTenantFn: func(ctx context.Context, tenantID string) (*models.TenantPolicy, error) {
			return &models.TenantPolicy{TenantID: tenantID, Version: 5}, nil
		},
	}

	svc := NewPolicyService(repo, nil)

	warn := svc.CheckVersion(context.Background(), "tenant-a", 3)
	require.NotNil(t, warn)
	assert.Equal(t, int64(5), warn.WantVersion)

	assert.Nil(t, svc.CheckVersion(context.Background(), "tenant-a", 5))
}
