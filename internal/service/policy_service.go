package service

import (
	"context"
	"fmt"

	"github.com/venuecraft/banquet-service/internal/engine"
	"github.com/venuecraft/banquet-service/internal/models"
	"github.com/venuecraft/banquet-service/internal/repository"
	"github.com/venuecraft/banquet-service/pkg/rabbitmq"
)

// ResolvedPolicy is what dependents consume: effective rules with defaults
// already merged in, plus the raw version for staleness polling.
type ResolvedPolicy struct {
	TenantID string               `json:"tenant_id"`
	Version  int64                `json:"version"`
	Features map[string]bool      `json:"features"`
	Rules    models.WorkflowRules `json:"rules"`
}

type PolicyService interface {
	GetPolicy(ctx context.Context, tenantID string) (*ResolvedPolicy, error)
	UpdatePolicy(ctx context.Context, policy *models.TenantPolicy) (*models.TenantPolicy, error)
	CheckVersion(ctx context.Context, tenantID string, seenVersion int64) *engine.StaleConfigWarning
}

type policyService struct {
	policyRepo repository.PolicyRepository
	publisher  *rabbitmq.Publisher
}

func NewPolicyService(policyRepo repository.PolicyRepository, publisher *rabbitmq.Publisher) PolicyService {
	return &policyService{policyRepo: policyRepo, publisher: publisher}
}

// GetPolicy never fails on absence: an unconfigured tenant resolves to the
// built-in defaults at version 0.
func (s *policyService) GetPolicy(ctx context.Context, tenantID string) (*ResolvedPolicy, error) {
	policy, err := s.policyRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		policy = nil
	}
	resolver := engine.ResolvePolicy(policy)

	features := map[string]bool{}
	if policy != nil && policy.Features != nil {
		features = policy.Features
	}

	return &ResolvedPolicy{
		TenantID: tenantID,
		Version:  resolver.Version(),
		Features: features,
		Rules:    resolver.WorkflowRules(),
	}, nil
}

func (s *policyService) UpdatePolicy(ctx context.Context, policy *models.TenantPolicy) (*models.TenantPolicy, error) {
	if err := s.policyRepo.Update(ctx, policy); err != nil {
		return nil, fmt.Errorf("update tenant policy: %w", err)
	}
	if s.publisher != nil {
		_ = s.publisher.Publish("tenant.policy.updated", policy)
	}
	return policy, nil
}

// CheckVersion lets callers that cached a policy detect staleness; the
// warning is advisory, never an error path.
func (s *policyService) CheckVersion(ctx context.Context, tenantID string, seenVersion int64) *engine.StaleConfigWarning {
	policy, err := s.policyRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil
	}
	return engine.CheckPolicyVersion(tenantID, seenVersion, policy.Version)
}
