package engine

import (
	"github.com/venuecraft/banquet-service/internal/models"
)

// defaultWorkflowRules back any threshold a tenant has not set. Defaults are
// deliberately permissive: missing configuration degrades, it never blocks.
var defaultWorkflowRules = models.WorkflowRules{
	AdvanceRequiredPercent:        50,
	VendorsMandatoryBeforeConfirm: false,
	StaffMandatoryBeforeEvent:     false,
	ProfitMarginWarningPercent:    20,
	VendorUnpaidWarningDays:       14,
}

// PolicyResolver answers feature/rule/permission lookups for one tenant,
// falling back to built-in defaults. Lookups never fail: an unconfigured
// tenant resolves everything to the most permissive answer.
type PolicyResolver struct {
	policy *models.TenantPolicy
}

// ResolvePolicy wraps a tenant policy; nil is valid and yields pure defaults.
func ResolvePolicy(p *models.TenantPolicy) PolicyResolver {
	return PolicyResolver{policy: p}
}

// Version reports the policy version, 0 for an unconfigured tenant.
// Dependents poll this to detect the need to refetch.
func (r PolicyResolver) Version() int64 {
	if r.policy == nil {
		return 0
	}
	return r.policy.Version
}

// IsFeatureEnabled defaults to enabled when the tenant has no explicit flag.
func (r PolicyResolver) IsFeatureEnabled(name string) bool {
	if r.policy == nil || r.policy.Features == nil {
		return true
	}
	enabled, ok := r.policy.Features[name]
	if !ok {
		return true
	}
	return enabled
}

// WorkflowRules merges tenant overrides over the defaults; unset (zero)
// thresholds keep their default values.
func (r PolicyResolver) WorkflowRules() models.WorkflowRules {
	rules := defaultWorkflowRules
	if r.policy == nil {
		return rules
	}
	set := r.policy.Rules
	if set.AdvanceRequiredPercent > 0 {
		rules.AdvanceRequiredPercent = set.AdvanceRequiredPercent
	}
	if set.ProfitMarginWarningPercent > 0 {
		rules.ProfitMarginWarningPercent = set.ProfitMarginWarningPercent
	}
	if set.VendorUnpaidWarningDays > 0 {
		rules.VendorUnpaidWarningDays = set.VendorUnpaidWarningDays
	}
	rules.VendorsMandatoryBeforeConfirm = set.VendorsMandatoryBeforeConfirm
	rules.StaffMandatoryBeforeEvent = set.StaffMandatoryBeforeEvent
	return rules
}

// HasPermission consults the tenant's role map; a role without an explicit
// entry is unrestricted. A "*" grant matches every permission.
func (r PolicyResolver) HasPermission(role, permission string) bool {
	if r.policy == nil || r.policy.Permissions == nil {
		return true
	}
	grants, ok := r.policy.Permissions[role]
	if !ok {
		return true
	}
	for _, g := range grants {
		if g == "*" || g == permission {
			return true
		}
	}
	return false
}

// CheckPolicyVersion returns a StaleConfigWarning when the seen version lags
// the expected one, nil otherwise. Advisory only.
func CheckPolicyVersion(tenantID string, seen, want int64) *StaleConfigWarning {
	if seen >= want {
		return nil
	}
	return &StaleConfigWarning{TenantID: tenantID, SeenVersion: seen, WantVersion: want}
}
