package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/venuecraft/banquet-service/internal/models"
)

// vendorConfirmWindowDays is how close to the event unconfirmed vendors
// start costing readiness points.
const vendorConfirmWindowDays = 7

type ReadinessSignal struct {
	Name   string `json:"name"`
	Met    bool   `json:"met"`
	Weight int    `json:"weight"`
}

type Readiness struct {
	Score     int               `json:"score"`
	Breakdown []ReadinessSignal `json:"breakdown"`
}

// ComputeReadiness scores how operationally prepared an event is, 0–100,
// from a fixed weighted checklist. It is a pure function of the current
// plan, booking and policy; callers recompute on every read, nothing is
// cached.
func ComputeReadiness(plan *models.Plan, booking *models.Booking, rules models.WorkflowRules, now time.Time) Readiness {
	signals := []ReadinessSignal{
		{Name: "vendors_assigned", Weight: 25, Met: len(plan.VendorAssignments) > 0},
		{Name: "staff_assigned", Weight: 20, Met: len(plan.StaffAssignments) > 0},
		{Name: "timeline_generated", Weight: 20, Met: len(plan.TimelineTasks) >= 3},
		{Name: "advance_paid_sufficient", Weight: 20, Met: advanceSufficient(booking, rules)},
		{Name: "no_unconfirmed_vendors_near_event", Weight: 15, Met: vendorsConfirmedNearEvent(plan, booking, now)},
	}

	score := 0
	for _, s := range signals {
		if s.Met {
			score += s.Weight
		}
	}
	return Readiness{Score: score, Breakdown: signals}
}

// advanceSufficient checks advance_paid/total against the tenant's required
// advance percentage. A zero total means nothing is owed, which counts as
// sufficient.
func advanceSufficient(booking *models.Booking, rules models.WorkflowRules) bool {
	if !booking.TotalAmount.IsPositive() {
		return true
	}
	required := booking.TotalAmount.
		Mul(decimal.NewFromInt(int64(rules.AdvanceRequiredPercent))).
		Div(oneHundred)
	return booking.AdvancePaid.GreaterThanOrEqual(required)
}

// vendorsConfirmedNearEvent is credited while the event is more than a week
// away. Inside the window every assignment must have reached confirmed at
// some point; the highest status ever reached counts, not the currently
// displayed one.
func vendorsConfirmedNearEvent(plan *models.Plan, booking *models.Booking, now time.Time) bool {
	if daysUntil(booking.EventDate, now) > vendorConfirmWindowDays {
		return true
	}
	for _, a := range plan.VendorAssignments {
		if a.HighestStatus.Rank() < models.VendorConfirmed.Rank() {
			return false
		}
	}
	return true
}

func daysUntil(eventDate, now time.Time) int {
	return int(eventDate.Sub(now).Hours() / 24)
}
