package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/venuecraft/banquet-service/internal/models"
)

// ProfitSnapshot is derived on demand, never persisted.
type ProfitSnapshot struct {
	BookingRevenue   decimal.Decimal `json:"booking_revenue"`
	PaymentsReceived decimal.Decimal `json:"payments_received"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	EstimatedProfit  decimal.Decimal `json:"estimated_profit"`
	ProfitMargin     decimal.Decimal `json:"profit_margin"`
	Alerts           []string        `json:"alerts,omitempty"`
}

// ReconcileProfit aggregates revenue, payments, expenses and vendor payments
// into a profit snapshot with advisory alerts. Missing linked records are
// treated as zero; this never fails.
func ReconcileProfit(booking *models.Booking, plan *models.Plan, expenses []models.Expense,
	vendorPayments []models.VendorPayment, rules models.WorkflowRules, now time.Time) ProfitSnapshot {

	totalExpenses := decimal.Zero
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
	}
	for _, p := range vendorPayments {
		totalExpenses = totalExpenses.Add(p.Amount)
	}

	revenue := booking.TotalAmount
	profit := revenue.Sub(totalExpenses)

	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = profit.Mul(oneHundred).Div(revenue)
	}

	var alerts []string
	if revenue.IsPositive() && margin.LessThan(decimal.NewFromInt(int64(rules.ProfitMarginWarningPercent))) {
		alerts = append(alerts, fmt.Sprintf("Profit margin %s%% is below the %d%% warning threshold",
			margin.Round(1), rules.ProfitMarginWarningPercent))
	}
	if plan != nil {
		alerts = append(alerts, unpaidVendorAlerts(plan.VendorAssignments, rules, now)...)
	}

	return ProfitSnapshot{
		BookingRevenue:   revenue,
		PaymentsReceived: booking.AdvancePaid,
		TotalExpenses:    totalExpenses,
		EstimatedProfit:  profit,
		ProfitMargin:     margin,
		Alerts:           alerts,
	}
}

// unpaidVendorAlerts flags assignments that were confirmed more than the
// allowed number of days ago and have still not been settled in full.
func unpaidVendorAlerts(assignments []models.VendorAssignment, rules models.WorkflowRules, now time.Time) []string {
	if rules.VendorUnpaidWarningDays <= 0 {
		return nil
	}
	var alerts []string
	for _, a := range assignments {
		if a.HighestStatus.Rank() >= models.VendorPaid.Rank() || a.ConfirmedAt == nil {
			continue
		}
		if a.AdvancePaid.GreaterThanOrEqual(a.Cost) {
			continue
		}
		days := int(now.Sub(*a.ConfirmedAt).Hours() / 24)
		if days > rules.VendorUnpaidWarningDays {
			name := a.VendorName
			if name == "" {
				name = string(a.Category)
			}
			alerts = append(alerts, fmt.Sprintf("Vendor %s unpaid for %d days since confirmation", name, days))
		}
	}
	return alerts
}
