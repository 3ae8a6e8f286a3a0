package engine

import (
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/venuecraft/banquet-service/internal/models"
)

// roleTemplate sizes one role as ceil(base + guests × perGuest).
type roleTemplate struct {
	role     models.StaffRole
	base     float64
	perGuest float64
}

// staffTemplates is fixed business policy per event type; event types
// without their own entry fall back to the default template.
var staffTemplates = map[models.EventType][]roleTemplate{
	models.EventWedding: {
		{models.RoleWaiter, 10, 0.08},
		{models.RoleChef, 2, 0.01},
		{models.RoleHelper, 4, 0.02},
		{models.RoleSupervisor, 1, 0.005},
		{models.RoleUsher, 2, 0.01},
	},
	models.EventBirthday: {
		{models.RoleWaiter, 3, 0.05},
		{models.RoleChef, 1, 0.005},
		{models.RoleHelper, 1, 0.02},
	},
	models.EventCorporate: {
		{models.RoleWaiter, 4, 0.03},
		{models.RoleUsher, 2, 0.01},
		{models.RoleSupervisor, 1, 0.004},
	},
}

var defaultStaffTemplate = []roleTemplate{
	{models.RoleWaiter, 2, 0.05},
	{models.RoleHelper, 1, 0.01},
}

var defaultWages = map[models.StaffRole]decimal.Decimal{
	models.RoleWaiter:     decimal.NewFromInt(500),
	models.RoleChef:       decimal.NewFromInt(1500),
	models.RoleHelper:     decimal.NewFromInt(400),
	models.RoleSupervisor: decimal.NewFromInt(1000),
	models.RoleUsher:      decimal.NewFromInt(450),
	models.RoleCustom:     decimal.NewFromInt(500),
}

// understaffedRatio flags roles staffed below this fraction of the suggestion.
const understaffedRatio = 0.7

// SlotShift returns the default staff shift hours for a slot.
func SlotShift(slot models.Slot) (start, end string) {
	if slot == models.SlotNight {
		return "17:00", "23:00"
	}
	return "09:00", "17:00"
}

// SuggestStaff derives one assignment per templated role for the event type
// and guest count, with default wages and slot-based shift hours.
func SuggestStaff(eventType models.EventType, guestCount int, slot models.Slot) []models.StaffAssignment {
	shiftStart, shiftEnd := SlotShift(slot)
	template := templateFor(eventType)
	out := make([]models.StaffAssignment, 0, len(template))
	for _, rt := range template {
		out = append(out, models.StaffAssignment{
			ID:         uuid.NewString(),
			Role:       rt.role,
			Count:      headcount(rt, guestCount),
			WageType:   models.WageFixed,
			Wage:       defaultWages[rt.role],
			ShiftStart: shiftStart,
			ShiftEnd:   shiftEnd,
			Attendance: models.AttendancePending,
		})
	}
	return out
}

// UnderstaffedRole names a role whose current count falls below 70% of the
// template suggestion.
type UnderstaffedRole struct {
	Role      models.StaffRole `json:"role"`
	Current   int              `json:"current"`
	Suggested int              `json:"suggested"`
}

// DetectUnderstaffing compares current assignments against the template for
// the event. Roles outside the template are never flagged.
func DetectUnderstaffing(current []models.StaffAssignment, eventType models.EventType, guestCount int) []UnderstaffedRole {
	counts := make(map[models.StaffRole]int)
	for _, a := range current {
		counts[a.Role] += a.Count
	}

	var flagged []UnderstaffedRole
	for _, rt := range templateFor(eventType) {
		suggested := headcount(rt, guestCount)
		if float64(counts[rt.role]) < understaffedRatio*float64(suggested) {
			flagged = append(flagged, UnderstaffedRole{
				Role:      rt.role,
				Current:   counts[rt.role],
				Suggested: suggested,
			})
		}
	}
	return flagged
}

// StaffCost totals wages across assignments. Fixed wages multiply by the
// staffed count; per-head wages multiply by the assignment's own headcount
// field, never the booking's guest count.
func StaffCost(assignments []models.StaffAssignment) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assignments {
		if a.WageType == models.WagePerHead {
			total = total.Add(a.Wage.Mul(decimal.NewFromInt(int64(a.Headcount))))
			continue
		}
		total = total.Add(a.Wage.Mul(decimal.NewFromInt(int64(a.Count))))
	}
	return total
}

func templateFor(eventType models.EventType) []roleTemplate {
	if t, ok := staffTemplates[eventType]; ok {
		return t
	}
	return defaultStaffTemplate
}

func headcount(rt roleTemplate, guests int) int {
	n := int(math.Ceil(rt.base + float64(guests)*rt.perGuest))
	if n < 1 {
		n = 1
	}
	return n
}
