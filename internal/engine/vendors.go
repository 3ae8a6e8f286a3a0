package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/venuecraft/banquet-service/internal/models"
)

// vendorSeedTasks is the fixed per-category checklist seeded into a plan
// when a vendor of that category is assigned. Seeded tasks are untimed prep
// work; they are appended, never replace existing tasks.
var vendorSeedTasks = map[models.VendorCategory][]string{
	models.VendorDecor: {
		"Finalize theme",
		"Confirm stage setup time",
		"Arrange flower delivery",
	},
	models.VendorCatering: {
		"Confirm final menu",
		"Share guest count with caterer",
		"Schedule tasting session",
	},
	models.VendorDJSound: {
		"Collect song preferences",
		"Confirm sound system setup time",
		"Arrange backup equipment",
	},
	models.VendorPhotography: {
		"Share event schedule with photographer",
		"Finalize shot list",
		"Confirm album delivery date",
	},
	models.VendorFlower: {
		"Finalize flower selection",
		"Confirm delivery slot",
	},
	models.VendorLighting: {
		"Walk venue for lighting plan",
		"Confirm rigging access time",
	},
	models.VendorOther: {
		"Confirm scope of work",
	},
}

var vendorCategoryLabels = map[models.VendorCategory]string{
	models.VendorDJSound:     "DJ/Sound",
	models.VendorDecor:       "Decor",
	models.VendorCatering:    "Catering",
	models.VendorPhotography: "Photography",
	models.VendorFlower:      "Flower",
	models.VendorLighting:    "Lighting",
	models.VendorOther:       "Vendor",
}

// CheckVendorAssignable enforces one-vendor-per-category exclusivity: a plan
// may hold at most one assignment per category, except "other" which is
// unbounded.
func CheckVendorAssignable(existing []models.VendorAssignment, category models.VendorCategory) error {
	if category == models.VendorOther {
		return nil
	}
	for _, a := range existing {
		if a.Category == category {
			return fmt.Errorf("%w: %s", ErrDuplicateCategory, category)
		}
	}
	return nil
}

// SeedVendorTasks builds the checklist tasks for a freshly assigned vendor.
// The owner is the vendor's name when known, else the category label.
func SeedVendorTasks(a models.VendorAssignment) []models.TimelineTask {
	owner := a.VendorName
	if owner == "" {
		owner = vendorCategoryLabels[a.Category]
	}
	titles := vendorSeedTasks[a.Category]
	tasks := make([]models.TimelineTask, 0, len(titles))
	for _, title := range titles {
		tasks = append(tasks, models.TimelineTask{
			ID:        uuid.NewString(),
			Title:     title,
			Owner:     owner,
			OwnerType: models.OwnerVendor,
			Status:    models.TaskPending,
			Origin:    models.OriginVendorSeeded,
		})
	}
	return tasks
}

// ApplyVendorStatus records a status change. Any transition is accepted so
// operators can correct mistakes; HighestStatus only ever moves forward and
// is what readiness scoring reads. ConfirmedAt is stamped the first time the
// assignment reaches confirmed.
func ApplyVendorStatus(a *models.VendorAssignment, next models.VendorStatus, now time.Time) {
	a.Status = next
	if next.Rank() > a.HighestStatus.Rank() {
		a.HighestStatus = next
	}
	if a.ConfirmedAt == nil && next.Rank() >= models.VendorConfirmed.Rank() {
		t := now
		a.ConfirmedAt = &t
	}
}
