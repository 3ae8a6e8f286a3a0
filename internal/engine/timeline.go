package engine

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/venuecraft/banquet-service/internal/models"
)

// taskTemplate positions a run-of-show task relative to guest arrival, in
// hours. Negative offsets are setup work before the event starts.
type taskTemplate struct {
	offset    float64
	title     string
	owner     string
	ownerType models.TaskOwnerType
}

var commonTimeline = []taskTemplate{
	{-2, "Venue setup start", "Staff", models.OwnerStaff},
	{-1, "Vendor arrival check", "Supervisor", models.OwnerStaff},
	{-0.5, "Sound & light check", "DJ/Sound", models.OwnerVendor},
	{0, "Guest arrival begins", "Reception", models.OwnerStaff},
}

var eventTimelines = map[models.EventType][]taskTemplate{
	models.EventWedding: {
		{0.5, "Welcome ceremony", "Host", models.OwnerInternal},
		{1, "Ring ceremony / rituals", "Host", models.OwnerInternal},
		{2, "Photo session", "Photography", models.OwnerVendor},
		{3, "Dinner service start", "Catering", models.OwnerVendor},
		{4, "Dance/DJ session", "DJ", models.OwnerVendor},
		{5, "Guest departure", "Staff", models.OwnerStaff},
		{5.5, "Cleanup & close", "Staff", models.OwnerStaff},
	},
	models.EventCorporate: {
		{0.5, "Registration desk", "Reception", models.OwnerStaff},
		{1, "Presentation / session 1", "Client", models.OwnerInternal},
		{2, "Tea/coffee break", "Catering", models.OwnerVendor},
		{2.5, "Session 2 / discussion", "Client", models.OwnerInternal},
		{3.5, "Lunch/dinner service", "Catering", models.OwnerVendor},
		{4.5, "Closing & networking", "Client", models.OwnerInternal},
		{5, "Cleanup", "Staff", models.OwnerStaff},
	},
	models.EventBirthday: {
		{0.5, "Welcome activities", "Host", models.OwnerInternal},
		{1.5, "Games/entertainment", "Entertainment", models.OwnerVendor},
		{2.5, "Cake cutting", "Host", models.OwnerInternal},
		{3, "Dinner/snacks service", "Catering", models.OwnerVendor},
		{4, "Dance/music", "DJ", models.OwnerVendor},
		{4.5, "Return gifts", "Host", models.OwnerInternal},
		{5, "Cleanup", "Staff", models.OwnerStaff},
	},
}

var fallbackTimeline = []taskTemplate{
	{1, "Welcome/greeting", "Host", models.OwnerInternal},
	{2, "Main event", "Host", models.OwnerInternal},
	{3, "Dinner service", "Catering", models.OwnerVendor},
	{4, "Entertainment", "DJ", models.OwnerVendor},
	{5, "Departure & cleanup", "Staff", models.OwnerStaff},
}

// weddings and engagements share rituals; receptions and custom events get
// the fallback run of show.
func timelineFor(eventType models.EventType) []taskTemplate {
	switch eventType {
	case models.EventWedding, models.EventEngagement:
		return eventTimelines[models.EventWedding]
	default:
		if t, ok := eventTimelines[eventType]; ok {
			return t
		}
		return fallbackTimeline
	}
}

// GenerateTimeline builds the run-of-show tasks for an event. Day events
// anchor at 10:00, night events at 18:00; offsets that spill past midnight
// wrap around.
func GenerateTimeline(eventType models.EventType, slot models.Slot) []models.TimelineTask {
	baseHour := 10.0
	if slot == models.SlotNight {
		baseHour = 18.0
	}

	templates := append(append([]taskTemplate{}, commonTimeline...), timelineFor(eventType)...)
	tasks := make([]models.TimelineTask, 0, len(templates))
	for _, tt := range templates {
		tasks = append(tasks, models.TimelineTask{
			ID:        uuid.NewString(),
			Time:      clockTime(baseHour + tt.offset),
			Title:     tt.title,
			Owner:     tt.owner,
			OwnerType: tt.ownerType,
			Status:    models.TaskPending,
			Origin:    models.OriginGenerated,
		})
	}
	return tasks
}

// RegenerateTimeline replaces only the generated tasks with a fresh set;
// vendor-seeded and manually added tasks survive. This is a user-triggered
// operation, never automatic.
func RegenerateTimeline(existing []models.TimelineTask, eventType models.EventType, slot models.Slot) []models.TimelineTask {
	kept := make([]models.TimelineTask, 0, len(existing))
	for _, t := range existing {
		if t.Origin != models.OriginGenerated {
			kept = append(kept, t)
		}
	}
	merged := append(kept, GenerateTimeline(eventType, slot)...)
	SortTasks(merged)
	return merged
}

// ToggleTask flips a task between pending and done. Returns false when the
// id is unknown.
func ToggleTask(tasks []models.TimelineTask, taskID string) bool {
	for i := range tasks {
		if tasks[i].ID != taskID {
			continue
		}
		if tasks[i].Status == models.TaskDone {
			tasks[i].Status = models.TaskPending
		} else {
			tasks[i].Status = models.TaskDone
		}
		return true
	}
	return false
}

// SortTasks orders tasks ascending by time of day. Lexicographic order on
// HH:MM is correct for same-day tasks; untimed (seeded) tasks sort first.
func SortTasks(tasks []models.TimelineTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Time < tasks[j].Time
	})
}

func clockTime(hour float64) string {
	for hour < 0 {
		hour += 24
	}
	for hour >= 24 {
		hour -= 24
	}
	h := int(hour)
	m := int((hour - float64(h)) * 60)
	return fmt.Sprintf("%02d:%02d", h, m)
}
