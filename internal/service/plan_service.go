package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/venuecraft/banquet-service/internal/engine"
	"github.com/venuecraft/banquet-service/internal/models"
	"github.com/venuecraft/banquet-service/internal/repository"
	"github.com/venuecraft/banquet-service/pkg/rabbitmq"
)

var (
	ErrPlanNotFound       = errors.New("plan not found")
	ErrPlanExists         = errors.New("plan already exists for this booking")
	ErrBookingCancelled   = errors.New("cannot plan a cancelled booking")
	ErrAssignmentNotFound = errors.New("vendor assignment not found")
	ErrTaskNotFound       = errors.New("timeline task not found")
)

// VendorInput is a parsed vendor assignment request: either a registered
// vendor reference or inline details for a one-off vendor.
type VendorInput struct {
	Category    models.VendorCategory
	VendorID    *uint
	VendorName  string
	VendorPhone string
	VendorEmail string
	Cost        decimal.Decimal
	AdvancePaid decimal.Decimal
}

// PlanDetail is the full read model: the plan plus everything derived from
// it on this read. Readiness and change warnings are recomputed every time,
// never cached.
type PlanDetail struct {
	Plan         *models.Plan              `json:"plan"`
	Readiness    engine.Readiness          `json:"readiness"`
	Changes      engine.ChangeReport       `json:"changes"`
	Understaffed []engine.UnderstaffedRole `json:"understaffed,omitempty"`
	StaffCost    decimal.Decimal           `json:"staff_cost"`
}

type PlanService interface {
	CreatePlan(ctx context.Context, tenantID string, bookingID uint, notes string) (*PlanDetail, error)
	GetPlan(ctx context.Context, tenantID string, bookingID uint) (*PlanDetail, error)
	AssignVendor(ctx context.Context, tenantID string, bookingID uint, in VendorInput) (*models.VendorAssignment, error)
	UpdateVendorStatus(ctx context.Context, tenantID string, bookingID uint, assignmentID uint, status models.VendorStatus) (*models.VendorAssignment, error)
	RemoveVendor(ctx context.Context, tenantID string, bookingID uint, assignmentID uint) error
	SuggestStaff(ctx context.Context, tenantID string, bookingID uint) ([]models.StaffAssignment, error)
	SetStaff(ctx context.Context, tenantID string, bookingID uint, staff []models.StaffAssignment) (*PlanDetail, error)
	AddTask(ctx context.Context, tenantID string, bookingID uint, task models.TimelineTask) (*models.Plan, error)
	ToggleTask(ctx context.Context, tenantID string, bookingID uint, taskID string) (*models.Plan, error)
	RegenerateTimeline(ctx context.Context, tenantID string, bookingID uint) (*models.Plan, error)
	AcknowledgeChanges(ctx context.Context, tenantID string, bookingID uint) (*PlanDetail, error)
}

type planService struct {
	planRepo    repository.PlanRepository
	bookingRepo repository.BookingRepository
	policyRepo  repository.PolicyRepository
	publisher   *rabbitmq.Publisher
	now         func() time.Time
}

func NewPlanService(
	planRepo repository.PlanRepository,
	bookingRepo repository.BookingRepository,
	policyRepo repository.PolicyRepository,
	publisher *rabbitmq.Publisher,
) PlanService {
	return &planService{
		planRepo:    planRepo,
		bookingRepo: bookingRepo,
		policyRepo:  policyRepo,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *planService) CreatePlan(ctx context.Context, tenantID string, bookingID uint, notes string) (*PlanDetail, error) {
	booking, err := s.bookingRepo.FindByID(ctx, tenantID, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status == models.BookingCancelled {
		return nil, ErrBookingCancelled
	}
	if _, err := s.planRepo.FindByBookingID(ctx, tenantID, bookingID); err == nil {
		return nil, ErrPlanExists
	}

	plan := &models.Plan{
		TenantID:        tenantID,
		BookingID:       bookingID,
		Notes:           notes,
		TimelineTasks:   engine.GenerateTimeline(booking.EventType, booking.Slot),
		BookingSnapshot: engine.TakeSnapshot(booking),
	}
	engine.SortTasks(plan.TimelineTasks)

	if err := s.planRepo.Create(ctx, nil, plan); err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("plan.saved", plan)
	}
	return s.detail(ctx, plan, booking), nil
}

func (s *planService) GetPlan(ctx context.Context, tenantID string, bookingID uint) (*PlanDetail, error) {
	plan, booking, err := s.load(ctx, tenantID, bookingID)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, plan, booking), nil
}

func (s *planService) AssignVendor(ctx context.Context, tenantID string, bookingID uint, in VendorInput) (*models.VendorAssignment, error) {
	var result *models.VendorAssignment

	err := s.withLockedPlan(ctx, tenantID, bookingID, func(tx *gorm.DB, plan *models.Plan) error {
		if err := engine.CheckVendorAssignable(plan.VendorAssignments, in.Category); err != nil {
			return err
		}

		assignment := &models.VendorAssignment{
			PlanID:        plan.ID,
			Category:      in.Category,
			VendorID:      in.VendorID,
			VendorName:    in.VendorName,
			VendorPhone:   in.VendorPhone,
			VendorEmail:   in.VendorEmail,
			Cost:          in.Cost,
			AdvancePaid:   in.AdvancePaid,
			Status:        models.VendorInvited,
			HighestStatus: models.VendorInvited,
		}
		if err := s.planRepo.CreateAssignment(ctx, tx, assignment); err != nil {
			return fmt.Errorf("create vendor assignment: %w", err)
		}

		// Seeded tasks are appended to the existing checklist, never
		// replacing anything.
		plan.TimelineTasks = append(plan.TimelineTasks, engine.SeedVendorTasks(*assignment)...)
		if err := s.planRepo.Save(ctx, tx, plan); err != nil {
			return fmt.Errorf("save plan: %w", err)
		}
		result = assignment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *planService) UpdateVendorStatus(ctx context.Context, tenantID string, bookingID uint, assignmentID uint, status models.VendorStatus) (*models.VendorAssignment, error) {
	var result *models.VendorAssignment

	err := s.withLockedPlan(ctx, tenantID, bookingID, func(tx *gorm.DB, plan *models.Plan) error {
		assignment := findAssignment(plan, assignmentID)
		if assignment == nil {
			return ErrAssignmentNotFound
		}
		engine.ApplyVendorStatus(assignment, status, s.now())
		if err := s.planRepo.SaveAssignment(ctx, tx, assignment); err != nil {
			return fmt.Errorf("save vendor assignment: %w", err)
		}
		result = assignment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveVendor deletes the assignment; tasks it seeded stay, they are
// operational history.
func (s *planService) RemoveVendor(ctx context.Context, tenantID string, bookingID uint, assignmentID uint) error {
	return s.withLockedPlan(ctx, tenantID, bookingID, func(tx *gorm.DB, plan *models.Plan) error {
		if findAssignment(plan, assignmentID) == nil {
			return ErrAssignmentNotFound
		}
		return s.planRepo.DeleteAssignment(ctx, tx, assignmentID)
	})
}

func (s *planService) SuggestStaff(ctx context.Context, tenantID string, bookingID uint) ([]models.StaffAssignment, error) {
	booking, err := s.bookingRepo.FindByID(ctx, tenantID, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	return engine.SuggestStaff(booking.EventType, booking.GuestCount, booking.Slot), nil
}

func (s *planService) SetStaff(ctx context.Context, tenantID string, bookingID uint, staff []models.StaffAssignment) (*PlanDetail, error) {
	for i := range staff {
		if staff[i].ID == "" {
			staff[i].ID = uuid.NewString()
		}
		if staff[i].Attendance == "" {
			staff[i].Attendance = models.AttendancePending
		}
	}

	var detail *PlanDetail
	err := s.withLockedPlan(ctx, tenantID, bookingID, func(tx *gorm.DB, plan *models.Plan) error {
		plan.StaffAssignments = staff
		if err := s.planRepo.Save(ctx, tx, plan); err != nil {
			return fmt.Errorf("save plan: %w", err)
		}
		booking, err := s.bookingRepo.FindByID(ctx, tenantID, bookingID)
		if err != nil {
			return ErrBookingNotFound
		}
		detail = s.detail(ctx, plan, booking)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *planService) AddTask(ctx context.Context, tenantID string, bookingID uint, task models.TimelineTask) (*models.Plan, error) {
	task.ID = uuid.NewString()
	task.Status = models.TaskPending
	task.Origin = models.OriginManual

	var result *models.Plan
	err := s.withLockedPlan(ctx, tenantID, bookingID, func(tx *gorm.DB, plan *models.Plan) error {
		plan.TimelineTasks = append(plan.TimelineTasks, task)
		engine.SortTasks(plan.TimelineTasks)
		if err := s.planRepo.Save(ctx, tx, plan); err != nil {
			return fmt.Errorf("save plan: %w", err)
		}
		result = plan
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *planService) ToggleTask(ctx context.Context, tenantID string, bookingID uint, taskID string) (*models.Plan, error) {
	var result *models.Plan
	err := s.withLockedPlan(ctx, tenantID, bookingID, func(tx *gorm.DB, plan *models.Plan) error {
		if !engine.ToggleTask(plan.TimelineTasks, taskID) {
			return ErrTaskNotFound
		}
		if err := s.planRepo.Save(ctx, tx, plan); err != nil {
			return fmt.Errorf("save plan: %w", err)
		}
		result = plan
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RegenerateTimeline is explicit and user-triggered; it rebuilds only the
// generated tasks from the booking's current date/slot/type.
func (s *planService) RegenerateTimeline(ctx context.Context, tenantID string, bookingID uint) (*models.Plan, error) {
	booking, err := s.bookingRepo.FindByID(ctx, tenantID, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	var result *models.Plan
	err = s.withLockedPlan(ctx, tenantID, bookingID, func(tx *gorm.DB, plan *models.Plan) error {
		plan.TimelineTasks = engine.RegenerateTimeline(plan.TimelineTasks, booking.EventType, booking.Slot)
		if err := s.planRepo.Save(ctx, tx, plan); err != nil {
			return fmt.Errorf("save plan: %w", err)
		}
		result = plan
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AcknowledgeChanges re-captures the booking snapshot, clearing change
// warnings until the next drift. Only this explicit call clears the flag.
func (s *planService) AcknowledgeChanges(ctx context.Context, tenantID string, bookingID uint) (*PlanDetail, error) {
	booking, err := s.bookingRepo.FindByID(ctx, tenantID, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	var detail *PlanDetail
	err = s.withLockedPlan(ctx, tenantID, bookingID, func(tx *gorm.DB, plan *models.Plan) error {
		plan.BookingSnapshot = engine.TakeSnapshot(booking)
		if err := s.planRepo.Save(ctx, tx, plan); err != nil {
			return fmt.Errorf("save plan: %w", err)
		}
		detail = s.detail(ctx, plan, booking)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// withLockedPlan resolves the plan by booking id, locks it inside a
// transaction and hands it to fn. Plan writes serialize on the row lock.
func (s *planService) withLockedPlan(ctx context.Context, tenantID string, bookingID uint, fn func(tx *gorm.DB, plan *models.Plan) error) error {
	plan, err := s.planRepo.FindByBookingID(ctx, tenantID, bookingID)
	if err != nil {
		return ErrPlanNotFound
	}

	return s.planRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, err := s.planRepo.FindByIDForUpdate(ctx, tx, tenantID, plan.ID)
		if err != nil {
			return ErrPlanNotFound
		}
		return fn(tx, locked)
	})
}

func (s *planService) load(ctx context.Context, tenantID string, bookingID uint) (*models.Plan, *models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, tenantID, bookingID)
	if err != nil {
		return nil, nil, ErrBookingNotFound
	}
	plan, err := s.planRepo.FindByBookingID(ctx, tenantID, bookingID)
	if err != nil {
		return nil, nil, ErrPlanNotFound
	}
	return plan, booking, nil
}

// detail derives the read model. A cancelled booking zeroes the readiness
// score; history stays readable but the event is no longer being prepared.
func (s *planService) detail(ctx context.Context, plan *models.Plan, booking *models.Booking) *PlanDetail {
	resolver := engine.ResolvePolicy(s.loadPolicy(ctx, booking.TenantID))
	rules := resolver.WorkflowRules()

	readiness := engine.ComputeReadiness(plan, booking, rules, s.now())
	if booking.Status == models.BookingCancelled {
		readiness = engine.Readiness{Breakdown: readiness.Breakdown}
	}

	return &PlanDetail{
		Plan:         plan,
		Readiness:    readiness,
		Changes:      engine.DiffSnapshot(plan.BookingSnapshot, booking),
		Understaffed: engine.DetectUnderstaffing(plan.StaffAssignments, booking.EventType, booking.GuestCount),
		StaffCost:    engine.StaffCost(plan.StaffAssignments),
	}
}

func (s *planService) loadPolicy(ctx context.Context, tenantID string) *models.TenantPolicy {
	policy, err := s.policyRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil
	}
	return policy
}

func findAssignment(plan *models.Plan, id uint) *models.VendorAssignment {
	for i := range plan.VendorAssignments {
		if plan.VendorAssignments[i].ID == id {
			return &plan.VendorAssignments[i]
		}
	}
	return nil
}
