package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type VendorCategory string

const (
	VendorDJSound     VendorCategory = "dj_sound"
	VendorDecor       VendorCategory = "decor"
	VendorCatering    VendorCategory = "catering"
	VendorPhotography VendorCategory = "photography"
	VendorFlower      VendorCategory = "flower"
	VendorLighting    VendorCategory = "lighting"
	VendorOther       VendorCategory = "other"
)

func ParseVendorCategory(s string) (VendorCategory, error) {
	switch VendorCategory(s) {
	case VendorDJSound, VendorDecor, VendorCatering, VendorPhotography, VendorFlower, VendorLighting, VendorOther:
		return VendorCategory(s), nil
	}
	return "", fmt.Errorf("invalid vendor category %q", s)
}

type VendorStatus string

const (
	VendorInvited   VendorStatus = "invited"
	VendorConfirmed VendorStatus = "confirmed"
	VendorArrived   VendorStatus = "arrived"
	VendorCompleted VendorStatus = "completed"
	VendorPaid      VendorStatus = "paid"
)

func ParseVendorStatus(s string) (VendorStatus, error) {
	switch VendorStatus(s) {
	case VendorInvited, VendorConfirmed, VendorArrived, VendorCompleted, VendorPaid:
		return VendorStatus(s), nil
	}
	return "", fmt.Errorf("invalid vendor status %q", s)
}

// Rank orders the vendor lifecycle for highest-status tracking. Operators may
// move the displayed status backwards to correct mistakes; scoring reads the
// highest rank ever reached.
func (s VendorStatus) Rank() int {
	switch s {
	case VendorInvited:
		return 0
	case VendorConfirmed:
		return 1
	case VendorArrived:
		return 2
	case VendorCompleted:
		return 3
	case VendorPaid:
		return 4
	}
	return -1
}

type VendorAssignment struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	PlanID   uint           `gorm:"index;not null" json:"plan_id"`
	Category VendorCategory `gorm:"type:varchar(20);not null" json:"category"`

	// VendorID references a registered vendor; the inline fields carry
	// one-off vendors that are not in the directory.
	VendorID    *uint  `json:"vendor_id,omitempty"`
	VendorName  string `json:"vendor_name"`
	VendorPhone string `json:"vendor_phone"`
	VendorEmail string `json:"vendor_email"`

	Cost        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"cost"`
	AdvancePaid decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"advance_paid"`

	Status        VendorStatus `gorm:"type:varchar(20);not null;default:'invited'" json:"status"`
	HighestStatus VendorStatus `gorm:"type:varchar(20);not null;default:'invited'" json:"highest_status"`
	ConfirmedAt   *time.Time   `json:"confirmed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StaffRole string

const (
	RoleWaiter     StaffRole = "waiter"
	RoleChef       StaffRole = "chef"
	RoleHelper     StaffRole = "helper"
	RoleSupervisor StaffRole = "supervisor"
	RoleUsher      StaffRole = "usher"
	RoleCustom     StaffRole = "custom"
)

func ParseStaffRole(s string) (StaffRole, error) {
	switch StaffRole(s) {
	case RoleWaiter, RoleChef, RoleHelper, RoleSupervisor, RoleUsher, RoleCustom:
		return StaffRole(s), nil
	}
	return "", fmt.Errorf("invalid staff role %q", s)
}

type WageType string

const (
	WageFixed   WageType = "fixed"
	WagePerHead WageType = "per_head"
)

type Attendance string

const (
	AttendancePending   Attendance = "pending"
	AttendanceConfirmed Attendance = "confirmed"
	AttendanceAbsent    Attendance = "absent"
)

type StaffAssignment struct {
	ID         string          `json:"id"`
	Role       StaffRole       `json:"role"`
	Count      int             `json:"count"`
	WageType   WageType        `json:"wage_type"`
	Wage       decimal.Decimal `json:"wage"`
	// Headcount is the multiplier for per_head wages; unrelated to the
	// booking's guest count.
	Headcount  int        `json:"headcount"`
	ShiftStart string     `json:"shift_start"`
	ShiftEnd   string     `json:"shift_end"`
	Attendance Attendance `json:"attendance"`
}

type TaskStatus string

const (
	TaskPending TaskStatus = "pending"
	TaskDone    TaskStatus = "done"
)

type TaskOwnerType string

const (
	OwnerVendor   TaskOwnerType = "vendor"
	OwnerStaff    TaskOwnerType = "staff"
	OwnerInternal TaskOwnerType = "internal"
)

type TaskOrigin string

const (
	OriginGenerated    TaskOrigin = "generated"
	OriginVendorSeeded TaskOrigin = "vendor_seeded"
	OriginManual       TaskOrigin = "manual"
)

type TimelineTask struct {
	ID        string        `json:"id"`
	Time      string        `json:"time"` // HH:MM
	Title     string        `json:"title"`
	Owner     string        `json:"owner"`
	OwnerType TaskOwnerType `json:"owner_type"`
	Status    TaskStatus    `json:"status"`
	Origin    TaskOrigin    `json:"origin"`
}

// BookingSnapshot is the subset of booking fields material to planning,
// captured when the plan is saved or changes are acknowledged.
type BookingSnapshot struct {
	GuestCount int       `json:"guest_count"`
	EventDate  time.Time `json:"event_date"`
	Slot       Slot      `json:"slot"`
	HallID     uint      `json:"hall_id"`
	EventType  EventType `json:"event_type"`
}

type Plan struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	TenantID  string `gorm:"index;not null" json:"tenant_id"`
	BookingID uint   `gorm:"uniqueIndex;not null" json:"booking_id"`

	VendorAssignments []VendorAssignment `gorm:"foreignKey:PlanID" json:"vendor_assignments"`
	StaffAssignments  []StaffAssignment  `gorm:"serializer:json" json:"staff_assignments"`
	TimelineTasks     []TimelineTask     `gorm:"serializer:json" json:"timeline_tasks"`
	Notes             string             `json:"notes"`

	BookingSnapshot BookingSnapshot `gorm:"serializer:json" json:"booking_snapshot"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
