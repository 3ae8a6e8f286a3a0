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
	ErrBookingNotFound     = errors.New("booking not found")
	ErrHallSlotTaken       = errors.New("hall is already booked for this date and slot")
	ErrInvalidStatusChange = errors.New("invalid booking status transition")
	ErrVendorsRequired     = errors.New("tenant policy requires vendors before confirmation")
)

// BookingInput carries already-parsed booking fields from the transport
// layer; enum parsing happens at the boundary so invalid values never reach
// here.
type BookingInput struct {
	CustomerID       uint
	HallID           uint
	EventType        models.EventType
	EventDate        time.Time
	Slot             models.Slot
	GuestCount       int
	MenuItemIDs      []uint
	AddonIDs         []uint
	CustomPrices     map[uint]decimal.Decimal
	DiscountType     models.DiscountType
	DiscountValue    decimal.Decimal
	GSTOption        models.GSTOption
	CustomGSTPercent decimal.Decimal
	PaymentSplits    []models.PaymentSplit
	AdvanceAmount    decimal.Decimal
}

// Estimate is a priced preview: quote plus payment reconciliation, computed
// without touching storage.
type Estimate struct {
	Quote          engine.Quote        `json:"quote"`
	AdvancePaid    decimal.Decimal     `json:"advance_paid"`
	BalanceDue     decimal.Decimal     `json:"balance_due"`
	DisplayBalance decimal.Decimal     `json:"display_balance"`
	PaymentState   models.PaymentState `json:"payment_state"`
}

type BookingService interface {
	CreateBooking(ctx context.Context, tenantID string, in BookingInput) (*models.Booking, error)
	UpdateBooking(ctx context.Context, tenantID string, id uint, in BookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, tenantID string, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, tenantID string, status *models.BookingStatus) ([]models.Booking, error)
	EstimateBooking(ctx context.Context, tenantID string, in BookingInput) (*Estimate, error)
	AddPayment(ctx context.Context, tenantID string, id uint, split models.PaymentSplit) (*models.Booking, error)
	TransitionStatus(ctx context.Context, tenantID string, id uint, next models.BookingStatus) (*models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	menuRepo    repository.MenuRepository
	planRepo    repository.PlanRepository
	policyRepo  repository.PolicyRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	menuRepo repository.MenuRepository,
	planRepo repository.PlanRepository,
	policyRepo repository.PolicyRepository,
	publisher *rabbitmq.Publisher,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		menuRepo:    menuRepo,
		planRepo:    planRepo,
		policyRepo:  policyRepo,
		publisher:   publisher,
	}
}

// price resolves menu records and runs the calculator and split ledger.
// Everything is validated before the caller mutates any state.
func (s *bookingService) price(ctx context.Context, tenantID string, in BookingInput) (engine.Quote, engine.Ledger, error) {
	menuItems, err := s.menuRepo.FindByIDs(ctx, tenantID, in.MenuItemIDs)
	if err != nil {
		return engine.Quote{}, engine.Ledger{}, fmt.Errorf("resolve menu items: %w", err)
	}
	addons, err := s.menuRepo.FindByIDs(ctx, tenantID, in.AddonIDs)
	if err != nil {
		return engine.Quote{}, engine.Ledger{}, fmt.Errorf("resolve addons: %w", err)
	}

	quote, err := engine.ComputeQuote(engine.PricingInput{
		GuestCount:       in.GuestCount,
		MenuItems:        menuItems,
		Addons:           addons,
		CustomPrices:     in.CustomPrices,
		DiscountType:     in.DiscountType,
		DiscountValue:    in.DiscountValue,
		GSTOption:        in.GSTOption,
		CustomGSTPercent: in.CustomGSTPercent,
	})
	if err != nil {
		return engine.Quote{}, engine.Ledger{}, err
	}

	ledger, err := engine.ValidateSplits(in.PaymentSplits, in.AdvanceAmount, quote.Total)
	if err != nil {
		return engine.Quote{}, engine.Ledger{}, err
	}
	return quote, ledger, nil
}

func (s *bookingService) EstimateBooking(ctx context.Context, tenantID string, in BookingInput) (*Estimate, error) {
	quote, ledger, err := s.price(ctx, tenantID, in)
	if err != nil {
		return nil, err
	}
	return &Estimate{
		Quote:          quote,
		AdvancePaid:    ledger.AdvancePaid,
		BalanceDue:     ledger.BalanceDue,
		DisplayBalance: ledger.DisplayBalance(),
		PaymentState:   ledger.State,
	}, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, tenantID string, in BookingInput) (*models.Booking, error) {
	quote, ledger, err := s.price(ctx, tenantID, in)
	if err != nil {
		return nil, err
	}

	for i := range in.PaymentSplits {
		if in.PaymentSplits[i].ID == "" {
			in.PaymentSplits[i].ID = uuid.NewString()
		}
	}

	booking := &models.Booking{
		TenantID:         tenantID,
		CustomerID:       in.CustomerID,
		HallID:           in.HallID,
		EventType:        in.EventType,
		EventDate:        in.EventDate,
		Slot:             in.Slot,
		GuestCount:       in.GuestCount,
		Status:           models.BookingDraft,
		MenuItemIDs:      in.MenuItemIDs,
		AddonIDs:         in.AddonIDs,
		CustomPrices:     in.CustomPrices,
		DiscountType:     in.DiscountType,
		DiscountValue:    in.DiscountValue,
		GSTOption:        in.GSTOption,
		CustomGSTPercent: in.CustomGSTPercent,
		PaymentSplits:    in.PaymentSplits,
		AdvanceAmount:    in.AdvanceAmount,
	}
	applyQuote(booking, quote, ledger)

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", booking)
	}
	return booking, nil
}

// UpdateBooking reprices and revalidates the whole booking before saving:
// either every derived field updates together or nothing does.
func (s *bookingService) UpdateBooking(ctx context.Context, tenantID string, id uint, in BookingInput) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, tenantID, id)
		if err != nil {
			return ErrBookingNotFound
		}

		quote, ledger, err := s.price(ctx, tenantID, in)
		if err != nil {
			return err
		}

		booking.CustomerID = in.CustomerID
		booking.HallID = in.HallID
		booking.EventType = in.EventType
		booking.EventDate = in.EventDate
		booking.Slot = in.Slot
		booking.GuestCount = in.GuestCount
		booking.MenuItemIDs = in.MenuItemIDs
		booking.AddonIDs = in.AddonIDs
		booking.CustomPrices = in.CustomPrices
		booking.DiscountType = in.DiscountType
		booking.DiscountValue = in.DiscountValue
		booking.GSTOption = in.GSTOption
		booking.CustomGSTPercent = in.CustomGSTPercent
		booking.PaymentSplits = in.PaymentSplits
		booking.AdvanceAmount = in.AdvanceAmount
		applyQuote(booking, quote, ledger)

		if err := s.bookingRepo.Save(ctx, tx, booking); err != nil {
			return fmt.Errorf("save booking: %w", err)
		}
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The plan's snapshot is deliberately not touched here: the change
	// detector surfaces the drift until an operator acknowledges it.
	if s.publisher != nil {
		_ = s.publisher.Publish("booking.updated", result)
	}
	return result, nil
}

func (s *bookingService) GetBooking(ctx context.Context, tenantID string, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, tenantID string, status *models.BookingStatus) ([]models.Booking, error) {
	return s.bookingRepo.FindByTenant(ctx, tenantID, status)
}

// AddPayment appends one split and revalidates the full set against the
// total. On rejection the stored booking is untouched.
func (s *bookingService) AddPayment(ctx context.Context, tenantID string, id uint, split models.PaymentSplit) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, tenantID, id)
		if err != nil {
			return ErrBookingNotFound
		}

		if split.ID == "" {
			split.ID = uuid.NewString()
		}
		splits := append(append([]models.PaymentSplit{}, booking.PaymentSplits...), split)

		ledger, err := engine.ValidateSplits(splits, booking.AdvanceAmount, booking.TotalAmount)
		if err != nil {
			return err
		}

		booking.PaymentSplits = splits
		booking.AdvancePaid = ledger.AdvancePaid
		booking.BalanceDue = ledger.BalanceDue

		if err := s.bookingRepo.Save(ctx, tx, booking); err != nil {
			return fmt.Errorf("save booking: %w", err)
		}
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.payment_added", result)
	}
	return result, nil
}

func (s *bookingService) TransitionStatus(ctx context.Context, tenantID string, id uint, next models.BookingStatus) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, tenantID, id)
		if err != nil {
			return ErrBookingNotFound
		}

		if !booking.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusChange, booking.Status, next)
		}

		if next == models.BookingConfirmed {
			if err := s.checkConfirmable(ctx, booking); err != nil {
				return err
			}
		}

		booking.Status = next
		if err := s.bookingRepo.Save(ctx, tx, booking); err != nil {
			return fmt.Errorf("save booking: %w", err)
		}
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking."+string(next), result)
	}
	return result, nil
}

// checkConfirmable guards confirmation: the hall slot must be free, and
// when the tenant mandates vendors before confirmation, the plan must hold
// at least one assignment.
func (s *bookingService) checkConfirmable(ctx context.Context, booking *models.Booking) error {
	_, err := s.bookingRepo.FindSlotConflict(ctx, booking.TenantID, booking.HallID, booking.EventDate, booking.Slot, booking.ID)
	if err == nil {
		return ErrHallSlotTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	resolver := engine.ResolvePolicy(s.loadPolicy(ctx, booking.TenantID))
	if !resolver.WorkflowRules().VendorsMandatoryBeforeConfirm {
		return nil
	}
	plan, err := s.planRepo.FindByBookingID(ctx, booking.TenantID, booking.ID)
	if err != nil || len(plan.VendorAssignments) == 0 {
		return ErrVendorsRequired
	}
	return nil
}

// loadPolicy degrades to nil (pure defaults) when the tenant has no stored
// policy; lookups never block a calculation.
func (s *bookingService) loadPolicy(ctx context.Context, tenantID string) *models.TenantPolicy {
	policy, err := s.policyRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil
	}
	return policy
}

func applyQuote(booking *models.Booking, quote engine.Quote, ledger engine.Ledger) {
	booking.FoodCharge = quote.FoodCharge
	booking.AddonCharge = quote.AddonCharge
	booking.DiscountAmount = quote.DiscountAmount
	booking.GSTAmount = quote.GSTAmount
	booking.TotalAmount = quote.Total
	booking.AdvancePaid = ledger.AdvancePaid
	booking.BalanceDue = ledger.BalanceDue
}
