package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venuecraft/banquet-service/internal/dto"
	"github.com/venuecraft/banquet-service/internal/engine"
	"github.com/venuecraft/banquet-service/internal/models"
	"github.com/venuecraft/banquet-service/internal/service"
)

type ProfitHandler struct {
	svc service.ProfitService
}

func NewProfitHandler(svc service.ProfitService) *ProfitHandler {
	return &ProfitHandler{svc: svc}
}

func (h *ProfitHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/bookings/:id/profit", h.GetProfit)
	e.GET("/api/v1/bookings/:id/expenses", h.ListExpenses)

	g := e.Group("/api/v1/finance")
	g.POST("/expenses", h.AddExpense)
	g.DELETE("/expenses/:id", h.DeleteExpense)
	g.POST("/vendor-payments", h.AddVendorPayment)
}

func (h *ProfitHandler) GetProfit(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	snapshot, err := h.svc.GetProfit(c.Request().Context(), tenant, bookingID)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, snapshot)
}

func (h *ProfitHandler) ListExpenses(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	expenses, err := h.svc.ListExpenses(c.Request().Context(), tenant, bookingID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, expenses)
}

func (h *ProfitHandler) AddExpense(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}

	var req dto.ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category := models.ExpenseMisc
	if req.Category != "" {
		category = models.ExpenseCategory(req.Category)
	}

	expense := &models.Expense{
		TenantID:    tenant,
		BookingID:   req.BookingID,
		Category:    category,
		Description: req.Description,
		Amount:      req.Amount,
		SpentAt:     req.SpentAt,
	}
	if err := h.svc.AddExpense(c.Request().Context(), expense); err != nil {
		if errors.Is(err, engine.ErrInvalidPricingInput) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, expense)
}

func (h *ProfitHandler) DeleteExpense(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.DeleteExpense(c.Request().Context(), tenant, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProfitHandler) AddVendorPayment(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}

	var req dto.VendorPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment := &models.VendorPayment{
		TenantID:  tenant,
		BookingID: req.BookingID,
		VendorID:  req.VendorID,
		Amount:    req.Amount,
		Note:      req.Note,
		PaidAt:    req.PaidAt,
	}
	if err := h.svc.AddVendorPayment(c.Request().Context(), payment); err != nil {
		if errors.Is(err, engine.ErrInvalidPricingInput) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, payment)
}
