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

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/bookings")
	g.POST("", h.CreateBooking)
	g.GET("", h.ListBookings)
	g.POST("/estimate", h.EstimateBooking)
	g.GET("/:id", h.GetBooking)
	g.PUT("/:id", h.UpdateBooking)
	g.POST("/:id/payments", h.AddPayment)
	g.POST("/:id/status", h.TransitionStatus)
}

func (h *BookingHandler) bindInput(c echo.Context) (service.BookingInput, error) {
	var req dto.BookingRequest
	if err := c.Bind(&req); err != nil {
		return service.BookingInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return service.BookingInput{}, err
	}
	in, err := req.ToInput()
	if err != nil {
		return service.BookingInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return in, nil
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	in, err := h.bindInput(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), tenant, in)
	if err != nil {
		return mapBookingError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	in, err := h.bindInput(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.UpdateBooking(c.Request().Context(), tenant, id, in)
	if err != nil {
		return mapBookingError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) EstimateBooking(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	in, err := h.bindInput(c)
	if err != nil {
		return err
	}

	estimate, err := h.svc.EstimateBooking(c.Request().Context(), tenant, in)
	if err != nil {
		return mapBookingError(err)
	}
	return c.JSON(http.StatusOK, estimate)
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), tenant, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "booking not found")
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}

	var status *models.BookingStatus
	if s := c.QueryParam("status"); s != "" {
		parsed, err := models.ParseBookingStatus(s)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		status = &parsed
	}

	bookings, err := h.svc.ListBookings(c.Request().Context(), tenant, status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) AddPayment(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.AddPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	method, err := models.ParsePaymentMethod(req.Method)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.svc.AddPayment(c.Request().Context(), tenant, id, models.PaymentSplit{
		Method: method,
		Amount: req.Amount,
	})
	if err != nil {
		return mapBookingError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) TransitionStatus(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.StatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	next, err := models.ParseBookingStatus(req.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.svc.TransitionStatus(c.Request().Context(), tenant, id, next)
	if err != nil {
		return mapBookingError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func mapBookingError(err error) error {
	switch {
	case errors.Is(err, service.ErrBookingNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrHallSlotTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidStatusChange):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrVendorsRequired):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, engine.ErrOverpayment):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, engine.ErrInvalidPricingInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
