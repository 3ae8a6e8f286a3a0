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

type PlanHandler struct {
	svc service.PlanService
}

func NewPlanHandler(svc service.PlanService) *PlanHandler {
	return &PlanHandler{svc: svc}
}

// Plans are addressed by booking id: there is exactly one plan per booking.
func (h *PlanHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/bookings/:id/plan")
	g.POST("", h.CreatePlan)
	g.GET("", h.GetPlan)
	g.POST("/vendors", h.AssignVendor)
	g.PUT("/vendors/:assignmentId/status", h.UpdateVendorStatus)
	g.DELETE("/vendors/:assignmentId", h.RemoveVendor)
	g.GET("/staff/suggest", h.SuggestStaff)
	g.PUT("/staff", h.SetStaff)
	g.POST("/tasks", h.AddTask)
	g.PUT("/tasks/:taskId/toggle", h.ToggleTask)
	g.POST("/timeline/regenerate", h.RegenerateTimeline)
	g.POST("/changes/acknowledge", h.AcknowledgeChanges)
}

func (h *PlanHandler) CreatePlan(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreatePlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	detail, err := h.svc.CreatePlan(c.Request().Context(), tenant, bookingID, req.Notes)
	if err != nil {
		return mapPlanError(err)
	}
	return c.JSON(http.StatusCreated, detail)
}

func (h *PlanHandler) GetPlan(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.svc.GetPlan(c.Request().Context(), tenant, bookingID)
	if err != nil {
		return mapPlanError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *PlanHandler) AssignVendor(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.AssignVendorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	category, err := models.ParseVendorCategory(req.Category)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	assignment, err := h.svc.AssignVendor(c.Request().Context(), tenant, bookingID, service.VendorInput{
		Category:    category,
		VendorID:    req.VendorID,
		VendorName:  req.VendorName,
		VendorPhone: req.VendorPhone,
		VendorEmail: req.VendorEmail,
		Cost:        req.Cost,
		AdvancePaid: req.AdvancePaid,
	})
	if err != nil {
		return mapPlanError(err)
	}
	return c.JSON(http.StatusCreated, assignment)
}

func (h *PlanHandler) UpdateVendorStatus(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	assignmentID, err := pathID(c, "assignmentId")
	if err != nil {
		return err
	}

	var req dto.VendorStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	status, err := models.ParseVendorStatus(req.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	assignment, err := h.svc.UpdateVendorStatus(c.Request().Context(), tenant, bookingID, assignmentID, status)
	if err != nil {
		return mapPlanError(err)
	}
	return c.JSON(http.StatusOK, assignment)
}

func (h *PlanHandler) RemoveVendor(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	assignmentID, err := pathID(c, "assignmentId")
	if err != nil {
		return err
	}

	if err := h.svc.RemoveVendor(c.Request().Context(), tenant, bookingID, assignmentID); err != nil {
		return mapPlanError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PlanHandler) SuggestStaff(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	staff, err := h.svc.SuggestStaff(c.Request().Context(), tenant, bookingID)
	if err != nil {
		return mapPlanError(err)
	}
	return c.JSON(http.StatusOK, staff)
}

func (h *PlanHandler) SetStaff(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.SetStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	staff, err := req.ToStaff()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.svc.SetStaff(c.Request().Context(), tenant, bookingID, staff)
	if err != nil {
		return mapPlanError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *PlanHandler) AddTask(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.AddTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	ownerType := models.OwnerInternal
	if req.OwnerType != "" {
		ownerType = models.TaskOwnerType(req.OwnerType)
	}

	plan, err := h.svc.AddTask(c.Request().Context(), tenant, bookingID, models.TimelineTask{
		Time:      req.Time,
		Title:     req.Title,
		Owner:     req.Owner,
		OwnerType: ownerType,
	})
	if err != nil {
		return mapPlanError(err)
	}
	return c.JSON(http.StatusCreated, plan)
}

func (h *PlanHandler) ToggleTask(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	plan, err := h.svc.ToggleTask(c.Request().Context(), tenant, bookingID, c.Param("taskId"))
	if err != nil {
		return mapPlanError(err)
	}
	return c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) RegenerateTimeline(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	plan, err := h.svc.RegenerateTimeline(c.Request().Context(), tenant, bookingID)
	if err != nil {
		return mapPlanError(err)
	}
	return c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) AcknowledgeChanges(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.svc.AcknowledgeChanges(c.Request().Context(), tenant, bookingID)
	if err != nil {
		return mapPlanError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

func mapPlanError(err error) error {
	switch {
	case errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrAssignmentNotFound),
		errors.Is(err, service.ErrTaskNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrPlanExists),
		errors.Is(err, engine.ErrDuplicateCategory):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrBookingCancelled):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
