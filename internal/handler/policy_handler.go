package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/venuecraft/banquet-service/internal/dto"
	"github.com/venuecraft/banquet-service/internal/models"
	"github.com/venuecraft/banquet-service/internal/service"
)

type PolicyHandler struct {
	svc service.PolicyService
}

func NewPolicyHandler(svc service.PolicyService) *PolicyHandler {
	return &PolicyHandler{svc: svc}
}

func (h *PolicyHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/policy")
	g.GET("", h.GetPolicy)
	g.PUT("", h.UpdatePolicy)
	g.GET("/version-check", h.CheckVersion)
}

func (h *PolicyHandler) GetPolicy(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}

	policy, err := h.svc.GetPolicy(c.Request().Context(), tenant)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, policy)
}

func (h *PolicyHandler) UpdatePolicy(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}

	var req dto.UpdatePolicyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	policy := &models.TenantPolicy{
		TenantID:    tenant,
		Features:    req.Features,
		Rules:       req.Rules,
		Permissions: req.Permissions,
	}
	updated, err := h.svc.UpdatePolicy(c.Request().Context(), policy)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, updated)
}

// CheckVersion answers "is the version I cached still current". A stale
// version is 200 with a warning payload, never an error status.
func (h *PolicyHandler) CheckVersion(c echo.Context) error {
	tenant, err := tenantID(c)
	if err != nil {
		return err
	}

	seen, err := strconv.ParseInt(c.QueryParam("version"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid version")
	}

	warn := h.svc.CheckVersion(c.Request().Context(), tenant, seen)
	if warn == nil {
		return c.JSON(http.StatusOK, map[string]bool{"stale": false})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"stale":   true,
		"warning": warn.Error(),
		"current": warn.WantVersion,
	})
}
