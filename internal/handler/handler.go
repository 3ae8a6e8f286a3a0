package handler

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// TenantHeader identifies the tenant on every request. Authentication is
// handled upstream by the gateway; by the time a request reaches this
// service the header is trusted.
const TenantHeader = "X-Tenant-ID"

type CustomValidator struct {
	validate *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func tenantID(c echo.Context) (string, error) {
	tenant := c.Request().Header.Get(TenantHeader)
	if tenant == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing "+TenantHeader+" header")
	}
	return tenant, nil
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
