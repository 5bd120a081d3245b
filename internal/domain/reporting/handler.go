package reporting

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vetpms/vetpms/internal/platform/auth"
	"github.com/vetpms/vetpms/internal/platform/fhir"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group, fhirGroup *echo.Group) {
	role := auth.RequireRole("admin", "veterinarian")

	rest := api.Group("", role)
	rest.GET("/reports/expiry", h.Expiry)
	rest.GET("/reports/workload", h.Workload)

	f := fhirGroup.Group("", role)
	f.GET("/InventoryReport", h.ExpiryFHIR)
	f.GET("/Practitioner/$workload", h.WorkloadFHIR)
}

// ---- REST ----

func (h *Handler) Expiry(c echo.Context) error {
	days, _ := strconv.Atoi(c.QueryParam("days"))
	rows, err := h.svc.ExpiryReport(c.Request().Context(), days)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) Workload(c echo.Context) error {
	loads, err := h.svc.DoctorWorkload(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, loads)
}

// ---- FHIR ----

func (h *Handler) ExpiryFHIR(c echo.Context) error {
	days, _ := strconv.Atoi(c.QueryParam("days"))
	rows, err := h.svc.ExpiryReport(c.Request().Context(), days)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, fhir.ErrorOutcome(err.Error()))
	}
	return c.JSON(http.StatusOK, ToInventoryReport(rows))
}

func (h *Handler) WorkloadFHIR(c echo.Context) error {
	loads, err := h.svc.DoctorWorkload(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, fhir.ErrorOutcome(err.Error()))
	}
	return c.JSON(http.StatusOK, ToWorkloadBundle(loads))
}
