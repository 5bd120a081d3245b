package inventory

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vetpms/vetpms/internal/platform/auth"
	"github.com/vetpms/vetpms/internal/platform/fhir"
	"github.com/vetpms/vetpms/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group, fhirGroup *echo.Group) {
	role := auth.RequireRole("admin", "veterinarian", "staff")

	rest := api.Group("", role)
	rest.GET("/inventory", h.List)
	rest.GET("/inventory/:id", h.Get)
	rest.POST("/inventory", h.Create)
	rest.PUT("/inventory/:id", h.Update)
	rest.DELETE("/inventory/:id", h.Delete)

	f := fhirGroup.Group("", role)
	f.GET("/SupplyItem", h.SearchFHIR)
	f.GET("/SupplyItem/:id", h.GetFHIR)
	f.POST("/SupplyItem", h.CreateFHIR)
	f.PUT("/SupplyItem/:id", h.UpdateFHIR)
	f.DELETE("/SupplyItem/:id", h.DeleteFHIR)
}

// ---- REST ----

func (h *Handler) Create(c echo.Context) error {
	var it Item
	if err := c.Bind(&it); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &it); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, it)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	it, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "inventory item not found")
	}
	return c.JSON(http.StatusOK, it)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	page, err := h.svc.ListPage(c.Request().Context(), pg.Page, pg.PageSize)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var it Item
	if err := c.Bind(&it); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	it.ID = id
	if err := h.svc.Update(c.Request().Context(), &it); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, it)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// ---- FHIR ----

func (h *Handler) SearchFHIR(c echo.Context) error {
	pg := pagination.FromContext(c)
	page, err := h.svc.ListPage(c.Request().Context(), pg.Page, pg.PageSize)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, fhir.ErrorOutcome(err.Error()))
	}
	return c.JSON(http.StatusOK, ToSearchsetBundle(*page))
}

func (h *Handler) GetFHIR(c echo.Context) error {
	it, err := h.svc.GetByFHIRID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, fhir.NotFoundOutcome("SupplyItem", c.Param("id")))
	}
	return c.JSON(http.StatusOK, ToSupplyItem(*it))
}

func (h *Handler) CreateFHIR(c echo.Context) error {
	var r SupplyItem
	if err := c.Bind(&r); err != nil {
		return c.JSON(http.StatusBadRequest, fhir.ErrorOutcome(err.Error()))
	}
	it := FromSupplyItem(r)
	if err := h.svc.Create(c.Request().Context(), &it); err != nil {
		return c.JSON(http.StatusBadRequest, fhir.ErrorOutcome(err.Error()))
	}
	c.Response().Header().Set("Location", "/fhir/SupplyItem/"+it.FHIRID)
	return c.JSON(http.StatusCreated, ToSupplyItem(it))
}

func (h *Handler) UpdateFHIR(c echo.Context) error {
	var r SupplyItem
	if err := c.Bind(&r); err != nil {
		return c.JSON(http.StatusBadRequest, fhir.ErrorOutcome(err.Error()))
	}
	existing, err := h.svc.GetByFHIRID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, fhir.NotFoundOutcome("SupplyItem", c.Param("id")))
	}
	it := FromSupplyItem(r)
	it.ID = existing.ID
	it.FHIRID = existing.FHIRID
	if err := h.svc.Update(c.Request().Context(), &it); err != nil {
		return c.JSON(http.StatusBadRequest, fhir.ErrorOutcome(err.Error()))
	}
	return c.JSON(http.StatusOK, ToSupplyItem(it))
}

func (h *Handler) DeleteFHIR(c echo.Context) error {
	existing, err := h.svc.GetByFHIRID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, fhir.NotFoundOutcome("SupplyItem", c.Param("id")))
	}
	if err := h.svc.Delete(c.Request().Context(), existing.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, fhir.ErrorOutcome(err.Error()))
	}
	return c.NoContent(http.StatusNoContent)
}
