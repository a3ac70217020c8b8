package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/beautybook/marketplace/internal/core/domain"
	"github.com/beautybook/marketplace/internal/core/ports"
)

// CatalogHandler serves the public provider directory.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type providerListResponse struct {
	Providers []domain.Provider `json:"providers"`
	Count     int               `json:"count"`
}

type providerResponse struct {
	domain.Provider
	TimeSlots []string `json:"time_slots"`
}

type namesResponse struct {
	Items []string `json:"items"`
}

// List handles GET /v1/providers.
//
// @Summary      Browse providers
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        q         query     string  false  "Name or location contains (case-insensitive)"
// @Param        service   query     string  false  "Exact service name"
// @Param        location  query     string  false  "Exact location"
// @Param        sort      query     string  false  "rating (default), price or name"
// @Success      200       {object}  providerListResponse
// @Failure      400       {object}  map[string]string
// @Router       /v1/providers [get]
func (h *CatalogHandler) List(c echo.Context) error {
	filter := ports.ProviderFilter{
		Query:    c.QueryParam("q"),
		Service:  c.QueryParam("service"),
		Location: c.QueryParam("location"),
		SortBy:   c.QueryParam("sort"),
	}
	switch filter.SortBy {
	case "", ports.SortByRating, ports.SortByPrice, ports.SortByName:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "sort must be one of: rating price name")
	}
	return h.list(c, filter)
}

// ByService handles GET /v1/services/:serviceName/providers.
//
// @Summary      Providers offering a service
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        serviceName  path      string  true  "URL-encoded service name"
// @Success      200          {object}  providerListResponse
// @Router       /v1/services/{serviceName}/providers [get]
func (h *CatalogHandler) ByService(c echo.Context) error {
	name, err := url.PathUnescape(c.Param("serviceName"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid service name")
	}
	return h.list(c, ports.ProviderFilter{Service: name})
}

func (h *CatalogHandler) list(c echo.Context, filter ports.ProviderFilter) error {
	providers, err := h.catalog.ListProviders(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, providerListResponse{Providers: providers, Count: len(providers)})
}

// Get handles GET /v1/providers/:id.
//
// @Summary      Provider page
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Provider id"
// @Success      200  {object}  providerResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/providers/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	provider, err := h.catalog.GetProvider(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, providerResponse{Provider: *provider, TimeSlots: domain.TimeSlots})
}

// Services handles GET /v1/services.
//
// @Summary      Distinct service names
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  namesResponse
// @Router       /v1/services [get]
func (h *CatalogHandler) Services(c echo.Context) error {
	names, err := h.catalog.ServiceNames(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, namesResponse{Items: names})
}

// Locations handles GET /v1/locations.
//
// @Summary      Distinct provider locations
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  namesResponse
// @Router       /v1/locations [get]
func (h *CatalogHandler) Locations(c echo.Context) error {
	locations, err := h.catalog.Locations(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, namesResponse{Items: locations})
}
