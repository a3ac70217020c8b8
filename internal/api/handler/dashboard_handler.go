package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beautybook/marketplace/internal/core/domain"
	"github.com/beautybook/marketplace/internal/core/ports"
)

// DashboardHandler serves the client and provider dashboards.
type DashboardHandler struct {
	bookings ports.BookingService
	catalog  ports.CatalogService
}

func NewDashboardHandler(bookings ports.BookingService, catalog ports.CatalogService) *DashboardHandler {
	return &DashboardHandler{bookings: bookings, catalog: catalog}
}

type clientDashboardResponse struct {
	Identity *domain.Identity `json:"identity"`
	Bookings []domain.Booking `json:"bookings"`
}

type onboardingRequest struct {
	Services []domain.OfferedService `json:"services"`
	Schedule []domain.ScheduleEntry  `json:"schedule"`
}

// Client handles GET /v1/dashboard.
//
// @Summary      Client dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  clientDashboardResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Client(c echo.Context) error {
	sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	bookings, err := h.bookings.Bookings(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientDashboardResponse{Identity: ctxIdentity(c), Bookings: bookings})
}

// Provider handles GET /v1/provider/dashboard.
//
// @Summary      Provider dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.ProviderDashboard
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/provider/dashboard [get]
func (h *DashboardHandler) Provider(c echo.Context) error {
	sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	dash, err := h.catalog.Dashboard(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dash)
}

// Onboarding handles PUT /v1/provider/onboarding.
//
// @Summary      Save onboarding wizard output
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      onboardingRequest  true  "Services and weekly schedule"
// @Success      200   {object}  ports.ProviderDashboard
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/provider/onboarding [put]
func (h *DashboardHandler) Onboarding(c echo.Context) error {
	sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req onboardingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	ctx := c.Request().Context()
	if err := h.catalog.SaveOnboarding(ctx, sid, req.Services, req.Schedule); err != nil {
		return err
	}
	dash, err := h.catalog.Dashboard(ctx, sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dash)
}
