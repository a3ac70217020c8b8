package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beautybook/marketplace/internal/core/domain"
	"github.com/beautybook/marketplace/internal/core/ports"
)

// BookingHandler covers the booking form of a provider page.
type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type bookRequest struct {
	ServiceID     int    `json:"service_id"     validate:"required,gt=0"`
	Date          string `json:"date"           validate:"required"`
	Time          string `json:"time"           validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=money points"`
}

// Booking outcomes.
const (
	bookStatusAuthRequired = "auth_required"
	bookStatusCreated      = "created"
)

type bookResponse struct {
	Status    string          `json:"status"`
	LoginPath string          `json:"login_path,omitempty"`
	Booking   *domain.Booking `json:"booking,omitempty"`
}

type bookingStateResponse struct {
	Prefill   *domain.BookingDraft `json:"prefill"`
	Consumed  bool                 `json:"consumed"`
	Discarded bool                 `json:"discarded"`
}

// Book handles POST /v1/providers/:id/bookings.
//
// @Summary      Book a service
// @Description  An anonymous session has its selection saved and is told to log in.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Provider id"
// @Param        body  body      bookRequest  true  "Selection"
// @Success      200   {object}  bookResponse  "auth_required"
// @Success      201   {object}  bookResponse  "created"
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/providers/{id}/bookings [post]
func (h *BookingHandler) Book(c echo.Context) error {
	sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	providerID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.bookings.Book(c.Request().Context(), sid, ports.BookInput{
		ProviderID:    providerID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		return err
	}
	if res.AuthRequired {
		return c.JSON(http.StatusOK, bookResponse{Status: bookStatusAuthRequired, LoginPath: res.LoginPath})
	}
	return c.JSON(http.StatusCreated, bookResponse{Status: bookStatusCreated, Booking: res.Booking})
}

// State handles GET /v1/providers/:id/booking-state, called once on page entry.
//
// @Summary      Resume a saved selection
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Provider id"
// @Success      200  {object}  bookingStateResponse
// @Router       /v1/providers/{id}/booking-state [get]
func (h *BookingHandler) State(c echo.Context) error {
	sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	providerID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	cont, err := h.bookings.ResolveContinuation(c.Request().Context(), sid, providerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingStateResponse{
		Prefill:   cont.Prefill,
		Consumed:  cont.Consumed,
		Discarded: cont.Discarded,
	})
}
