package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beautybook/marketplace/internal/core/ports"
	"github.com/beautybook/marketplace/internal/infrastructure/queue"
)

// SettlementQueue accepts confirmed payments for asynchronous settlement.
type SettlementQueue interface {
	Enqueue(s queue.Settlement)
}

// PaymentHandler exposes the mobile-money dialog of a pending booking.
type PaymentHandler struct {
	payments ports.PaymentService
	bookings ports.BookingService
	queue    SettlementQueue
}

func NewPaymentHandler(payments ports.PaymentService, bookings ports.BookingService, q SettlementQueue) *PaymentHandler {
	return &PaymentHandler{payments: payments, bookings: bookings, queue: q}
}

type startPaymentRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

type phoneRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	PIN         string `json:"pin"`
}

// Start handles POST /v1/payments.
//
// @Summary      Open the payment dialog
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      startPaymentRequest  true  "Booking to pay"
// @Success      201   {object}  domain.PaymentAttempt
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/payments [post]
func (h *PaymentHandler) Start(c echo.Context) error {
	sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req startPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	booking, err := h.bookings.Payable(ctx, sid, req.BookingID)
	if err != nil {
		return err
	}
	attempt, err := h.payments.Start(ctx, ports.StartPaymentInput{
		SessionID: sid,
		BookingID: booking.ID,
		Amount:    booking.Amount,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, attempt)
}

// EnterPhone handles PUT /v1/payments/:id/phone.
//
// @Summary      Enter the paying phone number
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Payment attempt id"
// @Param        body  body      phoneRequest  true  "Phone number and optional PIN"
// @Success      200   {object}  domain.PaymentAttempt
// @Failure      400   {object}  map[string]string
// @Router       /v1/payments/{id}/phone [put]
func (h *PaymentHandler) EnterPhone(c echo.Context) error {
	sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req phoneRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	attempt, err := h.payments.EnterPhone(c.Request().Context(), sid, c.Param("id"), req.PhoneNumber, req.PIN)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, attempt)
}

// Confirm handles POST /v1/payments/:id/confirm. The outcome is settled in the
// background; poll Get until the state leaves submitting.
//
// @Summary      Confirm the payment
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Payment attempt id"
// @Success      202  {object}  domain.PaymentAttempt
// @Failure      409  {object}  map[string]string
// @Router       /v1/payments/{id}/confirm [post]
func (h *PaymentHandler) Confirm(c echo.Context) error {
	sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	attempt, err := h.payments.Confirm(c.Request().Context(), sid, c.Param("id"))
	if err != nil {
		return err
	}
	h.queue.Enqueue(queue.Settlement{SessionID: sid, AttemptID: attempt.ID})
	return c.JSON(http.StatusAccepted, attempt)
}

// Get handles GET /v1/payments/:id.
//
// @Summary      Poll a payment
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Payment attempt id"
// @Success      200  {object}  domain.PaymentAttempt
// @Failure      404  {object}  map[string]string
// @Router       /v1/payments/{id} [get]
func (h *PaymentHandler) Get(c echo.Context) error {
	sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	attempt, err := h.payments.Get(c.Request().Context(), sid, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, attempt)
}

// Retry handles POST /v1/payments/:id/retry.
//
// @Summary      Try a failed payment again
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Payment attempt id"
// @Success      200  {object}  domain.PaymentAttempt
// @Failure      409  {object}  map[string]string
// @Router       /v1/payments/{id}/retry [post]
func (h *PaymentHandler) Retry(c echo.Context) error {
	sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	attempt, err := h.payments.Retry(c.Request().Context(), sid, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, attempt)
}

// Close handles DELETE /v1/payments/:id.
//
// @Summary      Dismiss the payment dialog
// @Tags         payments
// @Security     BearerAuth
// @Param        id   path  string  true  "Payment attempt id"
// @Success      204
// @Failure      409  {object}  map[string]string
// @Router       /v1/payments/{id} [delete]
func (h *PaymentHandler) Close(c echo.Context) error {
	sid, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.payments.Close(c.Request().Context(), sid, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
