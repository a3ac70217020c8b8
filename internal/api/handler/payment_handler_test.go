package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/beautybook/marketplace/internal/core/domain"
	"github.com/beautybook/marketplace/internal/core/ports"
)

const testBookingID = "7b0e4c1c-2f3a-4f0e-9d1a-5c6b7a8e9f00"

func TestPaymentHandler_Start_UsesBookingAmount(t *testing.T) {
	bookings := &stubBookingService{
		payableFn: func(_ context.Context, _ string, id string) (*domain.Booking, error) {
			return &domain.Booking{ID: id, Amount: 2500, Status: domain.BookingAwaitingPayment}, nil
		},
	}
	payments := &stubPaymentService{
		startFn: func(_ context.Context, in ports.StartPaymentInput) (*domain.PaymentAttempt, error) {
			if in.SessionID != testSID || in.BookingID != testBookingID || in.Amount != 2500 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.PaymentAttempt{ID: "p-1", BookingID: in.BookingID, Amount: in.Amount, State: domain.PaymentCollectingPhone}, nil
		},
	}
	c, rec := newContext(http.MethodPost, "/v1/payments", strings.NewReader(`{"booking_id":"`+testBookingID+`"}`), clientIdentity)

	if err := NewPaymentHandler(payments, bookings, &recordingQueue{}).Start(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got := decode[domain.PaymentAttempt](t, rec); got.State != domain.PaymentCollectingPhone {
		t.Fatalf("unexpected attempt: %+v", got)
	}
}

func TestPaymentHandler_Start_NotPayable(t *testing.T) {
	bookings := &stubBookingService{
		payableFn: func(context.Context, string, string) (*domain.Booking, error) {
			return nil, domain.ErrBookingNotPayable
		},
	}
	c, _ := newContext(http.MethodPost, "/v1/payments", strings.NewReader(`{"booking_id":"`+testBookingID+`"}`), clientIdentity)

	if err := NewPaymentHandler(&stubPaymentService{}, bookings, &recordingQueue{}).Start(c); err != domain.ErrBookingNotPayable {
		t.Fatalf("expected ErrBookingNotPayable, got %v", err)
	}
}

func TestPaymentHandler_EnterPhone_RequiresNumber(t *testing.T) {
	c, _ := newContext(http.MethodPut, "/", strings.NewReader(`{"pin":"1234"}`), clientIdentity)
	c.SetParamNames("id")
	c.SetParamValues("p-1")

	err := NewPaymentHandler(&stubPaymentService{}, &stubBookingService{}, &recordingQueue{}).EnterPhone(c)

	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestPaymentHandler_Confirm_Enqueues(t *testing.T) {
	payments := &stubPaymentService{
		confirmFn: func(_ context.Context, _ string, id string) (*domain.PaymentAttempt, error) {
			return &domain.PaymentAttempt{ID: id, State: domain.PaymentSubmitting}, nil
		},
	}
	q := &recordingQueue{}
	c, rec := newContext(http.MethodPost, "/", nil, clientIdentity)
	c.SetParamNames("id")
	c.SetParamValues("p-1")

	if err := NewPaymentHandler(payments, &stubBookingService{}, q).Confirm(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(q.enqueued) != 1 || q.enqueued[0].AttemptID != "p-1" || q.enqueued[0].SessionID != testSID {
		t.Fatalf("unexpected queue contents: %+v", q.enqueued)
	}
}

func TestPaymentHandler_Confirm_RefusedIsNotEnqueued(t *testing.T) {
	payments := &stubPaymentService{
		confirmFn: func(context.Context, string, string) (*domain.PaymentAttempt, error) {
			return nil, domain.ErrInvalidPhone
		},
	}
	q := &recordingQueue{}
	c, _ := newContext(http.MethodPost, "/", nil, clientIdentity)
	c.SetParamNames("id")
	c.SetParamValues("p-1")

	_ = NewPaymentHandler(payments, &stubBookingService{}, q).Confirm(c)

	if len(q.enqueued) != 0 {
		t.Fatalf("nothing should be enqueued, got %+v", q.enqueued)
	}
}

func TestPaymentHandler_Close(t *testing.T) {
	payments := &stubPaymentService{
		closeFn: func(context.Context, string, string) error { return domain.ErrPaymentInProgress },
	}
	c, _ := newContext(http.MethodDelete, "/", nil, clientIdentity)
	c.SetParamNames("id")
	c.SetParamValues("p-1")

	if err := NewPaymentHandler(payments, &stubBookingService{}, &recordingQueue{}).Close(c); err != domain.ErrPaymentInProgress {
		t.Fatalf("expected ErrPaymentInProgress, got %v", err)
	}
}
