package ports

import (
	"context"
	"time"

	"github.com/beautybook/marketplace/internal/core/domain"
)

// Clock is the time source of the simulations.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// Random is a uniform source on [0, 1).
type Random interface {
	Float64() float64
}

// StartPaymentInput opens a payment dialog for a booking.
type StartPaymentInput struct {
	SessionID string
	BookingID string
	Amount    int64
}

// PaymentService drives the simulated mobile-money dialog.
type PaymentService interface {
	Start(ctx context.Context, input StartPaymentInput) (*domain.PaymentAttempt, error)
	EnterPhone(ctx context.Context, sessionID, attemptID, phone, pin string) (*domain.PaymentAttempt, error)
	// Confirm moves the attempt to submitting; Settle must then be run for it.
	Confirm(ctx context.Context, sessionID, attemptID string) (*domain.PaymentAttempt, error)
	// Settle waits out the simulated round trip and draws the outcome.
	Settle(ctx context.Context, attemptID string) (*domain.PaymentAttempt, error)
	// Resolve draws the outcome now; the caller owns the round-trip delay.
	Resolve(ctx context.Context, attemptID string) (*domain.PaymentAttempt, error)
	Get(ctx context.Context, sessionID, attemptID string) (*domain.PaymentAttempt, error)
	Retry(ctx context.Context, sessionID, attemptID string) (*domain.PaymentAttempt, error)
	Close(ctx context.Context, sessionID, attemptID string) error
}
