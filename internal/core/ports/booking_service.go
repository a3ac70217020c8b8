package ports

import (
	"context"

	"github.com/beautybook/marketplace/internal/core/domain"
)

// BookInput is the selection submitted from a provider page.
type BookInput struct {
	ProviderID    int
	ServiceID     int
	Date          string
	Time          string
	PaymentMethod domain.PaymentMethod
}

// BookResult is either an authentication prompt (the selection was captured)
// or a created booking.
type BookResult struct {
	AuthRequired bool
	LoginPath    string
	Booking      *domain.Booking
}

// Continuation is the outcome of a provider page-entry check.
type Continuation struct {
	// Prefill is the selection to restore on the page, nil when there is none.
	Prefill *domain.BookingDraft
	// Consumed is true when the draft was removed from the session.
	Consumed bool
	// Discarded is true when a draft was dropped because the identity may not book.
	Discarded bool
}

// BookingService covers draft capture, continuation and booking finalization.
type BookingService interface {
	Book(ctx context.Context, sessionID string, input BookInput) (*BookResult, error)
	Capture(ctx context.Context, sessionID string, draft domain.BookingDraft) (*BookResult, error)
	ResolveContinuation(ctx context.Context, sessionID string, providerID int) (*Continuation, error)
	Booking(ctx context.Context, sessionID, bookingID string) (*domain.Booking, error)
	Bookings(ctx context.Context, sessionID string) ([]domain.Booking, error)
	// Payable returns the booking if it is still awaiting a money payment.
	Payable(ctx context.Context, sessionID, bookingID string) (*domain.Booking, error)
}

// PaymentObserver is told about a settled successful payment.
type PaymentObserver interface {
	PaymentSucceeded(ctx context.Context, sessionID string, receipt domain.PaymentReceipt) error
}
