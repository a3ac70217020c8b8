package ports

import (
	"context"

	"github.com/beautybook/marketplace/internal/core/domain"
)

// SessionStore holds the per-session identity and the continuation records
// that survive an authentication detour.
type SessionStore interface {
	// Get returns the session identity, or nil when the session is anonymous.
	Get(ctx context.Context, sessionID string) (*domain.Identity, error)
	Set(ctx context.Context, sessionID string, identity *domain.Identity) error
	Clear(ctx context.Context, sessionID string) error

	// TakeRedirectTarget consumes the recorded post-login path.
	TakeRedirectTarget(ctx context.Context, sessionID string) (string, bool, error)
	SetRedirectTarget(ctx context.Context, sessionID, path string) error

	// PeekPendingBooking reads the draft without consuming it.
	PeekPendingBooking(ctx context.Context, sessionID string) (*domain.BookingDraft, error)
	// TakePendingBooking consumes the draft; a second call returns nil.
	TakePendingBooking(ctx context.Context, sessionID string) (*domain.BookingDraft, error)
	SetPendingBooking(ctx context.Context, sessionID string, draft domain.BookingDraft) error

	ProviderServices(ctx context.Context, sessionID string) ([]domain.OfferedService, error)
	SetProviderServices(ctx context.Context, sessionID string, services []domain.OfferedService) error
	ProviderSchedule(ctx context.Context, sessionID string) ([]domain.ScheduleEntry, error)
	SetProviderSchedule(ctx context.Context, sessionID string, schedule []domain.ScheduleEntry) error

	Bookings(ctx context.Context, sessionID string) ([]domain.Booking, error)
	SetBookings(ctx context.Context, sessionID string, bookings []domain.Booking) error
}
