package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/beautybook/marketplace/internal/core/domain"
	"github.com/beautybook/marketplace/internal/core/ports"
	"github.com/beautybook/marketplace/internal/pkg/metrics"
)

// BookingService captures booking selections made before authentication,
// resumes them afterwards and finalizes bookings for clients.
type BookingService struct {
	sessions ports.SessionStore
	catalog  ports.Catalog
	clock    ports.Clock
	logger   zerolog.Logger

	// mu serializes read-modify-write of the per-session bookings list.
	mu sync.Mutex
}

func NewBookingService(sessions ports.SessionStore, catalog ports.Catalog, clock ports.Clock, logger zerolog.Logger) *BookingService {
	return &BookingService{sessions: sessions, catalog: catalog, clock: clock, logger: logger}
}

// Book finalizes the selection for a client. An anonymous session gets its
// selection captured and is asked to authenticate instead.
func (s *BookingService) Book(ctx context.Context, sessionID string, input ports.BookInput) (*ports.BookResult, error) {
	identity, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	draft := domain.BookingDraft{
		ProviderID:    input.ProviderID,
		ServiceID:     input.ServiceID,
		Date:          input.Date,
		Time:          input.Time,
		PaymentMethod: input.PaymentMethod,
	}
	if identity == nil {
		return s.Capture(ctx, sessionID, draft)
	}
	if identity.Role != domain.RoleClient {
		return nil, domain.ErrRoleMismatch
	}

	provider, service, err := s.validate(ctx, &draft)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	booking := domain.Booking{
		ID:            uuid.New().String(),
		ClientID:      identity.ID,
		ProviderID:    provider.ID,
		ProviderName:  provider.Name,
		ServiceID:     service.ID,
		ServiceName:   service.Name,
		Date:          draft.Date,
		Time:          draft.Time,
		PaymentMethod: draft.PaymentMethod,
		Amount:        service.AmountFor(draft.PaymentMethod),
		Status:        domain.BookingAwaitingPayment,
		CreatedAt:     now,
	}
	// Points are redeemed on the spot; money goes through the payment dialog.
	if draft.PaymentMethod == domain.PaymentPoints {
		booking.Status = domain.BookingConfirmed
		booking.ConfirmedAt = &now
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	bookings, err := s.sessions.Bookings(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SetBookings(ctx, sessionID, append(bookings, booking)); err != nil {
		return nil, err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(string(booking.PaymentMethod)).Inc()
	s.logger.Info().
		Str("session_id", sessionID).
		Str("booking_id", booking.ID).
		Int("provider_id", booking.ProviderID).
		Str("payment_method", string(booking.PaymentMethod)).
		Msg("booking created")
	return &ports.BookResult{Booking: &booking}, nil
}

// Capture stores the selection and the provider page as the post-login
// destination, replacing any earlier draft. Nothing else in the session is touched.
func (s *BookingService) Capture(ctx context.Context, sessionID string, draft domain.BookingDraft) (*ports.BookResult, error) {
	if _, _, err := s.validate(ctx, &draft); err != nil {
		return nil, err
	}
	if err := s.sessions.SetPendingBooking(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	if err := s.sessions.SetRedirectTarget(ctx, sessionID, domain.ProviderPath(draft.ProviderID)); err != nil {
		return nil, err
	}

	metrics.DraftsTotal.WithLabelValues("captured").Inc()
	s.logger.Info().Str("session_id", sessionID).Int("provider_id", draft.ProviderID).Msg("booking draft captured")
	return &ports.BookResult{AuthRequired: true, LoginPath: domain.PathLogin}, nil
}

// ResolveContinuation is the page-entry check of a provider page. A draft for
// another provider is left alone. A matching draft is consumed and returned to
// a client, consumed and dropped for any other role, and only peeked at while
// the session is anonymous.
func (s *BookingService) ResolveContinuation(ctx context.Context, sessionID string, providerID int) (*ports.Continuation, error) {
	draft, err := s.sessions.PeekPendingBooking(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft == nil || draft.ProviderID != providerID {
		return &ports.Continuation{}, nil
	}

	identity, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return &ports.Continuation{Prefill: draft}, nil
	}

	taken, err := s.sessions.TakePendingBooking(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if taken == nil {
		// Consumed by a concurrent page entry or login.
		return &ports.Continuation{}, nil
	}
	if taken.ProviderID != providerID {
		// Replaced by a capture for another provider since the peek.
		if err := s.sessions.SetPendingBooking(ctx, sessionID, *taken); err != nil {
			return nil, err
		}
		return &ports.Continuation{}, nil
	}

	if identity.Role != domain.RoleClient {
		metrics.DraftsTotal.WithLabelValues("discarded").Inc()
		s.logger.Info().Str("session_id", sessionID).Int("provider_id", providerID).Str("role", string(identity.Role)).Msg("booking draft discarded: role may not book")
		return &ports.Continuation{Consumed: true, Discarded: true}, nil
	}

	metrics.DraftsTotal.WithLabelValues("resumed").Inc()
	s.logger.Info().Str("session_id", sessionID).Int("provider_id", providerID).Msg("booking draft resumed")
	return &ports.Continuation{Prefill: taken, Consumed: true}, nil
}

func (s *BookingService) Booking(ctx context.Context, sessionID, bookingID string) (*domain.Booking, error) {
	bookings, err := s.sessions.Bookings(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == bookingID {
			return &bookings[i], nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (s *BookingService) Bookings(ctx context.Context, sessionID string) ([]domain.Booking, error) {
	bookings, err := s.sessions.Bookings(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, nil
}

func (s *BookingService) Payable(ctx context.Context, sessionID, bookingID string) (*domain.Booking, error) {
	booking, err := s.Booking(ctx, sessionID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingAwaitingPayment || booking.PaymentMethod != domain.PaymentMoney {
		return nil, domain.ErrBookingNotPayable
	}
	return booking, nil
}

// PaymentSucceeded confirms the paid booking. It is the success callback of
// the payment simulator.
func (s *BookingService) PaymentSucceeded(ctx context.Context, sessionID string, receipt domain.PaymentReceipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.sessions.Bookings(ctx, sessionID)
	if err != nil {
		return err
	}
	for i := range bookings {
		if bookings[i].ID != receipt.BookingID {
			continue
		}
		now := s.clock.Now().UTC()
		bookings[i].Status = domain.BookingConfirmed
		bookings[i].TransactionID = receipt.TransactionID
		bookings[i].ConfirmedAt = &now
		if err := s.sessions.SetBookings(ctx, sessionID, bookings); err != nil {
			return err
		}
		s.logger.Info().
			Str("session_id", sessionID).
			Str("booking_id", receipt.BookingID).
			Str("transaction_id", receipt.TransactionID).
			Msg("booking confirmed")
		return nil
	}
	return domain.ErrBookingNotFound
}

// validate checks the draft against the catalog and the offered slots and
// defaults the payment method. Capture and Book share it, so a captured draft
// is always bookable.
func (s *BookingService) validate(ctx context.Context, draft *domain.BookingDraft) (*domain.Provider, domain.Service, error) {
	if draft.ServiceID == 0 || draft.Date == "" || draft.Time == "" {
		return nil, domain.Service{}, domain.ErrIncompleteBooking
	}
	if _, err := time.Parse(domain.DateLayout, draft.Date); err != nil {
		return nil, domain.Service{}, domain.ErrInvalidDate
	}
	if !domain.IsOfferedSlot(draft.Time) {
		return nil, domain.Service{}, domain.ErrInvalidSlot
	}
	if draft.PaymentMethod == "" {
		draft.PaymentMethod = domain.PaymentMoney
	}
	if !draft.PaymentMethod.Valid() {
		return nil, domain.Service{}, domain.ErrInvalidPayment
	}
	provider, err := s.catalog.Provider(ctx, draft.ProviderID)
	if err != nil {
		return nil, domain.Service{}, err
	}
	service, ok := provider.Service(draft.ServiceID)
	if !ok {
		return nil, domain.Service{}, domain.ErrServiceNotFound
	}
	return provider, service, nil
}
