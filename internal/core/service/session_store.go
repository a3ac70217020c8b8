package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/beautybook/marketplace/internal/core/domain"
	"github.com/beautybook/marketplace/internal/core/ports"
)

// Persisted entry names inside a session namespace.
const (
	keyUser             = "user"
	keyPendingBooking   = "pendingBooking"
	keyRedirect         = "redirectAfterLogin"
	keyProviderServices = "providerServices"
	keyProviderSchedule = "providerSchedule"
	keyBookings         = "bookings"
)

// SessionStore keeps per-session state in a KVStore under "session:<sid>:<name>".
type SessionStore struct {
	kv ports.KVStore
}

func NewSessionStore(kv ports.KVStore) *SessionStore {
	return &SessionStore{kv: kv}
}

func sessionKey(sessionID, name string) string {
	return "session:" + sessionID + ":" + name
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (*domain.Identity, error) {
	var identity domain.Identity
	ok, err := s.getJSON(ctx, sessionID, keyUser, &identity)
	if err != nil || !ok {
		return nil, err
	}
	return &identity, nil
}

func (s *SessionStore) Set(ctx context.Context, sessionID string, identity *domain.Identity) error {
	if identity == nil {
		return s.Clear(ctx, sessionID)
	}
	return s.setJSON(ctx, sessionID, keyUser, identity)
}

// Clear forgets the session identity. Continuation records and onboarding data
// are left in place.
func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.kv.Delete(ctx, sessionKey(sessionID, keyUser)); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *SessionStore) TakeRedirectTarget(ctx context.Context, sessionID string) (string, bool, error) {
	path, ok, err := s.kv.Take(ctx, sessionKey(sessionID, keyRedirect))
	if err != nil {
		return "", false, fmt.Errorf("take redirect target: %w", err)
	}
	if !ok || path == "" {
		return "", false, nil
	}
	return path, true, nil
}

func (s *SessionStore) SetRedirectTarget(ctx context.Context, sessionID, path string) error {
	if err := s.kv.Set(ctx, sessionKey(sessionID, keyRedirect), path); err != nil {
		return fmt.Errorf("set redirect target: %w", err)
	}
	return nil
}

func (s *SessionStore) PeekPendingBooking(ctx context.Context, sessionID string) (*domain.BookingDraft, error) {
	var draft domain.BookingDraft
	ok, err := s.getJSON(ctx, sessionID, keyPendingBooking, &draft)
	if err != nil || !ok {
		return nil, err
	}
	return &draft, nil
}

func (s *SessionStore) TakePendingBooking(ctx context.Context, sessionID string) (*domain.BookingDraft, error) {
	raw, ok, err := s.kv.Take(ctx, sessionKey(sessionID, keyPendingBooking))
	if err != nil {
		return nil, fmt.Errorf("take pending booking: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var draft domain.BookingDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("decode pending booking: %w", err)
	}
	return &draft, nil
}

// SetPendingBooking replaces any unconsumed draft.
func (s *SessionStore) SetPendingBooking(ctx context.Context, sessionID string, draft domain.BookingDraft) error {
	return s.setJSON(ctx, sessionID, keyPendingBooking, draft)
}

func (s *SessionStore) ProviderServices(ctx context.Context, sessionID string) ([]domain.OfferedService, error) {
	var services []domain.OfferedService
	if _, err := s.getJSON(ctx, sessionID, keyProviderServices, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (s *SessionStore) SetProviderServices(ctx context.Context, sessionID string, services []domain.OfferedService) error {
	return s.setJSON(ctx, sessionID, keyProviderServices, services)
}

func (s *SessionStore) ProviderSchedule(ctx context.Context, sessionID string) ([]domain.ScheduleEntry, error) {
	var schedule []domain.ScheduleEntry
	if _, err := s.getJSON(ctx, sessionID, keyProviderSchedule, &schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *SessionStore) SetProviderSchedule(ctx context.Context, sessionID string, schedule []domain.ScheduleEntry) error {
	return s.setJSON(ctx, sessionID, keyProviderSchedule, schedule)
}

func (s *SessionStore) Bookings(ctx context.Context, sessionID string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if _, err := s.getJSON(ctx, sessionID, keyBookings, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *SessionStore) SetBookings(ctx context.Context, sessionID string, bookings []domain.Booking) error {
	return s.setJSON(ctx, sessionID, keyBookings, bookings)
}

func (s *SessionStore) getJSON(ctx context.Context, sessionID, name string, v any) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, sessionKey(sessionID, name))
	if err != nil {
		return false, fmt.Errorf("get %s: %w", name, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

func (s *SessionStore) setJSON(ctx context.Context, sessionID, name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := s.kv.Set(ctx, sessionKey(sessionID, name), string(raw)); err != nil {
		return fmt.Errorf("set %s: %w", name, err)
	}
	return nil
}
