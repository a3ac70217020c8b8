package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/beautybook/marketplace/internal/api/middleware"
	"github.com/beautybook/marketplace/internal/core/domain"
	"github.com/beautybook/marketplace/internal/core/ports"
	"github.com/beautybook/marketplace/internal/infrastructure/queue"
)

const testSID = "3f1c9a7e-4a53-4d3a-9bb8-7d2f2c1e0a11"

// newContext builds a request context the way the Auth and Session
// middleware leave it.
func newContext(method, target string, body io.Reader, identity *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.KeySessionID, testSID)
	if identity != nil {
		c.Set(middleware.KeyIdentity, identity)
		c.Set(middleware.KeyRole, string(identity.Role))
	}
	return c, rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return v
}

var clientIdentity = &domain.Identity{ID: 1, Email: "client@example.com", Role: domain.RoleClient, DisplayName: "Jane Client"}

type stubIdentityService struct {
	loginFn   func(ctx context.Context, sid, email, password string) (*ports.AuthResult, error)
	signupFn  func(ctx context.Context, sid string, in ports.SignupInput) (*ports.AuthResult, error)
	logoutFn  func(ctx context.Context, sid string) error
	currentFn func(ctx context.Context, sid string) (*domain.Identity, error)
	updateFn  func(ctx context.Context, sid string, u ports.ProfileUpdate) (*domain.Identity, error)
}

func (s *stubIdentityService) Login(ctx context.Context, sid, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, sid, email, password)
}

func (s *stubIdentityService) Signup(ctx context.Context, sid string, in ports.SignupInput) (*ports.AuthResult, error) {
	return s.signupFn(ctx, sid, in)
}

func (s *stubIdentityService) Logout(ctx context.Context, sid string) error {
	return s.logoutFn(ctx, sid)
}

func (s *stubIdentityService) Current(ctx context.Context, sid string) (*domain.Identity, error) {
	return s.currentFn(ctx, sid)
}

func (s *stubIdentityService) UpdateProfile(ctx context.Context, sid string, u ports.ProfileUpdate) (*domain.Identity, error) {
	return s.updateFn(ctx, sid, u)
}

// stubBookingService embeds the interface; calling an unset method panics.
type stubBookingService struct {
	ports.BookingService
	bookFn     func(ctx context.Context, sid string, in ports.BookInput) (*ports.BookResult, error)
	resolveFn  func(ctx context.Context, sid string, providerID int) (*ports.Continuation, error)
	bookingsFn func(ctx context.Context, sid string) ([]domain.Booking, error)
	payableFn  func(ctx context.Context, sid, bookingID string) (*domain.Booking, error)
}

func (s *stubBookingService) Book(ctx context.Context, sid string, in ports.BookInput) (*ports.BookResult, error) {
	return s.bookFn(ctx, sid, in)
}

func (s *stubBookingService) ResolveContinuation(ctx context.Context, sid string, providerID int) (*ports.Continuation, error) {
	return s.resolveFn(ctx, sid, providerID)
}

func (s *stubBookingService) Bookings(ctx context.Context, sid string) ([]domain.Booking, error) {
	return s.bookingsFn(ctx, sid)
}

func (s *stubBookingService) Payable(ctx context.Context, sid, bookingID string) (*domain.Booking, error) {
	return s.payableFn(ctx, sid, bookingID)
}

type stubCatalogService struct {
	ports.CatalogService
	listFn      func(ctx context.Context, f ports.ProviderFilter) ([]domain.Provider, error)
	getFn       func(ctx context.Context, id int) (*domain.Provider, error)
	saveFn      func(ctx context.Context, sid string, services []domain.OfferedService, schedule []domain.ScheduleEntry) error
	dashboardFn func(ctx context.Context, sid string) (*ports.ProviderDashboard, error)
}

func (s *stubCatalogService) ListProviders(ctx context.Context, f ports.ProviderFilter) ([]domain.Provider, error) {
	return s.listFn(ctx, f)
}

func (s *stubCatalogService) GetProvider(ctx context.Context, id int) (*domain.Provider, error) {
	return s.getFn(ctx, id)
}

func (s *stubCatalogService) SaveOnboarding(ctx context.Context, sid string, services []domain.OfferedService, schedule []domain.ScheduleEntry) error {
	return s.saveFn(ctx, sid, services, schedule)
}

func (s *stubCatalogService) Dashboard(ctx context.Context, sid string) (*ports.ProviderDashboard, error) {
	return s.dashboardFn(ctx, sid)
}

type stubPaymentService struct {
	ports.PaymentService
	startFn   func(ctx context.Context, in ports.StartPaymentInput) (*domain.PaymentAttempt, error)
	phoneFn   func(ctx context.Context, sid, id, phone, pin string) (*domain.PaymentAttempt, error)
	confirmFn func(ctx context.Context, sid, id string) (*domain.PaymentAttempt, error)
	closeFn   func(ctx context.Context, sid, id string) error
}

func (s *stubPaymentService) Start(ctx context.Context, in ports.StartPaymentInput) (*domain.PaymentAttempt, error) {
	return s.startFn(ctx, in)
}

func (s *stubPaymentService) EnterPhone(ctx context.Context, sid, id, phone, pin string) (*domain.PaymentAttempt, error) {
	return s.phoneFn(ctx, sid, id, phone, pin)
}

func (s *stubPaymentService) Confirm(ctx context.Context, sid, id string) (*domain.PaymentAttempt, error) {
	return s.confirmFn(ctx, sid, id)
}

func (s *stubPaymentService) Close(ctx context.Context, sid, id string) error {
	return s.closeFn(ctx, sid, id)
}

type recordingQueue struct {
	enqueued []queue.Settlement
}

func (q *recordingQueue) Enqueue(s queue.Settlement) {
	q.enqueued = append(q.enqueued, s)
}
