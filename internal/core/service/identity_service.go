package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/beautybook/marketplace/internal/core/domain"
	"github.com/beautybook/marketplace/internal/core/ports"
	"github.com/beautybook/marketplace/internal/pkg/metrics"
)

// IdentityService simulates authentication against a fixed directory and
// resumes any flow that was interrupted to authenticate.
type IdentityService struct {
	directory ports.IdentityDirectory
	sessions  ports.SessionStore
	clock     ports.Clock
	logger    zerolog.Logger

	// verifyPasswords enables the bcrypt check. When false only a non-empty
	// password is required.
	verifyPasswords bool
}

func NewIdentityService(directory ports.IdentityDirectory, sessions ports.SessionStore, clock ports.Clock, verifyPasswords bool, logger zerolog.Logger) *IdentityService {
	return &IdentityService{
		directory:       directory,
		sessions:        sessions,
		clock:           clock,
		verifyPasswords: verifyPasswords,
		logger:          logger,
	}
}

// Login authenticates email/password and binds the identity to the session.
// On failure the session store is left untouched.
func (s *IdentityService) Login(ctx context.Context, sessionID, email, password string) (*ports.AuthResult, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	if email == "" || password == "" {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.directory.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrAccountNotFound) {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "invalid_credentials").Inc()
		s.logger.Info().Str("session_id", sessionID).Msg("login rejected: unknown email")
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		return nil, fmt.Errorf("find account: %w", err)
	}
	if s.verifyPasswords && bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "invalid_credentials").Inc()
		s.logger.Info().Str("session_id", sessionID).Int("identity_id", account.ID).Msg("login rejected: password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	identity := account.Identity
	if err := s.sessions.Set(ctx, sessionID, &identity); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		return nil, err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	s.logger.Info().Str("session_id", sessionID).Int("identity_id", identity.ID).Str("role", string(identity.Role)).Msg("login succeeded")

	return s.resume(ctx, sessionID, &identity, identity.Role.LoginLanding())
}

// Signup registers a new account and logs it in.
func (s *IdentityService) Signup(ctx context.Context, sessionID string, input ports.SignupInput) (*ports.AuthResult, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	// A registered email wins over every other rejection.
	if _, err := s.directory.FindByEmail(ctx, input.Email); err == nil {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "email_registered").Inc()
		return nil, domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "error").Inc()
		return nil, fmt.Errorf("find account: %w", err)
	}

	if input.Role == "" {
		input.Role = domain.RoleClient
	}
	if !input.Role.SelfRegistrable() {
		return nil, domain.ErrInvalidRole
	}
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account, err := s.directory.Register(ctx, domain.Account{
		Identity: domain.Identity{
			Email:       input.Email,
			DisplayName: strings.TrimSpace(input.DisplayName),
			Role:        input.Role,
			CreatedAt:   s.clock.Now().UTC(),
			Profile: domain.Profile{
				Location:     input.Location,
				Bio:          input.Bio,
				BusinessName: input.BusinessName,
			},
		},
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyRegistered) {
			metrics.AuthAttemptsTotal.WithLabelValues("signup", "email_registered").Inc()
		}
		return nil, err
	}

	identity := account.Identity
	if err := s.sessions.Set(ctx, sessionID, &identity); err != nil {
		return nil, err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("signup", "success").Inc()
	s.logger.Info().Str("session_id", sessionID).Int("identity_id", identity.ID).Str("role", string(identity.Role)).Msg("signup succeeded")

	return s.resume(ctx, sessionID, &identity, identity.Role.SignupLanding())
}

func (s *IdentityService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		return err
	}
	s.logger.Info().Str("session_id", sessionID).Msg("logout")
	return nil
}

func (s *IdentityService) Current(ctx context.Context, sessionID string) (*domain.Identity, error) {
	return s.sessions.Get(ctx, sessionID)
}

// UpdateProfile edits the profile of the session identity. Role and email are
// not editable.
func (s *IdentityService) UpdateProfile(ctx context.Context, sessionID string, update ports.ProfileUpdate) (*domain.Identity, error) {
	identity, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, domain.ErrNotAuthenticated
	}

	if update.DisplayName != nil {
		identity.DisplayName = strings.TrimSpace(*update.DisplayName)
	}
	if update.Location != nil {
		identity.Location = *update.Location
	}
	if update.Bio != nil {
		identity.Bio = *update.Bio
	}
	if update.BusinessName != nil {
		identity.BusinessName = *update.BusinessName
	}
	if update.Phone != nil {
		identity.Phone = *update.Phone
	}

	if err := s.directory.Update(ctx, *identity); err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}
	if err := s.sessions.Set(ctx, sessionID, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// resume consumes both continuation records. A draft is only handed back to a
// client; for any other role it is dropped together with the booking page
// redirect that was recorded alongside it.
func (s *IdentityService) resume(ctx context.Context, sessionID string, identity *domain.Identity, landing string) (*ports.AuthResult, error) {
	redirect, hasRedirect, err := s.sessions.TakeRedirectTarget(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	draft, err := s.sessions.TakePendingBooking(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result := &ports.AuthResult{Identity: identity, RedirectPath: landing}
	switch {
	case draft != nil && identity.Role == domain.RoleClient:
		result.PendingBooking = draft
		if hasRedirect {
			result.RedirectPath = redirect
		} else {
			result.RedirectPath = domain.ProviderPath(draft.ProviderID)
		}
		metrics.DraftsTotal.WithLabelValues("resumed").Inc()
		s.logger.Info().Str("session_id", sessionID).Int("provider_id", draft.ProviderID).Msg("booking draft resumed")
	case draft != nil:
		metrics.DraftsTotal.WithLabelValues("discarded").Inc()
		s.logger.Info().Str("session_id", sessionID).Int("provider_id", draft.ProviderID).Str("role", string(identity.Role)).Msg("booking draft discarded: role may not book")
	case hasRedirect:
		result.RedirectPath = redirect
	}
	return result, nil
}

func (s *IdentityService) simulateLatency(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.clock.After(domain.AuthLatency):
		return nil
	}
}
