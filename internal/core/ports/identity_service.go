package ports

import (
	"context"

	"github.com/beautybook/marketplace/internal/core/domain"
)

// AuthResult is what a successful login or signup hands back to the caller:
// where to go next and the booking selection to restore there, if any.
type AuthResult struct {
	Identity       *domain.Identity
	RedirectPath   string
	PendingBooking *domain.BookingDraft
}

// SignupInput carries the profile entered on the signup form.
type SignupInput struct {
	Email        string
	Password     string
	DisplayName  string
	Role         domain.Role
	Location     string
	Bio          string
	BusinessName string
}

// ProfileUpdate lists the editable profile fields; nil means unchanged.
type ProfileUpdate struct {
	DisplayName  *string
	Location     *string
	Bio          *string
	BusinessName *string
	Phone        *string
}

// IdentityService is the simulated authentication boundary.
type IdentityService interface {
	Login(ctx context.Context, sessionID, email, password string) (*AuthResult, error)
	Signup(ctx context.Context, sessionID string, input SignupInput) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	Current(ctx context.Context, sessionID string) (*domain.Identity, error)
	UpdateProfile(ctx context.Context, sessionID string, update ProfileUpdate) (*domain.Identity, error)
}
