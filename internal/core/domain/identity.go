package domain

import (
	"errors"
	"fmt"
	"time"
)

// Role is fixed when the identity is created and never changes afterwards.
type Role string

const (
	RoleClient   Role = "client"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrAccountNotFound        = errors.New("account not found")
	ErrInvalidRole            = errors.New("invalid role")
	ErrNotAuthenticated       = errors.New("not authenticated")
	ErrForbidden              = errors.New("access forbidden")
)

// Landing routes handed back to the caller after authentication.
const (
	PathLogin              = "/login"
	PathSignup             = "/signup"
	PathClientDashboard    = "/dashboard"
	PathProviderDashboard  = "/provider/dashboard"
	PathProviderOnboarding = "/provider/onboarding"
)

// ProviderPath is the booking page of a single provider.
func ProviderPath(providerID int) string {
	return fmt.Sprintf("/providers/%d", providerID)
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

// SelfRegistrable reports whether an account with this role may be created via signup.
func (r Role) SelfRegistrable() bool {
	return r == RoleClient || r == RoleProvider
}

// LoginLanding is the default destination after login when no redirect was recorded.
func (r Role) LoginLanding() string {
	if r == RoleProvider {
		return PathProviderDashboard
	}
	return PathClientDashboard
}

// SignupLanding is the default destination after signup.
func (r Role) SignupLanding() string {
	if r == RoleProvider {
		return PathProviderOnboarding
	}
	return PathClientDashboard
}

// Profile holds the fields the owning identity may edit.
type Profile struct {
	Location     string `json:"location,omitempty"`
	Bio          string `json:"bio,omitempty"`
	BusinessName string `json:"business_name,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// Identity is the authenticated actor bound to a session.
type Identity struct {
	ID          int       `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	Profile
}

// Account is a directory entry: an identity plus its credential.
type Account struct {
	Identity
	PasswordHash string `json:"-"`
}

// AuthLatency is the simulated network delay of login and signup.
const AuthLatency = 1000 * time.Millisecond
