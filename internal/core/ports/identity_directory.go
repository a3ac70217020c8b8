package ports

import (
	"context"

	"github.com/beautybook/marketplace/internal/core/domain"
)

// IdentityDirectory is the fixed set of known accounts.
type IdentityDirectory interface {
	// FindByEmail performs a case-sensitive exact match and returns
	// domain.ErrAccountNotFound when nothing matches.
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// Register appends an account, assigning ID = number of accounts + 1.
	// It returns domain.ErrEmailAlreadyRegistered for a known email.
	Register(ctx context.Context, account domain.Account) (*domain.Account, error)
	// Update replaces the display name and profile of the account with the
	// identity's ID. Email, role and credential never change.
	Update(ctx context.Context, identity domain.Identity) error
}
