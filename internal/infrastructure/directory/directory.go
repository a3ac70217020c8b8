// Package directory holds the fixed set of accounts the simulated login checks
// against. Accounts added by signup live for the process lifetime.
package directory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/beautybook/marketplace/internal/core/domain"
)

// FixturePassword is the password of every seeded account.
const FixturePassword = "password123"

type seed struct {
	email       string
	displayName string
	role        domain.Role
	location    string
}

var seeds = []seed{
	{email: "client@example.com", displayName: "John Client", role: domain.RoleClient},
	{email: "provider@example.com", displayName: "Jane Provider", role: domain.RoleProvider, location: "New York"},
	{email: "admin@example.com", displayName: "Admin User", role: domain.RoleAdmin},
}

// Directory implements ports.IdentityDirectory in memory.
type Directory struct {
	mu       sync.RWMutex
	accounts []domain.Account
}

// New seeds the directory with the fixture accounts, hashing FixturePassword
// with the given bcrypt cost.
func New(cost int, createdAt time.Time) (*Directory, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(FixturePassword), cost)
	if err != nil {
		return nil, fmt.Errorf("hash fixture password: %w", err)
	}
	d := &Directory{}
	for i, s := range seeds {
		d.accounts = append(d.accounts, domain.Account{
			Identity: domain.Identity{
				ID:          i + 1,
				Email:       s.email,
				DisplayName: s.displayName,
				Role:        s.role,
				CreatedAt:   createdAt.UTC(),
				Profile:     domain.Profile{Location: s.location},
			},
			PasswordHash: string(hash),
		})
	}
	return d, nil
}

func (d *Directory) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, a := range d.accounts {
		if a.Email == email {
			clone := a
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (d *Directory) Register(_ context.Context, account domain.Account) (*domain.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, a := range d.accounts {
		if a.Email == account.Email {
			return nil, domain.ErrEmailAlreadyRegistered
		}
	}
	account.ID = len(d.accounts) + 1
	d.accounts = append(d.accounts, account)
	clone := account
	return &clone, nil
}

func (d *Directory) Update(_ context.Context, identity domain.Identity) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.accounts {
		if d.accounts[i].ID == identity.ID {
			d.accounts[i].DisplayName = identity.DisplayName
			d.accounts[i].Profile = identity.Profile
			return nil
		}
	}
	return domain.ErrAccountNotFound
}

// Len reports the number of accounts.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.accounts)
}
