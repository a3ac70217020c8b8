package ports

import (
	"context"

	"github.com/beautybook/marketplace/internal/core/domain"
)

// Catalog is the read-only provider directory.
type Catalog interface {
	Providers(ctx context.Context) ([]domain.Provider, error)
	// Provider returns domain.ErrProviderNotFound for an unknown id.
	Provider(ctx context.Context, id int) (*domain.Provider, error)
}

// Provider directory sort orders.
const (
	SortByRating = "rating"
	SortByPrice  = "price"
	SortByName   = "name"
)

// ProviderFilter narrows and orders the provider directory. Zero values match
// everything; an empty SortBy means SortByRating.
type ProviderFilter struct {
	// Query is a case-insensitive substring of the name or location.
	Query string
	// Service is an exact service name.
	Service  string
	Location string
	SortBy   string
}

// ProviderDashboard is what a provider sees after onboarding.
type ProviderDashboard struct {
	Identity *domain.Identity        `json:"identity"`
	Services []domain.OfferedService `json:"services"`
	Schedule []domain.ScheduleEntry  `json:"schedule"`
	// Onboarded is false until services have been saved.
	Onboarded bool `json:"onboarded"`
}

// CatalogService exposes browsing and provider-authored catalog data.
type CatalogService interface {
	ListProviders(ctx context.Context, filter ProviderFilter) ([]domain.Provider, error)
	GetProvider(ctx context.Context, id int) (*domain.Provider, error)
	ServiceNames(ctx context.Context) ([]string, error)
	Locations(ctx context.Context) ([]string, error)
	SaveOnboarding(ctx context.Context, sessionID string, services []domain.OfferedService, schedule []domain.ScheduleEntry) error
	Dashboard(ctx context.Context, sessionID string) (*ProviderDashboard, error)
}
