package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/beautybook/marketplace/internal/core/domain"
	"github.com/beautybook/marketplace/internal/core/ports"
)

type onboardingForm struct {
	Services []domain.OfferedService `validate:"required,min=1,dive"`
	Schedule []domain.ScheduleEntry  `validate:"dive"`
}

// CatalogService serves the provider directory and the data a provider enters
// during onboarding.
type CatalogService struct {
	catalog  ports.Catalog
	sessions ports.SessionStore
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewCatalogService(catalog ports.Catalog, sessions ports.SessionStore, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		catalog:  catalog,
		sessions: sessions,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *CatalogService) ListProviders(ctx context.Context, filter ports.ProviderFilter) ([]domain.Provider, error) {
	providers, err := s.catalog.Providers(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(filter.Query)
	matched := make([]domain.Provider, 0, len(providers))
	for _, p := range providers {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Location), query) {
			continue
		}
		if filter.Service != "" && !p.Offers(filter.Service) {
			continue
		}
		if filter.Location != "" && p.Location != filter.Location {
			continue
		}
		matched = append(matched, p)
	}

	switch filter.SortBy {
	case ports.SortByPrice:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].LowestPrice() < matched[j].LowestPrice() })
	case ports.SortByName:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	default:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Rating > matched[j].Rating })
	}
	return matched, nil
}

func (s *CatalogService) GetProvider(ctx context.Context, id int) (*domain.Provider, error) {
	return s.catalog.Provider(ctx, id)
}

// ServiceNames lists every distinct service name in first-seen order.
func (s *CatalogService) ServiceNames(ctx context.Context) ([]string, error) {
	providers, err := s.catalog.Providers(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	names := []string{}
	for _, p := range providers {
		for _, svc := range p.Services {
			if _, ok := seen[svc.Name]; ok {
				continue
			}
			seen[svc.Name] = struct{}{}
			names = append(names, svc.Name)
		}
	}
	return names, nil
}

// Locations lists every distinct provider location in first-seen order.
func (s *CatalogService) Locations(ctx context.Context) ([]string, error) {
	providers, err := s.catalog.Providers(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	locations := []string{}
	for _, p := range providers {
		if _, ok := seen[p.Location]; ok {
			continue
		}
		seen[p.Location] = struct{}{}
		locations = append(locations, p.Location)
	}
	return locations, nil
}

// SaveOnboarding stores the services and weekly schedule entered in the
// onboarding wizard. At least one service is required.
func (s *CatalogService) SaveOnboarding(ctx context.Context, sessionID string, services []domain.OfferedService, schedule []domain.ScheduleEntry) error {
	identity, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if identity == nil {
		return domain.ErrNotAuthenticated
	}
	if identity.Role != domain.RoleProvider {
		return domain.ErrForbidden
	}

	form := onboardingForm{Services: services, Schedule: schedule}
	if err := s.validate.Struct(form); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidOnboarding, err)
	}

	if err := s.sessions.SetProviderServices(ctx, sessionID, services); err != nil {
		return err
	}
	if err := s.sessions.SetProviderSchedule(ctx, sessionID, schedule); err != nil {
		return err
	}
	s.logger.Info().Str("session_id", sessionID).Int("identity_id", identity.ID).Int("services", len(services)).Msg("onboarding saved")
	return nil
}

func (s *CatalogService) Dashboard(ctx context.Context, sessionID string) (*ports.ProviderDashboard, error) {
	identity, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if identity.Role != domain.RoleProvider {
		return nil, domain.ErrForbidden
	}

	services, err := s.sessions.ProviderServices(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	schedule, err := s.sessions.ProviderSchedule(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = []domain.OfferedService{}
	}
	if schedule == nil {
		schedule = []domain.ScheduleEntry{}
	}
	return &ports.ProviderDashboard{
		Identity:  identity,
		Services:  services,
		Schedule:  schedule,
		Onboarded: len(services) > 0,
	}, nil
}
