package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/beautybook/marketplace/internal/core/domain"
	"github.com/beautybook/marketplace/internal/core/ports"
)

func newCatalogFixture() (*CatalogService, *SessionStore) {
	sessions := NewSessionStore(newStubKV())
	return NewCatalogService(newStubCatalog(), sessions, zerolog.Nop()), sessions
}

func providerIDs(ps []domain.Provider) []int {
	ids := make([]int, 0, len(ps))
	for _, p := range ps {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestCatalogService_ListProviders(t *testing.T) {
	svc, _ := newCatalogFixture()
	ctx := context.Background()

	cases := []struct {
		name   string
		filter ports.ProviderFilter
		want   []int
	}{
		{"default sort by rating", ports.ProviderFilter{}, []int{2, 1}},
		{"sort by lowest price", ports.ProviderFilter{SortBy: ports.SortByPrice}, []int{1, 2}},
		{"sort by name", ports.ProviderFilter{SortBy: ports.SortByName}, []int{1, 2}},
		{"exact service name", ports.ProviderFilter{Service: "Gel Polish"}, []int{2}},
		{"service name is case sensitive", ports.ProviderFilter{Service: "gel polish"}, []int{}},
		{"query matches location", ports.ProviderFilter{Query: "westlands"}, []int{1}},
		{"query matches name", ports.ProviderFilter{Query: "SARAH"}, []int{2}},
		{"location", ports.ProviderFilter{Location: "Nairobi, Kilimani"}, []int{2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.ListProviders(ctx, tc.filter)
			if err != nil {
				t.Fatalf("ListProviders: %v", err)
			}
			if ids := providerIDs(got); !reflect.DeepEqual(ids, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, ids)
			}
		})
	}
}

func TestCatalogService_ServiceNamesAndLocations(t *testing.T) {
	svc, _ := newCatalogFixture()
	names, _ := svc.ServiceNames(context.Background())
	if want := []string{"Manicure", "Pedicure", "Nail Art", "Gel Polish"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	locations, _ := svc.Locations(context.Background())
	if want := []string{"Nairobi, Westlands", "Nairobi, Kilimani"}; !reflect.DeepEqual(locations, want) {
		t.Fatalf("expected %v, got %v", want, locations)
	}
}

func TestCatalogService_GetProvider(t *testing.T) {
	svc, _ := newCatalogFixture()
	if _, err := svc.GetProvider(context.Background(), 42); !errors.Is(err, domain.ErrProviderNotFound) {
		t.Fatalf("expected ErrProviderNotFound, got %v", err)
	}
	p, err := svc.GetProvider(context.Background(), 1)
	if err != nil || p.Name != "Jane Smith" {
		t.Fatalf("unexpected provider %+v %v", p, err)
	}
}

func TestCatalogService_Onboarding(t *testing.T) {
	svc, sessions := newCatalogFixture()
	ctx := context.Background()
	services := []domain.OfferedService{{Name: "Braids", Price: 2500, Duration: 120}}
	schedule := []domain.ScheduleEntry{{Day: "Monday", StartTime: "09:00", EndTime: "17:00"}}

	if err := svc.SaveOnboarding(ctx, "s1", services, schedule); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}

	_ = sessions.Set(ctx, "s1", &domain.Identity{ID: 1, Role: domain.RoleClient})
	if err := svc.SaveOnboarding(ctx, "s1", services, schedule); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	_ = sessions.Set(ctx, "s1", &domain.Identity{ID: 2, Role: domain.RoleProvider})
	dash, err := svc.Dashboard(ctx, "s1")
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dash.Onboarded || len(dash.Services) != 0 {
		t.Fatalf("expected empty dashboard before onboarding: %+v", dash)
	}

	if err := svc.SaveOnboarding(ctx, "s1", nil, schedule); !errors.Is(err, domain.ErrInvalidOnboarding) {
		t.Fatalf("expected ErrInvalidOnboarding for no services, got %v", err)
	}
	bad := []domain.ScheduleEntry{{Day: "Funday", StartTime: "09:00", EndTime: "17:00"}}
	if err := svc.SaveOnboarding(ctx, "s1", services, bad); !errors.Is(err, domain.ErrInvalidOnboarding) {
		t.Fatalf("expected ErrInvalidOnboarding for bad day, got %v", err)
	}

	if err := svc.SaveOnboarding(ctx, "s1", services, schedule); err != nil {
		t.Fatalf("SaveOnboarding: %v", err)
	}
	dash, _ = svc.Dashboard(ctx, "s1")
	if !dash.Onboarded || !reflect.DeepEqual(dash.Services, services) || !reflect.DeepEqual(dash.Schedule, schedule) {
		t.Fatalf("unexpected dashboard: %+v", dash)
	}
}
