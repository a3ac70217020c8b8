package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/beautybook/marketplace/internal/core/domain"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	ctx := context.Background()

	providers, _ := c.Providers(ctx)
	if len(providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(providers))
	}

	jane, err := c.Provider(ctx, 1)
	if err != nil {
		t.Fatalf("Provider: %v", err)
	}
	manicure, ok := jane.Service(1)
	if !ok || manicure.Name != "Manicure" || manicure.Price != 1500 || manicure.PointsCost != 50 || manicure.Duration != 60 {
		t.Fatalf("unexpected service: %+v", manicure)
	}
	if len(jane.Schedule) != 6 || jane.Schedule[5].Day != "Saturday" || jane.Schedule[5].StartTime != "10:00" {
		t.Fatalf("unexpected schedule: %+v", jane.Schedule)
	}
	if len(jane.Reviews) != 2 || jane.Reviews[0].ClientName != "Mary Johnson" {
		t.Fatalf("unexpected reviews: %+v", jane.Reviews)
	}

	sarah, _ := c.Provider(ctx, 2)
	if !sarah.Offers("Gel Polish") || sarah.Rating != 4.9 || sarah.ReviewCount != 89 {
		t.Fatalf("unexpected provider: %+v", sarah)
	}

	if _, err := c.Provider(ctx, 3); !errors.Is(err, domain.ErrProviderNotFound) {
		t.Fatalf("expected ErrProviderNotFound, got %v", err)
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"duplicate id":  "providers:\n  - id: 1\n    name: A\n  - id: 1\n    name: B\n",
		"unknown field": "providers:\n  - id: 1\n    nickname: A\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); err == nil || !strings.Contains(err.Error(), "decode catalog") {
				t.Fatalf("expected decode error, got %v", err)
			}
		})
	}
}

func TestProviders_ReturnsCopy(t *testing.T) {
	c, _ := Default()
	ctx := context.Background()
	list, _ := c.Providers(ctx)
	list[0].Name = "changed"

	p, _ := c.Provider(ctx, 1)
	if p.Name != "Jane Smith" {
		t.Fatalf("catalog mutated through returned slice")
	}
}
