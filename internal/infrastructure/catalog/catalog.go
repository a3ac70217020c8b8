// Package catalog serves the provider directory from a YAML document, by
// default the one embedded in the binary.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/beautybook/marketplace/internal/core/domain"
)

//go:embed providers.yaml
var embedded []byte

type document struct {
	Providers []domain.Provider `yaml:"providers"`
}

// Catalog implements ports.Catalog. It is read-only after construction.
type Catalog struct {
	providers []domain.Provider
	byID      map[int]int
}

// Default loads the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// Parse decodes a catalog document. Unknown fields and duplicate provider ids
// are rejected.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{providers: doc.Providers, byID: make(map[int]int, len(doc.Providers))}
	for i, p := range doc.Providers {
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("decode catalog: duplicate provider id %d", p.ID)
		}
		c.byID[p.ID] = i
	}
	return c, nil
}

func (c *Catalog) Providers(context.Context) ([]domain.Provider, error) {
	return append([]domain.Provider(nil), c.providers...), nil
}

func (c *Catalog) Provider(_ context.Context, id int) (*domain.Provider, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrProviderNotFound
	}
	p := c.providers[i]
	return &p, nil
}
