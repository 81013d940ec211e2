package api

import (
	"context"

	"github.com/google/uuid"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/gateway"
)

// SpeciesCatalog is the species resource client.
type SpeciesCatalog struct {
	gw *gateway.Gateway
}

// NewSpeciesCatalog is the constructor for SpeciesCatalog.
func NewSpeciesCatalog(gw *gateway.Gateway) *SpeciesCatalog {
	return &SpeciesCatalog{gw: gw}
}

// List returns one page of species.
func (c *SpeciesCatalog) List(ctx context.Context, page, size int) (*entity.Page[entity.Species], error) {
	var out entity.Page[entity.Species]
	if err := c.gw.Get(ctx, "species", gateway.PageQuery(page, size), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Get returns a single species.
func (c *SpeciesCatalog) Get(ctx context.Context, id uuid.UUID) (*entity.Species, error) {
	var out entity.Species
	if err := c.gw.Get(ctx, "species/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Create adds a species to the catalog.
func (c *SpeciesCatalog) Create(ctx context.Context, req entity.CreateSpeciesRequest) (*entity.Species, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Species
	if err := c.gw.Post(ctx, "species", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes a catalog species.
func (c *SpeciesCatalog) Update(ctx context.Context, id uuid.UUID, req entity.UpdateSpeciesRequest) (*entity.Species, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Species
	if err := c.gw.Put(ctx, "species/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes a species.
func (c *SpeciesCatalog) Delete(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "species/"+id.String())
}

// Breeds is the breed resource client.
type Breeds struct {
	gw *gateway.Gateway
}

// NewBreeds is the constructor for Breeds.
func NewBreeds(gw *gateway.Gateway) *Breeds {
	return &Breeds{gw: gw}
}

// List returns one page of breeds.
func (c *Breeds) List(ctx context.Context, page, size int) (*entity.Page[entity.Breed], error) {
	var out entity.Page[entity.Breed]
	if err := c.gw.Get(ctx, "breeds", gateway.PageQuery(page, size), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Get returns a single breed.
func (c *Breeds) Get(ctx context.Context, id uuid.UUID) (*entity.Breed, error) {
	var out entity.Breed
	if err := c.gw.Get(ctx, "breeds/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// BySpecies returns the breeds of one species.
func (c *Breeds) BySpecies(ctx context.Context, speciesID uuid.UUID) ([]entity.Breed, error) {
	var out []entity.Breed
	if err := c.gw.Get(ctx, "breeds/by-species/"+speciesID.String(), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Create adds a breed.
func (c *Breeds) Create(ctx context.Context, req entity.CreateBreedRequest) (*entity.Breed, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Breed
	if err := c.gw.Post(ctx, "breeds", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes a breed.
func (c *Breeds) Update(ctx context.Context, id uuid.UUID, req entity.UpdateBreedRequest) (*entity.Breed, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Breed
	if err := c.gw.Put(ctx, "breeds/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes a breed.
func (c *Breeds) Delete(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "breeds/"+id.String())
}
