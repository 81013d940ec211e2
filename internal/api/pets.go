package api

import (
	"context"

	"github.com/google/uuid"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/gateway"
)

// Pets is the pet resource client.
type Pets struct {
	gw *gateway.Gateway
}

// NewPets is the constructor for Pets.
func NewPets(gw *gateway.Gateway) *Pets {
	return &Pets{gw: gw}
}

// List returns one page of pets.
func (c *Pets) List(ctx context.Context, page, size int) (*entity.Page[entity.Pet], error) {
	var out entity.Page[entity.Pet]
	if err := c.gw.Get(ctx, "pets", gateway.PageQuery(page, size), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Get returns a single pet.
func (c *Pets) Get(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	var out entity.Pet
	if err := c.gw.Get(ctx, "pets/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ByOwner returns all pets registered to an owner.
func (c *Pets) ByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Pet, error) {
	var out []entity.Pet
	if err := c.gw.Get(ctx, "pets/by-owner/"+ownerID.String(), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Create registers a new pet.
func (c *Pets) Create(ctx context.Context, req entity.CreatePetRequest) (*entity.Pet, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Pet
	if err := c.gw.Post(ctx, "pets", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes an existing pet.
func (c *Pets) Update(ctx context.Context, id uuid.UUID, req entity.UpdatePetRequest) (*entity.Pet, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Pet
	if err := c.gw.Put(ctx, "pets/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes a pet.
func (c *Pets) Delete(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "pets/"+id.String())
}
