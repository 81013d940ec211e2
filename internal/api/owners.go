package api

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/gateway"
)

// Owners is the pet-owner resource client.
type Owners struct {
	gw *gateway.Gateway
}

// NewOwners is the constructor for Owners.
func NewOwners(gw *gateway.Gateway) *Owners {
	return &Owners{gw: gw}
}

// List returns one page of owners.
func (c *Owners) List(ctx context.Context, page, size int) (*entity.Page[entity.Owner], error) {
	var out entity.Page[entity.Owner]
	if err := c.gw.Get(ctx, "owners", gateway.PageQuery(page, size), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Get returns a single owner.
func (c *Owners) Get(ctx context.Context, id uuid.UUID) (*entity.Owner, error) {
	var out entity.Owner
	if err := c.gw.Get(ctx, "owners/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Create registers a new owner.
func (c *Owners) Create(ctx context.Context, req entity.CreateOwnerRequest) (*entity.Owner, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Owner
	if err := c.gw.Post(ctx, "owners", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes an existing owner.
func (c *Owners) Update(ctx context.Context, id uuid.UUID, req entity.UpdateOwnerRequest) (*entity.Owner, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Owner
	if err := c.gw.Put(ctx, "owners/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes an owner.
func (c *Owners) Delete(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "owners/"+id.String())
}

// SearchByLastName finds owners whose last name matches.
func (c *Owners) SearchByLastName(ctx context.Context, lastName string) ([]entity.Owner, error) {
	query := url.Values{}
	query.Set("lastName", lastName)

	var out []entity.Owner
	if err := c.gw.Get(ctx, "owners/search/by-last-name", query, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// SearchByPhone finds owners by phone number.
func (c *Owners) SearchByPhone(ctx context.Context, phone string) ([]entity.Owner, error) {
	query := url.Values{}
	query.Set("phone", phone)

	var out []entity.Owner
	if err := c.gw.Get(ctx, "owners/search/by-phone", query, &out); err != nil {
		return nil, err
	}

	return out, nil
}
