package api

import (
	"context"

	"github.com/google/uuid"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/gateway"
)

// Roles is the role catalog client. Roles bundle the permission
// strings that end up in access token claims.
type Roles struct {
	gw *gateway.Gateway
}

// NewRoles is the constructor for Roles.
func NewRoles(gw *gateway.Gateway) *Roles {
	return &Roles{gw: gw}
}

// List returns all roles.
func (c *Roles) List(ctx context.Context) ([]entity.Role, error) {
	var out []entity.Role
	if err := c.gw.Get(ctx, "roles", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Get returns a single role.
func (c *Roles) Get(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	var out entity.Role
	if err := c.gw.Get(ctx, "roles/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Create adds a role.
func (c *Roles) Create(ctx context.Context, req entity.CreateRoleRequest) (*entity.Role, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Role
	if err := c.gw.Post(ctx, "roles", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes a role.
func (c *Roles) Update(ctx context.Context, id uuid.UUID, req entity.UpdateRoleRequest) (*entity.Role, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Role
	if err := c.gw.Put(ctx, "roles/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes a role.
func (c *Roles) Delete(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "roles/"+id.String())
}
