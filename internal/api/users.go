package api

import (
	"context"

	"github.com/google/uuid"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/gateway"
)

// Users is the staff account client.
type Users struct {
	gw *gateway.Gateway
}

// NewUsers is the constructor for Users.
func NewUsers(gw *gateway.Gateway) *Users {
	return &Users{gw: gw}
}

// Me returns the account behind the current session.
func (c *Users) Me(ctx context.Context) (*entity.User, error) {
	var out entity.User
	if err := c.gw.Get(ctx, "users/me", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// List returns one page of staff accounts.
func (c *Users) List(ctx context.Context, page, size int) (*entity.Page[entity.User], error) {
	var out entity.Page[entity.User]
	if err := c.gw.Get(ctx, "users", gateway.PageQuery(page, size), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Get returns a single account.
func (c *Users) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var out entity.User
	if err := c.gw.Get(ctx, "users/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Create adds a staff account.
func (c *Users) Create(ctx context.Context, req entity.CreateUserRequest) (*entity.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.User
	if err := c.gw.Post(ctx, "users", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes an account.
func (c *Users) Update(ctx context.Context, id uuid.UUID, req entity.UpdateUserRequest) (*entity.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.User
	if err := c.gw.Put(ctx, "users/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes an account.
func (c *Users) Delete(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "users/"+id.String())
}
