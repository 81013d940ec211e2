package api

import (
	"context"

	"github.com/google/uuid"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/gateway"
)

// Services is the service catalog client. Services are the billable
// procedures that invoice items reference.
type Services struct {
	gw *gateway.Gateway
}

// NewServices is the constructor for Services.
func NewServices(gw *gateway.Gateway) *Services {
	return &Services{gw: gw}
}

// List returns one page of services.
func (c *Services) List(ctx context.Context, page, size int) (*entity.Page[entity.Service], error) {
	var out entity.Page[entity.Service]
	if err := c.gw.Get(ctx, "services", gateway.PageQuery(page, size), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Get returns a single service.
func (c *Services) Get(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var out entity.Service
	if err := c.gw.Get(ctx, "services/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ByCategory returns the services in one category.
func (c *Services) ByCategory(ctx context.Context, category entity.ServiceCategory) ([]entity.Service, error) {
	var out []entity.Service
	if err := c.gw.Get(ctx, "services/by-category/"+string(category), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Create adds a service to the catalog.
func (c *Services) Create(ctx context.Context, req entity.CreateServiceRequest) (*entity.Service, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Service
	if err := c.gw.Post(ctx, "services", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes a service.
func (c *Services) Update(ctx context.Context, id uuid.UUID, req entity.UpdateServiceRequest) (*entity.Service, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Service
	if err := c.gw.Put(ctx, "services/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes a service from the catalog.
func (c *Services) Delete(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "services/"+id.String())
}
