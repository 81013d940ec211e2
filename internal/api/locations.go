package api

import (
	"context"

	"github.com/google/uuid"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/gateway"
)

// ClinicLocations is the clinic-location resource client.
type ClinicLocations struct {
	gw *gateway.Gateway
}

// NewClinicLocations is the constructor for ClinicLocations.
func NewClinicLocations(gw *gateway.Gateway) *ClinicLocations {
	return &ClinicLocations{gw: gw}
}

// List returns one page of locations for the active clinic.
func (c *ClinicLocations) List(ctx context.Context, page, size int) (*entity.Page[entity.ClinicLocation], error) {
	var out entity.Page[entity.ClinicLocation]
	if err := c.gw.Get(ctx, "clinic-locations", gateway.PageQuery(page, size), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Get returns a single location.
func (c *ClinicLocations) Get(ctx context.Context, id uuid.UUID) (*entity.ClinicLocation, error) {
	var out entity.ClinicLocation
	if err := c.gw.Get(ctx, "clinic-locations/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Active returns the locations currently accepting appointments.
func (c *ClinicLocations) Active(ctx context.Context) ([]entity.ClinicLocation, error) {
	var out []entity.ClinicLocation
	if err := c.gw.Get(ctx, "clinic-locations/active", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Create adds a location.
func (c *ClinicLocations) Create(ctx context.Context, req entity.CreateClinicLocationRequest) (*entity.ClinicLocation, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.ClinicLocation
	if err := c.gw.Post(ctx, "clinic-locations", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes a location.
func (c *ClinicLocations) Update(ctx context.Context, id uuid.UUID, req entity.UpdateClinicLocationRequest) (*entity.ClinicLocation, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.ClinicLocation
	if err := c.gw.Put(ctx, "clinic-locations/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes a location.
func (c *ClinicLocations) Delete(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "clinic-locations/"+id.String())
}
