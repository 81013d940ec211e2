package api

import (
	"context"

	"github.com/google/uuid"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/gateway"
)

// Clinics is the tenant clinic client. Most operations require
// platform-admin permissions; the unauthenticated lookup used by the
// login flow lives on the Auth client.
type Clinics struct {
	gw *gateway.Gateway
}

// NewClinics is the constructor for Clinics.
func NewClinics(gw *gateway.Gateway) *Clinics {
	return &Clinics{gw: gw}
}

// List returns one page of clinics.
func (c *Clinics) List(ctx context.Context, page, size int) (*entity.Page[entity.Clinic], error) {
	var out entity.Page[entity.Clinic]
	if err := c.gw.Get(ctx, "clinics", gateway.PageQuery(page, size), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Get returns a single clinic.
func (c *Clinics) Get(ctx context.Context, id uuid.UUID) (*entity.Clinic, error) {
	var out entity.Clinic
	if err := c.gw.Get(ctx, "clinics/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Create registers a clinic.
func (c *Clinics) Create(ctx context.Context, req entity.CreateClinicRequest) (*entity.Clinic, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Clinic
	if err := c.gw.Post(ctx, "clinics", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes a clinic.
func (c *Clinics) Update(ctx context.Context, id uuid.UUID, req entity.UpdateClinicRequest) (*entity.Clinic, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Clinic
	if err := c.gw.Put(ctx, "clinics/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes a clinic.
func (c *Clinics) Delete(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "clinics/"+id.String())
}
