package api

import (
	"context"

	"github.com/google/uuid"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/gateway"
)

// Treatments is the treatment resource client. Treatments hang off a
// medical record, so there is no standalone list.
type Treatments struct {
	gw *gateway.Gateway
}

// NewTreatments is the constructor for Treatments.
func NewTreatments(gw *gateway.Gateway) *Treatments {
	return &Treatments{gw: gw}
}

// Get returns a single treatment.
func (c *Treatments) Get(ctx context.Context, id uuid.UUID) (*entity.Treatment, error) {
	var out entity.Treatment
	if err := c.gw.Get(ctx, "treatments/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ByMedicalRecord returns the treatments recorded under one medical record.
func (c *Treatments) ByMedicalRecord(ctx context.Context, medicalRecordID uuid.UUID) ([]entity.Treatment, error) {
	var out []entity.Treatment
	if err := c.gw.Get(ctx, "treatments/by-medical-record/"+medicalRecordID.String(), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Create adds a treatment to a medical record.
func (c *Treatments) Create(ctx context.Context, req entity.CreateTreatmentRequest) (*entity.Treatment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Treatment
	if err := c.gw.Post(ctx, "treatments", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes a treatment.
func (c *Treatments) Update(ctx context.Context, id uuid.UUID, req entity.UpdateTreatmentRequest) (*entity.Treatment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Treatment
	if err := c.gw.Put(ctx, "treatments/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes a treatment.
func (c *Treatments) Delete(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "treatments/"+id.String())
}
