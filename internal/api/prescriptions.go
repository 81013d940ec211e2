package api

import (
	"context"

	"github.com/google/uuid"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/gateway"
)

// Prescriptions is the prescription resource client.
type Prescriptions struct {
	gw *gateway.Gateway
}

// NewPrescriptions is the constructor for Prescriptions.
func NewPrescriptions(gw *gateway.Gateway) *Prescriptions {
	return &Prescriptions{gw: gw}
}

// List returns one page of prescriptions.
func (c *Prescriptions) List(ctx context.Context, page, size int) (*entity.Page[entity.Prescription], error) {
	var out entity.Page[entity.Prescription]
	if err := c.gw.Get(ctx, "prescriptions", gateway.PageQuery(page, size), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Get returns a single prescription.
func (c *Prescriptions) Get(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	var out entity.Prescription
	if err := c.gw.Get(ctx, "prescriptions/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ByMedicalRecord returns the prescriptions written under one medical record.
func (c *Prescriptions) ByMedicalRecord(ctx context.Context, medicalRecordID uuid.UUID) ([]entity.Prescription, error) {
	var out []entity.Prescription
	if err := c.gw.Get(ctx, "prescriptions/by-medical-record/"+medicalRecordID.String(), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ByPet returns a pet's prescription history.
func (c *Prescriptions) ByPet(ctx context.Context, petID uuid.UUID) ([]entity.Prescription, error) {
	var out []entity.Prescription
	if err := c.gw.Get(ctx, "prescriptions/by-pet/"+petID.String(), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Create writes a prescription.
func (c *Prescriptions) Create(ctx context.Context, req entity.CreatePrescriptionRequest) (*entity.Prescription, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Prescription
	if err := c.gw.Post(ctx, "prescriptions", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes a prescription.
func (c *Prescriptions) Update(ctx context.Context, id uuid.UUID, req entity.UpdatePrescriptionRequest) (*entity.Prescription, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Prescription
	if err := c.gw.Put(ctx, "prescriptions/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes a prescription.
func (c *Prescriptions) Delete(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "prescriptions/"+id.String())
}
