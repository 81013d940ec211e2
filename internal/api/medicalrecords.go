package api

import (
	"context"

	"github.com/google/uuid"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/gateway"
)

// MedicalRecords is the medical-record resource client.
type MedicalRecords struct {
	gw *gateway.Gateway
}

// NewMedicalRecords is the constructor for MedicalRecords.
func NewMedicalRecords(gw *gateway.Gateway) *MedicalRecords {
	return &MedicalRecords{gw: gw}
}

// List returns one page of medical records.
func (c *MedicalRecords) List(ctx context.Context, page, size int) (*entity.Page[entity.MedicalRecord], error) {
	var out entity.Page[entity.MedicalRecord]
	if err := c.gw.Get(ctx, "medical-records", gateway.PageQuery(page, size), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Get returns a single medical record.
func (c *MedicalRecords) Get(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error) {
	var out entity.MedicalRecord
	if err := c.gw.Get(ctx, "medical-records/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ByPet returns a pet's full medical history.
func (c *MedicalRecords) ByPet(ctx context.Context, petID uuid.UUID) ([]entity.MedicalRecord, error) {
	var out []entity.MedicalRecord
	if err := c.gw.Get(ctx, "medical-records/by-pet/"+petID.String(), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ByAppointment returns the record written during one appointment.
func (c *MedicalRecords) ByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]entity.MedicalRecord, error) {
	var out []entity.MedicalRecord
	if err := c.gw.Get(ctx, "medical-records/by-appointment/"+appointmentID.String(), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Create opens a medical record.
func (c *MedicalRecords) Create(ctx context.Context, req entity.CreateMedicalRecordRequest) (*entity.MedicalRecord, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.MedicalRecord
	if err := c.gw.Post(ctx, "medical-records", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes a medical record.
func (c *MedicalRecords) Update(ctx context.Context, id uuid.UUID, req entity.UpdateMedicalRecordRequest) (*entity.MedicalRecord, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.MedicalRecord
	if err := c.gw.Put(ctx, "medical-records/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes a medical record.
func (c *MedicalRecords) Delete(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "medical-records/"+id.String())
}
