package api

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/gateway"
)

// Vaccinations is the vaccination resource client.
type Vaccinations struct {
	gw *gateway.Gateway
}

// NewVaccinations is the constructor for Vaccinations.
func NewVaccinations(gw *gateway.Gateway) *Vaccinations {
	return &Vaccinations{gw: gw}
}

// List returns one page of vaccinations.
func (c *Vaccinations) List(ctx context.Context, page, size int) (*entity.Page[entity.Vaccination], error) {
	var out entity.Page[entity.Vaccination]
	if err := c.gw.Get(ctx, "vaccinations", gateway.PageQuery(page, size), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Get returns a single vaccination.
func (c *Vaccinations) Get(ctx context.Context, id uuid.UUID) (*entity.Vaccination, error) {
	var out entity.Vaccination
	if err := c.gw.Get(ctx, "vaccinations/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ByPet returns a pet's vaccination card.
func (c *Vaccinations) ByPet(ctx context.Context, petID uuid.UUID) ([]entity.Vaccination, error) {
	var out []entity.Vaccination
	if err := c.gw.Get(ctx, "vaccinations/by-pet/"+petID.String(), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ByMedicalRecord returns the vaccinations given under one medical record.
func (c *Vaccinations) ByMedicalRecord(ctx context.Context, medicalRecordID uuid.UUID) ([]entity.Vaccination, error) {
	var out []entity.Vaccination
	if err := c.gw.Get(ctx, "vaccinations/by-medical-record/"+medicalRecordID.String(), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// DueBefore returns vaccinations whose next dose falls before the
// given date. Reminder jobs use this to build their send list.
func (c *Vaccinations) DueBefore(ctx context.Context, before time.Time) ([]entity.Vaccination, error) {
	query := url.Values{}
	query.Set("before", before.Format(time.RFC3339))

	var out []entity.Vaccination
	if err := c.gw.Get(ctx, "vaccinations/due", query, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Create records a vaccination.
func (c *Vaccinations) Create(ctx context.Context, req entity.CreateVaccinationRequest) (*entity.Vaccination, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Vaccination
	if err := c.gw.Post(ctx, "vaccinations", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes a vaccination.
func (c *Vaccinations) Update(ctx context.Context, id uuid.UUID, req entity.UpdateVaccinationRequest) (*entity.Vaccination, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Vaccination
	if err := c.gw.Put(ctx, "vaccinations/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes a vaccination.
func (c *Vaccinations) Delete(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "vaccinations/"+id.String())
}
