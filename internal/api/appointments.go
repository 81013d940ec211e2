package api

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/gateway"
)

// Appointments is the appointment resource client. The calendar views
// consume ByDateRange and ByVet; the list view pages through List.
type Appointments struct {
	gw *gateway.Gateway
}

// NewAppointments is the constructor for Appointments.
func NewAppointments(gw *gateway.Gateway) *Appointments {
	return &Appointments{gw: gw}
}

// List returns one page of appointments, newest first.
func (c *Appointments) List(ctx context.Context, page, size int) (*entity.Page[entity.Appointment], error) {
	query := gateway.PageQuery(page, size)
	query.Set("sort", "startTime,desc")

	var out entity.Page[entity.Appointment]
	if err := c.gw.Get(ctx, "appointments", query, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Get returns a single appointment.
func (c *Appointments) Get(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var out entity.Appointment
	if err := c.gw.Get(ctx, "appointments/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ByDateRange returns all appointments between from and to.
func (c *Appointments) ByDateRange(ctx context.Context, from, to time.Time) ([]entity.Appointment, error) {
	var out []entity.Appointment
	if err := c.gw.Get(ctx, "appointments/date-range", rangeQuery(from, to), &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ByVet returns one veterinarian's appointments between from and to.
func (c *Appointments) ByVet(ctx context.Context, vetID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	var out []entity.Appointment
	if err := c.gw.Get(ctx, "appointments/by-vet/"+vetID.String(), rangeQuery(from, to), &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ByPet returns a pet's appointment history.
func (c *Appointments) ByPet(ctx context.Context, petID uuid.UUID) ([]entity.Appointment, error) {
	var out []entity.Appointment
	if err := c.gw.Get(ctx, "appointments/by-pet/"+petID.String(), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Create schedules an appointment. End time must be after start time,
// which the request tags enforce before anything is sent.
func (c *Appointments) Create(ctx context.Context, req entity.CreateAppointmentRequest) (*entity.Appointment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Appointment
	if err := c.gw.Post(ctx, "appointments", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes an appointment.
func (c *Appointments) Update(ctx context.Context, id uuid.UUID, req entity.UpdateAppointmentRequest) (*entity.Appointment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Appointment
	if err := c.gw.Put(ctx, "appointments/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes an appointment.
func (c *Appointments) Delete(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "appointments/"+id.String())
}

func rangeQuery(from, to time.Time) url.Values {
	query := url.Values{}
	query.Set("from", from.Format(time.RFC3339))
	query.Set("to", to.Format(time.RFC3339))

	return query
}
