package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus tracks an appointment through its lifecycle.
type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "SCHEDULED"
	AppointmentConfirmed  AppointmentStatus = "CONFIRMED"
	AppointmentInProgress AppointmentStatus = "IN_PROGRESS"
	AppointmentCompleted  AppointmentStatus = "COMPLETED"
	AppointmentCancelled  AppointmentStatus = "CANCELLED"
	AppointmentNoShow     AppointmentStatus = "NO_SHOW"
)

// AppointmentType classifies the visit.
type AppointmentType string

const (
	AppointmentCheckup     AppointmentType = "CHECKUP"
	AppointmentVaccination AppointmentType = "VACCINATION"
	AppointmentSurgery     AppointmentType = "SURGERY"
	AppointmentEmergency   AppointmentType = "EMERGENCY"
	AppointmentFollowUp    AppointmentType = "FOLLOW_UP"
	AppointmentGrooming    AppointmentType = "GROOMING"
)

// Appointment is a scheduled visit of a pet to a clinic location.
type Appointment struct {
	ID           uuid.UUID         `json:"id"`
	LocationID   uuid.UUID         `json:"locationId"`
	LocationName string            `json:"locationName"`
	PetID        uuid.UUID         `json:"petId"`
	PetName      string            `json:"petName"`
	OwnerID      uuid.UUID         `json:"ownerId"`
	OwnerName    string            `json:"ownerName"`
	VetID        uuid.UUID         `json:"vetId"`
	VetName      string            `json:"vetName"`
	StartTime    time.Time         `json:"startTime"`
	EndTime      time.Time         `json:"endTime"`
	Status       AppointmentStatus `json:"status"`
	Type         AppointmentType   `json:"type"`
	Reason       string            `json:"reason"`
	Notes        string            `json:"notes"`
	FollowUpTo   *uuid.UUID        `json:"followUpTo"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// Duration is the scheduled length of the visit.
func (a Appointment) Duration() time.Duration {
	return a.EndTime.Sub(a.StartTime)
}

type CreateAppointmentRequest struct {
	LocationID uuid.UUID         `json:"locationId" validate:"required"`
	PetID      uuid.UUID         `json:"petId" validate:"required"`
	OwnerID    uuid.UUID         `json:"ownerId" validate:"required"`
	VetID      uuid.UUID         `json:"vetId" validate:"required"`
	StartTime  time.Time         `json:"startTime" validate:"required"`
	EndTime    time.Time         `json:"endTime" validate:"required,gtfield=StartTime"`
	Status     AppointmentStatus `json:"status,omitempty"`
	Type       AppointmentType   `json:"type" validate:"required"`
	Reason     string            `json:"reason,omitempty"`
	Notes      string            `json:"notes,omitempty"`
	FollowUpTo *uuid.UUID        `json:"followUpTo,omitempty"`
}

type UpdateAppointmentRequest struct {
	LocationID *uuid.UUID         `json:"locationId,omitempty"`
	PetID      *uuid.UUID         `json:"petId,omitempty"`
	OwnerID    *uuid.UUID         `json:"ownerId,omitempty"`
	VetID      *uuid.UUID         `json:"vetId,omitempty"`
	StartTime  *time.Time         `json:"startTime,omitempty"`
	EndTime    *time.Time         `json:"endTime,omitempty"`
	Status     *AppointmentStatus `json:"status,omitempty"`
	Type       *AppointmentType   `json:"type,omitempty"`
	Reason     *string            `json:"reason,omitempty"`
	Notes      *string            `json:"notes,omitempty"`
	FollowUpTo *uuid.UUID         `json:"followUpTo,omitempty"`
}
