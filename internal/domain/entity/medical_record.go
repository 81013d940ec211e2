package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord documents one examination of a pet.
type MedicalRecord struct {
	ID                  uuid.UUID  `json:"id"`
	AppointmentID       *uuid.UUID `json:"appointmentId"`
	PetID               uuid.UUID  `json:"petId"`
	PetName             string     `json:"petName"`
	VetID               uuid.UUID  `json:"vetId"`
	VetName             string     `json:"vetName"`
	Symptoms            string     `json:"symptoms"`
	Diagnosis           string     `json:"diagnosis"`
	ExaminationNotes    string     `json:"examinationNotes"`
	WeightKg            float64    `json:"weightKg"`
	TemperatureC        float64    `json:"temperatureC"`
	HeartRate           int        `json:"heartRate"`
	FollowUpRecommended bool       `json:"followUpRecommended"`
	FollowUpDate        *time.Time `json:"followUpDate"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

type CreateMedicalRecordRequest struct {
	AppointmentID       *uuid.UUID `json:"appointmentId,omitempty"`
	PetID               uuid.UUID  `json:"petId" validate:"required"`
	VetID               uuid.UUID  `json:"vetId" validate:"required"`
	Symptoms            string     `json:"symptoms,omitempty"`
	Diagnosis           string     `json:"diagnosis,omitempty"`
	ExaminationNotes    string     `json:"examinationNotes,omitempty"`
	WeightKg            *float64   `json:"weightKg,omitempty" validate:"omitempty,gt=0"`
	TemperatureC        *float64   `json:"temperatureC,omitempty"`
	HeartRate           *int       `json:"heartRate,omitempty" validate:"omitempty,gt=0"`
	FollowUpRecommended *bool      `json:"followUpRecommended,omitempty"`
	FollowUpDate        *time.Time `json:"followUpDate,omitempty"`
}

type UpdateMedicalRecordRequest struct {
	AppointmentID       *uuid.UUID `json:"appointmentId,omitempty"`
	PetID               *uuid.UUID `json:"petId,omitempty"`
	VetID               *uuid.UUID `json:"vetId,omitempty"`
	Symptoms            *string    `json:"symptoms,omitempty"`
	Diagnosis           *string    `json:"diagnosis,omitempty"`
	ExaminationNotes    *string    `json:"examinationNotes,omitempty"`
	WeightKg            *float64   `json:"weightKg,omitempty" validate:"omitempty,gt=0"`
	TemperatureC        *float64   `json:"temperatureC,omitempty"`
	HeartRate           *int       `json:"heartRate,omitempty" validate:"omitempty,gt=0"`
	FollowUpRecommended *bool      `json:"followUpRecommended,omitempty"`
	FollowUpDate        *time.Time `json:"followUpDate,omitempty"`
}

// Treatment is a service performed during an examination.
type Treatment struct {
	ID              uuid.UUID  `json:"id"`
	MedicalRecordID uuid.UUID  `json:"medicalRecordId"`
	VetID           uuid.UUID  `json:"vetId"`
	ServiceID       *uuid.UUID `json:"serviceId"`
	Name            string     `json:"name"`
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type CreateTreatmentRequest struct {
	MedicalRecordID uuid.UUID  `json:"medicalRecordId" validate:"required"`
	VetID           uuid.UUID  `json:"vetId" validate:"required"`
	ServiceID       *uuid.UUID `json:"serviceId,omitempty"`
	Name            string     `json:"name" validate:"required"`
	Notes           string     `json:"notes,omitempty"`
}

type UpdateTreatmentRequest struct {
	ServiceID *uuid.UUID `json:"serviceId,omitempty"`
	Name      *string    `json:"name,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

// Prescription is a medication course prescribed from an examination.
type Prescription struct {
	ID              uuid.UUID  `json:"id"`
	MedicalRecordID uuid.UUID  `json:"medicalRecordId"`
	PetID           uuid.UUID  `json:"petId"`
	PetName         string     `json:"petName"`
	VetID           uuid.UUID  `json:"vetId"`
	VetName         string     `json:"vetName"`
	MedicationName  string     `json:"medicationName"`
	Dosage          string     `json:"dosage"`
	Frequency       string     `json:"frequency"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	Instructions    string     `json:"instructions"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type CreatePrescriptionRequest struct {
	MedicalRecordID uuid.UUID  `json:"medicalRecordId" validate:"required"`
	VetID           uuid.UUID  `json:"vetId" validate:"required"`
	MedicationName  string     `json:"medicationName" validate:"required"`
	Dosage          string     `json:"dosage" validate:"required"`
	Frequency       string     `json:"frequency" validate:"required"`
	StartDate       time.Time  `json:"startDate" validate:"required"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Instructions    string     `json:"instructions,omitempty"`
}

type UpdatePrescriptionRequest struct {
	MedicationName *string    `json:"medicationName,omitempty"`
	Dosage         *string    `json:"dosage,omitempty"`
	Frequency      *string    `json:"frequency,omitempty"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	Instructions   *string    `json:"instructions,omitempty"`
}
