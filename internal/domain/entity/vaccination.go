package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vaccination records one administered vaccine dose for a pet.
type Vaccination struct {
	ID              uuid.UUID  `json:"id"`
	PetID           uuid.UUID  `json:"petId"`
	PetName         string     `json:"petName"`
	MedicalRecordID *uuid.UUID `json:"medicalRecordId"`
	VetID           uuid.UUID  `json:"vetId"`
	VetName         string     `json:"vetName"`
	VaccineName     string     `json:"vaccineName"`
	BatchNumber     string     `json:"batchNumber"`
	Manufacturer    string     `json:"manufacturer"`
	AdministeredAt  time.Time  `json:"administeredAt"`
	ValidUntil      *time.Time `json:"validUntil"`
	NextDueDate     *time.Time `json:"nextDueDate"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type CreateVaccinationRequest struct {
	PetID           uuid.UUID  `json:"petId" validate:"required"`
	MedicalRecordID *uuid.UUID `json:"medicalRecordId,omitempty"`
	VetID           uuid.UUID  `json:"vetId" validate:"required"`
	VaccineName     string     `json:"vaccineName" validate:"required"`
	BatchNumber     string     `json:"batchNumber,omitempty"`
	Manufacturer    string     `json:"manufacturer,omitempty"`
	AdministeredAt  time.Time  `json:"administeredAt" validate:"required"`
	ValidUntil      *time.Time `json:"validUntil,omitempty"`
	NextDueDate     *time.Time `json:"nextDueDate,omitempty"`
}

type UpdateVaccinationRequest struct {
	PetID           *uuid.UUID `json:"petId,omitempty"`
	MedicalRecordID *uuid.UUID `json:"medicalRecordId,omitempty"`
	VetID           *uuid.UUID `json:"vetId,omitempty"`
	VaccineName     *string    `json:"vaccineName,omitempty"`
	BatchNumber     *string    `json:"batchNumber,omitempty"`
	Manufacturer    *string    `json:"manufacturer,omitempty"`
	AdministeredAt  *time.Time `json:"administeredAt,omitempty"`
	ValidUntil      *time.Time `json:"validUntil,omitempty"`
	NextDueDate     *time.Time `json:"nextDueDate,omitempty"`
}
