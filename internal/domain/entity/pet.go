package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender of a pet as recorded by the clinic.
type Gender string

const (
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderUnknown Gender = "UNKNOWN"
)

// Pet is an animal registered with the clinic. Owner, species and breed
// names are denormalized by the backend for list rendering.
type Pet struct {
	ID              uuid.UUID  `json:"id"`
	OwnerID         uuid.UUID  `json:"ownerId"`
	OwnerName       string     `json:"ownerName"`
	SpeciesID       *uuid.UUID `json:"speciesId"`
	SpeciesName     string     `json:"speciesName"`
	BreedID         *uuid.UUID `json:"breedId"`
	BreedName       string     `json:"breedName"`
	Name            string     `json:"name"`
	DateOfBirth     *time.Time `json:"dateOfBirth"`
	Gender          Gender     `json:"gender"`
	Color           string     `json:"color"`
	WeightKg        float64    `json:"weightKg"`
	MicrochipNumber string     `json:"microchipNumber"`
	IsNeutered      bool       `json:"isNeutered"`
	IsDeceased      bool       `json:"isDeceased"`
	DeceasedAt      *time.Time `json:"deceasedAt"`
	Allergies       string     `json:"allergies"`
	Note            string     `json:"note"`
	PhotoURL        string     `json:"photoUrl"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type CreatePetRequest struct {
	OwnerID         uuid.UUID  `json:"ownerId" validate:"required"`
	SpeciesID       *uuid.UUID `json:"speciesId,omitempty"`
	BreedID         *uuid.UUID `json:"breedId,omitempty"`
	Name            string     `json:"name" validate:"required"`
	DateOfBirth     *time.Time `json:"dateOfBirth,omitempty"`
	Gender          Gender     `json:"gender,omitempty" validate:"omitempty,oneof=MALE FEMALE UNKNOWN"`
	Color           string     `json:"color,omitempty"`
	WeightKg        *float64   `json:"weightKg,omitempty" validate:"omitempty,gt=0"`
	MicrochipNumber string     `json:"microchipNumber,omitempty"`
	IsNeutered      *bool      `json:"isNeutered,omitempty"`
	IsDeceased      *bool      `json:"isDeceased,omitempty"`
	DeceasedAt      *time.Time `json:"deceasedAt,omitempty"`
	Allergies       string     `json:"allergies,omitempty"`
	Note            string     `json:"note,omitempty"`
	PhotoURL        string     `json:"photoUrl,omitempty"`
}

type UpdatePetRequest struct {
	OwnerID         *uuid.UUID `json:"ownerId,omitempty"`
	SpeciesID       *uuid.UUID `json:"speciesId,omitempty"`
	BreedID         *uuid.UUID `json:"breedId,omitempty"`
	Name            *string    `json:"name,omitempty"`
	DateOfBirth     *time.Time `json:"dateOfBirth,omitempty"`
	Gender          *Gender    `json:"gender,omitempty" validate:"omitempty,oneof=MALE FEMALE UNKNOWN"`
	Color           *string    `json:"color,omitempty"`
	WeightKg        *float64   `json:"weightKg,omitempty" validate:"omitempty,gt=0"`
	MicrochipNumber *string    `json:"microchipNumber,omitempty"`
	IsNeutered      *bool      `json:"isNeutered,omitempty"`
	IsDeceased      *bool      `json:"isDeceased,omitempty"`
	DeceasedAt      *time.Time `json:"deceasedAt,omitempty"`
	Allergies       *string    `json:"allergies,omitempty"`
	Note            *string    `json:"note,omitempty"`
	PhotoURL        *string    `json:"photoUrl,omitempty"`
}

// Species is a clinic-level animal species catalog entry.
type Species struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateSpeciesRequest struct {
	Name   string `json:"name" validate:"required"`
	Active *bool  `json:"active,omitempty"`
}

type UpdateSpeciesRequest struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// Breed belongs to exactly one species.
type Breed struct {
	ID          uuid.UUID `json:"id"`
	SpeciesID   uuid.UUID `json:"speciesId"`
	SpeciesName string    `json:"speciesName"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateBreedRequest struct {
	SpeciesID uuid.UUID `json:"speciesId" validate:"required"`
	Name      string    `json:"name" validate:"required"`
}

type UpdateBreedRequest struct {
	SpeciesID *uuid.UUID `json:"speciesId,omitempty"`
	Name      *string    `json:"name,omitempty"`
}
