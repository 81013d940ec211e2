package entity

import (
	"time"

	"github.com/google/uuid"
)

// Owner is a pet owner (the clinic's customer).
type Owner struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	PersonalID string    `json:"personalId"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CreateOwnerRequest struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PersonalID string `json:"personalId,omitempty"`
	Note       string `json:"note,omitempty"`
}

type UpdateOwnerRequest struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	PersonalID *string `json:"personalId,omitempty"`
	Note       *string `json:"note,omitempty"`
}
