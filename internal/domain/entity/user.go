package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a staff account scoped to a single clinic. RoleName is denormalized
// by the backend so clients do not have to join against roles.
type User struct {
	ID             uuid.UUID `json:"id"`
	RoleID         uuid.UUID `json:"roleId"`
	RoleName       string    `json:"roleName"`
	ClinicID       uuid.UUID `json:"clinicId"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	LicenseNumber  string    `json:"licenseNumber"`
	Specialization string    `json:"specialization"`
	Active         bool      `json:"active"`
	LastLoginAt    time.Time `json:"lastLoginAt"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}

// Role pairs a name with a permission set. Permissions is a JSON-encoded
// list of capability tokens as stored by the backend.
type Role struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Permissions string    `json:"permissions"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateUserRequest struct {
	RoleID         uuid.UUID `json:"roleId" validate:"required"`
	FirstName      string    `json:"firstName" validate:"required"`
	LastName       string    `json:"lastName" validate:"required"`
	Email          string    `json:"email" validate:"required,email"`
	Password       string    `json:"password" validate:"required,min=8"`
	Phone          string    `json:"phone,omitempty"`
	LicenseNumber  string    `json:"licenseNumber,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	Active         *bool     `json:"active,omitempty"`
}

type UpdateUserRequest struct {
	RoleID         *uuid.UUID `json:"roleId,omitempty"`
	FirstName      *string    `json:"firstName,omitempty"`
	LastName       *string    `json:"lastName,omitempty"`
	Email          *string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone          *string    `json:"phone,omitempty"`
	LicenseNumber  *string    `json:"licenseNumber,omitempty"`
	Specialization *string    `json:"specialization,omitempty"`
	Active         *bool      `json:"active,omitempty"`
}

type CreateRoleRequest struct {
	Name        string `json:"name" validate:"required"`
	Permissions string `json:"permissions,omitempty"`
}

type UpdateRoleRequest struct {
	Name        *string `json:"name,omitempty"`
	Permissions *string `json:"permissions,omitempty"`
}
