package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionPlan is the tier a tenant clinic subscribes to.
type SubscriptionPlan string

const (
	PlanBasic    SubscriptionPlan = "BASIC"
	PlanStandard SubscriptionPlan = "STANDARD"
	PlanPremium  SubscriptionPlan = "PREMIUM"
)

// Clinic is one tenant of the platform.
type Clinic struct {
	ID                    uuid.UUID        `json:"id"`
	Name                  string           `json:"name"`
	TaxID                 string           `json:"taxId"`
	Email                 string           `json:"email"`
	Phone                 string           `json:"phone"`
	Address               string           `json:"address"`
	City                  string           `json:"city"`
	Country               string           `json:"country"`
	LogoURL               string           `json:"logoUrl"`
	SubscriptionPlan      SubscriptionPlan `json:"subscriptionPlan"`
	SubscriptionExpiresAt *time.Time       `json:"subscriptionExpiresAt"`
	Active                bool             `json:"active"`
	Settings              string           `json:"settings"`
	CreatedAt             time.Time        `json:"createdAt"`
	UpdatedAt             time.Time        `json:"updatedAt"`
}

type CreateClinicRequest struct {
	Name                  string           `json:"name" validate:"required"`
	TaxID                 string           `json:"taxId,omitempty"`
	Email                 string           `json:"email,omitempty" validate:"omitempty,email"`
	Phone                 string           `json:"phone,omitempty"`
	Address               string           `json:"address,omitempty"`
	City                  string           `json:"city,omitempty"`
	Country               string           `json:"country,omitempty"`
	LogoURL               string           `json:"logoUrl,omitempty"`
	SubscriptionPlan      SubscriptionPlan `json:"subscriptionPlan,omitempty" validate:"omitempty,oneof=BASIC STANDARD PREMIUM"`
	SubscriptionExpiresAt *time.Time       `json:"subscriptionExpiresAt,omitempty"`
	Active                *bool            `json:"active,omitempty"`
	Settings              string           `json:"settings,omitempty"`
}

type UpdateClinicRequest struct {
	Name                  *string           `json:"name,omitempty"`
	TaxID                 *string           `json:"taxId,omitempty"`
	Email                 *string           `json:"email,omitempty" validate:"omitempty,email"`
	Phone                 *string           `json:"phone,omitempty"`
	Address               *string           `json:"address,omitempty"`
	City                  *string           `json:"city,omitempty"`
	Country               *string           `json:"country,omitempty"`
	LogoURL               *string           `json:"logoUrl,omitempty"`
	SubscriptionPlan      *SubscriptionPlan `json:"subscriptionPlan,omitempty" validate:"omitempty,oneof=BASIC STANDARD PREMIUM"`
	SubscriptionExpiresAt *time.Time        `json:"subscriptionExpiresAt,omitempty"`
	Active                *bool             `json:"active,omitempty"`
	Settings              *string           `json:"settings,omitempty"`
}

// ClinicLocation is a physical branch of a clinic.
type ClinicLocation struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	IsMain       bool      `json:"isMain"`
	Active       bool      `json:"active"`
	WorkingHours string    `json:"workingHours"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CreateClinicLocationRequest struct {
	Name         string `json:"name" validate:"required"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	IsMain       *bool  `json:"isMain,omitempty"`
	Active       *bool  `json:"active,omitempty"`
	WorkingHours string `json:"workingHours,omitempty"`
}

type UpdateClinicLocationRequest struct {
	Name         *string `json:"name,omitempty"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	IsMain       *bool   `json:"isMain,omitempty"`
	Active       *bool   `json:"active,omitempty"`
	WorkingHours *string `json:"workingHours,omitempty"`
}
