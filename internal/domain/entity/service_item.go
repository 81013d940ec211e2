package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceCategory groups billable clinic services.
type ServiceCategory string

const (
	ServiceExamination ServiceCategory = "EXAMINATION"
	ServiceSurgery     ServiceCategory = "SURGERY"
	ServiceVaccination ServiceCategory = "VACCINATION"
	ServiceLab         ServiceCategory = "LAB"
	ServiceDental      ServiceCategory = "DENTAL"
	ServiceGrooming    ServiceCategory = "GROOMING"
	ServiceOther       ServiceCategory = "OTHER"
)

// Service is a billable procedure from the clinic's price list. Its price
// and tax rate prefill invoice line items.
type Service struct {
	ID              uuid.UUID       `json:"id"`
	Category        ServiceCategory `json:"category"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           float64         `json:"price"`
	TaxRate         float64         `json:"taxRate"`
	DurationMinutes int             `json:"durationMinutes"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type CreateServiceRequest struct {
	Category        ServiceCategory `json:"category" validate:"required,oneof=EXAMINATION SURGERY VACCINATION LAB DENTAL GROOMING OTHER"`
	Name            string          `json:"name" validate:"required"`
	Description     string          `json:"description,omitempty"`
	Price           float64         `json:"price" validate:"gte=0"`
	TaxRate         *float64        `json:"taxRate,omitempty" validate:"omitempty,gte=0,lte=100"`
	DurationMinutes *int            `json:"durationMinutes,omitempty" validate:"omitempty,gt=0"`
	Active          *bool           `json:"active,omitempty"`
}

type UpdateServiceRequest struct {
	Category        *ServiceCategory `json:"category,omitempty" validate:"omitempty,oneof=EXAMINATION SURGERY VACCINATION LAB DENTAL GROOMING OTHER"`
	Name            *string          `json:"name,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Price           *float64         `json:"price,omitempty" validate:"omitempty,gte=0"`
	TaxRate         *float64         `json:"taxRate,omitempty" validate:"omitempty,gte=0,lte=100"`
	DurationMinutes *int             `json:"durationMinutes,omitempty" validate:"omitempty,gt=0"`
	Active          *bool            `json:"active,omitempty"`
}
