package entity

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus tracks an invoice from draft to settlement.
type InvoiceStatus string

const (
	InvoiceDraft         InvoiceStatus = "DRAFT"
	InvoiceIssued        InvoiceStatus = "ISSUED"
	InvoicePaid          InvoiceStatus = "PAID"
	InvoicePartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoiceOverdue       InvoiceStatus = "OVERDUE"
	InvoiceCancelled     InvoiceStatus = "CANCELLED"
	InvoiceRefunded      InvoiceStatus = "REFUNDED"
)

// Invoice is a bill addressed to an owner. The monetary summary fields are
// derived from line items; the billing package recomputes them client-side.
type Invoice struct {
	ID             uuid.UUID     `json:"id"`
	AppointmentID  *uuid.UUID    `json:"appointmentId"`
	OwnerID        uuid.UUID     `json:"ownerId"`
	OwnerName      string        `json:"ownerName"`
	LocationID     *uuid.UUID    `json:"locationId"`
	LocationName   string        `json:"locationName"`
	InvoiceNumber  string        `json:"invoiceNumber"`
	Status         InvoiceStatus `json:"status"`
	IssuedAt       *time.Time    `json:"issuedAt"`
	DueDate        *time.Time    `json:"dueDate"`
	Subtotal       float64       `json:"subtotal"`
	TaxAmount      float64       `json:"taxAmount"`
	DiscountAmount float64       `json:"discountAmount"`
	Total          float64       `json:"total"`
	Currency       string        `json:"currency"`
	Note           string        `json:"note"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// InvoiceItem is one billable row of an invoice. LineTotal is derived from
// the four input fields and never edited directly.
type InvoiceItem struct {
	ID              uuid.UUID  `json:"id"`
	InvoiceID       uuid.UUID  `json:"invoiceId"`
	ServiceID       *uuid.UUID `json:"serviceId"`
	ServiceName     string     `json:"serviceName"`
	Description     string     `json:"description"`
	Quantity        float64    `json:"quantity"`
	UnitPrice       float64    `json:"unitPrice"`
	TaxRate         float64    `json:"taxRate"`
	DiscountPercent float64    `json:"discountPercent"`
	LineTotal       float64    `json:"lineTotal"`
	SortOrder       int        `json:"sortOrder"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type CreateInvoiceRequest struct {
	AppointmentID  *uuid.UUID    `json:"appointmentId,omitempty"`
	OwnerID        uuid.UUID     `json:"ownerId" validate:"required"`
	LocationID     *uuid.UUID    `json:"locationId,omitempty"`
	Status         InvoiceStatus `json:"status,omitempty"`
	IssuedAt       *time.Time    `json:"issuedAt,omitempty"`
	DueDate        *time.Time    `json:"dueDate,omitempty"`
	Subtotal       float64       `json:"subtotal,omitempty"`
	TaxAmount      float64       `json:"taxAmount,omitempty"`
	DiscountAmount float64       `json:"discountAmount,omitempty"`
	Total          float64       `json:"total,omitempty"`
	Currency       string        `json:"currency,omitempty"`
	Note           string        `json:"note,omitempty"`
}

type UpdateInvoiceRequest struct {
	AppointmentID  *uuid.UUID     `json:"appointmentId,omitempty"`
	OwnerID        *uuid.UUID     `json:"ownerId,omitempty"`
	LocationID     *uuid.UUID     `json:"locationId,omitempty"`
	Status         *InvoiceStatus `json:"status,omitempty"`
	IssuedAt       *time.Time     `json:"issuedAt,omitempty"`
	DueDate        *time.Time     `json:"dueDate,omitempty"`
	Subtotal       *float64       `json:"subtotal,omitempty"`
	TaxAmount      *float64       `json:"taxAmount,omitempty"`
	DiscountAmount *float64       `json:"discountAmount,omitempty"`
	Total          *float64       `json:"total,omitempty"`
	Currency       *string        `json:"currency,omitempty"`
	Note           *string        `json:"note,omitempty"`
}

// CreateInvoiceItemRequest carries the client-computed LineTotal alongside
// the inputs; the backend may accept or recompute it.
type CreateInvoiceItemRequest struct {
	InvoiceID       uuid.UUID  `json:"invoiceId" validate:"required"`
	ServiceID       *uuid.UUID `json:"serviceId,omitempty"`
	Description     string     `json:"description" validate:"required"`
	Quantity        float64    `json:"quantity" validate:"required,gt=0"`
	UnitPrice       float64    `json:"unitPrice" validate:"gte=0"`
	TaxRate         float64    `json:"taxRate" validate:"gte=0,lte=100"`
	DiscountPercent float64    `json:"discountPercent" validate:"gte=0,lte=100"`
	LineTotal       float64    `json:"lineTotal"`
	SortOrder       int        `json:"sortOrder,omitempty"`
}

type UpdateInvoiceItemRequest struct {
	ServiceID       *uuid.UUID `json:"serviceId,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Quantity        *float64   `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	UnitPrice       *float64   `json:"unitPrice,omitempty" validate:"omitempty,gte=0"`
	TaxRate         *float64   `json:"taxRate,omitempty" validate:"omitempty,gte=0,lte=100"`
	DiscountPercent *float64   `json:"discountPercent,omitempty" validate:"omitempty,gte=0,lte=100"`
	LineTotal       *float64   `json:"lineTotal,omitempty"`
	SortOrder       *int       `json:"sortOrder,omitempty"`
}
