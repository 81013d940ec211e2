package entity

import (
	"time"

	"github.com/google/uuid"
)

// LabReportStatus tracks a laboratory analysis request.
type LabReportStatus string

const (
	LabReportPending   LabReportStatus = "PENDING"
	LabReportCompleted LabReportStatus = "COMPLETED"
	LabReportCancelled LabReportStatus = "CANCELLED"
)

// LabReport is a laboratory analysis for a pet, optionally carrying an
// attached result file stored server-side.
type LabReport struct {
	ID              uuid.UUID       `json:"id"`
	ReportNumber    string          `json:"reportNumber"`
	AnalysisType    string          `json:"analysisType"`
	PetID           uuid.UUID       `json:"petId"`
	PetName         string          `json:"petName"`
	OwnerName       string          `json:"ownerName"`
	VetID           uuid.UUID       `json:"vetId"`
	VetName         string          `json:"vetName"`
	MedicalRecordID *uuid.UUID      `json:"medicalRecordId"`
	LaboratoryName  string          `json:"laboratoryName"`
	Status          LabReportStatus `json:"status"`
	RequestedAt     time.Time       `json:"requestedAt"`
	CompletedAt     *time.Time      `json:"completedAt"`
	ResultSummary   string          `json:"resultSummary"`
	IsAbnormal      bool            `json:"isAbnormal"`
	Notes           string          `json:"notes"`
	FileName        string          `json:"fileName"`
	MimeType        string          `json:"mimeType"`
	FileSizeBytes   int64           `json:"fileSizeBytes"`
	StoragePath     string          `json:"storagePath"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// HasFile reports whether a result file is attached.
func (r LabReport) HasFile() bool {
	return r.FileName != ""
}

type CreateLabReportRequest struct {
	ReportNumber    string          `json:"reportNumber" validate:"required"`
	AnalysisType    string          `json:"analysisType" validate:"required"`
	PetID           uuid.UUID       `json:"petId" validate:"required"`
	VetID           uuid.UUID       `json:"vetId" validate:"required"`
	MedicalRecordID *uuid.UUID      `json:"medicalRecordId,omitempty"`
	LaboratoryName  string          `json:"laboratoryName,omitempty"`
	Status          LabReportStatus `json:"status,omitempty" validate:"omitempty,oneof=PENDING COMPLETED CANCELLED"`
	RequestedAt     time.Time       `json:"requestedAt" validate:"required"`
	CompletedAt     *time.Time      `json:"completedAt,omitempty"`
	ResultSummary   string          `json:"resultSummary,omitempty"`
	IsAbnormal      *bool           `json:"isAbnormal,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

type UpdateLabReportRequest struct {
	ReportNumber    *string          `json:"reportNumber,omitempty"`
	AnalysisType    *string          `json:"analysisType,omitempty"`
	PetID           *uuid.UUID       `json:"petId,omitempty"`
	VetID           *uuid.UUID       `json:"vetId,omitempty"`
	MedicalRecordID *uuid.UUID       `json:"medicalRecordId,omitempty"`
	LaboratoryName  *string          `json:"laboratoryName,omitempty"`
	Status          *LabReportStatus `json:"status,omitempty" validate:"omitempty,oneof=PENDING COMPLETED CANCELLED"`
	RequestedAt     *time.Time       `json:"requestedAt,omitempty"`
	CompletedAt     *time.Time       `json:"completedAt,omitempty"`
	ResultSummary   *string          `json:"resultSummary,omitempty"`
	IsAbnormal      *bool            `json:"isAbnormal,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

// PDFParseResult is the backend's best-effort field extraction from an
// uploaded laboratory PDF, used to prefill a lab report form.
type PDFParseResult struct {
	ReportNumber   string     `json:"reportNumber"`
	PetName        string     `json:"petName"`
	PetID          *uuid.UUID `json:"petId"`
	VetName        string     `json:"vetName"`
	VetID          *uuid.UUID `json:"vetId"`
	LaboratoryName string     `json:"laboratoryName"`
	AnalysisType   string     `json:"analysisType"`
	RequestedAt    *time.Time `json:"requestedAt"`
	CompletedAt    *time.Time `json:"completedAt"`
}
