package api

import (
	"context"
	"io"
	"mime/multipart"
	"net/url"

	"github.com/google/uuid"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/errors"
	"vetadmin/internal/gateway"
)

// LabReports is the lab-report resource client. Besides the usual CRUD
// it manages the report's PDF attachment and the server-side PDF
// parser that pre-fills result fields.
type LabReports struct {
	gw *gateway.Gateway
}

// NewLabReports is the constructor for LabReports.
func NewLabReports(gw *gateway.Gateway) *LabReports {
	return &LabReports{gw: gw}
}

// List returns one page of lab reports, most recently requested first.
func (c *LabReports) List(ctx context.Context, page, size int) (*entity.Page[entity.LabReport], error) {
	query := gateway.PageQuery(page, size)
	query.Set("sort", "requestedAt,desc")

	var out entity.Page[entity.LabReport]
	if err := c.gw.Get(ctx, "lab-reports", query, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Get returns a single lab report.
func (c *LabReports) Get(ctx context.Context, id uuid.UUID) (*entity.LabReport, error) {
	var out entity.LabReport
	if err := c.gw.Get(ctx, "lab-reports/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ByPet returns a pet's lab reports.
func (c *LabReports) ByPet(ctx context.Context, petID uuid.UUID) ([]entity.LabReport, error) {
	var out []entity.LabReport
	if err := c.gw.Get(ctx, "lab-reports/by-pet/"+petID.String(), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ByStatus returns the lab reports in one workflow state.
func (c *LabReports) ByStatus(ctx context.Context, status entity.LabReportStatus) ([]entity.LabReport, error) {
	query := url.Values{}
	query.Set("status", string(status))

	var out []entity.LabReport
	if err := c.gw.Get(ctx, "lab-reports/by-status", query, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ByVet returns the lab reports a veterinarian has requested.
func (c *LabReports) ByVet(ctx context.Context, vetID uuid.UUID) ([]entity.LabReport, error) {
	var out []entity.LabReport
	if err := c.gw.Get(ctx, "lab-reports/by-vet/"+vetID.String(), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ByMedicalRecord returns the lab reports attached to one medical record.
func (c *LabReports) ByMedicalRecord(ctx context.Context, medicalRecordID uuid.UUID) ([]entity.LabReport, error) {
	var out []entity.LabReport
	if err := c.gw.Get(ctx, "lab-reports/by-medical-record/"+medicalRecordID.String(), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Create requests a lab report.
func (c *LabReports) Create(ctx context.Context, req entity.CreateLabReportRequest) (*entity.LabReport, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.LabReport
	if err := c.gw.Post(ctx, "lab-reports", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes a lab report.
func (c *LabReports) Update(ctx context.Context, id uuid.UUID, req entity.UpdateLabReportRequest) (*entity.LabReport, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.LabReport
	if err := c.gw.Put(ctx, "lab-reports/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes a lab report.
func (c *LabReports) Delete(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "lab-reports/"+id.String())
}

// UploadFile attaches a result PDF to a lab report.
func (c *LabReports) UploadFile(ctx context.Context, id uuid.UUID, filename string, file io.Reader) (*entity.LabReport, error) {
	var out entity.LabReport
	err := c.gw.PostMultipart(ctx, "lab-reports/"+id.String()+"/upload", fileForm(filename, file), &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// DownloadFile fetches the attached result PDF. It returns the raw
// bytes and the content type reported by the server.
func (c *LabReports) DownloadFile(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	return c.gw.Download(ctx, "lab-reports/"+id.String()+"/download")
}

// DeleteFile detaches the result PDF without deleting the report.
func (c *LabReports) DeleteFile(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "lab-reports/"+id.String()+"/file")
}

// ParsePDF sends a result PDF through the server-side parser and
// returns the extracted values without creating a report.
func (c *LabReports) ParsePDF(ctx context.Context, filename string, file io.Reader) (*entity.PDFParseResult, error) {
	var out entity.PDFParseResult
	err := c.gw.PostMultipart(ctx, "lab-reports/parse-pdf", fileForm(filename, file), &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func fileForm(filename string, file io.Reader) func(*multipart.Writer) error {
	return func(w *multipart.Writer) error {
		part, err := w.CreateFormFile("file", filename)
		if err != nil {
			return errors.Wrap(err, "create form file")
		}
		if _, err := io.Copy(part, file); err != nil {
			return errors.Wrap(err, "copy file into form")
		}

		return nil
	}
}
