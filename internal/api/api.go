// Package api contains the typed resource clients of the clinic backend,
// one per REST resource. Clients validate request payloads before sending
// so malformed input never leaves the process, and share the gateway's
// session-aware request pipeline.
package api

import (
	"github.com/go-playground/validator/v10"

	domainerrors "vetadmin/internal/domain/errors"
)

var validate = validator.New()

// validateRequest runs struct-tag validation and maps failures onto the
// client error taxonomy so callers can surface them next to form fields.
func validateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// clampPercent forces a percentage into [0, 100]. Rate fields are clamped
// at this input layer; the billing engine assumes already-valid ranges.
func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}

	return v
}
