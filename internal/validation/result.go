// Package validation checks request payloads before they reach a handler.
package validation

import (
	"strings"

	"github.com/teepha/More-Recipes/internal/models"
)

// Result is the outcome of validating one payload. A zero Result is valid.
type Result struct {
	Code    string
	Message string
	Errors  map[string]string
}

// IsValid reports whether the payload passed every check.
func (r Result) IsValid() bool {
	return r.Message == "" && len(r.Errors) == 0
}

// Err converts a failed Result into an *models.AppError, or nil when valid.
func (r Result) Err() error {
	if r.IsValid() {
		return nil
	}
	if len(r.Errors) > 0 {
		return models.NewFieldErrors(r.Errors)
	}
	return &models.AppError{Code: r.Code, Message: r.Message}
}

func notDefined(message string) Result {
	return Result{Code: models.CodeFieldsNotDefined, Message: message}
}

// fieldErrors collects the first failure per field.
type fieldErrors map[string]string

func (f fieldErrors) add(field, message string) {
	if _, ok := f[field]; !ok {
		f[field] = message
	}
}

func (f fieldErrors) result() Result {
	if len(f) == 0 {
		return Result{}
	}
	return Result{Code: models.CodeValidation, Errors: f}
}

func anyUndefined(values ...*string) bool {
	for _, v := range values {
		if v == nil {
			return true
		}
	}
	return false
}

func blank(v *string) bool {
	return v == nil || strings.TrimSpace(*v) == ""
}

// Trimmed returns the trimmed value of an optional field, or "" when absent.
func Trimmed(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}
