package models

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes understood by StatusFor.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeFieldsNotDefined = "FIELDS_NOT_DEFINED"
	CodeInvalidRecipeID  = "INVALID_RECIPE_ID"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeInternal         = "INTERNAL_ERROR"
)

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewFieldErrors reports one message per offending field.
func NewFieldErrors(fields map[string]string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: "Validation failed",
		Fields:  fields,
	}
}

// NewNotDefinedError reports a payload missing keys it must carry.
func NewNotDefinedError(message string) *AppError {
	return &AppError{
		Code:    CodeFieldsNotDefined,
		Message: message,
	}
}

// NewInvalidRecipeIDError is returned for malformed or unknown recipe ids.
func NewInvalidRecipeIDError() *AppError {
	return &AppError{
		Code:    CodeInvalidRecipeID,
		Message: "Recipe ID parameter does not exist",
	}
}

func NewConflictError(message string, fields map[string]string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
		Fields:  fields,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

// NewInvalidCredentialsError never reveals which credential was wrong.
func NewInvalidCredentialsError() *AppError {
	const msg = "Invalid username or password"
	return &AppError{
		Code:    CodeUnauthorized,
		Message: msg,
		Fields:  map[string]string{"form": msg},
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// HasCode reports whether err is an *AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// StatusFor maps an error to the HTTP status it is reported with.
// Errors that are not *AppError are treated as internal failures.
func StatusFor(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeValidation, CodeInvalidRecipeID:
		return http.StatusBadRequest
	case CodeFieldsNotDefined:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
