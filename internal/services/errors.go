package services

import (
	"errors"

	"github.com/kaard-farm/farm-api/internal/models"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCredentials = errors.New("username and password required")
)

// ValidationError carries the per-field failures from a rejected candidate.
type ValidationError struct {
	Fields models.FieldErrors
}

func (e *ValidationError) Error() string {
	return e.Fields.Error()
}

func invalidBody(err error) *ValidationError {
	return &ValidationError{Fields: models.FieldErrors{
		{Field: "body", Message: "invalid request body: " + err.Error()},
	}}
}
