package handlers

import "github.com/kaard-farm/farm-api/internal/models"

type ErrorResponse struct {
	Error  string             `json:"error"`
	Fields models.FieldErrors `json:"fields,omitempty"`
	Path   string             `json:"path,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
