package dto

import "github.com/jhoicas/perfume-portal/pkg/validate"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Details []validate.FieldError `json:"details,omitempty"`
}

// DateLayout formato de fecha en requests y responses (YYYY-MM-DD).
const DateLayout = "2006-01-02"
