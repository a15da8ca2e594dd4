package dto

import "github.com/jvictorino/briefly/pkg/fault"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ValidationErrorResponse carries every failed field of a rejected response
// payload; validation never short-circuits, so Fields is complete.
type ValidationErrorResponse struct {
	Message string             `json:"message"`
	Fields  []fault.FieldError `json:"fields"`
}
