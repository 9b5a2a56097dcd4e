// Package validation turns request validation failures into a structured
// list of field errors answered with HTTP 422.
package validation

import (
	"strings"
)

// FieldError describes one invalid input. Location names where the value
// came from ("body", "query" or "path") followed by the field name.
type FieldError struct {
	Location []string `json:"location"`
	Message  string   `json:"message"`
	Type     string   `json:"type"`
}

// Errors is a non-empty list of field errors.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, strings.Join(fe.Location, ".")+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// New builds a single-entry Errors value.
func New(location []string, message, typ string) Errors {
	return Errors{{Location: location, Message: message, Type: typ}}
}

// Body, Query and Path are shorthands for New with the matching source.
func Body(field, message, typ string) Errors {
	return New([]string{"body", field}, message, typ)
}

func Query(field, message, typ string) Errors {
	return New([]string{"query", field}, message, typ)
}

func Path(field, message, typ string) Errors {
	return New([]string{"path", field}, message, typ)
}
