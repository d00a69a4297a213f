package booking

import (
	"errors"
	"strings"
)

// ErrBadDatetime marks preferred_datetime text that is not ISO 8601.
// It is reported separately from schema validation failures.
var ErrBadDatetime = errors.New("invalid preferred_datetime format")

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field that violated a constraint,
// not just the first one.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
