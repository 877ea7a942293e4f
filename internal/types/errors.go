package types

import (
	"fmt"
	"strings"
)

// MissingFieldsError indicates a request is missing fields required by its flow.
// Fields names the flow's full required set, not just the fields that failed.
type MissingFieldsError struct {
	Flow   string
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields for %s: %s", e.Flow, strings.Join(e.Fields, ", "))
}

// InvalidFieldError indicates a field is present but its value is unusable.
type InvalidFieldError struct {
	Field   string
	Message string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
