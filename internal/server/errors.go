package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/marketops/content-engine/internal/types"
)

// Fallback messages shown to clients when a flow fails for a reason they
// cannot correct.
const (
	contentFailureMessage = "Failed to create content"
	postFailureMessage    = "Failed to schedule social post"
	emailFailureMessage   = "Email function failed"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var missing *types.MissingFieldsError
	var invalid *types.InvalidFieldError
	switch {
	case errors.As(err, &missing), errors.As(err, &invalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage maps an error to the message reported to API clients.
// Validation errors are reported verbatim; everything else gets the flow's
// fallback message.
func clientMessage(err error, fallback string) string {
	var missing *types.MissingFieldsError
	if errors.As(err, &missing) {
		return "Missing required fields: " + strings.Join(missing.Fields, ", ")
	}
	var invalid *types.InvalidFieldError
	if errors.As(err, &invalid) {
		return fmt.Sprintf("Invalid %s: %s", invalid.Field, invalid.Message)
	}
	return fallback
}

// flowError writes the error response for a failed flow. Client errors carry a
// single message; server errors carry the fallback message plus detail.
func (s *Server) flowError(w http.ResponseWriter, err error, fallback string) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.jsonResponse(w, status, map[string]string{
			"error":   fallback,
			"details": err.Error(),
		})
		return
	}
	s.errorResponse(w, status, clientMessage(err, fallback))
}
