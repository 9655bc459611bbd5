// Package shared translates typed engine failures into HTTP responses. The
// mapping is one fixed table: the engine's error code picks the status, the
// sentinel's message is the user-facing description. The relay never retries
// a rejected transition; every rejection is caller-correctable.
package shared

import (
	"errors"
	"net/http"

	jsonResponse "academy/internal/transport/http/json"
	dErrors "academy/pkg/domain-errors"
)

// ErrorResponse is the JSON error envelope every endpoint returns on failure.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// WriteError writes the HTTP translation of a domain error. Anything that is
// not a typed domain error is an internal fault and is not echoed to the
// caller.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		resp := ErrorResponse{Error: string(domainErr.Code)}
		if domainErr.Code != dErrors.CodeInternal {
			resp.Description = domainErr.Message
		}
		jsonResponse.WriteJSON(w, CodeToHTTPStatus(domainErr.Code), resp)
		return
	}

	jsonResponse.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: string(dErrors.CodeInternal),
	})
}

// CodeToHTTPStatus translates domain error codes to HTTP status codes.
func CodeToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeBadRequest, dErrors.CodeValidation:
		return http.StatusBadRequest
	case dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodePolicy:
		return http.StatusPreconditionFailed
	case dErrors.CodeOverflow:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
