package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rentdesk/rentdesk-core/internal/auth"
	"github.com/rentdesk/rentdesk-core/internal/complaint"
)

// Error represents a structured error response.
type Error struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Common error codes.
const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeNotFound     = "not_found"
	ErrCodeUnauthorized = "unauthorised"
	ErrCodeForbidden    = "forbidden"
	ErrCodeInternal     = "internal_error"
	ErrCodeRateLimited  = "rate_limited"
)

// writeJSON writes a JSON response with the given status code and payload.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		//nolint:errcheck // best-effort write; connection may be closed
		json.NewEncoder(w).Encode(v)
	}
}

// writeError writes a structured error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, Error{
		Status:  status,
		Code:    code,
		Message: message,
	})
}

// writeBadRequest writes a 400 error response.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, ErrCodeBadRequest, message)
}

// writeNotFound writes a 404 error response.
func writeNotFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, ErrCodeNotFound, message)
}

// writeUnauthorized writes a 401 error response.
func writeUnauthorized(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

// writeForbidden writes a 403 error response.
func writeForbidden(w http.ResponseWriter, message string) {
	writeError(w, http.StatusForbidden, ErrCodeForbidden, message)
}

// writeInternalError writes a 500 error response.
func writeInternalError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusInternalServerError, ErrCodeInternal, message)
}

// writeDomainError maps a domain sentinel to its HTTP response.
//
// Validation failures are 400, authentication 401, ownership/role 403,
// missing resources 404. Anything unrecognised is a store or internal
// failure and surfaces as a generic 500 — no internal detail reaches the
// client. Returns false if the error was nil.
func writeDomainError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, auth.ErrMissingFields),
		errors.Is(err, auth.ErrEmailExists),
		errors.Is(err, auth.ErrInvalidRole),
		errors.Is(err, auth.ErrMissingLandlordCode),
		errors.Is(err, auth.ErrInvalidLandlordCode),
		errors.Is(err, auth.ErrUserNotFound),
		errors.Is(err, auth.ErrInvalidPassword),
		errors.Is(err, auth.ErrIncorrectPassword),
		errors.Is(err, complaint.ErrMissingFields),
		errors.Is(err, complaint.ErrNoLandlord),
		errors.Is(err, complaint.ErrInvalidStatus):
		writeBadRequest(w, err.Error())

	case errors.Is(err, auth.ErrUnauthenticated):
		writeUnauthorized(w, "invalid or missing token")

	case errors.Is(err, complaint.ErrForbidden):
		writeForbidden(w, err.Error())

	case errors.Is(err, complaint.ErrNotFound):
		writeNotFound(w, err.Error())

	default:
		writeInternalError(w, "internal server error")
	}

	return true
}
