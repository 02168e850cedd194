package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
)

// ErrorResponse is the JSON envelope for every non-2xx answer.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the stable machine code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON serializes v with the given status. Encoding failures are
// ignored: headers are already written and there is nothing useful left to do.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError emits the error envelope.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// writeServiceError maps a service-layer error to its HTTP representation
// using the domain error taxonomy. Oracle-boundary failures (including
// incoherent routes) become 502: the fault is upstream, and the user gets a
// generic retry suggestion while the call site has already logged detail.
func writeServiceError(w http.ResponseWriter, err error) {
	code := domain.ErrorCode(err)
	switch code {
	case "validation_error":
		writeError(w, http.StatusUnprocessableEntity, code, unwrapMessage(err))
	case "not_found":
		writeError(w, http.StatusNotFound, code, "not found")
	case "configuration_error":
		writeError(w, http.StatusInternalServerError, code, "the solver is not configured; contact the operator")
	case "oracle_unavailable", "oracle_timeout", "oracle_empty_response",
		"oracle_malformed_response", "incoherent_route":
		writeError(w, http.StatusBadGateway, code, "failed to generate an itinerary; please try again")
	default:
		writeError(w, http.StatusInternalServerError, code, "internal error")
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "service.PreferenceService.Build: validation error: main
// destination is required" → "main destination is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, "validation error: "); i >= 0 {
		return msg[i+len("validation error: "):]
	}
	return msg
}
