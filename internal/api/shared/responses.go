package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SvenFlower/ai-flash-cards/internal/redact"
)

// ErrorResponse defines the standard error response structure. Code is a
// machine-readable identifier for the failure class; Fields carries
// per-field violation codes for validation failures.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Fields  map[string][]string `json:"fields,omitempty"`
	TraceID string              `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status,
// machine code, and safe message. The TraceID is taken from the request
// context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   message,
		Code:    code,
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondWithFieldErrors writes a validation error response carrying the
// per-field violation codes.
func RespondWithFieldErrors(w http.ResponseWriter, r *http.Request, code, message string, fields map[string][]string) {
	RespondWithJSON(w, r, http.StatusBadRequest, ErrorResponse{
		Error:   message,
		Code:    code,
		Fields:  fields,
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondWithErrorAndLog writes a sanitized JSON error response and logs
// the underlying error server-side. The raw error never reaches the
// client; its redacted text goes to the logs only. 5xx responses log at
// ERROR level, everything else at DEBUG.
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, status int, code, userMessage string, err error) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("error_code", code),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   userMessage,
		Code:    code,
		TraceID: traceID,
	})
}
