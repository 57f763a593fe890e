package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/orgdb/internal/users"
	"github.com/dmitrymomot/orgdb/pkg/logger"
	"github.com/dmitrymomot/orgdb/pkg/orgid"
	"github.com/dmitrymomot/orgdb/pkg/tenant"
)

var (
	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")
	// ErrNotFound is reported for requests that match no route.
	ErrNotFound = errors.New("resource not found")
)

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error ErrorDetail `json:"error"`
}

type errorInfo struct {
	status  int
	code    string
	message string
}

// classifyError maps domain errors to HTTP statuses. Unknown errors are
// reported as 500 without leaking their text.
func classifyError(err error) errorInfo {
	switch {
	case errors.Is(err, tenant.ErrMissingTenant), errors.Is(err, tenant.ErrNoTenantInContext):
		return errorInfo{http.StatusBadRequest, "missing_tenant", "tenant identifier is required in /api/{tenantId}/..."}
	case errors.Is(err, tenant.ErrInvalidIdentifier):
		return errorInfo{http.StatusBadRequest, "invalid_tenant", "tenant identifier cannot name a database"}
	case errors.Is(err, ErrInvalidJSON):
		return errorInfo{http.StatusBadRequest, "invalid_json", ErrInvalidJSON.Error()}
	case errors.Is(err, users.ErrInvalidID):
		return errorInfo{http.StatusBadRequest, "invalid_id", "id must be a 24 character hex string"}
	case errors.Is(err, ErrNotFound):
		return errorInfo{http.StatusNotFound, "not_found", ErrNotFound.Error()}
	case errors.Is(err, orgid.ErrEntropy):
		return errorInfo{http.StatusInternalServerError, "id_generation_failed", "could not generate identifier"}
	case errors.Is(err, users.ErrCreateUser), errors.Is(err, users.ErrListUsers):
		return errorInfo{http.StatusInternalServerError, "storage_error", "storage operation failed"}
	default:
		return errorInfo{http.StatusInternalServerError, "internal_error", "internal server error"}
	}
}

// errorWriter renders errors as JSON and logs them at a level matching the status.
type errorWriter struct {
	log *slog.Logger
}

func (e errorWriter) write(w http.ResponseWriter, r *http.Request, err error) {
	info := classifyError(err)

	level := slog.LevelWarn
	if info.status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	e.log.Log(r.Context(), level, "request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", info.status),
		logger.Error(err),
	)

	writeJSON(w, info.status, errorResponse{Error: ErrorDetail{Code: info.code, Message: info.message}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
