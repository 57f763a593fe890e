package tenant

import (
	"errors"
	"log/slog"
	"net/http"
)

// ErrorHandler handles errors that occur during tenant resolution.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Validator checks a resolved tenant identifier before it is stored in the scope.
type Validator func(id string) error

// Outcome describes how a request was scoped by the middleware.
type Outcome string

const (
	// OutcomeTenant means a tenant identifier was resolved and set.
	OutcomeTenant Outcome = "tenant"
	// OutcomeDefault means no identifier was found and the request fell back to the default database.
	OutcomeDefault Outcome = "default"
	// OutcomeRejected means resolution or validation failed and the request was rejected.
	OutcomeRejected Outcome = "rejected"
	// OutcomeSkipped means the path is excluded from tenant resolution.
	OutcomeSkipped Outcome = "skipped"
)

// config holds middleware configuration.
type config struct {
	errorHandler    ErrorHandler
	skipPaths       []string
	defaultFallback bool
	validator       Validator
	observer        func(Outcome)
	logger          *slog.Logger
}

// Option configures the middleware.
type Option func(*config)

// WithErrorHandler sets a custom error handler.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(c *config) {
		if handler != nil {
			c.errorHandler = handler
		}
	}
}

// WithSkipPaths sets paths that bypass tenant resolution entirely.
// Only exact matches are skipped; paths below an entry are resolved as usual.
func WithSkipPaths(paths ...string) Option {
	return func(c *config) {
		c.skipPaths = append(c.skipPaths, paths...)
	}
}

// WithDefaultFallback lets requests without a tenant identifier through with
// an empty scope instead of rejecting them with ErrMissingTenant.
func WithDefaultFallback(enabled bool) Option {
	return func(c *config) {
		c.defaultFallback = enabled
	}
}

// WithValidator rejects identifiers for which v returns an error.
func WithValidator(v Validator) Option {
	return func(c *config) {
		c.validator = v
	}
}

// WithObserver registers a callback invoked once per request with its outcome.
func WithObserver(fn func(Outcome)) Option {
	return func(c *config) {
		c.observer = fn
	}
}

// WithLogger sets a custom logger for the middleware.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrMissingTenant):
		http.Error(w, "Missing tenant identifier", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidIdentifier):
		http.Error(w, "Invalid tenant identifier", http.StatusBadRequest)
	case errors.Is(err, ErrNoTenantInContext):
		http.Error(w, "Tenant required", http.StatusBadRequest)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
