package tenant

import "errors"

var (
	// ErrMissingTenant is returned when a tenant-scoped request carries no tenant identifier.
	ErrMissingTenant = errors.New("tenant identifier is missing")

	// ErrInvalidIdentifier is returned when the identifier format is invalid.
	ErrInvalidIdentifier = errors.New("invalid tenant identifier")

	// ErrNoTenantInContext is returned when no tenant is found in context.
	ErrNoTenantInContext = errors.New("no tenant in context")

	// ErrInvalidPosition is returned by PathResolver when configured with a non-positive position.
	ErrInvalidPosition = errors.New("invalid path position")
)
