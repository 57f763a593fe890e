package dbrouter

import "errors"

var (
	// ErrInvalidDatabaseName is returned when a tenant identifier would produce an illegal database name.
	ErrInvalidDatabaseName = errors.New("invalid database name")
)
