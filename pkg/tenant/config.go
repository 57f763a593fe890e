package tenant

// Config holds environment-driven settings for the tenant middleware.
type Config struct {
	PathPosition    int      `env:"TENANT_PATH_POSITION" envDefault:"2"`                                  // PathPosition is the 1-based path segment holding the tenant identifier.
	DefaultFallback bool     `env:"TENANT_DEFAULT_FALLBACK" envDefault:"false"`                           // DefaultFallback routes requests without a tenant to the default database instead of rejecting them.
	ValidateIDs     bool     `env:"TENANT_VALIDATE_IDS" envDefault:"false"`                               // ValidateIDs rejects identifiers that cannot form a legal database name.
	SkipPaths       []string `env:"TENANT_SKIP_PATHS" envSeparator:"," envDefault:"/api/generate-org-id"` // SkipPaths bypass tenant resolution.
}
