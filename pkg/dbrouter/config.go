package dbrouter

// Config holds environment-driven routing settings.
type Config struct {
	DefaultDatabase string `env:"MONGODB_DEFAULT_DATABASE" envDefault:"default_db"` // DefaultDatabase is used when the request has no tenant.
	TenantPrefix    string `env:"MONGODB_TENANT_PREFIX" envDefault:"org_"`          // TenantPrefix is prepended to the tenant identifier to form the database name.
}
