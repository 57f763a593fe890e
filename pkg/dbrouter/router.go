package dbrouter

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/orgdb/pkg/tenant"
)

const (
	// DefaultDatabase is the database used when no tenant is in context.
	DefaultDatabase = "default_db"
	// DefaultPrefix is prepended to tenant identifiers.
	DefaultPrefix = "org_"

	// MongoDB refuses database names of 64 bytes or more.
	maxNameLength = 63
	// Characters MongoDB forbids in database names on any platform.
	forbiddenChars = "/\\. \"$*<>:|?\x00"
)

// DatabaseFunc returns the database for the request carried by ctx.
type DatabaseFunc func(ctx context.Context) *mongo.Database

// NameFunc returns the database name for the request carried by ctx.
type NameFunc func(ctx context.Context) string

// Router maps the tenant in context to a database of the shared client.
// The zero value is not usable; construct with New.
type Router struct {
	client      *mongo.Client
	defaultName string
	prefix      string
}

// Option configures a Router.
type Option func(*Router)

// WithDefaultDatabase overrides the fallback database name. Empty names are ignored.
func WithDefaultDatabase(name string) Option {
	return func(r *Router) {
		if name != "" {
			r.defaultName = name
		}
	}
}

// WithPrefix overrides the tenant database prefix.
func WithPrefix(prefix string) Option {
	return func(r *Router) {
		r.prefix = prefix
	}
}

// New returns a Router over client. client may be nil when only Name is used.
func New(client *mongo.Client, opts ...Option) *Router {
	r := &Router{
		client:      client,
		defaultName: DefaultDatabase,
		prefix:      DefaultPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFromConfig creates a Router from the provided Config.
// Only non-empty values from the config are applied.
func NewFromConfig(client *mongo.Client, cfg Config, opts ...Option) *Router {
	configOpts := make([]Option, 0, 2+len(opts))
	if cfg.DefaultDatabase != "" {
		configOpts = append(configOpts, WithDefaultDatabase(cfg.DefaultDatabase))
	}
	if cfg.TenantPrefix != "" {
		configOpts = append(configOpts, WithPrefix(cfg.TenantPrefix))
	}
	return New(client, append(configOpts, opts...)...)
}

// Name returns the database name for the tenant in ctx, or the default name.
func (r *Router) Name(ctx context.Context) string {
	if id, ok := tenant.FromContext(ctx); ok {
		return r.prefix + id
	}
	return r.defaultName
}

// Database returns a handle to the database for the tenant in ctx.
// Handles are cheap views over the shared client and are built per call.
func (r *Router) Database(ctx context.Context) *mongo.Database {
	return r.client.Database(r.Name(ctx))
}

// DefaultName returns the fallback database name.
func (r *Router) DefaultName() string {
	return r.defaultName
}

// IsTenantDatabase reports whether name belongs to a tenant.
func (r *Router) IsTenantDatabase(name string) bool {
	return len(name) > len(r.prefix) && strings.HasPrefix(name, r.prefix)
}

// TenantFromDatabase returns the tenant identifier encoded in a database name.
func (r *Router) TenantFromDatabase(name string) (string, bool) {
	if !r.IsTenantDatabase(name) {
		return "", false
	}
	return strings.TrimPrefix(name, r.prefix), true
}

// ValidateTenant reports whether id forms a legal database name under this
// router's prefix. It satisfies tenant.Validator.
func (r *Router) ValidateTenant(id string) error {
	name := r.prefix + id
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: %q exceeds %d bytes", ErrInvalidDatabaseName, name, maxNameLength)
	}
	if i := strings.IndexAny(id, forbiddenChars); i >= 0 {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidDatabaseName, name, id[i])
	}
	return nil
}
