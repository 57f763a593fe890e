// Package dbrouter selects the MongoDB database for the current request.
//
// Every tenant lives in its own database inside one shared cluster. The
// Router maps the tenant identifier held in the request context to a
// database name ("org_" + id) and falls back to a default database
// ("default_db") when the context carries no tenant. The name is computed on
// every call; nothing is cached between requests and no lock is taken, so
// concurrent requests only ever see their own tenant.
//
// # Usage
//
//	client, _ := mongo.New(ctx, mongoCfg)
//	router := dbrouter.New(client)
//
//	// Inject the strategy into the data-access layer.
//	store := users.NewMongoStore(router.Database)
//
//	// Inside a request scoped by tenant.Middleware:
//	db := router.Database(r.Context()) // org_acme
//
// Data-access code depends on DatabaseFunc (or NameFunc) rather than on the
// Router itself, which keeps it unaware of tenancy.
package dbrouter
