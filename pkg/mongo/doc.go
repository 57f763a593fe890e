// Package mongo builds the single MongoDB client shared by every tenant database.
//
// Only one client (and one connection pool) exists per process. Per-tenant
// isolation is done by database name, see package dbrouter, so nothing here
// knows about tenants.
//
// # Usage
//
//	cfg := mongo.Config{ConnectionURL: "mongodb://localhost:27017", RetryAttempts: 3}
//
//	client, err := mongo.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Disconnect(context.Background())
//
//	ready := mongo.Healthcheck(client)
//
// Startup failures wrap ErrFailedToConnectToMongo together with the last
// driver error; probe failures wrap ErrHealthcheckFailed.
package mongo
