// Package mongotest starts a throwaway MongoDB for integration tests.
package mongotest

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Image is the server version the integration tests run against.
const Image = "mongo:7.0"

var (
	once      sync.Once
	shared    *mongodb.MongoDBContainer
	sharedURI string
	startErr  error
)

// URI returns the connection string of a MongoDB container shared by every
// test in the package binary. The test is skipped under -short, when
// SKIP_INTEGRATION=true, or when no container runtime is reachable.
//
// The container is left to the testcontainers reaper for cleanup.
func URI(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping MongoDB integration test in short mode")
	}
	if os.Getenv("SKIP_INTEGRATION") == "true" {
		t.Skip("SKIP_INTEGRATION=true, skipping MongoDB integration test")
	}

	once.Do(func() {
		ctx := context.Background()
		shared, startErr = mongodb.Run(ctx, Image)
		if startErr != nil {
			return
		}
		sharedURI, startErr = shared.ConnectionString(ctx)
	})
	if startErr != nil {
		t.Skipf("skipping: could not start MongoDB container: %v", startErr)
	}
	return sharedURI
}

// Client connects to the shared container and disconnects on cleanup.
func Client(t *testing.T) *mongo.Client {
	t.Helper()
	return LazyClient(t, URI(t))
}

// LazyClient builds a client for uri without contacting the server;
// the driver dials on first use.
func LazyClient(t *testing.T, uri string) *mongo.Client {
	t.Helper()

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("mongotest: connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client
}
