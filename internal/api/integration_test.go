package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/orgdb/internal/api"
	"github.com/dmitrymomot/orgdb/internal/testutil/mongotest"
	"github.com/dmitrymomot/orgdb/internal/users"
	"github.com/dmitrymomot/orgdb/pkg/dbrouter"
	"github.com/dmitrymomot/orgdb/pkg/mongo"
)

func TestMongoIntegration(t *testing.T) {
	client := mongotest.Client(t)

	// A per-run prefix keeps databases from earlier runs out of the assertions.
	prefix := "it" + bson.NewObjectID().Hex()[18:] + "_"
	defaultDB := prefix + "default"
	router := dbrouter.New(client, dbrouter.WithPrefix(prefix), dbrouter.WithDefaultDatabase(defaultDB))
	t.Cleanup(func() {
		ctx := context.Background()
		names, err := client.ListDatabaseNames(ctx, bson.D{})
		if err != nil {
			return
		}
		for _, name := range names {
			if strings.HasPrefix(name, prefix) {
				_ = client.Database(name).Drop(ctx)
			}
		}
	})

	srv := httptest.NewServer(api.Router(api.Deps{
		Store:    users.NewMongoStore(router.Database),
		Database: router.Name,
		Ready:    []func(context.Context) error{mongo.Healthcheck(client)},
	}))
	t.Cleanup(srv.Close)

	post := func(t *testing.T, tenantID, body string) *http.Response {
		resp, err := srv.Client().Post(srv.URL+"/api/"+tenantID+"/users", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}
	list := func(t *testing.T, tenantID string) []users.User {
		resp, err := srv.Client().Get(srv.URL + "/api/" + tenantID + "/users")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out []users.User
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return out
	}
	count := func(t *testing.T, db string) int64 {
		n, err := client.Database(db).Collection(users.Collection).CountDocuments(context.Background(), bson.D{})
		require.NoError(t, err)
		return n
	}

	t.Run("user lands in tenant database", func(t *testing.T) {
		resp := post(t, "org-123", `{"name":"John Doe","email":"john@example.com","role":"ADMIN"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		assert.EqualValues(t, 1, count(t, prefix+"org-123"))
		assert.EqualValues(t, 0, count(t, defaultDB))

		got := list(t, "org-123")
		require.Len(t, got, 1)
		assert.Equal(t, "John Doe", got[0].Name)
	})

	t.Run("tenants do not see each other", func(t *testing.T) {
		require.Equal(t, http.StatusOK, post(t, "tenant-1", `{"name":"Tenant 1 User","email":"t1@example.com","role":"USER"}`).StatusCode)
		require.Equal(t, http.StatusOK, post(t, "tenant-2", `{"name":"Tenant 2 User","email":"t2@example.com","role":"USER"}`).StatusCode)

		one := list(t, "tenant-1")
		require.Len(t, one, 1)
		assert.Equal(t, "Tenant 1 User", one[0].Name)

		two := list(t, "tenant-2")
		require.Len(t, two, 1)
		assert.Equal(t, "Tenant 2 User", two[0].Name)
	})

	t.Run("readiness pings the cluster", func(t *testing.T) {
		resp, err := srv.Client().Get(srv.URL + "/health/ready")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
