package users_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orgdb/internal/users"
	"github.com/dmitrymomot/orgdb/pkg/dbrouter"
	"github.com/dmitrymomot/orgdb/pkg/tenant"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	t.Run("create assigns id", func(t *testing.T) {
		t.Parallel()

		store := users.NewMemoryStore(dbrouter.New(nil).Name)
		ctx := tenant.WithTenant(context.Background(), "org-123")

		u, err := store.Create(ctx, users.User{Name: "John Doe", Email: "john@example.com", Role: "ADMIN"})
		require.NoError(t, err)
		assert.Len(t, u.ID, 24)
		assert.Equal(t, "John Doe", u.Name)
		assert.Equal(t, "john@example.com", u.Email)
		assert.Equal(t, "ADMIN", u.Role)
	})

	t.Run("keeps client supplied id", func(t *testing.T) {
		t.Parallel()

		store := users.NewMemoryStore(dbrouter.New(nil).Name)
		u, err := store.Create(context.Background(), users.User{ID: "65a1f0c2e4b0a1b2c3d4e5f6", Name: "A"})
		require.NoError(t, err)
		assert.Equal(t, "65a1f0c2e4b0a1b2c3d4e5f6", u.ID)
	})

	t.Run("rejects malformed id", func(t *testing.T) {
		t.Parallel()

		store := users.NewMemoryStore(dbrouter.New(nil).Name)
		_, err := store.Create(context.Background(), users.User{ID: "nope"})
		assert.ErrorIs(t, err, users.ErrInvalidID)
	})

	t.Run("list on empty database returns empty slice", func(t *testing.T) {
		t.Parallel()

		store := users.NewMemoryStore(dbrouter.New(nil).Name)
		list, err := store.List(tenant.WithTenant(context.Background(), "org-empty"))
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("tenants are isolated", func(t *testing.T) {
		t.Parallel()

		store := users.NewMemoryStore(dbrouter.New(nil).Name)
		a := tenant.WithTenant(context.Background(), "tenant-1")
		b := tenant.WithTenant(context.Background(), "tenant-2")

		_, err := store.Create(a, users.User{Name: "Tenant 1 User"})
		require.NoError(t, err)
		_, err = store.Create(b, users.User{Name: "Tenant 2 User"})
		require.NoError(t, err)
		_, err = store.Create(b, users.User{Name: "Tenant 2 Other"})
		require.NoError(t, err)

		listA, err := store.List(a)
		require.NoError(t, err)
		require.Len(t, listA, 1)
		assert.Equal(t, "Tenant 1 User", listA[0].Name)

		listB, err := store.List(b)
		require.NoError(t, err)
		assert.Len(t, listB, 2)

		none, err := store.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, none, "default database must not see tenant records")

		assert.Equal(t, []string{"org_tenant-1", "org_tenant-2"}, store.Databases())
	})

	t.Run("list returns a copy", func(t *testing.T) {
		t.Parallel()

		store := users.NewMemoryStore(dbrouter.New(nil).Name)
		ctx := tenant.WithTenant(context.Background(), "acme")
		_, err := store.Create(ctx, users.User{Name: "original"})
		require.NoError(t, err)

		list, _ := store.List(ctx)
		list[0].Name = "mutated"

		again, _ := store.List(ctx)
		assert.Equal(t, "original", again[0].Name)
	})
}
