package tenant_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orgdb/pkg/tenant"
)

func TestScope(t *testing.T) {
	t.Parallel()

	t.Run("empty scope has no tenant", func(t *testing.T) {
		t.Parallel()

		_, s := tenant.NewScope(context.Background())
		id, ok := s.Get()
		assert.False(t, ok)
		assert.Empty(t, id)
	})

	t.Run("set overwrites prior value", func(t *testing.T) {
		t.Parallel()

		_, s := tenant.NewScope(context.Background())
		s.Set("acme")
		s.Set("globex")

		id, ok := s.Get()
		require.True(t, ok)
		assert.Equal(t, "globex", id)
	})

	t.Run("clear removes value", func(t *testing.T) {
		t.Parallel()

		_, s := tenant.NewScope(context.Background())
		s.Set("acme")
		s.Clear()

		_, ok := s.Get()
		assert.False(t, ok)

		// Clearing an empty scope is fine.
		s.Clear()
		_, ok = s.Get()
		assert.False(t, ok)
	})

	t.Run("nil scope reads as absent", func(t *testing.T) {
		t.Parallel()

		var s *tenant.Scope
		_, ok := s.Get()
		assert.False(t, ok)
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns tenant set through scope", func(t *testing.T) {
		t.Parallel()

		ctx, s := tenant.NewScope(context.Background())
		s.Set("org-123")

		id, ok := tenant.FromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, "org-123", id)
	})

	t.Run("returns false for empty context", func(t *testing.T) {
		t.Parallel()

		id, ok := tenant.FromContext(context.Background())
		assert.False(t, ok)
		assert.Empty(t, id)
	})

	t.Run("observes clear through derived contexts", func(t *testing.T) {
		t.Parallel()

		ctx, s := tenant.NewScope(context.Background())
		s.Set("acme")

		type otherKey struct{}
		derived := context.WithValue(ctx, otherKey{}, "x")

		id, ok := tenant.FromContext(derived)
		require.True(t, ok)
		assert.Equal(t, "acme", id)

		s.Clear()
		_, ok = tenant.FromContext(derived)
		assert.False(t, ok)
	})

	t.Run("with tenant creates independent scope", func(t *testing.T) {
		t.Parallel()

		parent := tenant.WithTenant(context.Background(), "acme")
		child := tenant.WithTenant(parent, "globex")

		id, _ := tenant.FromContext(parent)
		assert.Equal(t, "acme", id)
		id, _ = tenant.FromContext(child)
		assert.Equal(t, "globex", id)

		tenant.ScopeFromContext(child).Clear()
		id, ok := tenant.FromContext(parent)
		require.True(t, ok, "clearing child scope must not touch parent")
		assert.Equal(t, "acme", id)
	})
}

func TestMustFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns tenant", func(t *testing.T) {
		t.Parallel()

		ctx := tenant.WithTenant(context.Background(), "acme")
		assert.Equal(t, "acme", tenant.MustFromContext(ctx))
	})

	t.Run("panics without tenant", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, "tenant: no tenant in context", func() {
			tenant.MustFromContext(context.Background())
		})
	})
}

func TestScope_ConcurrentIsolation(t *testing.T) {
	t.Parallel()

	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := range workers {
		go func(i int) {
			defer wg.Done()

			want := fmt.Sprintf("tenant-%d", i)
			ctx, s := tenant.NewScope(context.Background())
			s.Set(want)
			defer s.Clear()

			for range 1000 {
				got, ok := tenant.FromContext(ctx)
				if !assert.True(t, ok) || !assert.Equal(t, want, got) {
					return
				}
			}
		}(i)
	}

	wg.Wait()
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := tenant.LoggerExtractor()

	attr, ok := extract(tenant.WithTenant(context.Background(), "acme"))
	require.True(t, ok)
	assert.Equal(t, "tenant_id", attr.Key)
	assert.Equal(t, "acme", attr.Value.String())

	_, ok = extract(context.Background())
	assert.False(t, ok)
}
