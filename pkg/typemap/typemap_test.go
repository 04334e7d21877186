package typemap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/anvil/pkg/typemap"
)

type authUser struct {
	ID   string
	Name string
}

// traceInfo is structurally identical to authUser on purpose: distinct
// types must never collide.
type traceInfo struct {
	ID   string
	Name string
}

func TestMap_SetGet(t *testing.T) {
	t.Parallel()

	t.Run("roundtrip", func(t *testing.T) {
		t.Parallel()

		m := typemap.New()
		typemap.Set(m, authUser{ID: "u_1", Name: "alice"})

		got, ok := typemap.Get[authUser](m)
		require.True(t, ok)
		assert.Equal(t, authUser{ID: "u_1", Name: "alice"}, got)
	})

	t.Run("absent_type", func(t *testing.T) {
		t.Parallel()

		m := typemap.New()
		got, ok := typemap.Get[authUser](m)
		assert.False(t, ok)
		assert.Zero(t, got)
	})

	t.Run("set_replaces_previous_value", func(t *testing.T) {
		t.Parallel()

		m := typemap.New()
		typemap.Set(m, authUser{ID: "u_1"})
		typemap.Set(m, authUser{ID: "u_2"})

		got, ok := typemap.Get[authUser](m)
		require.True(t, ok)
		assert.Equal(t, "u_2", got.ID)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("structurally_identical_types_do_not_collide", func(t *testing.T) {
		t.Parallel()

		m := typemap.New()
		typemap.Set(m, authUser{ID: "user"})
		typemap.Set(m, traceInfo{ID: "trace"})

		user, ok := typemap.Get[authUser](m)
		require.True(t, ok)
		assert.Equal(t, "user", user.ID)

		trace, ok := typemap.Get[traceInfo](m)
		require.True(t, ok)
		assert.Equal(t, "trace", trace.ID)

		assert.Equal(t, 2, m.Len())
	})

	t.Run("primitive_and_named_types", func(t *testing.T) {
		t.Parallel()

		type requestCount int

		m := typemap.New()
		typemap.Set(m, 42)
		typemap.Set(m, requestCount(7))
		typemap.Set(m, "hello")

		n, ok := typemap.Get[int](m)
		require.True(t, ok)
		assert.Equal(t, 42, n)

		c, ok := typemap.Get[requestCount](m)
		require.True(t, ok)
		assert.Equal(t, requestCount(7), c)

		s, ok := typemap.Get[string](m)
		require.True(t, ok)
		assert.Equal(t, "hello", s)
	})
}

func TestMap_Mut(t *testing.T) {
	t.Parallel()

	t.Run("in_place_mutation_visible_to_get", func(t *testing.T) {
		t.Parallel()

		m := typemap.New()
		typemap.Set(m, authUser{ID: "u_1", Name: "alice"})

		p, ok := typemap.Mut[authUser](m)
		require.True(t, ok)
		p.Name = "bob"

		got, ok := typemap.Get[authUser](m)
		require.True(t, ok)
		assert.Equal(t, "bob", got.Name)
	})

	t.Run("absent_type", func(t *testing.T) {
		t.Parallel()

		m := typemap.New()
		p, ok := typemap.Mut[authUser](m)
		assert.False(t, ok)
		assert.Nil(t, p)
	})
}

func TestMap_Remove(t *testing.T) {
	t.Parallel()

	t.Run("removes_and_returns_value", func(t *testing.T) {
		t.Parallel()

		m := typemap.New()
		typemap.Set(m, authUser{ID: "u_1"})

		got, ok := typemap.Remove[authUser](m)
		require.True(t, ok)
		assert.Equal(t, "u_1", got.ID)

		_, ok = typemap.Get[authUser](m)
		assert.False(t, ok)
		assert.Equal(t, 0, m.Len())
	})

	t.Run("absent_type", func(t *testing.T) {
		t.Parallel()

		m := typemap.New()
		got, ok := typemap.Remove[authUser](m)
		assert.False(t, ok)
		assert.Zero(t, got)
	})

	t.Run("does_not_affect_other_types", func(t *testing.T) {
		t.Parallel()

		m := typemap.New()
		typemap.Set(m, authUser{ID: "user"})
		typemap.Set(m, traceInfo{ID: "trace"})

		_, ok := typemap.Remove[authUser](m)
		require.True(t, ok)

		trace, ok := typemap.Get[traceInfo](m)
		require.True(t, ok)
		assert.Equal(t, "trace", trace.ID)
	})
}

func TestMap_HasClearZeroValue(t *testing.T) {
	t.Parallel()

	t.Run("has", func(t *testing.T) {
		t.Parallel()

		m := typemap.New()
		assert.False(t, typemap.Has[authUser](m))
		typemap.Set(m, authUser{})
		assert.True(t, typemap.Has[authUser](m))
	})

	t.Run("clear", func(t *testing.T) {
		t.Parallel()

		m := typemap.New()
		typemap.Set(m, authUser{})
		typemap.Set(m, traceInfo{})
		m.Clear()
		assert.Equal(t, 0, m.Len())
		assert.False(t, typemap.Has[authUser](m))
	})

	t.Run("zero_value_is_usable", func(t *testing.T) {
		t.Parallel()

		var m typemap.Map
		typemap.Set(&m, authUser{ID: "u_1"})
		got, ok := typemap.Get[authUser](&m)
		require.True(t, ok)
		assert.Equal(t, "u_1", got.ID)
	})
}
