package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/path-follower/pkg/errors"
)

type widget struct {
	name string
}

type shape interface {
	Name() string
}

func (w *widget) Name() string { return w.name }

func factoryFor(name string) Factory[*widget] {
	return func() *widget { return &widget{name: name} }
}

func TestRegister(t *testing.T) {
	reg := New[*widget]("widget")

	require.NoError(t, reg.Register("a", factoryFor("a"), WithDoc("first")))
	require.NoError(t, reg.Register("b", factoryFor("b")))

	assert.Error(t, reg.Register("a", factoryFor("a")), "duplicate")
	assert.Error(t, reg.Register("", factoryFor("x")), "empty name")
	assert.Error(t, reg.Register("c", nil), "nil factory")

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"a", "b"}, reg.Names())
	assert.Equal(t, []Info{{Name: "a", Doc: "first"}, {Name: "b"}}, reg.Describe())
	assert.True(t, reg.Has("a"))
	assert.False(t, reg.Has("c"))
	assert.Equal(t, "widget", reg.Role())
}

func TestMustRegister_Panics(t *testing.T) {
	reg := New[*widget]("widget")
	reg.MustRegister("a", factoryFor("a"))

	assert.Panics(t, func() {
		reg.MustRegister("a", factoryFor("a"))
	})
}

func TestSeal(t *testing.T) {
	reg := New[*widget]("widget")
	reg.MustRegister("a", factoryFor("a"))
	reg.Seal()

	assert.True(t, reg.Sealed())
	assert.ErrorContains(t, reg.Register("b", factoryFor("b")), "sealed")

	w, err := reg.Make("a")
	require.NoError(t, err)
	assert.Equal(t, "a", w.name)
}

func TestMake(t *testing.T) {
	reg := New[*widget]("widget")
	reg.MustRegister("a", factoryFor("a"))

	t.Run("fresh instances", func(t *testing.T) {
		w1, err := reg.Make("a")
		require.NoError(t, err)
		w2, err := reg.Make("a")
		require.NoError(t, err)
		assert.NotSame(t, w1, w2)
	})

	t.Run("unknown name", func(t *testing.T) {
		w, err := reg.Make("nope")
		require.Error(t, err)
		assert.Nil(t, w)
		assert.True(t, errors.Is(err, errors.ErrCodeUnknownComponent))

		var se *errors.StructuredError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "widget", se.Context["role"])
		assert.Equal(t, "nope", se.Context["name"])
	})
}

func TestMake_NilInstance(t *testing.T) {
	t.Run("typed nil pointer", func(t *testing.T) {
		reg := New[*widget]("widget")
		reg.MustRegister("broken", func() *widget { return nil })

		_, err := reg.Make("broken")
		assert.True(t, errors.Is(err, errors.ErrCodeAssemblyInvariant))
	})

	t.Run("typed nil in interface", func(t *testing.T) {
		reg := New[shape]("shape")
		reg.MustRegister("broken", func() shape {
			var w *widget
			return w
		})

		_, err := reg.Make("broken")
		assert.True(t, errors.Is(err, errors.ErrCodeAssemblyInvariant))
	})

	t.Run("nil interface", func(t *testing.T) {
		reg := New[shape]("shape")
		reg.MustRegister("broken", func() shape { return nil })

		_, err := reg.Make("broken")
		assert.True(t, errors.Is(err, errors.ErrCodeAssemblyInvariant))
	})
}

func TestListAll(t *testing.T) {
	reg := New[*widget]("widget")
	for _, name := range []string{"c", "a", "b"} {
		reg.MustRegister(name, factoryFor(name))
	}
	reg.MustRegister("broken", func() *widget { return nil })

	first := reg.ListAll()
	require.Len(t, first, 3)
	assert.Equal(t, "c", first[0].name)
	assert.Equal(t, "a", first[1].name)
	assert.Equal(t, "b", first[2].name)

	second := reg.ListAll()
	require.Len(t, second, 3)
	assert.NotSame(t, first[0], second[0])
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	reg := New[*widget]("widget")
	reg.MustRegister("a", factoryFor("a"))
	reg.Seal()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := reg.Make("a"); err != nil {
				t.Error(err)
			}
			_ = reg.ListAll()
		}()
	}
	wg.Wait()
}

func TestIsNil(t *testing.T) {
	var w *widget
	var s shape
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(w))
	assert.True(t, IsNil(s))
	assert.False(t, IsNil(&widget{}))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
}
