package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/path-follower/pkg/avoider"
	"github.com/NVIDIA/path-follower/pkg/errors"
	"github.com/NVIDIA/path-follower/pkg/options"
	"github.com/NVIDIA/path-follower/pkg/pose"
)

func TestDefaultCollisionAvoiderFor(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		controller string
		want       string
	}{
		{AckermannPurePursuit, avoider.Default},
		{AckermannStanley, avoider.Default},
		{DifferentialOrthExp, avoider.Simple},
		{UnicycleInputScaling, avoider.Default},
		{MPC, avoider.PotentialField},
		{DynamicWindow, ""},
	}

	for _, tt := range tests {
		t.Run(tt.controller, func(t *testing.T) {
			got, err := reg.DefaultCollisionAvoiderFor(tt.controller)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultCollisionAvoiderFor_Unknown(t *testing.T) {
	_, err := DefaultRegistry().DefaultCollisionAvoiderFor("unknown_x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownComponent))
	assert.Contains(t, err.Error(), "unknown_x")
}

func TestRegistry_DefaultAvoidersResolve(t *testing.T) {
	avoiders := avoider.DefaultRegistry()
	for _, name := range DefaultRegistry().Names() {
		ca, err := DefaultRegistry().DefaultCollisionAvoiderFor(name)
		require.NoError(t, err)
		if ca == "" {
			continue
		}
		assert.True(t, avoiders.Has(ca), "controller %s defaults to unregistered avoider %s", name, ca)
	}
}

func TestRegistry_RegisterDuplicateKeepsDefault(t *testing.T) {
	reg := NewEmptyRegistry()
	require.NoError(t, reg.Register("a", func() Controller { return &PurePursuit{} }, avoider.Simple))
	require.Error(t, reg.Register("a", func() Controller { return &Stanley{} }, avoider.None))

	got, err := reg.DefaultCollisionAvoiderFor("a")
	require.NoError(t, err)
	assert.Equal(t, avoider.Simple, got)
}

func TestRegistry_ListAll(t *testing.T) {
	reg := DefaultRegistry()
	all := reg.ListAll()
	require.Len(t, all, len(reg.Names()))
	for i, c := range all {
		assert.Equal(t, reg.Names()[i], c.Name())
		assert.False(t, c.Initialized())
	}
	assert.Len(t, reg.Describe(), len(all))
}

func TestInit(t *testing.T) {
	tracker := pose.NewStaticTracker(nil)
	opts := options.New()
	ca := &avoider.SimpleAvoider{}

	c, err := DefaultRegistry().Make(MPC)
	require.NoError(t, err)

	assert.Error(t, c.Init(nil, ca, opts))
	assert.Error(t, c.Init(tracker, nil, opts))
	assert.Error(t, c.Init(tracker, ca, nil))
	assert.False(t, c.Initialized())

	require.NoError(t, c.Init(tracker, ca, opts))
	assert.True(t, c.Initialized())
	assert.Same(t, ca, c.(*ModelPredictive).CollisionAvoider())
}
