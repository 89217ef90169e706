package avoider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/path-follower/pkg/errors"
	"github.com/NVIDIA/path-follower/pkg/pose"
)

func TestDefaultRegistry_MakesEveryVariant(t *testing.T) {
	reg := DefaultRegistry()
	require.True(t, reg.Sealed())

	for _, name := range []string{None, Default, Simple, PotentialField} {
		t.Run(name, func(t *testing.T) {
			ca, err := reg.Make(name)
			require.NoError(t, err)
			assert.Equal(t, name, ca.Name())
			assert.Nil(t, ca.TransformListener())
		})
	}
}

func TestDefaultRegistry_Unknown(t *testing.T) {
	_, err := DefaultRegistry().Make("laser_fence")
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownComponent))
}

func TestSetTransformListener(t *testing.T) {
	ca, err := NewRegistry().Make(PotentialField)
	require.NoError(t, err)

	buf := pose.NewBuffer()
	ca.SetTransformListener(buf)
	assert.Same(t, buf, ca.TransformListener())
}

func TestListAll_RegistrationOrder(t *testing.T) {
	all := NewRegistry().ListAll()
	names := make([]string, 0, len(all))
	for _, ca := range all {
		names = append(names, ca.Name())
	}
	assert.Equal(t, []string{None, Default, Simple, PotentialField}, names)
}
