package minimoore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	t.Run("matches direct construction", func(t *testing.T) {
		b := NewBuilder[int, string]()
		b.State("init").Init().Output("first").To(0, "init").To(1, "s1")
		b.State("s1").Output("second").To(0, "init").To(1, "s1")

		assert.True(t, b.Machine().Equal(makeFlipFlop()))
	})

	t.Run("forward references create states on demand", func(t *testing.T) {
		b := NewBuilder[int, string]()
		b.State("s0").Init().Output("a").To(0, "s1").To(1, "s0")
		b.State("s1").Output("a").To(0, "s2").To(1, "s1")
		b.State("s2").Output("b").To(0, "s0").To(1, "s0")

		assert.True(t, b.Machine().Equal(makeMinimal()))
	})

	t.Run("state ids are stable per name", func(t *testing.T) {
		b := NewBuilder[int, string]()
		s0 := b.State("s0").ID()
		s1 := b.State("s1").ID()
		assert.Equal(t, 0, s0)
		assert.Equal(t, 1, s1)
		assert.Equal(t, s0, b.State("s0").ID())
		assert.Equal(t, 2, b.Machine().NumStates())
	})

	t.Run("built machine minimizes", func(t *testing.T) {
		b := NewBuilder[int, string]()
		b.State("x").Init().Output("a").To(0, "y").To(1, "y")
		b.State("y").Output("a").To(0, "x").To(1, "y")

		min, err := b.Machine().Minimize()
		require.NoError(t, err)
		assert.Equal(t, 1, min.NumStates())
	})
}
