package minimoore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	t.Run("add remove contains", func(t *testing.T) {
		s := NewSet(1, 2)
		assert.Equal(t, 2, s.Len())
		assert.True(t, s.Contains(1))
		assert.False(t, s.Contains(3))

		s.Add(3)
		assert.True(t, s.Contains(3))

		s.Remove(1)
		assert.False(t, s.Contains(1))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("union intersect subtract", func(t *testing.T) {
		s := NewSet(1, 2, 3)
		s.Union(NewSet(3, 4))
		assert.Equal(t, NewSet(1, 2, 3, 4), s)

		s.Intersect(NewSet(2, 3, 4, 5))
		assert.Equal(t, NewSet(2, 3, 4), s)

		s.Subtract(NewSet(3, 9))
		assert.Equal(t, NewSet(2, 4), s)
	})

	t.Run("subset and equality", func(t *testing.T) {
		assert.True(t, NewSet(1, 2).SubsetOf(NewSet(1, 2, 3)))
		assert.False(t, NewSet(1, 9).SubsetOf(NewSet(1, 2, 3)))
		assert.True(t, NewSet[int]().SubsetOf(NewSet(1)))

		assert.True(t, NewSet(1, 2).Equal(NewSet(2, 1)))
		assert.False(t, NewSet(1, 2).Equal(NewSet(1, 2, 3)))
	})

	t.Run("clone is independent", func(t *testing.T) {
		s := NewSet("a", "b")
		c := s.Clone()
		c.Add("c")
		assert.False(t, s.Contains("c"))
		assert.True(t, c.Contains("a"))
	})

	t.Run("iteration", func(t *testing.T) {
		s := NewSet(1, 2, 3)
		total := 0
		for e := range s.All() {
			total += e
		}
		assert.Equal(t, 6, total)
	})
}
