package walk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/againey/MakeIt.Tile-sub003/walk"
)

func TestVisited(t *testing.T) {
	s := walk.NewVisited(130)
	assert.Equal(t, 130, s.Len())
	assert.Equal(t, 0, s.Count())
	assert.False(t, s.Has(-1))

	for _, i := range []int{0, 64, 129, 7} {
		s.Mark(i)
	}
	assert.True(t, s.Has(64))
	assert.False(t, s.Has(63))
	assert.Equal(t, 4, s.Count())
	assert.Equal(t, []int{0, 7, 64, 129}, s.Indices())

	s.Mark(-1)
	s.Mark(130)
	assert.Equal(t, 4, s.Count(), "out of range marks are ignored")
	assert.False(t, s.Has(130))

	s.Clear(64)
	s.Clear(64) // idempotent
	s.Clear(-3) // out of range is a no-op
	assert.False(t, s.Has(64))
	assert.Equal(t, 3, s.Count())

	snap := s.Snapshot()
	assert.Equal(t, []uint32{0, 7, 129}, snap.ToArray())

	s.Reset()
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, uint64(3), snap.GetCardinality(), "snapshot is a copy")
}

func TestVisited_AllStopsEarly(t *testing.T) {
	s := walk.NewVisited(10)
	for i := 0; i < 10; i++ {
		s.Mark(i)
	}
	var got []int
	for i := range s.All() {
		if i == 3 {
			break
		}
		got = append(got, i)
	}
	assert.Equal(t, []int{0, 1, 2}, got)
}
