package chunkz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRing_FillsThenSlides(t *testing.T) {
	r := newRing[int](3)

	r.push(1)
	r.push(2)
	assert.False(t, r.full())
	assert.Equal(t, []int{1, 2}, r.snapshot())

	r.push(3)
	require.True(t, r.full())
	assert.Equal(t, []int{1, 2, 3}, r.snapshot())

	r.push(4)
	r.push(5)
	assert.Equal(t, 3, r.len())
	assert.Equal(t, []int{3, 4, 5}, r.snapshot())

	// Wrap all the way around.
	r.push(6)
	r.push(7)
	assert.Equal(t, []int{5, 6, 7}, r.snapshot())
}

func TestRing_SnapshotDoesNotAlias(t *testing.T) {
	r := newRing[byte](2)
	r.push('a')
	r.push('b')

	snap := r.snapshot()
	snap[0] = 'z'

	assert.Equal(t, []byte("ab"), r.snapshot())

	r.push('c')
	assert.Equal(t, []byte("zb"), snap)
}

func TestRing_SizeOne(t *testing.T) {
	r := newRing[string](1)
	r.push("x")
	r.push("y")

	assert.True(t, r.full())
	assert.Equal(t, []string{"y"}, r.snapshot())
}
