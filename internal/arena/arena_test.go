package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	id   int
	next *node
}

func TestArenaAlloc(t *testing.T) {
	a := New[node](4)

	first := a.Alloc(node{id: 1})
	require.NotNil(t, first)
	assert.Equal(t, 1, first.id)

	// Fill past the first chunk; earlier pointers must stay valid.
	ptrs := []*node{first}
	for i := 2; i <= 100; i++ {
		ptrs = append(ptrs, a.Alloc(node{id: i}))
	}
	for i, p := range ptrs {
		assert.Equal(t, i+1, p.id)
	}
	assert.Equal(t, 100, a.Len())
}

func TestArenaPointerStability(t *testing.T) {
	a := New[node](2)
	p := a.Alloc(node{id: 42})
	for i := 0; i < 50; i++ {
		a.New()
	}
	assert.Equal(t, 42, p.id)
}

func TestArenaSlice(t *testing.T) {
	a := New[int](8)

	s := a.Slice(3)
	require.Len(t, s, 3)
	s[0], s[1], s[2] = 1, 2, 3

	// Oversized request gets its own contiguous chunk.
	big := a.Slice(32)
	require.Len(t, big, 32)

	// Appending to an arena slice must not clobber later allocations.
	other := a.Alloc(99)
	_ = append(s, 4)
	assert.Equal(t, 99, *other)
	assert.Equal(t, []int{1, 2, 3}, s)
}

func TestArenaCopy(t *testing.T) {
	a := New[int](4)
	src := []int{5, 6, 7}
	dst := a.Copy(src)
	assert.Equal(t, src, dst)
	src[0] = 0
	assert.Equal(t, 5, dst[0])

	assert.Nil(t, a.Copy(nil))
}

func TestArenaReset(t *testing.T) {
	a := New[int](4)
	for i := 0; i < 10; i++ {
		a.Alloc(i)
	}
	assert.Equal(t, 10, a.Len())
	a.Reset()
	assert.Equal(t, 0, a.Len())
	p := a.Alloc(7)
	assert.Equal(t, 7, *p)
}
