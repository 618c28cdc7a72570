// Package arena implements chunked bump allocation for AST nodes.
//
// An Arena hands out pointers into large pre-sized chunks so that the
// thousands of small node allocations made during one parse session
// amortize to a handful of slice allocations, all released together
// when the session ends. Pointers returned by an arena remain stable
// for its whole lifetime: chunks are never reallocated, only appended.
package arena

// Arena is a typed bump allocator. The zero value is ready to use with
// a default chunk size; call New to tune the chunk size for types with
// a known allocation volume.
type Arena[T any] struct {
	chunks    [][]T
	chunkSize int
	allocated int
}

const defaultChunkSize = 64

// New creates an arena whose chunks hold chunkSize elements each.
func New[T any](chunkSize int) *Arena[T] {
	if chunkSize < 1 {
		chunkSize = 1
	}
	return &Arena[T]{chunkSize: chunkSize}
}

// New returns a pointer to a zeroed element allocated from the arena.
func (a *Arena[T]) New() *T {
	chunk := a.tail(1)
	n := len(*chunk)
	*chunk = (*chunk)[:n+1]
	a.allocated++
	return &(*chunk)[n]
}

// Alloc copies v into the arena and returns a stable pointer to it.
func (a *Arena[T]) Alloc(v T) *T {
	p := a.New()
	*p = v
	return p
}

// Slice allocates a contiguous slice of n zeroed elements. Slices
// longer than the chunk size get a dedicated chunk so they stay
// contiguous.
func (a *Arena[T]) Slice(n int) []T {
	if n == 0 {
		return nil
	}
	chunk := a.tail(n)
	start := len(*chunk)
	*chunk = (*chunk)[:start+n]
	a.allocated += n
	return (*chunk)[start : start+n : start+n]
}

// Copy allocates a contiguous copy of src from the arena.
func (a *Arena[T]) Copy(src []T) []T {
	if len(src) == 0 {
		return nil
	}
	dst := a.Slice(len(src))
	copy(dst, src)
	return dst
}

// Len returns the number of elements allocated so far.
func (a *Arena[T]) Len() int {
	return a.allocated
}

// Reset drops every allocation. Pointers handed out earlier must not
// be used afterwards; the chunks are retained for reuse.
func (a *Arena[T]) Reset() {
	for i := range a.chunks {
		a.chunks[i] = a.chunks[i][:0]
	}
	a.allocated = 0
}

// tail returns the current chunk, growing the chunk list if fewer than
// n elements of capacity remain.
func (a *Arena[T]) tail(n int) *[]T {
	if len(a.chunks) > 0 {
		chunk := &a.chunks[len(a.chunks)-1]
		if cap(*chunk)-len(*chunk) >= n {
			return chunk
		}
	}
	size := a.chunkSize
	if size == 0 {
		size = defaultChunkSize
	}
	if n > size {
		size = n
	}
	a.chunks = append(a.chunks, make([]T, 0, size))
	return &a.chunks[len(a.chunks)-1]
}
