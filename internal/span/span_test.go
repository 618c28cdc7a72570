package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanBasics(t *testing.T) {
	s := New(3, 9)
	assert.True(t, s.IsValid())
	assert.Equal(t, uint32(6), s.Len())
	assert.True(t, s.Contains(3))
	assert.True(t, s.Contains(8))
	assert.False(t, s.Contains(9))

	merged := s.Merge(New(1, 5))
	assert.Equal(t, New(1, 9), merged)
}

func TestFilePosition(t *testing.T) {
	f := NewFile("test.ts", "let a = 1;\nlet b = 2;\n")

	tests := []struct {
		name   string
		offset uint32
		line   int
		column int
	}{
		{"start of file", 0, 1, 1},
		{"middle of first line", 4, 1, 5},
		{"start of second line", 11, 2, 1},
		{"middle of second line", 15, 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := f.Position(tt.offset)
			assert.Equal(t, tt.line, pos.Line)
			assert.Equal(t, tt.column, pos.Column)
		})
	}
}

func TestFileLine(t *testing.T) {
	f := NewFile("test.ts", "first\nsecond\nthird")
	assert.Equal(t, "first", f.Line(1))
	assert.Equal(t, "second", f.Line(2))
	assert.Equal(t, "third", f.Line(3))
	assert.Equal(t, "", f.Line(4))
	assert.Equal(t, 3, f.LineCount())
}

func TestFileSlice(t *testing.T) {
	f := NewFile("test.ts", "function f() {}")
	assert.Equal(t, "function", f.Slice(New(0, 8)))
	assert.Equal(t, "", f.Slice(New(0, 100)))
}
