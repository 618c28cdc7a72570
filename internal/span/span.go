// Package span provides byte-offset source spans and per-file line
// indexing for the kyanite toolchain. Every AST node and diagnostic
// carries a Span; human-readable line/column positions are derived
// lazily through a File.
package span

import (
	"fmt"
	"path/filepath"
	"sort"
)

// Span is a half-open byte range [Start, End) into one source file.
type Span struct {
	Start uint32
	End   uint32
}

// New creates a span from start and end byte offsets.
func New(start, end uint32) Span {
	return Span{Start: start, End: end}
}

// Empty returns a zero-width span at the given offset.
func Empty(at uint32) Span {
	return Span{Start: at, End: at}
}

// IsValid reports whether the span is well formed.
func (s Span) IsValid() bool {
	return s.Start <= s.End
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

// Contains reports whether the byte offset falls inside the span.
func (s Span) Contains(offset uint32) bool {
	return offset >= s.Start && offset < s.End
}

// Merge returns the smallest span covering both s and other.
func (s Span) Merge(other Span) Span {
	out := s
	if other.Start < out.Start {
		out.Start = other.Start
	}
	if other.End > out.End {
		out.End = other.End
	}
	return out
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Position is a resolved 1-based line/column location.
type Position struct {
	Filename string
	Line     int
	Column   int
	Offset   uint32
}

// IsValid reports whether the position has been resolved.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", filepath.Base(p.Filename), p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// File couples source text with a lazily built line index so spans can
// be resolved to positions and sliced back into text.
type File struct {
	Name string
	Src  string

	lines []uint32 // byte offset of each line start, built on demand
}

// NewFile creates a File for the given source text.
func NewFile(name, src string) *File {
	return &File{Name: name, Src: src}
}

// Size returns the length of the source in bytes.
func (f *File) Size() uint32 {
	return uint32(len(f.Src))
}

// Slice returns the source text covered by the span. Out-of-range
// spans yield the empty string rather than panicking.
func (f *File) Slice(s Span) string {
	if !s.IsValid() || int(s.End) > len(f.Src) {
		return ""
	}
	return f.Src[s.Start:s.End]
}

// Position resolves a byte offset to a 1-based line/column pair.
func (f *File) Position(offset uint32) Position {
	f.buildLineIndex()
	line := sort.Search(len(f.lines), func(i int) bool {
		return f.lines[i] > offset
	})
	// line is now 1-based: lines[line-1] <= offset < lines[line]
	col := int(offset-f.lines[line-1]) + 1
	return Position{Filename: f.Name, Line: line, Column: col, Offset: offset}
}

// Line returns the full text of the 1-based line number, without the
// trailing newline.
func (f *File) Line(line int) string {
	f.buildLineIndex()
	if line < 1 || line > len(f.lines) {
		return ""
	}
	start := f.lines[line-1]
	end := uint32(len(f.Src))
	if line < len(f.lines) {
		end = f.lines[line] - 1 // strip the '\n'
	}
	if end > uint32(len(f.Src)) {
		end = uint32(len(f.Src))
	}
	if end < start {
		end = start
	}
	return f.Src[start:end]
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int {
	f.buildLineIndex()
	return len(f.lines)
}

func (f *File) buildLineIndex() {
	if f.lines != nil {
		return
	}
	lines := []uint32{0}
	for i := 0; i < len(f.Src); i++ {
		if f.Src[i] == '\n' {
			lines = append(lines, uint32(i+1))
		}
	}
	f.lines = lines
}
