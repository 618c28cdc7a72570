package diagnostics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyanite-dev/kyanite/internal/span"
)

func TestBagAccumulates(t *testing.T) {
	bag := NewBag()
	bag.Add(Error("first", span.New(0, 1)))
	bag.Add(Warning("second", span.New(2, 3)))
	bag.Add(Error("third", span.New(4, 5)))

	assert.Equal(t, 3, bag.Len())
	assert.True(t, bag.HasErrors())
}

func TestBagMarkTruncate(t *testing.T) {
	bag := NewBag()
	bag.Add(Error("kept", span.New(0, 1)))

	mark := bag.Mark()
	bag.Add(Error("speculative", span.New(5, 6)))
	bag.Add(Warning("also speculative", span.New(7, 8)))
	bag.Truncate(mark)

	require.Equal(t, 1, bag.Len())
	assert.Equal(t, "kept", bag.Diagnostics()[0].Message)
}

func TestDiagnosticsSortedBySpan(t *testing.T) {
	bag := NewBag()
	bag.Add(Warning("late", span.New(20, 21)))
	bag.Add(Error("early", span.New(3, 4)))

	ds := bag.Diagnostics()
	require.Len(t, ds, 2)
	assert.Equal(t, "early", ds[0].Message)
	assert.Equal(t, "late", ds[1].Message)
}

func TestRender(t *testing.T) {
	file := span.NewFile("app.ts", "let x = ;\n")
	d := Error("unexpected token", span.New(8, 9)).WithHelp("expected an expression")

	var sb strings.Builder
	Render(&sb, file, d)
	out := sb.String()

	assert.Contains(t, out, "error: unexpected token")
	assert.Contains(t, out, "app.ts:1:9")
	assert.Contains(t, out, "let x = ;")
	assert.Contains(t, out, "^")
	assert.Contains(t, out, "help: expected an expression")
}

func TestLabels(t *testing.T) {
	d := Error("rest parameter must be last", span.New(10, 14)).
		WithLabel(span.New(0, 8), "function starts here")
	require.Len(t, d.Labels, 1)
	assert.Equal(t, "function starts here", d.Labels[0].Message)
}
