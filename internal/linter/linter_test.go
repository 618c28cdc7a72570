package linter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/diagnostics"
	"github.com/kyanite-dev/kyanite/internal/parser"
	"github.com/kyanite-dev/kyanite/internal/span"
)

// flagDebugger is a minimal rule for exercising the dispatch and
// severity plumbing without depending on the shipped rule set.
type flagDebugger struct{}

func (flagDebugger) Name() string                          { return "flag-debugger" }
func (flagDebugger) Plugin() string                        { return "test" }
func (flagDebugger) DefaultSeverity() diagnostics.Severity { return diagnostics.SeverityWarning }

func (flagDebugger) Run(node ast.Node, ctx *Context) {
	if stmt, ok := node.(*ast.DebuggerStatement); ok {
		ctx.Report("debugger found", stmt.Loc)
	}
}

type countNodes struct {
	seen *int
}

func (countNodes) Name() string                          { return "count-nodes" }
func (countNodes) Plugin() string                        { return "test" }
func (countNodes) DefaultSeverity() diagnostics.Severity { return diagnostics.SeverityAdvice }

func (r countNodes) Run(node ast.Node, ctx *Context) { *r.seen++ }

func testRegistry(t *testing.T, rules ...Rule) *Registry {
	t.Helper()
	reg := NewRegistry()
	for _, r := range rules {
		require.NoError(t, reg.Register(r))
	}
	return reg
}

func lintSource(t *testing.T, src string, reg *Registry, configure func(*Linter)) []diagnostics.Diagnostic {
	t.Helper()
	file := span.NewFile("test.ts", src)
	bag := diagnostics.NewBag()
	program := parser.New(file, ast.NewAllocator(), bag, parser.Options{
		SourceType: ast.SourceModule,
		TypeScript: true,
	}).Parse()
	require.False(t, bag.HasErrors(), "parse failed: %v", bag.Diagnostics())

	l := New(reg)
	if configure != nil {
		configure(l)
	}
	l.Run(file, program, bag)
	return bag.Diagnostics()
}

func TestDispatchAndReport(t *testing.T) {
	reg := testRegistry(t, flagDebugger{})
	diags := lintSource(t, "function f() {\n  debugger;\n}\n", reg, nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "test/flag-debugger", diags[0].Code)
	assert.Equal(t, diagnostics.SeverityWarning, diags[0].Severity)
	assert.Equal(t, uint32(17), diags[0].Span.Start)
}

func TestEveryNodeVisited(t *testing.T) {
	seen := 0
	reg := testRegistry(t, countNodes{seen: &seen})
	diags := lintSource(t, "const x = a + b;", reg, nil)
	assert.Empty(t, diags)
	// Program, declaration, declarator, binding identifier, binary
	// expression, two references at minimum.
	assert.GreaterOrEqual(t, seen, 7)
}

func TestSeverityOverride(t *testing.T) {
	reg := testRegistry(t, flagDebugger{})
	diags := lintSource(t, "debugger;", reg, func(l *Linter) {
		l.SetSeverity("test/flag-debugger", diagnostics.SeverityError)
	})
	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.SeverityError, diags[0].Severity)
}

func TestDisabledRule(t *testing.T) {
	reg := testRegistry(t, flagDebugger{})
	diags := lintSource(t, "debugger;", reg, func(l *Linter) {
		l.Disable("test/flag-debugger")
	})
	assert.Empty(t, diags)
}

func TestReenableViaSetSeverity(t *testing.T) {
	reg := testRegistry(t, flagDebugger{})
	diags := lintSource(t, "debugger;", reg, func(l *Linter) {
		l.Disable("test/flag-debugger")
		l.SetSeverity("test/flag-debugger", diagnostics.SeverityAdvice)
	})
	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.SeverityAdvice, diags[0].Severity)
}

func TestRegistryDuplicate(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(flagDebugger{}))
	assert.Error(t, reg.Register(flagDebugger{}))
}

func TestRegistryLookupAndOrder(t *testing.T) {
	seen := 0
	reg := testRegistry(t, flagDebugger{}, countNodes{seen: &seen})

	_, ok := reg.Lookup("test/flag-debugger")
	assert.True(t, ok)
	_, ok = reg.Lookup("test/no-such-rule")
	assert.False(t, ok)

	all := reg.All()
	require.Len(t, all, 2)
	assert.Equal(t, "test/count-nodes", RuleID(all[0]))
	assert.Equal(t, "test/flag-debugger", RuleID(all[1]))
}

func TestContextSource(t *testing.T) {
	file := span.NewFile("test.ts", "debugger;")
	ctx := &Context{File: file}
	assert.Equal(t, "debugger", ctx.Source(span.Span{Start: 0, End: 8}))
}

func TestRunToleratesRecoveredTrees(t *testing.T) {
	// Rules must tolerate the invalid nodes left behind by parser
	// recovery without panicking.
	file := span.NewFile("test.ts", "let x = ;\ndebugger;")
	bag := diagnostics.NewBag()
	program := parser.New(file, ast.NewAllocator(), bag, parser.Options{
		SourceType: ast.SourceModule,
		TypeScript: true,
	}).Parse()
	require.True(t, bag.HasErrors())

	l := New(testRegistry(t, flagDebugger{}))
	l.Run(file, program, bag)

	found := false
	for _, d := range bag.Diagnostics() {
		if d.Code == "test/flag-debugger" {
			found = true
		}
	}
	assert.True(t, found)
}
