package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyanite-dev/kyanite/internal/ast"
)

func TestRecoverAcrossStatements(t *testing.T) {
	prog, bag := parseTS(t, "let x = ;\nlet y = 2;")
	assert.True(t, bag.HasErrors())
	require.Len(t, prog.Body, 2)
	decl, ok := prog.Body[1].(*ast.VariableDeclaration)
	require.True(t, ok)
	require.Len(t, decl.Declarations, 1)
	id, ok := decl.Declarations[0].ID.Kind.(*ast.BindingIdentifier)
	require.True(t, ok)
	assert.Equal(t, "y", id.Name)
}

func TestRecoverFromLeadingJunk(t *testing.T) {
	prog, bag := parseTS(t, ")\nconst ok = 1;")
	assert.True(t, bag.HasErrors())
	require.NotEmpty(t, prog.Body)
	last := prog.Body[len(prog.Body)-1]
	_, ok := last.(*ast.VariableDeclaration)
	assert.True(t, ok)
}

func TestRecoverInObjectLiteral(t *testing.T) {
	prog, bag := parseTS(t, "const o = { a: 1, @@bad, b: 2 };")
	assert.True(t, bag.HasErrors())
	require.Len(t, prog.Body, 1)
}

func TestRecoverInClassBody(t *testing.T) {
	prog, bag := parseTS(t, "class C { m() {} %%%; n() {} }\nlet after = 1;")
	assert.True(t, bag.HasErrors())
	require.Len(t, prog.Body, 2)
	cls, ok := prog.Body[0].(*ast.Class)
	require.True(t, ok)
	// Both well-formed methods survive around the junk member.
	assert.Len(t, cls.Body.Elements, 2)
	_, ok = prog.Body[1].(*ast.VariableDeclaration)
	assert.True(t, ok)
}

func TestInvalidNodesKeepTreeComplete(t *testing.T) {
	prog, bag := parseTS(t, "let a = +;\nlet b = 1;")
	assert.True(t, bag.HasErrors())
	require.Len(t, prog.Body, 2)
}

func TestUnexpectedTokenDoesNotLoop(t *testing.T) {
	// A lone `}` matches no production; the parser must still reach EOF.
	prog, bag := parseTS(t, "}\n}\nlet done = 1;")
	assert.True(t, bag.HasErrors())
	require.NotEmpty(t, prog.Body)
	last := prog.Body[len(prog.Body)-1]
	_, ok := last.(*ast.VariableDeclaration)
	assert.True(t, ok)
}

func TestSpeculativeRewindDropsDiagnostics(t *testing.T) {
	// `a < b` tries type arguments, fails, and must not leak the
	// speculative diagnostics into the result.
	_, bag := parseTS(t, "let cmp = a < b;")
	requireClean(t, bag)
}

func TestContextRestoredAfterFunction(t *testing.T) {
	// `await` is an operator inside the async function and an
	// identifier again afterwards in script code.
	_, bag := parseJS(t, "async function f() { await g(); }\nvar await = 1;")
	requireClean(t, bag)
}

func TestContextRestoredAfterGenerator(t *testing.T) {
	_, bag := parseJS(t, "function* g() { yield 1; }\nvar yield = 2;")
	requireClean(t, bag)
}

func TestDeepMemberChainWithinLimit(t *testing.T) {
	src := "x"
	for i := 0; i < 200; i++ {
		src += ".p"
	}
	_, bag := parseTS(t, src+";")
	requireClean(t, bag)
}
