package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyanite-dev/kyanite/internal/ast"
)

func TestFunctionDeclaration(t *testing.T) {
	prog, bag := parseTS(t, "function add(a: number, b: number): number { return a + b; }")
	requireClean(t, bag)
	require.Len(t, prog.Body, 1)
	fn, ok := prog.Body[0].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, ast.FunctionTypeDeclaration, fn.Type)
	require.NotNil(t, fn.ID)
	assert.Equal(t, "add", fn.ID.Name)
	require.NotNil(t, fn.Params)
	assert.Len(t, fn.Params.Items, 2)
	assert.NotNil(t, fn.ReturnType)
	assert.NotNil(t, fn.Body)
}

func TestFunctionTypeDerivation(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want ast.FunctionType
	}{
		{"declaration", "function f() {}", ast.FunctionTypeDeclaration},
		{"overload signature", "function f(a: string): void;", ast.TSDeclareFunction},
		{"ambient", "declare function f(): void;", ast.TSDeclareFunction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, bag := parseTS(t, tt.src)
			requireClean(t, bag)
			require.Len(t, prog.Body, 1)
			fn, ok := prog.Body[0].(*ast.Function)
			require.True(t, ok)
			assert.Equal(t, tt.want, fn.Type)
		})
	}
}

func TestBodilessFunctionsConsumeSemicolon(t *testing.T) {
	prog, bag := parseTS(t, "function f(): void;\nfunction g(): void;")
	requireClean(t, bag)
	require.Len(t, prog.Body, 2)
	for _, stmt := range prog.Body {
		fn, ok := stmt.(*ast.Function)
		require.True(t, ok)
		assert.Equal(t, ast.TSDeclareFunction, fn.Type)
	}
}

func TestBodilessFunctionRequiresTerminator(t *testing.T) {
	// No line break, so automatic semicolon insertion cannot apply.
	prog, bag := parseTS(t, "declare function f(): void declare function g(): void")
	assert.True(t, bag.HasErrors())
	assert.Len(t, prog.Body, 2)
}

func TestFunctionExpressionType(t *testing.T) {
	prog, bag := parseTS(t, "const f = function named() {};")
	requireClean(t, bag)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	fn, ok := decl.Declarations[0].Init.(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, ast.FunctionTypeExpression, fn.Type)
	require.NotNil(t, fn.ID)
	assert.Equal(t, "named", fn.ID.Name)
}

func TestDeclareFunctionCarriesFlag(t *testing.T) {
	prog, bag := parseTS(t, "declare function f(): void;")
	requireClean(t, bag)
	fn := prog.Body[0].(*ast.Function)
	assert.True(t, fn.Declare)
	assert.Nil(t, fn.Body)
}

func TestFunctionMissingBodyInJS(t *testing.T) {
	_, bag := parseJS(t, "function f();")
	assert.True(t, bag.HasErrors())
}

func TestFunctionMissingName(t *testing.T) {
	_, bag := parseJS(t, "function (a) {}")
	assert.True(t, bag.HasErrors())
}

func TestFunctionNameReservedKeyword(t *testing.T) {
	// The keyword stays in place so it can open the next statement.
	prog, bag := parseJS(t, "function\nif (x) { g(); }")
	assert.True(t, bag.HasErrors())
	require.Len(t, prog.Body, 2)
	_, ok := prog.Body[1].(*ast.IfStatement)
	assert.True(t, ok)
}

func TestAsyncGeneratorFunctions(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		async     bool
		generator bool
	}{
		{"plain", "function f() {}", false, false},
		{"async", "async function f() {}", true, false},
		{"generator", "function* f() {}", false, true},
		{"async generator", "async function* f() {}", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, bag := parseTS(t, tt.src)
			requireClean(t, bag)
			fn := prog.Body[0].(*ast.Function)
			assert.Equal(t, tt.async, fn.Async)
			assert.Equal(t, tt.generator, fn.Generator)
		})
	}
}

func TestFunctionInSingleStatementPosition(t *testing.T) {
	// Annex B admits the plain form in sloppy scripts.
	_, bag := parseJS(t, "if (x) function f() {}")
	requireClean(t, bag)

	_, bag = parseTS(t, "if (x) function f() {}")
	assert.True(t, bag.HasErrors())
}

func TestAsyncFunctionInSingleStatementPosition(t *testing.T) {
	_, bag := parseTS(t, "if (x) async function f() {}")
	assert.True(t, bag.HasErrors())

	_, bag = parseTS(t, "if (x) { async function f() {} }")
	requireClean(t, bag)
}

func TestRestParameterMustBeLast(t *testing.T) {
	_, bag := parseTS(t, "function f(...rest, after) {}")
	assert.True(t, bag.HasErrors())
}

func TestRestParameterNoInitializer(t *testing.T) {
	_, bag := parseTS(t, "function f(...rest = []) {}")
	assert.True(t, bag.HasErrors())
}

func TestThisParameter(t *testing.T) {
	prog, bag := parseTS(t, "function f(this: Window, x: number) {}")
	requireClean(t, bag)
	fn := prog.Body[0].(*ast.Function)
	require.NotNil(t, fn.ThisParam)
	assert.Len(t, fn.Params.Items, 1)
}

func TestParameterDefaults(t *testing.T) {
	prog, bag := parseTS(t, "function f(a = 1, {b} = {}) {}")
	requireClean(t, bag)
	fn := prog.Body[0].(*ast.Function)
	assert.Len(t, fn.Params.Items, 2)
}

func TestYieldInGenerator(t *testing.T) {
	tests := []string{
		"function* g() { yield; }",
		"function* g() { yield 1; }",
		"function* g() { yield* inner(); }",
		"function* g() { const x = yield req(); }",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, bag := parseTS(t, src)
			requireClean(t, bag)
		})
	}
}

func TestYieldArgumentKeepsYieldContext(t *testing.T) {
	// The argument parses with yield in force even when the surrounding
	// context lacks it, so the nested form stays a yield expression.
	prog, bag := parseJS(t, "yield* yield 1;")
	require.Len(t, bag.Diagnostics(), 1)
	stmt, ok := prog.Body[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	outer, ok := stmt.Expression.(*ast.YieldExpression)
	require.True(t, ok)
	assert.True(t, outer.Delegate)
	inner, ok := outer.Argument.(*ast.YieldExpression)
	require.True(t, ok)
	assert.NotNil(t, inner.Argument)
}

func TestYieldNewlineEndsArgument(t *testing.T) {
	prog, bag := parseTS(t, "function* g() { yield\ncount; }")
	requireClean(t, bag)
	fn := prog.Body[0].(*ast.Function)
	// The line break splits `yield` and `count` into two statements.
	assert.Len(t, fn.Body.Statements, 2)
}

func TestYieldOutsideGenerator(t *testing.T) {
	_, bag := parseTS(t, "function f() { yield 1; }")
	assert.True(t, bag.HasErrors())
}

func TestAwaitInAsyncFunction(t *testing.T) {
	_, bag := parseTS(t, "async function f() { const r = await fetch(url); }")
	requireClean(t, bag)
}

func TestAwaitOutsideAsync(t *testing.T) {
	_, bag := parseJS(t, "function f() { const r = await g(); }")
	assert.True(t, bag.HasErrors())
}

func TestAwaitAsIdentifierInScript(t *testing.T) {
	_, bag := parseJS(t, "var await = 1;")
	requireClean(t, bag)
}

func TestTopLevelAwaitInModule(t *testing.T) {
	_, bag := parseTS(t, "const data = await load();")
	requireClean(t, bag)
}

func TestArrowFunctions(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		expression bool
	}{
		{"simple", "const f = x => x;", true},
		{"parenthesized", "const f = (a, b) => a + b;", true},
		{"block body", "const f = (a) => { return a; };", false},
		{"async simple", "const f = async x => x;", true},
		{"async parenthesized", "const f = async (a, b) => a * b;", true},
		{"typed", "const f = (x: number): number => x;", true},
		{"generic", "const f = <T>(x: T): T => x;", true},
		{"no params", "const f = () => 0;", true},
		{"rest", "const f = (...xs) => xs;", true},
		{"destructured", "const f = ({a}, [b]) => a + b;", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, bag := parseTS(t, tt.src)
			requireClean(t, bag)
			decl := prog.Body[0].(*ast.VariableDeclaration)
			arrow, ok := decl.Declarations[0].Init.(*ast.ArrowFunctionExpression)
			require.True(t, ok)
			assert.Equal(t, tt.expression, arrow.Expression)
		})
	}
}

func TestParenthesizedNotArrow(t *testing.T) {
	// The head looks like parameters but never reaches `=>`.
	prog, bag := parseTS(t, "const x = (a, b);")
	requireClean(t, bag)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	_, isArrow := decl.Declarations[0].Init.(*ast.ArrowFunctionExpression)
	assert.False(t, isArrow)
}

func TestNewlineBeforeArrowDiagnosed(t *testing.T) {
	_, bag := parseTS(t, "const f = (a)\n=> a;")
	assert.True(t, bag.HasErrors())
}

func TestGetterSetterArity(t *testing.T) {
	_, bag := parseTS(t, "const o = { get x() { return 1; }, set x(v) {} };")
	requireClean(t, bag)

	_, bag = parseTS(t, "const o = { get x(extra) { return 1; } };")
	assert.True(t, bag.HasErrors())

	_, bag = parseTS(t, "const o = { set x() {} };")
	assert.True(t, bag.HasErrors())

	_, bag = parseTS(t, "const o = { set x(...v) {} };")
	assert.True(t, bag.HasErrors())
}

func TestObjectMethods(t *testing.T) {
	_, bag := parseTS(t, "const o = { m() {}, async n() {}, *gen() {}, async *agen() {}, [key]() {} };")
	requireClean(t, bag)
}
