package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyanite-dev/kyanite/internal/ast"
)

func firstInit(t *testing.T, prog *ast.Program) ast.Expr {
	t.Helper()
	decl, ok := prog.Body[0].(*ast.VariableDeclaration)
	require.True(t, ok)
	require.NotEmpty(t, decl.Declarations)
	return decl.Declarations[0].Init
}

func TestBinaryPrecedence(t *testing.T) {
	prog, bag := parseTS(t, "let x = 1 + 2 * 3;")
	requireClean(t, bag)
	add, ok := firstInit(t, prog).(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "+", add.Operator)
	mul, ok := add.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "*", mul.Operator)
}

func TestExponentRightAssociative(t *testing.T) {
	prog, bag := parseTS(t, "let x = 2 ** 3 ** 4;")
	requireClean(t, bag)
	outer, ok := firstInit(t, prog).(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "**", outer.Operator)
	inner, ok := outer.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "**", inner.Operator)
}

func TestUnaryBeforeExponentRejected(t *testing.T) {
	_, bag := parseTS(t, "let x = -a ** b;")
	assert.True(t, bag.HasErrors())
}

func TestNullishMixing(t *testing.T) {
	_, bag := parseTS(t, "let x = a ?? b || c;")
	assert.True(t, bag.HasErrors())

	_, bag = parseTS(t, "let x = (a ?? b) || c;")
	requireClean(t, bag)
}

func TestLogicalAndConditional(t *testing.T) {
	tests := []string{
		"let x = a && b || c;",
		"let x = cond ? a : b;",
		"let x = a ?? b ?? c;",
		"let x = a ? b ? c : d : e;",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, bag := parseTS(t, src)
			requireClean(t, bag)
		})
	}
}

func TestMemberAndCallChains(t *testing.T) {
	tests := []string{
		"obj.a.b.c;",
		"obj[key][0];",
		"f()(g())();",
		"a?.b?.[c]?.();",
		"obj.#priv;",
		"new Foo(1, 2).bar();",
		"new new Outer().Inner();",
		"fn!();",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, bag := parseTS(t, src)
			requireClean(t, bag)
		})
	}
}

func TestTaggedTemplateAfterOptionalChain(t *testing.T) {
	_, bag := parseTS(t, "a?.b`template`;")
	assert.True(t, bag.HasErrors())
}

func TestComparisonNotTypeArguments(t *testing.T) {
	// `a < b > c` stays a pair of comparisons.
	prog, bag := parseTS(t, "let x = a < b > c;")
	requireClean(t, bag)
	outer, ok := firstInit(t, prog).(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, ">", outer.Operator)
}

func TestGenericCall(t *testing.T) {
	prog, bag := parseTS(t, "let x = make<string>(input);")
	requireClean(t, bag)
	call, ok := firstInit(t, prog).(*ast.CallExpression)
	require.True(t, ok)
	assert.NotNil(t, call.TypeArguments)
}

func TestNestedGenericCall(t *testing.T) {
	// The closing `>>` token must split into two type argument lists.
	_, bag := parseTS(t, "let x = wrap<Map<string, number>>(value);")
	requireClean(t, bag)
}

func TestInstantiationExpression(t *testing.T) {
	_, bag := parseTS(t, "const bound = make<string>;")
	requireClean(t, bag)
}

func TestTemplateLiterals(t *testing.T) {
	tests := []string{
		"let s = `plain`;",
		"let s = `a${x}b${y}c`;",
		"let s = tag`a${x}b`;",
		"let s = `${outer(`${inner}`)}`;",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, bag := parseTS(t, src)
			requireClean(t, bag)
		})
	}
}

func TestRegExpPrimary(t *testing.T) {
	_, bag := parseTS(t, "let re = /ab+c/gi;")
	requireClean(t, bag)

	_, bag = parseTS(t, "let ok = x / y / z;")
	requireClean(t, bag)
}

func TestAsAndSatisfies(t *testing.T) {
	prog, bag := parseTS(t, "let x = value as string;")
	requireClean(t, bag)
	_, ok := firstInit(t, prog).(*ast.TSAsExpression)
	assert.True(t, ok)

	prog, bag = parseTS(t, "let y = config satisfies Options;")
	requireClean(t, bag)
	_, ok = firstInit(t, prog).(*ast.TSSatisfiesExpression)
	assert.True(t, ok)
}

func TestAsInJSRejected(t *testing.T) {
	// `x as string` in JS is two statements at best; the cast must not
	// silently parse.
	prog, bag := parseJS(t, "let x = value as string;")
	_ = prog
	assert.True(t, bag.HasErrors())
}

func TestAngleBracketAssertion(t *testing.T) {
	_, bag := parseTS(t, "let x = <string>raw;")
	requireClean(t, bag)
}

func TestAssignmentTargets(t *testing.T) {
	valid := []string{
		"a = 1;",
		"obj.prop = 1;",
		"arr[0] = 1;",
		"[a, b] = pair;",
		"({a, b} = obj);",
		"a += 1;",
		"a ??= fallback;",
	}
	for _, src := range valid {
		t.Run(src, func(t *testing.T) {
			_, bag := parseTS(t, src)
			requireClean(t, bag)
		})
	}

	invalid := []string{
		"1 = 2;",
		"f() = 3;",
		"[a, b] += pair;",
	}
	for _, src := range invalid {
		t.Run(src, func(t *testing.T) {
			_, bag := parseTS(t, src)
			assert.True(t, bag.HasErrors())
		})
	}
}

func TestSequenceExpression(t *testing.T) {
	prog, bag := parseTS(t, "let x = (a, b, c);")
	requireClean(t, bag)
	_ = prog
}

func TestObjectLiterals(t *testing.T) {
	tests := []string{
		"const o = {};",
		"const o = { a: 1, b };",
		"const o = { ...spread, [computed]: v };",
		"const o = { \"str\": 1, 42: 2 };",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, bag := parseTS(t, src)
			requireClean(t, bag)
		})
	}
}

func TestArrayLiteralElisions(t *testing.T) {
	prog, bag := parseTS(t, "const a = [1, , 3, ...rest];")
	requireClean(t, bag)
	arr, ok := firstInit(t, prog).(*ast.ArrayExpression)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 4)
	assert.Nil(t, arr.Elements[1])
}

func TestNewTarget(t *testing.T) {
	_, bag := parseTS(t, "function f() { if (new.target) {} }")
	requireClean(t, bag)

	_, bag = parseTS(t, "if (new.target) {}")
	assert.True(t, bag.HasErrors())
}

func TestImportMetaAndDynamicImport(t *testing.T) {
	_, bag := parseTS(t, "const url = import.meta.url;")
	requireClean(t, bag)

	_, bag = parseTS(t, "const mod = await import(\"./m\");")
	requireClean(t, bag)

	_, bag = parseJS(t, "const url = import.meta.url;")
	assert.True(t, bag.HasErrors())
}

func TestPrivateFieldInCheck(t *testing.T) {
	_, bag := parseTS(t, "class C { #x; has(o) { return #x in o; } }")
	requireClean(t, bag)
}

func TestInOperatorGatedInForHead(t *testing.T) {
	// `in` inside a for-init must not terminate the init expression.
	_, bag := parseTS(t, "for (let i = (0 in arr); i; i--) {}")
	requireClean(t, bag)
}
