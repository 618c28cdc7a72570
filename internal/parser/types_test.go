package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyanite-dev/kyanite/internal/ast"
)

func aliasType(t *testing.T, prog *ast.Program) ast.TSType {
	t.Helper()
	decl, ok := prog.Body[0].(*ast.TSTypeAliasDeclaration)
	require.True(t, ok)
	return decl.TypeAnnotation
}

func TestTypeAliasForms(t *testing.T) {
	tests := []string{
		"type A = string;",
		"type B = string | number | boolean;",
		"type C = Base & Mixin;",
		"type D = string[];",
		"type E = Matrix[number][number];",
		"type F = keyof Config;",
		"type G = typeof globalThis;",
		"type H = \"literal\" | 42 | -1 | true;",
		"type I = (string | number)[];",
		"type J = Map<string, Set<number>>;",
		"type K = A.B.C<D>;",
		"type L = readonly string[];",
		"type M = unique symbol;",
		"type N = { a: string; b?: number };",
		"type O = [string, number?, ...boolean[]];",
		"type P = [name: string, age?: number];",
		"type Q = () => void;",
		"type R = (x: number, ...rest: string[]) => Promise<void>;",
		"type S = new (x: number) => Instance;",
		"type T = abstract new () => Base;",
		"type U = <V>(x: V) => V;",
		"type W = `prefix-${string}`;",
		"type X = null | undefined | void | never | unknown | any;",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			prog, bag := parseTS(t, src)
			requireClean(t, bag)
			require.Len(t, prog.Body, 1)
			require.NotNil(t, aliasType(t, prog))
		})
	}
}

func TestConditionalType(t *testing.T) {
	prog, bag := parseTS(t, "type X<T> = T extends string ? A : B;")
	requireClean(t, bag)
	cond, ok := aliasType(t, prog).(*ast.TSConditionalType)
	require.True(t, ok)
	assert.NotNil(t, cond.CheckType)
	assert.NotNil(t, cond.ExtendsType)
	assert.NotNil(t, cond.TrueType)
	assert.NotNil(t, cond.FalseType)
}

func TestInferType(t *testing.T) {
	_, bag := parseTS(t, "type Unwrap<T> = T extends Promise<infer U> ? U : T;")
	requireClean(t, bag)
}

func TestMappedType(t *testing.T) {
	tests := []string{
		"type M = { [K in keyof T]: T[K] };",
		"type M = { readonly [K in Keys]?: V };",
		"type M = { -readonly [K in Keys]-?: V };",
		"type M = { [K in Keys as `get${K}`]: () => T[K] };",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			prog, bag := parseTS(t, src)
			requireClean(t, bag)
			_, ok := aliasType(t, prog).(*ast.TSMappedType)
			assert.True(t, ok)
		})
	}
}

func TestUnionIntersectionShape(t *testing.T) {
	prog, bag := parseTS(t, "type U = A | B & C | D;")
	requireClean(t, bag)
	union, ok := aliasType(t, prog).(*ast.TSUnionType)
	require.True(t, ok)
	require.Len(t, union.Types, 3)
	_, ok = union.Types[1].(*ast.TSIntersectionType)
	assert.True(t, ok)
}

func TestLeadingUnionPipe(t *testing.T) {
	_, bag := parseTS(t, "type U =\n  | A\n  | B;")
	requireClean(t, bag)
}

func TestInterfaceDeclaration(t *testing.T) {
	prog, bag := parseTS(t, `interface Shape<T> extends Base<T>, Serializable {
		kind: string;
		readonly size?: number;
		area(): number;
		get name(): string;
		set name(v: string);
		[key: string]: unknown;
		(x: number): T;
		new (x: number): Shape<T>;
	}`)
	requireClean(t, bag)
	decl, ok := prog.Body[0].(*ast.TSInterfaceDeclaration)
	require.True(t, ok)
	assert.Equal(t, "Shape", decl.ID.Name)
	assert.NotNil(t, decl.TypeParameters)
	assert.Len(t, decl.Extends, 2)
	assert.Len(t, decl.Body.Body, 8)
}

func TestInterfaceImplementsRejected(t *testing.T) {
	_, bag := parseTS(t, "interface A implements B {}")
	assert.True(t, bag.HasErrors())
}

func TestEnumDeclaration(t *testing.T) {
	prog, bag := parseTS(t, `enum Direction { Up, Down = 2, "Left" = 3, Right = Down + 1 }`)
	requireClean(t, bag)
	decl, ok := prog.Body[0].(*ast.TSEnumDeclaration)
	require.True(t, ok)
	assert.False(t, decl.Const)
	assert.Len(t, decl.Members, 4)
}

func TestConstEnum(t *testing.T) {
	prog, bag := parseTS(t, "const enum Flags { A = 1, B = 2 }")
	requireClean(t, bag)
	decl, ok := prog.Body[0].(*ast.TSEnumDeclaration)
	require.True(t, ok)
	assert.True(t, decl.Const)
}

func TestNamespaceDeclaration(t *testing.T) {
	prog, bag := parseTS(t, "namespace A.B { export const x = 1; }")
	requireClean(t, bag)
	decl, ok := prog.Body[0].(*ast.TSModuleDeclaration)
	require.True(t, ok)
	assert.Equal(t, ast.TSModuleKindNamespace, decl.Kind)
	require.NotNil(t, decl.Body)
	assert.Len(t, decl.Body.Body, 1)
}

func TestAmbientModule(t *testing.T) {
	prog, bag := parseTS(t, `declare module "fs" { export function readFile(p: string): Buffer; }`)
	requireClean(t, bag)
	decl, ok := prog.Body[0].(*ast.TSModuleDeclaration)
	require.True(t, ok)
	assert.Equal(t, ast.TSModuleKindModule, decl.Kind)
	assert.True(t, decl.Declare)
}

func TestGlobalAugmentation(t *testing.T) {
	prog, bag := parseTS(t, "declare global { interface Window { custom: string; } }")
	requireClean(t, bag)
	decl, ok := prog.Body[0].(*ast.TSModuleDeclaration)
	require.True(t, ok)
	assert.Equal(t, ast.TSModuleKindGlobal, decl.Kind)
}

func TestDeclareVariable(t *testing.T) {
	prog, bag := parseTS(t, "declare const VERSION: string;")
	requireClean(t, bag)
	decl, ok := prog.Body[0].(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.True(t, decl.Declare)
}

func TestTypeParameterVariance(t *testing.T) {
	prog, bag := parseTS(t, "interface Box<in out T, const U> { value: T; }")
	requireClean(t, bag)
	decl := prog.Body[0].(*ast.TSInterfaceDeclaration)
	require.NotNil(t, decl.TypeParameters)
	require.Len(t, decl.TypeParameters.Params, 2)
	first := decl.TypeParameters.Params[0]
	assert.True(t, first.In)
	assert.True(t, first.Out)
	second := decl.TypeParameters.Params[1]
	assert.True(t, second.Const)
}

func TestTypeParameterDefaults(t *testing.T) {
	_, bag := parseTS(t, "type Pair<A, B extends A = A> = [A, B];")
	requireClean(t, bag)
}

func TestEmptyTypeParameterList(t *testing.T) {
	_, bag := parseTS(t, "type X<> = number;")
	assert.True(t, bag.HasErrors())
}

func TestEmptyTypeArgumentList(t *testing.T) {
	_, bag := parseTS(t, "let x: Map<> = y;")
	assert.True(t, bag.HasErrors())
}

func TestTypePredicates(t *testing.T) {
	tests := []string{
		"function isFoo(x: unknown): x is Foo { return true; }",
		"function assertFoo(x: unknown): asserts x is Foo {}",
		"function assertDefined(x: unknown): asserts x {}",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, bag := parseTS(t, src)
			requireClean(t, bag)
		})
	}
}

func TestDefiniteAssignmentAssertion(t *testing.T) {
	_, bag := parseTS(t, "let x!: number;")
	requireClean(t, bag)

	_, bag = parseTS(t, "let x!: number = 1;")
	assert.True(t, bag.HasErrors())
}

func TestAnnotationsRejectedInJS(t *testing.T) {
	_, bag := parseJS(t, "let x: number = 1;")
	assert.True(t, bag.HasErrors())
}

func TestOptionalParameterAndProperty(t *testing.T) {
	_, bag := parseTS(t, "function f(x?: number) {}")
	requireClean(t, bag)
}
