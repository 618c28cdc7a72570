package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/diagnostics"
	"github.com/kyanite-dev/kyanite/internal/span"
)

// parseTS parses src as a TypeScript module.
func parseTS(t *testing.T, src string) (*ast.Program, *diagnostics.Bag) {
	t.Helper()
	bag := diagnostics.NewBag()
	p := New(span.NewFile("test.ts", src), ast.NewAllocator(), bag, Options{
		TypeScript: true,
		SourceType: ast.SourceModule,
	})
	prog := p.Parse()
	require.NotNil(t, prog)
	return prog, bag
}

// parseJS parses src as a plain JavaScript script.
func parseJS(t *testing.T, src string) (*ast.Program, *diagnostics.Bag) {
	t.Helper()
	bag := diagnostics.NewBag()
	p := New(span.NewFile("test.js", src), ast.NewAllocator(), bag, Options{
		TypeScript: false,
		SourceType: ast.SourceScript,
	})
	prog := p.Parse()
	require.NotNil(t, prog)
	return prog, bag
}

func requireClean(t *testing.T, bag *diagnostics.Bag) {
	t.Helper()
	if bag.HasErrors() {
		for _, d := range bag.Diagnostics() {
			t.Logf("diagnostic: %s", d.Message)
		}
		t.Fatal("unexpected diagnostics")
	}
}

func TestParseDirectivePrologue(t *testing.T) {
	prog, bag := parseTS(t, "\"use strict\";\n'other';\nlet x = 1;")
	requireClean(t, bag)
	require.Len(t, prog.Directives, 2)
	assert.Equal(t, "use strict", prog.Directives[0].Value)
	require.Len(t, prog.Body, 1)
}

func TestParseVariableDeclarations(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind ast.VariableKind
		n    int
	}{
		{"var single", "var a;", ast.VariableVar, 1},
		{"let pair", "let a = 1, b = 2;", ast.VariableLet, 2},
		{"const init", "const a = f();", ast.VariableConst, 1},
		{"destructuring", "let {a, b: [c]} = obj;", ast.VariableLet, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, bag := parseTS(t, tt.src)
			requireClean(t, bag)
			require.Len(t, prog.Body, 1)
			decl, ok := prog.Body[0].(*ast.VariableDeclaration)
			require.True(t, ok)
			assert.Equal(t, tt.kind, decl.Kind)
			assert.Len(t, decl.Declarations, tt.n)
		})
	}
}

func TestConstWithoutInitializer(t *testing.T) {
	_, bag := parseJS(t, "const a;")
	assert.True(t, bag.HasErrors())
}

func TestExpectedTokenLabel(t *testing.T) {
	_, bag := parseTS(t, "if (x {}")
	diags := bag.Diagnostics()
	require.NotEmpty(t, diags)
	d := diags[0]
	assert.Equal(t, "Expected `)` but found `{`", d.Message)
	require.Len(t, d.Labels, 1)
	assert.Equal(t, "`)` expected", d.Labels[0].Message)
	assert.Equal(t, uint32(6), d.Labels[0].Span.Start)
}

func TestAutomaticSemicolonInsertion(t *testing.T) {
	prog, bag := parseTS(t, "let a = 1\nlet b = 2")
	requireClean(t, bag)
	assert.Len(t, prog.Body, 2)
}

func TestLabeledStatement(t *testing.T) {
	prog, bag := parseTS(t, "outer: for (;;) { break outer; }")
	requireClean(t, bag)
	require.Len(t, prog.Body, 1)
	labeled, ok := prog.Body[0].(*ast.LabeledStatement)
	require.True(t, ok)
	assert.Equal(t, "outer", labeled.Label.Name)
}

func TestForVariants(t *testing.T) {
	tests := []string{
		"for (let i = 0; i < n; i++) {}",
		"for (;;) break;",
		"for (const k in obj) {}",
		"for (const v of list) {}",
		"async function f() { for await (const v of gen()) {} }",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, bag := parseTS(t, src)
			requireClean(t, bag)
		})
	}
}

func TestForInWithInitializer(t *testing.T) {
	_, bag := parseTS(t, "for (let x = 1 in obj) {}")
	assert.True(t, bag.HasErrors())
}

func TestSwitchDuplicateDefault(t *testing.T) {
	_, bag := parseTS(t, "switch (x) { default: break; default: break; }")
	assert.True(t, bag.HasErrors())
}

func TestTryCatchOptionalBinding(t *testing.T) {
	prog, bag := parseTS(t, "try { f(); } catch { g(); } finally { h(); }")
	requireClean(t, bag)
	require.Len(t, prog.Body, 1)
	try, ok := prog.Body[0].(*ast.TryStatement)
	require.True(t, ok)
	require.NotNil(t, try.Handler)
	assert.Nil(t, try.Handler.Param)
	assert.NotNil(t, try.Finalizer)
}

func TestThrowRequiresSameLineArgument(t *testing.T) {
	_, bag := parseTS(t, "function f() { throw\nnew Error(); }")
	assert.True(t, bag.HasErrors())
}

func TestReturnOutsideFunction(t *testing.T) {
	_, bag := parseTS(t, "return 1;")
	assert.True(t, bag.HasErrors())
}

func TestNestingDepthLimit(t *testing.T) {
	src := ""
	for i := 0; i < maxNestingDepth+8; i++ {
		src += "("
	}
	src += "x"
	for i := 0; i < maxNestingDepth+8; i++ {
		src += ")"
	}
	_, bag := parseTS(t, "let a = "+src+";")
	assert.True(t, bag.HasErrors())
}

func TestImportForms(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		specs int
	}{
		{"side effect", `import "polyfill";`, 0},
		{"default", `import d from "m";`, 1},
		{"namespace", `import * as ns from "m";`, 1},
		{"named", `import { a, b as c } from "m";`, 2},
		{"default and named", `import d, { a } from "m";`, 2},
		{"type only", `import type { T } from "m";`, 1},
		{"inline type", `import { type T, v } from "m";`, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, bag := parseTS(t, tt.src)
			requireClean(t, bag)
			require.Len(t, prog.Body, 1)
			decl, ok := prog.Body[0].(*ast.ImportDeclaration)
			require.True(t, ok)
			assert.Len(t, decl.Specifiers, tt.specs)
			require.NotNil(t, decl.Source)
		})
	}
}

func TestImportTypeKind(t *testing.T) {
	prog, bag := parseTS(t, `import type { T } from "m";`)
	requireClean(t, bag)
	decl := prog.Body[0].(*ast.ImportDeclaration)
	assert.Equal(t, ast.ImportExportType, decl.ImportKind)

	prog, bag = parseTS(t, `import { type T } from "m";`)
	requireClean(t, bag)
	decl = prog.Body[0].(*ast.ImportDeclaration)
	assert.Equal(t, ast.ImportExportValue, decl.ImportKind)
	spec := decl.Specifiers[0].(*ast.ImportSpecifier)
	assert.Equal(t, ast.ImportExportType, spec.ImportKind)
}

func TestImportDefaultNamedType(t *testing.T) {
	// `type` used as a plain default binding name.
	prog, bag := parseTS(t, `import type from "m";`)
	requireClean(t, bag)
	decl := prog.Body[0].(*ast.ImportDeclaration)
	assert.Equal(t, ast.ImportExportValue, decl.ImportKind)
	require.Len(t, decl.Specifiers, 1)
	def := decl.Specifiers[0].(*ast.ImportDefaultSpecifier)
	assert.Equal(t, "type", def.Local.Name)
}

func TestImportOutsideModule(t *testing.T) {
	_, bag := parseJS(t, `import x from "m";`)
	assert.True(t, bag.HasErrors())
}

func TestExportForms(t *testing.T) {
	tests := []string{
		`export { a, b as c };`,
		`export { a } from "m";`,
		`export * from "m";`,
		`export * as ns from "m";`,
		`export const x = 1;`,
		`export function f() {}`,
		`export async function g() {}`,
		`export class C {}`,
		`export default class {}`,
		`export default function () {}`,
		`export default 42;`,
		`export type { T } from "m";`,
		`export interface I { x: number }`,
		`export type Alias = string;`,
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			prog, bag := parseTS(t, src)
			requireClean(t, bag)
			require.Len(t, prog.Body, 1)
		})
	}
}

func TestExportDefaultDuplicate(t *testing.T) {
	_, bag := parseTS(t, "export default 1;\nexport default 2;")
	assert.True(t, bag.HasErrors())
}

func TestExportAllAlias(t *testing.T) {
	prog, bag := parseTS(t, `export * as ns from "m";`)
	requireClean(t, bag)
	decl := prog.Body[0].(*ast.ExportAllDeclaration)
	require.NotNil(t, decl.Exported)
	assert.Equal(t, "ns", decl.Exported.Name)
}
