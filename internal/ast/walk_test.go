package ast_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/diagnostics"
	"github.com/kyanite-dev/kyanite/internal/parser"
	"github.com/kyanite-dev/kyanite/internal/span"
)

type collector struct {
	types map[string]int
}

func (c *collector) Visit(node ast.Node) ast.Visitor {
	t := reflect.TypeOf(node)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	c.types[t.Name()]++
	return c
}

func parseForWalk(t *testing.T, src string) *ast.Program {
	t.Helper()
	file := span.NewFile("walk.ts", src)
	bag := diagnostics.NewBag()
	program := parser.New(file, ast.NewAllocator(), bag, parser.Options{
		SourceType: ast.SourceModule,
		TypeScript: true,
	}).Parse()
	require.False(t, bag.HasErrors(), "parse failed: %v", bag.Diagnostics())
	return program
}

func TestWalkCoversGrammar(t *testing.T) {
	src := `
"use strict";
import { a as b } from "m";
export default class C extends Base implements I<number> {
  #count = 0;
  static block = 1;
  constructor(private x: string) { super(); }
  async *gen(): AsyncGenerator<number> { yield* this.#count; }
  get value() { return this.x; }
}
interface I<T> { (x: T): T; readonly n?: number; [k: string]: unknown; }
type Pair<K extends string = "k"> = { [P in K as P]: [first: K, ...rest: K[]] };
enum E { A = 1, B }
namespace NS { export const v = 1; }
function f({ p = 1 }: { p?: number }, ...rest: number[]) {
  label: for (const [i] of rest) {
    if (i in E) continue label;
    try { throw new Error(` + "`${i}`" + `); } catch { break; }
  }
  return f ?? null;
}
const arrow = <T>(x: T): T => x;
let tpl = ` + "`a${1}b`" + `;
let re = /x/g.source;
export { f as g };
`
	program := parseForWalk(t, src)
	c := &collector{types: make(map[string]int)}
	ast.Walk(c, program)

	for _, want := range []string{
		"Program", "Directive", "ImportDeclaration", "ImportSpecifier",
		"ExportDefaultDeclaration", "ExportNamedDeclaration",
		"Class", "MethodDefinition", "PropertyDefinition", "PrivateIdentifier",
		"TSClassImplements", "TSInterfaceDeclaration", "TSIndexSignature",
		"TSTypeAliasDeclaration", "TSMappedType", "TSTupleType",
		"TSEnumDeclaration", "TSEnumMember", "TSModuleDeclaration",
		"Function", "FormalParameters", "BindingRestElement", "ObjectPattern",
		"ArrayPattern", "LabeledStatement", "ForOfStatement", "IfStatement",
		"BinaryExpression", "TryStatement", "CatchClause", "ThrowStatement",
		"NewExpression", "TemplateLiteral", "YieldExpression",
		"ArrowFunctionExpression", "LogicalExpression", "RegExpLiteral",
		"MemberExpression", "CallExpression", "ReturnStatement",
		"VariableDeclaration", "BindingIdentifier", "IdentifierReference",
	} {
		assert.Positivef(t, c.types[want], "node type %s never visited", want)
	}
}

func TestWalkPrunesOnNil(t *testing.T) {
	program := parseForWalk(t, "function outer() { inner(); }")

	// Stop descent at the function, so nothing inside its body is
	// seen.
	c := &collector{types: make(map[string]int)}
	ast.Walk(pruneAt{inner: c}, program)
	assert.Zero(t, c.types["CallExpression"])
	assert.Positive(t, c.types["Function"])
}

type pruneAt struct {
	inner *collector
}

func (p pruneAt) Visit(node ast.Node) ast.Visitor {
	p.inner.Visit(node)
	if _, ok := node.(*ast.Function); ok {
		return nil
	}
	return p
}

func TestWalkToleratesPartialNodes(t *testing.T) {
	// Nodes produced by error recovery have nil fields; the walker
	// must skip them instead of dereferencing.
	file := span.NewFile("walk.ts", "let x = ;\nclass { }")
	bag := diagnostics.NewBag()
	program := parser.New(file, ast.NewAllocator(), bag, parser.Options{
		SourceType: ast.SourceModule,
		TypeScript: true,
	}).Parse()
	require.True(t, bag.HasErrors())

	c := &collector{types: make(map[string]int)}
	assert.NotPanics(t, func() { ast.Walk(c, program) })
	assert.Positive(t, c.types["Program"])
}
