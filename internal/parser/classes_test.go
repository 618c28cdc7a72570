package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyanite-dev/kyanite/internal/ast"
)

func TestClassDeclaration(t *testing.T) {
	prog, bag := parseTS(t, `class Stack<T> extends Base<T> implements Container<T> {
		private items: T[] = [];
		static instances = 0;
		readonly capacity: number;

		constructor(capacity: number) {
			super();
			this.capacity = capacity;
		}

		push(item: T): void {}
		get size(): number { return this.items.length; }
		static create<T>(): Stack<T> { return new Stack(16); }
	}`)
	requireClean(t, bag)
	cls, ok := prog.Body[0].(*ast.Class)
	require.True(t, ok)
	assert.Equal(t, "Stack", cls.ID.Name)
	assert.NotNil(t, cls.TypeParameters)
	assert.NotNil(t, cls.SuperClass)
	assert.NotNil(t, cls.SuperTypeArguments)
	assert.Len(t, cls.Implements, 1)
	assert.Len(t, cls.Body.Elements, 7)
}

func TestClassMemberShapes(t *testing.T) {
	prog, bag := parseTS(t, `class C {
		#count = 0;
		x!: number;
		static #secret;
		accessor label = "a";
		static { C.ready = true; }
		[computed]() {}
		async *stream() {}
	}`)
	requireClean(t, bag)
	cls := prog.Body[0].(*ast.Class)
	require.Len(t, cls.Body.Elements, 7)

	field, ok := cls.Body.Elements[1].(*ast.PropertyDefinition)
	require.True(t, ok)
	assert.True(t, field.Definite)

	accessor, ok := cls.Body.Elements[3].(*ast.PropertyDefinition)
	require.True(t, ok)
	assert.True(t, accessor.Accessor)

	_, ok = cls.Body.Elements[4].(*ast.StaticBlock)
	assert.True(t, ok)

	method, ok := cls.Body.Elements[6].(*ast.MethodDefinition)
	require.True(t, ok)
	assert.True(t, method.Value.Async)
	assert.True(t, method.Value.Generator)
}

func TestClassAccessibilityModifiers(t *testing.T) {
	prog, bag := parseTS(t, `class C {
		public a = 1;
		protected b = 2;
		private c = 3;
		protected override d(): void {}
	}`)
	requireClean(t, bag)
	cls := prog.Body[0].(*ast.Class)
	a := cls.Body.Elements[0].(*ast.PropertyDefinition)
	assert.Equal(t, ast.AccessibilityPublic, a.Accessibility)
	b := cls.Body.Elements[1].(*ast.PropertyDefinition)
	assert.Equal(t, ast.AccessibilityProtected, b.Accessibility)
	d := cls.Body.Elements[3].(*ast.MethodDefinition)
	assert.True(t, d.Override)
}

func TestParameterProperties(t *testing.T) {
	_, bag := parseTS(t, "class C { constructor(private readonly x: number, public y: string) {} }")
	requireClean(t, bag)

	_, bag = parseTS(t, "class C { m(private x: number) {} }")
	assert.True(t, bag.HasErrors())
}

func TestAbstractClass(t *testing.T) {
	prog, bag := parseTS(t, "abstract class Shape { abstract area(): number; concrete() { return 0; } }")
	requireClean(t, bag)
	cls := prog.Body[0].(*ast.Class)
	assert.True(t, cls.Abstract)
	m := cls.Body.Elements[0].(*ast.MethodDefinition)
	assert.True(t, m.Abstract)
	assert.Nil(t, m.Value.Body)
}

func TestAbstractMemberInConcreteClass(t *testing.T) {
	_, bag := parseTS(t, "class C { abstract m(): void; }")
	assert.True(t, bag.HasErrors())
}

func TestConstructorRestrictions(t *testing.T) {
	_, bag := parseTS(t, "class C { static prototype = 1; }")
	assert.True(t, bag.HasErrors())

	_, bag = parseTS(t, "class C { get constructor() { return 1; } }")
	assert.True(t, bag.HasErrors())

	_, bag = parseTS(t, "class C { constructor = 1; }")
	assert.True(t, bag.HasErrors())
}

func TestClassExpression(t *testing.T) {
	prog, bag := parseTS(t, "const C = class Named extends Base {};")
	requireClean(t, bag)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	cls, ok := decl.Declarations[0].Init.(*ast.Class)
	require.True(t, ok)
	assert.Equal(t, ast.ClassTypeExpression, cls.Type)
	assert.Equal(t, "Named", cls.ID.Name)
}

func TestClassIndexSignature(t *testing.T) {
	prog, bag := parseTS(t, "class C { [key: string]: unknown; }")
	requireClean(t, bag)
	cls := prog.Body[0].(*ast.Class)
	require.Len(t, cls.Body.Elements, 1)
	_, ok := cls.Body.Elements[0].(*ast.TSIndexSignature)
	assert.True(t, ok)
}

func TestDecorators(t *testing.T) {
	prog, bag := parseTS(t, `@injectable()
@logged
class Service {
	@observable count = 0;
	@action(true) reset() {}
}`)
	requireClean(t, bag)
	cls := prog.Body[0].(*ast.Class)
	assert.Len(t, cls.Decorators, 2)
	field := cls.Body.Elements[0].(*ast.PropertyDefinition)
	assert.Len(t, field.Decorators, 1)
	method := cls.Body.Elements[1].(*ast.MethodDefinition)
	assert.Len(t, method.Decorators, 1)
}

func TestDecoratedExport(t *testing.T) {
	_, bag := parseTS(t, "@sealed\nexport class C {}")
	requireClean(t, bag)
}

func TestSuperOutsideClass(t *testing.T) {
	_, bag := parseTS(t, "function f() { super.m(); }")
	assert.True(t, bag.HasErrors())
}

func TestMethodOverloadSignatures(t *testing.T) {
	prog, bag := parseTS(t, `class C {
		m(x: string): void;
		m(x: number): void;
		m(x: unknown): void {}
	}`)
	requireClean(t, bag)
	cls := prog.Body[0].(*ast.Class)
	require.Len(t, cls.Body.Elements, 3)
	first := cls.Body.Elements[0].(*ast.MethodDefinition)
	assert.Equal(t, ast.TSEmptyBodyFunctionExpression, first.Value.Type)
}
