package ast

import "github.com/kyanite-dev/kyanite/internal/span"

// ClassType distinguishes class declarations from class expressions.
type ClassType uint8

const (
	ClassTypeDeclaration ClassType = iota
	ClassTypeExpression
)

// Class is a class declaration or expression.
type Class struct {
	Loc                span.Span
	Type               ClassType
	Decorators         []Decorator
	ID                 *BindingIdentifier
	TypeParameters     *TSTypeParameterDeclaration
	SuperClass         Expr
	SuperTypeArguments *TSTypeArguments
	Implements         []TSClassImplements
	Abstract           bool
	Declare            bool
	Body               *ClassBody
}

func (n *Class) Span() span.Span { return n.Loc }
func (n *Class) exprNode()       {}
func (n *Class) stmtNode()       {}

// ClassBody holds the member list.
type ClassBody struct {
	Loc      span.Span
	Elements []ClassElement
}

func (n *ClassBody) Span() span.Span { return n.Loc }

// ClassElement is a member of a class body.
type ClassElement interface {
	Node
	classElement()
}

// MethodKind classifies a method definition.
type MethodKind uint8

const (
	MethodKindMethod MethodKind = iota
	MethodKindConstructor
	MethodKindGet
	MethodKindSet
)

func (k MethodKind) String() string {
	switch k {
	case MethodKindConstructor:
		return "constructor"
	case MethodKindGet:
		return "get"
	case MethodKindSet:
		return "set"
	default:
		return "method"
	}
}

// MethodDefinition is a class method, accessor or constructor; Value
// is always a Function of expression type.
type MethodDefinition struct {
	Loc           span.Span
	Decorators    []Decorator
	Key           Expr
	Value         *Function
	Kind          MethodKind
	Computed      bool
	Static        bool
	Abstract      bool
	Optional      bool
	Override      bool
	Accessibility Accessibility
}

func (n *MethodDefinition) Span() span.Span { return n.Loc }
func (n *MethodDefinition) classElement()   {}

// PropertyDefinition is a class field; Accessor marks the `accessor`
// auto-accessor form.
type PropertyDefinition struct {
	Loc            span.Span
	Decorators     []Decorator
	Key            Expr
	Value          Expr
	TypeAnnotation *TSTypeAnnotation
	Computed       bool
	Static         bool
	Declare        bool
	Abstract       bool
	Readonly       bool
	Optional       bool
	Override       bool
	Definite       bool
	Accessor       bool
	Accessibility  Accessibility
}

func (n *PropertyDefinition) Span() span.Span { return n.Loc }
func (n *PropertyDefinition) classElement()   {}

// StaticBlock is a `static { ... }` initializer block.
type StaticBlock struct {
	Loc  span.Span
	Body []Stmt
}

func (n *StaticBlock) Span() span.Span { return n.Loc }
func (n *StaticBlock) classElement()   {}

// TSClassImplements is one entry of an `implements` clause.
type TSClassImplements struct {
	Loc           span.Span
	Expression    Expr
	TypeArguments *TSTypeArguments
}

func (n *TSClassImplements) Span() span.Span { return n.Loc }
