package ast

import "github.com/kyanite-dev/kyanite/internal/span"

// FunctionType classifies a Function node. It is always derived from
// the parse-site FunctionKind and body presence, never set on its own.
type FunctionType uint8

const (
	FunctionTypeDeclaration FunctionType = iota
	FunctionTypeExpression
	TSDeclareFunction
	TSEmptyBodyFunctionExpression
)

func (t FunctionType) String() string {
	switch t {
	case FunctionTypeDeclaration:
		return "FunctionDeclaration"
	case FunctionTypeExpression:
		return "FunctionExpression"
	case TSDeclareFunction:
		return "TSDeclareFunction"
	case TSEmptyBodyFunctionExpression:
		return "TSEmptyBodyFunctionExpression"
	default:
		return "Function"
	}
}

// HasBody reports whether this function type carries a body. The two
// TS ambient forms are the only bodiless ones.
func (t FunctionType) HasBody() bool {
	return t == FunctionTypeDeclaration || t == FunctionTypeExpression
}

// Function is any `function` form: declaration, expression, method
// value or TypeScript ambient declaration. Body is nil exactly when
// Type is TSDeclareFunction or TSEmptyBodyFunctionExpression.
type Function struct {
	Loc            span.Span
	Type           FunctionType
	ID             *BindingIdentifier
	Generator      bool
	Async          bool
	Declare        bool
	TypeParameters *TSTypeParameterDeclaration
	ThisParam      *TSThisParameter
	Params         *FormalParameters
	ReturnType     *TSTypeAnnotation
	Body           *FunctionBody
}

func (n *Function) Span() span.Span { return n.Loc }
func (n *Function) exprNode()       {}
func (n *Function) stmtNode()       {}

// FunctionBody is a braced statement list with its directive prologue.
type FunctionBody struct {
	Loc        span.Span
	Directives []Directive
	Statements []Stmt
}

func (n *FunctionBody) Span() span.Span { return n.Loc }

// FormalParameterKind records which grammar production the parameter
// list came from.
type FormalParameterKind uint8

const (
	FormalParameterList FormalParameterKind = iota
	UniqueFormalParameters
	ArrowFormalParameters
	SignatureParameters
)

// FormalParameters is a parenthesized parameter list; Rest, when
// present, is the trailing rest parameter.
type FormalParameters struct {
	Loc   span.Span
	Kind  FormalParameterKind
	Items []FormalParameter
	Rest  *BindingRestElement
}

func (n *FormalParameters) Span() span.Span { return n.Loc }

// Count returns the number of parameters including the rest parameter.
func (n *FormalParameters) Count() int {
	c := len(n.Items)
	if n.Rest != nil {
		c++
	}
	return c
}

// FormalParameter is one parameter: decorators, then TS parameter
// property modifiers, then a binding pattern with optional initializer.
// Built once during list parsing and never mutated afterward.
type FormalParameter struct {
	Loc           span.Span
	Decorators    []Decorator
	Pattern       BindingPattern
	Accessibility Accessibility
	Readonly      bool
	Override      bool
}

func (n *FormalParameter) Span() span.Span { return n.Loc }

// TSThisParameter is the TypeScript-only leading `this` parameter.
type TSThisParameter struct {
	Loc            span.Span
	TypeAnnotation *TSTypeAnnotation
}

func (n *TSThisParameter) Span() span.Span { return n.Loc }

// BindingTarget is the destructuring shape of a binding: an
// identifier, object pattern, array pattern, or a pattern with a
// default value.
type BindingTarget interface {
	Node
	bindingTarget()
}

func (n *BindingIdentifier) bindingTarget() {}
func (n *ObjectPattern) bindingTarget()     {}
func (n *ArrayPattern) bindingTarget()      {}
func (n *AssignmentPattern) bindingTarget() {}

// BindingPattern couples a binding target with its optional TypeScript
// annotation and `?` marker.
type BindingPattern struct {
	Kind           BindingTarget
	TypeAnnotation *TSTypeAnnotation
	Optional       bool
}

// Span returns the span of the underlying target, widened over the
// type annotation when present.
func (p BindingPattern) Span() span.Span {
	if p.Kind == nil {
		return span.Span{}
	}
	s := p.Kind.Span()
	if p.TypeAnnotation != nil {
		s = s.Merge(p.TypeAnnotation.Loc)
	}
	return s
}

// AssignmentPattern is `pattern = default`.
type AssignmentPattern struct {
	Loc   span.Span
	Left  BindingPattern
	Right Expr
}

func (n *AssignmentPattern) Span() span.Span { return n.Loc }

// ObjectPattern is `{a, b: c, ...rest}` in binding position.
type ObjectPattern struct {
	Loc        span.Span
	Properties []BindingProperty
	Rest       *BindingRestElement
}

func (n *ObjectPattern) Span() span.Span { return n.Loc }

// BindingProperty is one `key: value` entry of an object pattern.
type BindingProperty struct {
	Loc       span.Span
	Key       Expr
	Value     BindingPattern
	Computed  bool
	Shorthand bool
}

func (n *BindingProperty) Span() span.Span { return n.Loc }

// ArrayPattern is `[a, , b]` in binding position; nil elements are
// elisions.
type ArrayPattern struct {
	Loc      span.Span
	Elements []*BindingPattern
	Rest     *BindingRestElement
}

func (n *ArrayPattern) Span() span.Span { return n.Loc }

// BindingRestElement is `...pattern`.
type BindingRestElement struct {
	Loc      span.Span
	Argument BindingPattern
}

func (n *BindingRestElement) Span() span.Span { return n.Loc }
