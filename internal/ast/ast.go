// Package ast defines the arena-allocated syntax tree for the combined
// JavaScript/TypeScript grammar. Nodes are plain structs allocated from
// a per-session Allocator; consumers receive pointers that stay valid
// for the lifetime of that session and must not outlive it.
package ast

import (
	"github.com/kyanite-dev/kyanite/internal/span"
)

// Node is implemented by every syntax tree node.
type Node interface {
	Span() span.Span
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by statement and declaration nodes.
type Stmt interface {
	Node
	stmtNode()
}

// TSType is implemented by TypeScript type nodes.
type TSType interface {
	Node
	tsTypeNode()
}

// SourceType distinguishes scripts from ES modules.
type SourceType uint8

const (
	SourceScript SourceType = iota
	SourceModule
)

// Program is the root of a parsed file.
type Program struct {
	Loc        span.Span
	SourceType SourceType
	Directives []Directive
	Body       []Stmt
}

func (n *Program) Span() span.Span { return n.Loc }

// Directive is one prologue directive such as "use strict".
type Directive struct {
	Loc        span.Span
	Expression *StringLiteral
	// Value is the raw directive text without quotes.
	Value string
}

func (n *Directive) Span() span.Span { return n.Loc }

// BindingIdentifier is an identifier in binding position.
type BindingIdentifier struct {
	Loc  span.Span
	Name string
}

func (n *BindingIdentifier) Span() span.Span { return n.Loc }

// IdentifierReference is an identifier in expression position.
type IdentifierReference struct {
	Loc  span.Span
	Name string
}

func (n *IdentifierReference) Span() span.Span { return n.Loc }
func (n *IdentifierReference) exprNode()       {}

// IdentifierName is an identifier used as a name only (member access,
// property keys, labels); keywords are legal here.
type IdentifierName struct {
	Loc  span.Span
	Name string
}

func (n *IdentifierName) Span() span.Span { return n.Loc }
func (n *IdentifierName) exprNode()       {}

// PrivateIdentifier is a `#name` class member name.
type PrivateIdentifier struct {
	Loc  span.Span
	Name string
}

func (n *PrivateIdentifier) Span() span.Span { return n.Loc }
func (n *PrivateIdentifier) exprNode()       {}

// Decorator is an `@expr` annotation on a class, member or parameter.
type Decorator struct {
	Loc        span.Span
	Expression Expr
}

func (n *Decorator) Span() span.Span { return n.Loc }

// Accessibility is a TypeScript accessibility modifier.
type Accessibility uint8

const (
	AccessibilityNone Accessibility = iota
	AccessibilityPublic
	AccessibilityPrivate
	AccessibilityProtected
)

func (a Accessibility) String() string {
	switch a {
	case AccessibilityPublic:
		return "public"
	case AccessibilityPrivate:
		return "private"
	case AccessibilityProtected:
		return "protected"
	default:
		return ""
	}
}
