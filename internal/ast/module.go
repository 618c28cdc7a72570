package ast

import "github.com/kyanite-dev/kyanite/internal/span"

// ImportOrExportKind separates value bindings from TypeScript
// type-only bindings.
type ImportOrExportKind uint8

const (
	ImportExportValue ImportOrExportKind = iota
	ImportExportType
)

// ImportDeclaration is a static `import` statement. Specifiers hold
// *ImportDefaultSpecifier, *ImportNamespaceSpecifier and
// *ImportSpecifier entries in source order.
type ImportDeclaration struct {
	Loc        span.Span
	Specifiers []Node
	Source     *StringLiteral
	ImportKind ImportOrExportKind
}

func (n *ImportDeclaration) Span() span.Span { return n.Loc }
func (n *ImportDeclaration) stmtNode()       {}

// ImportSpecifier is `{imported as local}`.
type ImportSpecifier struct {
	Loc        span.Span
	Imported   Expr // *IdentifierName or *StringLiteral
	Local      *BindingIdentifier
	ImportKind ImportOrExportKind
}

func (n *ImportSpecifier) Span() span.Span { return n.Loc }

// ImportDefaultSpecifier is the bare default import binding.
type ImportDefaultSpecifier struct {
	Loc   span.Span
	Local *BindingIdentifier
}

func (n *ImportDefaultSpecifier) Span() span.Span { return n.Loc }

// ImportNamespaceSpecifier is `* as local`.
type ImportNamespaceSpecifier struct {
	Loc   span.Span
	Local *BindingIdentifier
}

func (n *ImportNamespaceSpecifier) Span() span.Span { return n.Loc }

// ExportNamedDeclaration is `export { ... }`, `export decl` or a
// re-export with a source.
type ExportNamedDeclaration struct {
	Loc         span.Span
	Declaration Stmt
	Specifiers  []ExportSpecifier
	Source      *StringLiteral
	ExportKind  ImportOrExportKind
}

func (n *ExportNamedDeclaration) Span() span.Span { return n.Loc }
func (n *ExportNamedDeclaration) stmtNode()       {}

// ExportSpecifier is `{local as exported}`.
type ExportSpecifier struct {
	Loc        span.Span
	Local      Expr
	Exported   Expr
	ExportKind ImportOrExportKind
}

func (n *ExportSpecifier) Span() span.Span { return n.Loc }

// ExportDefaultDeclaration is `export default ...`; Declaration is an
// Expr, or a *Function/*Class for declaration forms.
type ExportDefaultDeclaration struct {
	Loc         span.Span
	Declaration Node
}

func (n *ExportDefaultDeclaration) Span() span.Span { return n.Loc }
func (n *ExportDefaultDeclaration) stmtNode()       {}

// ExportAllDeclaration is `export * from "source"` with an optional
// `as name`.
type ExportAllDeclaration struct {
	Loc        span.Span
	Exported   *IdentifierName
	Source     *StringLiteral
	ExportKind ImportOrExportKind
}

func (n *ExportAllDeclaration) Span() span.Span { return n.Loc }
func (n *ExportAllDeclaration) stmtNode()       {}
