package ast

import "github.com/kyanite-dev/kyanite/internal/span"

// BlockStatement is a braced statement list.
type BlockStatement struct {
	Loc  span.Span
	Body []Stmt
}

func (n *BlockStatement) Span() span.Span { return n.Loc }
func (n *BlockStatement) stmtNode()       {}

// EmptyStatement is a lone `;`.
type EmptyStatement struct {
	Loc span.Span
}

func (n *EmptyStatement) Span() span.Span { return n.Loc }
func (n *EmptyStatement) stmtNode()       {}

// ExpressionStatement wraps an expression used as a statement.
type ExpressionStatement struct {
	Loc        span.Span
	Expression Expr
}

func (n *ExpressionStatement) Span() span.Span { return n.Loc }
func (n *ExpressionStatement) stmtNode()       {}

// VariableKind is the declaration keyword of a variable statement.
type VariableKind uint8

const (
	VariableVar VariableKind = iota
	VariableLet
	VariableConst
)

func (k VariableKind) String() string {
	switch k {
	case VariableLet:
		return "let"
	case VariableConst:
		return "const"
	default:
		return "var"
	}
}

// VariableDeclaration is `var`/`let`/`const` with its declarators.
type VariableDeclaration struct {
	Loc          span.Span
	Kind         VariableKind
	Declare      bool
	Declarations []VariableDeclarator
}

func (n *VariableDeclaration) Span() span.Span { return n.Loc }
func (n *VariableDeclaration) stmtNode()       {}

// VariableDeclarator is one `pattern = init` entry. Definite marks the
// TypeScript `!` definite-assignment assertion.
type VariableDeclarator struct {
	Loc      span.Span
	ID       BindingPattern
	Init     Expr
	Definite bool
}

func (n *VariableDeclarator) Span() span.Span { return n.Loc }

// IfStatement is `if (test) consequent else alternate`.
type IfStatement struct {
	Loc        span.Span
	Test       Expr
	Consequent Stmt
	Alternate  Stmt
}

func (n *IfStatement) Span() span.Span { return n.Loc }
func (n *IfStatement) stmtNode()       {}

// DoWhileStatement is `do body while (test)`.
type DoWhileStatement struct {
	Loc  span.Span
	Body Stmt
	Test Expr
}

func (n *DoWhileStatement) Span() span.Span { return n.Loc }
func (n *DoWhileStatement) stmtNode()       {}

// WhileStatement is `while (test) body`.
type WhileStatement struct {
	Loc  span.Span
	Test Expr
	Body Stmt
}

func (n *WhileStatement) Span() span.Span { return n.Loc }
func (n *WhileStatement) stmtNode()       {}

// ForStatement is the classic three-clause `for`; Init is either a
// *VariableDeclaration or an Expr, and any clause may be nil.
type ForStatement struct {
	Loc    span.Span
	Init   Node
	Test   Expr
	Update Expr
	Body   Stmt
}

func (n *ForStatement) Span() span.Span { return n.Loc }
func (n *ForStatement) stmtNode()       {}

// ForInStatement is `for (left in right) body`; Left is either a
// *VariableDeclaration or an assignment-target expression.
type ForInStatement struct {
	Loc   span.Span
	Left  Node
	Right Expr
	Body  Stmt
}

func (n *ForInStatement) Span() span.Span { return n.Loc }
func (n *ForInStatement) stmtNode()       {}

// ForOfStatement is `for (left of right) body`, optionally `for await`.
type ForOfStatement struct {
	Loc   span.Span
	Await bool
	Left  Node
	Right Expr
	Body  Stmt
}

func (n *ForOfStatement) Span() span.Span { return n.Loc }
func (n *ForOfStatement) stmtNode()       {}

// ContinueStatement is `continue` with an optional label.
type ContinueStatement struct {
	Loc   span.Span
	Label *IdentifierName
}

func (n *ContinueStatement) Span() span.Span { return n.Loc }
func (n *ContinueStatement) stmtNode()       {}

// BreakStatement is `break` with an optional label.
type BreakStatement struct {
	Loc   span.Span
	Label *IdentifierName
}

func (n *BreakStatement) Span() span.Span { return n.Loc }
func (n *BreakStatement) stmtNode()       {}

// ReturnStatement is `return` with an optional argument.
type ReturnStatement struct {
	Loc      span.Span
	Argument Expr
}

func (n *ReturnStatement) Span() span.Span { return n.Loc }
func (n *ReturnStatement) stmtNode()       {}

// WithStatement is `with (object) body`.
type WithStatement struct {
	Loc    span.Span
	Object Expr
	Body   Stmt
}

func (n *WithStatement) Span() span.Span { return n.Loc }
func (n *WithStatement) stmtNode()       {}

// SwitchStatement is `switch (discriminant) { cases }`.
type SwitchStatement struct {
	Loc          span.Span
	Discriminant Expr
	Cases        []SwitchCase
}

func (n *SwitchStatement) Span() span.Span { return n.Loc }
func (n *SwitchStatement) stmtNode()       {}

// SwitchCase is one `case test:`/`default:` clause.
type SwitchCase struct {
	Loc        span.Span
	Test       Expr // nil for default
	Consequent []Stmt
}

func (n *SwitchCase) Span() span.Span { return n.Loc }

// LabeledStatement is `label: body`.
type LabeledStatement struct {
	Loc   span.Span
	Label *IdentifierName
	Body  Stmt
}

func (n *LabeledStatement) Span() span.Span { return n.Loc }
func (n *LabeledStatement) stmtNode()       {}

// ThrowStatement is `throw argument`.
type ThrowStatement struct {
	Loc      span.Span
	Argument Expr
}

func (n *ThrowStatement) Span() span.Span { return n.Loc }
func (n *ThrowStatement) stmtNode()       {}

// TryStatement is `try block handler finalizer`.
type TryStatement struct {
	Loc       span.Span
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

func (n *TryStatement) Span() span.Span { return n.Loc }
func (n *TryStatement) stmtNode()       {}

// CatchClause is `catch (param) body`; Param is nil for the optional
// catch binding form.
type CatchClause struct {
	Loc   span.Span
	Param *BindingPattern
	Body  *BlockStatement
}

func (n *CatchClause) Span() span.Span { return n.Loc }

// DebuggerStatement is `debugger`.
type DebuggerStatement struct {
	Loc span.Span
}

func (n *DebuggerStatement) Span() span.Span { return n.Loc }
func (n *DebuggerStatement) stmtNode()       {}

// InvalidStatement stands in for statements that failed to parse, so
// the program body never loses its place during recovery.
type InvalidStatement struct {
	Loc span.Span
}

func (n *InvalidStatement) Span() span.Span { return n.Loc }
func (n *InvalidStatement) stmtNode()       {}
