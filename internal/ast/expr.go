package ast

import "github.com/kyanite-dev/kyanite/internal/span"

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Loc   span.Span
	Value bool
}

func (n *BooleanLiteral) Span() span.Span { return n.Loc }
func (n *BooleanLiteral) exprNode()       {}

// NullLiteral is `null`.
type NullLiteral struct {
	Loc span.Span
}

func (n *NullLiteral) Span() span.Span { return n.Loc }
func (n *NullLiteral) exprNode()       {}

// NumericLiteral is a number literal; Raw preserves the source text.
type NumericLiteral struct {
	Loc   span.Span
	Value float64
	Raw   string
}

func (n *NumericLiteral) Span() span.Span { return n.Loc }
func (n *NumericLiteral) exprNode()       {}

// BigIntLiteral is an integer literal with the `n` suffix.
type BigIntLiteral struct {
	Loc span.Span
	Raw string
}

func (n *BigIntLiteral) Span() span.Span { return n.Loc }
func (n *BigIntLiteral) exprNode()       {}

// StringLiteral is a single- or double-quoted string.
type StringLiteral struct {
	Loc   span.Span
	Value string
}

func (n *StringLiteral) Span() span.Span { return n.Loc }
func (n *StringLiteral) exprNode()       {}

// RegExpLiteral is a `/pattern/flags` literal.
type RegExpLiteral struct {
	Loc     span.Span
	Pattern string
	Flags   string
}

func (n *RegExpLiteral) Span() span.Span { return n.Loc }
func (n *RegExpLiteral) exprNode()       {}

// TemplateElement is one quasi chunk of a template literal.
type TemplateElement struct {
	Loc    span.Span
	Cooked string
	Raw    string
	Tail   bool
}

func (n *TemplateElement) Span() span.Span { return n.Loc }

// TemplateLiteral is a backtick template with interleaved expressions.
// len(Quasis) == len(Expressions)+1.
type TemplateLiteral struct {
	Loc         span.Span
	Quasis      []TemplateElement
	Expressions []Expr
}

func (n *TemplateLiteral) Span() span.Span { return n.Loc }
func (n *TemplateLiteral) exprNode()       {}

// TaggedTemplateExpression is `tag`+template.
type TaggedTemplateExpression struct {
	Loc           span.Span
	Tag           Expr
	TypeArguments *TSTypeArguments
	Quasi         *TemplateLiteral
}

func (n *TaggedTemplateExpression) Span() span.Span { return n.Loc }
func (n *TaggedTemplateExpression) exprNode()       {}

// ThisExpression is `this`.
type ThisExpression struct {
	Loc span.Span
}

func (n *ThisExpression) Span() span.Span { return n.Loc }
func (n *ThisExpression) exprNode()       {}

// Super is the `super` callee/member base.
type Super struct {
	Loc span.Span
}

func (n *Super) Span() span.Span { return n.Loc }
func (n *Super) exprNode()       {}

// ArrayExpression is `[...]`; nil elements are elisions.
type ArrayExpression struct {
	Loc      span.Span
	Elements []Expr
}

func (n *ArrayExpression) Span() span.Span { return n.Loc }
func (n *ArrayExpression) exprNode()       {}

// SpreadElement is `...expr` in call arguments or literals.
type SpreadElement struct {
	Loc      span.Span
	Argument Expr
}

func (n *SpreadElement) Span() span.Span { return n.Loc }
func (n *SpreadElement) exprNode()       {}

// PropertyKind distinguishes plain properties from accessors.
type PropertyKind uint8

const (
	PropertyInit PropertyKind = iota
	PropertyGet
	PropertySet
)

// ObjectProperty is one `key: value` entry of an object literal.
type ObjectProperty struct {
	Loc       span.Span
	Kind      PropertyKind
	Key       Expr
	Value     Expr
	Computed  bool
	Shorthand bool
	Method    bool
}

func (n *ObjectProperty) Span() span.Span { return n.Loc }
func (n *ObjectProperty) exprNode()       {}

// ObjectExpression is `{...}`; properties are *ObjectProperty or
// *SpreadElement.
type ObjectExpression struct {
	Loc        span.Span
	Properties []Expr
}

func (n *ObjectExpression) Span() span.Span { return n.Loc }
func (n *ObjectExpression) exprNode()       {}

// ParenthesizedExpression preserves explicit grouping.
type ParenthesizedExpression struct {
	Loc        span.Span
	Expression Expr
}

func (n *ParenthesizedExpression) Span() span.Span { return n.Loc }
func (n *ParenthesizedExpression) exprNode()       {}

// UnaryExpression is a prefix operator application.
type UnaryExpression struct {
	Loc      span.Span
	Operator string
	Argument Expr
}

func (n *UnaryExpression) Span() span.Span { return n.Loc }
func (n *UnaryExpression) exprNode()       {}

// UpdateExpression is `++`/`--` in prefix or postfix position.
type UpdateExpression struct {
	Loc      span.Span
	Operator string
	Prefix   bool
	Argument Expr
}

func (n *UpdateExpression) Span() span.Span { return n.Loc }
func (n *UpdateExpression) exprNode()       {}

// BinaryExpression covers arithmetic, comparison, bitwise, `in` and
// `instanceof` operators.
type BinaryExpression struct {
	Loc      span.Span
	Operator string
	Left     Expr
	Right    Expr
}

func (n *BinaryExpression) Span() span.Span { return n.Loc }
func (n *BinaryExpression) exprNode()       {}

// LogicalExpression covers `&&`, `||` and `??`.
type LogicalExpression struct {
	Loc      span.Span
	Operator string
	Left     Expr
	Right    Expr
}

func (n *LogicalExpression) Span() span.Span { return n.Loc }
func (n *LogicalExpression) exprNode()       {}

// AssignmentExpression is `target op value` for `=` and the compound
// assignment operators. Left is an expression that the parser has
// validated as an assignment target.
type AssignmentExpression struct {
	Loc      span.Span
	Operator string
	Left     Expr
	Right    Expr
}

func (n *AssignmentExpression) Span() span.Span { return n.Loc }
func (n *AssignmentExpression) exprNode()       {}

// ConditionalExpression is `test ? consequent : alternate`.
type ConditionalExpression struct {
	Loc        span.Span
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

func (n *ConditionalExpression) Span() span.Span { return n.Loc }
func (n *ConditionalExpression) exprNode()       {}

// SequenceExpression is a comma-joined expression list.
type SequenceExpression struct {
	Loc         span.Span
	Expressions []Expr
}

func (n *SequenceExpression) Span() span.Span { return n.Loc }
func (n *SequenceExpression) exprNode()       {}

// MemberExpression is `obj.prop`, `obj[expr]` or `obj.#priv`;
// Optional marks `?.` access.
type MemberExpression struct {
	Loc      span.Span
	Object   Expr
	Property Expr
	Computed bool
	Optional bool
}

func (n *MemberExpression) Span() span.Span { return n.Loc }
func (n *MemberExpression) exprNode()       {}

// CallExpression is `callee(args)`; Optional marks `?.()`.
type CallExpression struct {
	Loc           span.Span
	Callee        Expr
	TypeArguments *TSTypeArguments
	Arguments     []Expr
	Optional      bool
}

func (n *CallExpression) Span() span.Span { return n.Loc }
func (n *CallExpression) exprNode()       {}

// NewExpression is `new callee(args)`.
type NewExpression struct {
	Loc           span.Span
	Callee        Expr
	TypeArguments *TSTypeArguments
	Arguments     []Expr
}

func (n *NewExpression) Span() span.Span { return n.Loc }
func (n *NewExpression) exprNode()       {}

// MetaProperty is `new.target` or `import.meta`.
type MetaProperty struct {
	Loc      span.Span
	Meta     *IdentifierName
	Property *IdentifierName
}

func (n *MetaProperty) Span() span.Span { return n.Loc }
func (n *MetaProperty) exprNode()       {}

// ImportExpression is a dynamic `import(source)` call.
type ImportExpression struct {
	Loc     span.Span
	Source  Expr
	Options Expr
}

func (n *ImportExpression) Span() span.Span { return n.Loc }
func (n *ImportExpression) exprNode()       {}

// AwaitExpression is `await expr`.
type AwaitExpression struct {
	Loc      span.Span
	Argument Expr
}

func (n *AwaitExpression) Span() span.Span { return n.Loc }
func (n *AwaitExpression) exprNode()       {}

// YieldExpression is `yield`, `yield expr` or `yield* expr`.
type YieldExpression struct {
	Loc      span.Span
	Delegate bool
	Argument Expr
}

func (n *YieldExpression) Span() span.Span { return n.Loc }
func (n *YieldExpression) exprNode()       {}

// ArrowFunctionExpression is `(params) => body`. When Expression is
// true the body is a single expression wrapped in an implicit
// FunctionBody holding one ExpressionStatement.
type ArrowFunctionExpression struct {
	Loc            span.Span
	Async          bool
	Expression     bool
	TypeParameters *TSTypeParameterDeclaration
	Params         *FormalParameters
	ReturnType     *TSTypeAnnotation
	Body           *FunctionBody
}

func (n *ArrowFunctionExpression) Span() span.Span { return n.Loc }
func (n *ArrowFunctionExpression) exprNode()       {}

// TSAsExpression is `expr as T`.
type TSAsExpression struct {
	Loc            span.Span
	Expression     Expr
	TypeAnnotation TSType
}

func (n *TSAsExpression) Span() span.Span { return n.Loc }
func (n *TSAsExpression) exprNode()       {}

// TSSatisfiesExpression is `expr satisfies T`.
type TSSatisfiesExpression struct {
	Loc            span.Span
	Expression     Expr
	TypeAnnotation TSType
}

func (n *TSSatisfiesExpression) Span() span.Span { return n.Loc }
func (n *TSSatisfiesExpression) exprNode()       {}

// TSNonNullExpression is the postfix `expr!` assertion.
type TSNonNullExpression struct {
	Loc        span.Span
	Expression Expr
}

func (n *TSNonNullExpression) Span() span.Span { return n.Loc }
func (n *TSNonNullExpression) exprNode()       {}

// TSInstantiationExpression is `expr<TypeArgs>` without a call.
type TSInstantiationExpression struct {
	Loc           span.Span
	Expression    Expr
	TypeArguments *TSTypeArguments
}

func (n *TSInstantiationExpression) Span() span.Span { return n.Loc }
func (n *TSInstantiationExpression) exprNode()       {}

// InvalidExpression stands in wherever a hard parse failure left no
// usable expression, so enclosing nodes always have a complete shape.
type InvalidExpression struct {
	Loc span.Span
}

func (n *InvalidExpression) Span() span.Span { return n.Loc }
func (n *InvalidExpression) exprNode()       {}
