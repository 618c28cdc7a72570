package ast

import "github.com/kyanite-dev/kyanite/internal/span"

// TSTypeAnnotation is a `: T` annotation.
type TSTypeAnnotation struct {
	Loc            span.Span
	TypeAnnotation TSType
}

func (n *TSTypeAnnotation) Span() span.Span { return n.Loc }

// TSTypeParameterDeclaration is `<T, U extends V = W>` on a
// declaration site.
type TSTypeParameterDeclaration struct {
	Loc    span.Span
	Params []TSTypeParameter
}

func (n *TSTypeParameterDeclaration) Span() span.Span { return n.Loc }

// TSTypeParameter is one declared type parameter.
type TSTypeParameter struct {
	Loc        span.Span
	Name       *BindingIdentifier
	Constraint TSType
	Default    TSType
	In         bool
	Out        bool
	Const      bool
}

func (n *TSTypeParameter) Span() span.Span { return n.Loc }

// TSTypeArguments is `<T, U>` at a use site.
type TSTypeArguments struct {
	Loc    span.Span
	Params []TSType
}

func (n *TSTypeArguments) Span() span.Span { return n.Loc }

// TSKeywordType is a built-in keyword type such as `string`, `any` or
// `this`.
type TSKeywordType struct {
	Loc  span.Span
	Kind string
}

func (n *TSKeywordType) Span() span.Span { return n.Loc }
func (n *TSKeywordType) tsTypeNode()     {}

// TSTypeReference is a named type with optional type arguments;
// TypeName is an *IdentifierName or *TSQualifiedName.
type TSTypeReference struct {
	Loc           span.Span
	TypeName      Node
	TypeArguments *TSTypeArguments
}

func (n *TSTypeReference) Span() span.Span { return n.Loc }
func (n *TSTypeReference) tsTypeNode()     {}

// TSQualifiedName is `A.B.C` in type position.
type TSQualifiedName struct {
	Loc   span.Span
	Left  Node
	Right *IdentifierName
}

func (n *TSQualifiedName) Span() span.Span { return n.Loc }

// TSLiteralType is a literal in type position, including negative
// numbers as UnaryExpression and template literal types.
type TSLiteralType struct {
	Loc     span.Span
	Literal Expr
}

func (n *TSLiteralType) Span() span.Span { return n.Loc }
func (n *TSLiteralType) tsTypeNode()     {}

// TSUnionType is `A | B | C`.
type TSUnionType struct {
	Loc   span.Span
	Types []TSType
}

func (n *TSUnionType) Span() span.Span { return n.Loc }
func (n *TSUnionType) tsTypeNode()     {}

// TSIntersectionType is `A & B & C`.
type TSIntersectionType struct {
	Loc   span.Span
	Types []TSType
}

func (n *TSIntersectionType) Span() span.Span { return n.Loc }
func (n *TSIntersectionType) tsTypeNode()     {}

// TSParenthesizedType preserves grouping parentheses in type position.
type TSParenthesizedType struct {
	Loc            span.Span
	TypeAnnotation TSType
}

func (n *TSParenthesizedType) Span() span.Span { return n.Loc }
func (n *TSParenthesizedType) tsTypeNode()     {}

// TSArrayType is `T[]`.
type TSArrayType struct {
	Loc         span.Span
	ElementType TSType
}

func (n *TSArrayType) Span() span.Span { return n.Loc }
func (n *TSArrayType) tsTypeNode()     {}

// TSTupleType is `[A, B?, ...C]`.
type TSTupleType struct {
	Loc          span.Span
	ElementTypes []TSType
}

func (n *TSTupleType) Span() span.Span { return n.Loc }
func (n *TSTupleType) tsTypeNode()     {}

// TSNamedTupleMember is `name: T` or `name?: T` inside a tuple.
type TSNamedTupleMember struct {
	Loc         span.Span
	Label       *IdentifierName
	Optional    bool
	ElementType TSType
}

func (n *TSNamedTupleMember) Span() span.Span { return n.Loc }
func (n *TSNamedTupleMember) tsTypeNode()     {}

// TSOptionalType is `T?` inside a tuple.
type TSOptionalType struct {
	Loc            span.Span
	TypeAnnotation TSType
}

func (n *TSOptionalType) Span() span.Span { return n.Loc }
func (n *TSOptionalType) tsTypeNode()     {}

// TSRestType is `...T` inside a tuple.
type TSRestType struct {
	Loc            span.Span
	TypeAnnotation TSType
}

func (n *TSRestType) Span() span.Span { return n.Loc }
func (n *TSRestType) tsTypeNode()     {}

// TSTypeOperator is `keyof T`, `unique T` or `readonly T`.
type TSTypeOperator struct {
	Loc            span.Span
	Operator       string
	TypeAnnotation TSType
}

func (n *TSTypeOperator) Span() span.Span { return n.Loc }
func (n *TSTypeOperator) tsTypeNode()     {}

// TSTypeQuery is `typeof expr` in type position.
type TSTypeQuery struct {
	Loc           span.Span
	ExprName      Node
	TypeArguments *TSTypeArguments
}

func (n *TSTypeQuery) Span() span.Span { return n.Loc }
func (n *TSTypeQuery) tsTypeNode()     {}

// TSIndexedAccessType is `T[K]`.
type TSIndexedAccessType struct {
	Loc        span.Span
	ObjectType TSType
	IndexType  TSType
}

func (n *TSIndexedAccessType) Span() span.Span { return n.Loc }
func (n *TSIndexedAccessType) tsTypeNode()     {}

// TSConditionalType is `C extends E ? T : F`.
type TSConditionalType struct {
	Loc         span.Span
	CheckType   TSType
	ExtendsType TSType
	TrueType    TSType
	FalseType   TSType
}

func (n *TSConditionalType) Span() span.Span { return n.Loc }
func (n *TSConditionalType) tsTypeNode()     {}

// TSInferType is `infer T` inside a conditional type.
type TSInferType struct {
	Loc           span.Span
	TypeParameter *TSTypeParameter
}

func (n *TSInferType) Span() span.Span { return n.Loc }
func (n *TSInferType) tsTypeNode()     {}

// TSFunctionType is `(params) => R`.
type TSFunctionType struct {
	Loc            span.Span
	TypeParameters *TSTypeParameterDeclaration
	ThisParam      *TSThisParameter
	Params         *FormalParameters
	ReturnType     *TSTypeAnnotation
}

func (n *TSFunctionType) Span() span.Span { return n.Loc }
func (n *TSFunctionType) tsTypeNode()     {}

// TSConstructorType is `new (params) => R`.
type TSConstructorType struct {
	Loc            span.Span
	Abstract       bool
	TypeParameters *TSTypeParameterDeclaration
	Params         *FormalParameters
	ReturnType     *TSTypeAnnotation
}

func (n *TSConstructorType) Span() span.Span { return n.Loc }
func (n *TSConstructorType) tsTypeNode()     {}

// TSTypeLiteral is `{ members }` in type position.
type TSTypeLiteral struct {
	Loc     span.Span
	Members []TSSignature
}

func (n *TSTypeLiteral) Span() span.Span { return n.Loc }
func (n *TSTypeLiteral) tsTypeNode()     {}

// TSMappedType is `{ [K in T as N]: V }` with optional +/- readonly
// and optional markers (stored as "", "+", "-" or "?" forms).
type TSMappedType struct {
	Loc            span.Span
	TypeParameter  *TSTypeParameter
	NameType       TSType
	TypeAnnotation TSType
	Optional       string
	Readonly       string
}

func (n *TSMappedType) Span() span.Span { return n.Loc }
func (n *TSMappedType) tsTypeNode()     {}

// TSTemplateLiteralType is a template literal in type position.
type TSTemplateLiteralType struct {
	Loc    span.Span
	Quasis []TemplateElement
	Types  []TSType
}

func (n *TSTemplateLiteralType) Span() span.Span { return n.Loc }
func (n *TSTemplateLiteralType) tsTypeNode()     {}

// TSTypePredicate is `x is T` or `asserts x is T` in return type
// position; ParameterName is an *IdentifierName or *TSKeywordType for
// `this`.
type TSTypePredicate struct {
	Loc            span.Span
	ParameterName  Node
	Asserts        bool
	TypeAnnotation *TSTypeAnnotation
}

func (n *TSTypePredicate) Span() span.Span { return n.Loc }
func (n *TSTypePredicate) tsTypeNode()     {}

// TSSignature is a member of an interface body or type literal.
type TSSignature interface {
	Node
	tsSignature()
}

// TSPropertySignature is `key?: T` in an interface or type literal.
type TSPropertySignature struct {
	Loc            span.Span
	Key            Expr
	Computed       bool
	Optional       bool
	Readonly       bool
	TypeAnnotation *TSTypeAnnotation
}

func (n *TSPropertySignature) Span() span.Span { return n.Loc }
func (n *TSPropertySignature) tsSignature()    {}

// TSMethodSignature is `key(params): R` in an interface or type
// literal.
type TSMethodSignature struct {
	Loc            span.Span
	Key            Expr
	Computed       bool
	Optional       bool
	Kind           MethodKind
	TypeParameters *TSTypeParameterDeclaration
	ThisParam      *TSThisParameter
	Params         *FormalParameters
	ReturnType     *TSTypeAnnotation
}

func (n *TSMethodSignature) Span() span.Span { return n.Loc }
func (n *TSMethodSignature) tsSignature()    {}

// TSIndexSignature is `[key: K]: V`.
type TSIndexSignature struct {
	Loc            span.Span
	Parameter      *TSIndexSignatureName
	TypeAnnotation *TSTypeAnnotation
	Readonly       bool
	Static         bool
}

func (n *TSIndexSignature) Span() span.Span { return n.Loc }
func (n *TSIndexSignature) tsSignature()    {}
func (n *TSIndexSignature) classElement()   {}

// TSIndexSignatureName is the `key: K` binding of an index signature.
type TSIndexSignatureName struct {
	Loc            span.Span
	Name           string
	TypeAnnotation *TSTypeAnnotation
}

func (n *TSIndexSignatureName) Span() span.Span { return n.Loc }

// TSCallSignatureDeclaration is `(params): R` in a type literal.
type TSCallSignatureDeclaration struct {
	Loc            span.Span
	TypeParameters *TSTypeParameterDeclaration
	ThisParam      *TSThisParameter
	Params         *FormalParameters
	ReturnType     *TSTypeAnnotation
}

func (n *TSCallSignatureDeclaration) Span() span.Span { return n.Loc }
func (n *TSCallSignatureDeclaration) tsSignature()    {}

// TSConstructSignatureDeclaration is `new (params): R` in a type
// literal.
type TSConstructSignatureDeclaration struct {
	Loc            span.Span
	TypeParameters *TSTypeParameterDeclaration
	Params         *FormalParameters
	ReturnType     *TSTypeAnnotation
}

func (n *TSConstructSignatureDeclaration) Span() span.Span { return n.Loc }
func (n *TSConstructSignatureDeclaration) tsSignature()    {}

// TSInterfaceDeclaration is an `interface` declaration.
type TSInterfaceDeclaration struct {
	Loc            span.Span
	ID             *BindingIdentifier
	TypeParameters *TSTypeParameterDeclaration
	Extends        []TSInterfaceHeritage
	Body           *TSInterfaceBody
	Declare        bool
}

func (n *TSInterfaceDeclaration) Span() span.Span { return n.Loc }
func (n *TSInterfaceDeclaration) stmtNode()       {}

// TSInterfaceHeritage is one `extends` entry of an interface.
type TSInterfaceHeritage struct {
	Loc           span.Span
	Expression    Expr
	TypeArguments *TSTypeArguments
}

func (n *TSInterfaceHeritage) Span() span.Span { return n.Loc }

// TSInterfaceBody is the braced signature list of an interface.
type TSInterfaceBody struct {
	Loc  span.Span
	Body []TSSignature
}

func (n *TSInterfaceBody) Span() span.Span { return n.Loc }

// TSTypeAliasDeclaration is `type ID = T`.
type TSTypeAliasDeclaration struct {
	Loc            span.Span
	ID             *BindingIdentifier
	TypeParameters *TSTypeParameterDeclaration
	TypeAnnotation TSType
	Declare        bool
}

func (n *TSTypeAliasDeclaration) Span() span.Span { return n.Loc }
func (n *TSTypeAliasDeclaration) stmtNode()       {}

// TSEnumDeclaration is `enum ID { members }`.
type TSEnumDeclaration struct {
	Loc     span.Span
	ID      *BindingIdentifier
	Members []TSEnumMember
	Const   bool
	Declare bool
}

func (n *TSEnumDeclaration) Span() span.Span { return n.Loc }
func (n *TSEnumDeclaration) stmtNode()       {}

// TSEnumMember is one enum member with an optional initializer.
type TSEnumMember struct {
	Loc         span.Span
	ID          Expr
	Initializer Expr
}

func (n *TSEnumMember) Span() span.Span { return n.Loc }

// TSModuleDeclarationKind distinguishes `namespace`, `module` and
// `global` declarations.
type TSModuleDeclarationKind uint8

const (
	TSModuleKindNamespace TSModuleDeclarationKind = iota
	TSModuleKindModule
	TSModuleKindGlobal
)

// TSModuleDeclaration is `namespace ID {}`, `module "name" {}` or
// `global {}`.
type TSModuleDeclaration struct {
	Loc     span.Span
	ID      Node // *BindingIdentifier or *StringLiteral
	Body    *TSModuleBlock
	Kind    TSModuleDeclarationKind
	Declare bool
}

func (n *TSModuleDeclaration) Span() span.Span { return n.Loc }
func (n *TSModuleDeclaration) stmtNode()       {}

// TSModuleBlock is the braced body of a module declaration.
type TSModuleBlock struct {
	Loc  span.Span
	Body []Stmt
}

func (n *TSModuleBlock) Span() span.Span { return n.Loc }
