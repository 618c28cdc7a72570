package ast

import "github.com/kyanite-dev/kyanite/internal/arena"

// Allocator aggregates one typed arena per node type. A parse session
// owns exactly one Allocator; every node in the produced tree lives in
// it and is freed with it. Allocation sites read as
// `alloc.BinaryExpression.Alloc(BinaryExpression{...})`.
type Allocator struct {
	Program arena.Arena[Program]

	// Identifiers are by far the most frequent allocation.
	BindingIdentifier   arena.Arena[BindingIdentifier]
	IdentifierReference arena.Arena[IdentifierReference]
	IdentifierName      arena.Arena[IdentifierName]
	PrivateIdentifier   arena.Arena[PrivateIdentifier]

	// Literals.
	BooleanLiteral  arena.Arena[BooleanLiteral]
	NullLiteral     arena.Arena[NullLiteral]
	NumericLiteral  arena.Arena[NumericLiteral]
	BigIntLiteral   arena.Arena[BigIntLiteral]
	StringLiteral   arena.Arena[StringLiteral]
	RegExpLiteral   arena.Arena[RegExpLiteral]
	TemplateLiteral arena.Arena[TemplateLiteral]

	// Expressions.
	TaggedTemplateExpression  arena.Arena[TaggedTemplateExpression]
	ThisExpression            arena.Arena[ThisExpression]
	Super                     arena.Arena[Super]
	ArrayExpression           arena.Arena[ArrayExpression]
	SpreadElement             arena.Arena[SpreadElement]
	ObjectProperty            arena.Arena[ObjectProperty]
	ObjectExpression          arena.Arena[ObjectExpression]
	ParenthesizedExpression   arena.Arena[ParenthesizedExpression]
	UnaryExpression           arena.Arena[UnaryExpression]
	UpdateExpression          arena.Arena[UpdateExpression]
	BinaryExpression          arena.Arena[BinaryExpression]
	LogicalExpression         arena.Arena[LogicalExpression]
	AssignmentExpression      arena.Arena[AssignmentExpression]
	ConditionalExpression     arena.Arena[ConditionalExpression]
	SequenceExpression        arena.Arena[SequenceExpression]
	MemberExpression          arena.Arena[MemberExpression]
	CallExpression            arena.Arena[CallExpression]
	NewExpression             arena.Arena[NewExpression]
	MetaProperty              arena.Arena[MetaProperty]
	ImportExpression          arena.Arena[ImportExpression]
	AwaitExpression           arena.Arena[AwaitExpression]
	YieldExpression           arena.Arena[YieldExpression]
	ArrowFunctionExpression   arena.Arena[ArrowFunctionExpression]
	TSAsExpression            arena.Arena[TSAsExpression]
	TSSatisfiesExpression     arena.Arena[TSSatisfiesExpression]
	TSNonNullExpression       arena.Arena[TSNonNullExpression]
	TSInstantiationExpression arena.Arena[TSInstantiationExpression]
	InvalidExpression         arena.Arena[InvalidExpression]

	// Functions and bindings.
	Function           arena.Arena[Function]
	FunctionBody       arena.Arena[FunctionBody]
	FormalParameters   arena.Arena[FormalParameters]
	TSThisParameter    arena.Arena[TSThisParameter]
	AssignmentPattern  arena.Arena[AssignmentPattern]
	ObjectPattern      arena.Arena[ObjectPattern]
	ArrayPattern       arena.Arena[ArrayPattern]
	BindingRestElement arena.Arena[BindingRestElement]
	BindingPattern     arena.Arena[BindingPattern]

	// Classes.
	Class              arena.Arena[Class]
	ClassBody          arena.Arena[ClassBody]
	MethodDefinition   arena.Arena[MethodDefinition]
	PropertyDefinition arena.Arena[PropertyDefinition]
	StaticBlock        arena.Arena[StaticBlock]

	// Statements.
	BlockStatement      arena.Arena[BlockStatement]
	EmptyStatement      arena.Arena[EmptyStatement]
	ExpressionStatement arena.Arena[ExpressionStatement]
	VariableDeclaration arena.Arena[VariableDeclaration]
	IfStatement         arena.Arena[IfStatement]
	DoWhileStatement    arena.Arena[DoWhileStatement]
	WhileStatement      arena.Arena[WhileStatement]
	ForStatement        arena.Arena[ForStatement]
	ForInStatement      arena.Arena[ForInStatement]
	ForOfStatement      arena.Arena[ForOfStatement]
	ContinueStatement   arena.Arena[ContinueStatement]
	BreakStatement      arena.Arena[BreakStatement]
	ReturnStatement     arena.Arena[ReturnStatement]
	WithStatement       arena.Arena[WithStatement]
	SwitchStatement     arena.Arena[SwitchStatement]
	LabeledStatement    arena.Arena[LabeledStatement]
	ThrowStatement      arena.Arena[ThrowStatement]
	TryStatement        arena.Arena[TryStatement]
	CatchClause         arena.Arena[CatchClause]
	DebuggerStatement   arena.Arena[DebuggerStatement]
	InvalidStatement    arena.Arena[InvalidStatement]

	// Modules.
	ImportDeclaration        arena.Arena[ImportDeclaration]
	ImportSpecifier          arena.Arena[ImportSpecifier]
	ImportDefaultSpecifier   arena.Arena[ImportDefaultSpecifier]
	ImportNamespaceSpecifier arena.Arena[ImportNamespaceSpecifier]
	ExportNamedDeclaration   arena.Arena[ExportNamedDeclaration]
	ExportDefaultDeclaration arena.Arena[ExportDefaultDeclaration]
	ExportAllDeclaration     arena.Arena[ExportAllDeclaration]

	// TypeScript types and declarations.
	TSTypeAnnotation                arena.Arena[TSTypeAnnotation]
	TSTypeParameterDeclaration      arena.Arena[TSTypeParameterDeclaration]
	TSTypeParameter                 arena.Arena[TSTypeParameter]
	TSTypeArguments                 arena.Arena[TSTypeArguments]
	TSKeywordType                   arena.Arena[TSKeywordType]
	TSTypeReference                 arena.Arena[TSTypeReference]
	TSQualifiedName                 arena.Arena[TSQualifiedName]
	TSLiteralType                   arena.Arena[TSLiteralType]
	TSUnionType                     arena.Arena[TSUnionType]
	TSIntersectionType              arena.Arena[TSIntersectionType]
	TSParenthesizedType             arena.Arena[TSParenthesizedType]
	TSArrayType                     arena.Arena[TSArrayType]
	TSTupleType                     arena.Arena[TSTupleType]
	TSNamedTupleMember              arena.Arena[TSNamedTupleMember]
	TSOptionalType                  arena.Arena[TSOptionalType]
	TSRestType                      arena.Arena[TSRestType]
	TSTypeOperator                  arena.Arena[TSTypeOperator]
	TSTypeQuery                     arena.Arena[TSTypeQuery]
	TSIndexedAccessType             arena.Arena[TSIndexedAccessType]
	TSConditionalType               arena.Arena[TSConditionalType]
	TSInferType                     arena.Arena[TSInferType]
	TSFunctionType                  arena.Arena[TSFunctionType]
	TSConstructorType               arena.Arena[TSConstructorType]
	TSTypeLiteral                   arena.Arena[TSTypeLiteral]
	TSMappedType                    arena.Arena[TSMappedType]
	TSTemplateLiteralType           arena.Arena[TSTemplateLiteralType]
	TSTypePredicate                 arena.Arena[TSTypePredicate]
	TSPropertySignature             arena.Arena[TSPropertySignature]
	TSMethodSignature               arena.Arena[TSMethodSignature]
	TSIndexSignature                arena.Arena[TSIndexSignature]
	TSIndexSignatureName            arena.Arena[TSIndexSignatureName]
	TSCallSignatureDeclaration      arena.Arena[TSCallSignatureDeclaration]
	TSConstructSignatureDeclaration arena.Arena[TSConstructSignatureDeclaration]
	TSInterfaceDeclaration          arena.Arena[TSInterfaceDeclaration]
	TSInterfaceBody                 arena.Arena[TSInterfaceBody]
	TSTypeAliasDeclaration          arena.Arena[TSTypeAliasDeclaration]
	TSEnumDeclaration               arena.Arena[TSEnumDeclaration]
	TSModuleDeclaration             arena.Arena[TSModuleDeclaration]
	TSModuleBlock                   arena.Arena[TSModuleBlock]

	// Slice backing stores, separate from per-node arenas so that
	// contiguous slice copies don't fragment with node allocations.
	Exprs arena.Arena[Expr]
	Stmts arena.Arena[Stmt]
}

// NewAllocator creates an allocator with chunk sizes tuned for the
// high-volume node types.
func NewAllocator() *Allocator {
	a := &Allocator{}
	a.BindingIdentifier = *arena.New[BindingIdentifier](512)
	a.IdentifierReference = *arena.New[IdentifierReference](1024)
	a.IdentifierName = *arena.New[IdentifierName](512)
	a.StringLiteral = *arena.New[StringLiteral](256)
	a.NumericLiteral = *arena.New[NumericLiteral](256)
	a.MemberExpression = *arena.New[MemberExpression](512)
	a.CallExpression = *arena.New[CallExpression](512)
	a.BinaryExpression = *arena.New[BinaryExpression](256)
	a.ExpressionStatement = *arena.New[ExpressionStatement](256)
	a.VariableDeclaration = *arena.New[VariableDeclaration](128)
	a.Exprs = *arena.New[Expr](1024)
	a.Stmts = *arena.New[Stmt](1024)
	return a
}

// CopyExprs copies src into arena-backed storage.
func (a *Allocator) CopyExprs(src []Expr) []Expr {
	return a.Exprs.Copy(src)
}

// CopyStmts copies src into arena-backed storage.
func (a *Allocator) CopyStmts(src []Stmt) []Stmt {
	return a.Stmts.Copy(src)
}
