package ast

// Visitor is called for each node during a Walk. A nil return stops
// descent into the node's children, mirroring go/ast.
type Visitor interface {
	Visit(node Node) Visitor
}

// Walk traverses the tree rooted at node in depth-first source order.
// Nil nodes are skipped; the walker tolerates the partially filled
// nodes produced by error recovery.
func Walk(v Visitor, node Node) {
	if node == nil || isNilPtr(node) {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		for i := range n.Directives {
			Walk(v, &n.Directives[i])
		}
		walkStmts(v, n.Body)

	case *Directive:
		Walk(v, n.Expression)

	case *BindingIdentifier, *IdentifierReference, *IdentifierName,
		*PrivateIdentifier, *BooleanLiteral, *NullLiteral, *NumericLiteral,
		*BigIntLiteral, *StringLiteral, *RegExpLiteral, *ThisExpression,
		*Super, *TemplateElement, *EmptyStatement, *DebuggerStatement,
		*InvalidExpression, *InvalidStatement, *TSKeywordType:
		// leaf

	case *Decorator:
		Walk(v, n.Expression)

	case *TemplateLiteral:
		for i := range n.Quasis {
			Walk(v, &n.Quasis[i])
		}
		walkExprs(v, n.Expressions)

	case *TaggedTemplateExpression:
		Walk(v, n.Tag)
		Walk(v, n.TypeArguments)
		Walk(v, n.Quasi)

	case *ArrayExpression:
		walkExprs(v, n.Elements)

	case *SpreadElement:
		Walk(v, n.Argument)

	case *ObjectExpression:
		walkExprs(v, n.Properties)

	case *ObjectProperty:
		Walk(v, n.Key)
		Walk(v, n.Value)

	case *ParenthesizedExpression:
		Walk(v, n.Expression)

	case *UnaryExpression:
		Walk(v, n.Argument)

	case *UpdateExpression:
		Walk(v, n.Argument)

	case *BinaryExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *LogicalExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *AssignmentExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *ConditionalExpression:
		Walk(v, n.Test)
		Walk(v, n.Consequent)
		Walk(v, n.Alternate)

	case *SequenceExpression:
		walkExprs(v, n.Expressions)

	case *MemberExpression:
		Walk(v, n.Object)
		Walk(v, n.Property)

	case *CallExpression:
		Walk(v, n.Callee)
		Walk(v, n.TypeArguments)
		walkExprs(v, n.Arguments)

	case *NewExpression:
		Walk(v, n.Callee)
		Walk(v, n.TypeArguments)
		walkExprs(v, n.Arguments)

	case *MetaProperty:
		Walk(v, n.Meta)
		Walk(v, n.Property)

	case *ImportExpression:
		Walk(v, n.Source)
		Walk(v, n.Options)

	case *AwaitExpression:
		Walk(v, n.Argument)

	case *YieldExpression:
		Walk(v, n.Argument)

	case *ArrowFunctionExpression:
		Walk(v, n.TypeParameters)
		Walk(v, n.Params)
		Walk(v, n.ReturnType)
		Walk(v, n.Body)

	case *TSAsExpression:
		Walk(v, n.Expression)
		Walk(v, n.TypeAnnotation)

	case *TSSatisfiesExpression:
		Walk(v, n.Expression)
		Walk(v, n.TypeAnnotation)

	case *TSNonNullExpression:
		Walk(v, n.Expression)

	case *TSInstantiationExpression:
		Walk(v, n.Expression)
		Walk(v, n.TypeArguments)

	case *Function:
		Walk(v, n.ID)
		Walk(v, n.TypeParameters)
		Walk(v, n.ThisParam)
		Walk(v, n.Params)
		Walk(v, n.ReturnType)
		Walk(v, n.Body)

	case *FunctionBody:
		for i := range n.Directives {
			Walk(v, &n.Directives[i])
		}
		walkStmts(v, n.Statements)

	case *FormalParameters:
		for i := range n.Items {
			Walk(v, &n.Items[i])
		}
		Walk(v, n.Rest)

	case *FormalParameter:
		for i := range n.Decorators {
			Walk(v, &n.Decorators[i])
		}
		walkBindingPattern(v, n.Pattern)

	case *TSThisParameter:
		Walk(v, n.TypeAnnotation)

	case *AssignmentPattern:
		walkBindingPattern(v, n.Left)
		Walk(v, n.Right)

	case *ObjectPattern:
		for i := range n.Properties {
			Walk(v, &n.Properties[i])
		}
		Walk(v, n.Rest)

	case *BindingProperty:
		Walk(v, n.Key)
		walkBindingPattern(v, n.Value)

	case *ArrayPattern:
		for _, el := range n.Elements {
			if el != nil {
				walkBindingPattern(v, *el)
			}
		}
		Walk(v, n.Rest)

	case *BindingRestElement:
		walkBindingPattern(v, n.Argument)

	case *Class:
		for i := range n.Decorators {
			Walk(v, &n.Decorators[i])
		}
		Walk(v, n.ID)
		Walk(v, n.TypeParameters)
		Walk(v, n.SuperClass)
		Walk(v, n.SuperTypeArguments)
		for i := range n.Implements {
			Walk(v, &n.Implements[i])
		}
		Walk(v, n.Body)

	case *ClassBody:
		for _, el := range n.Elements {
			Walk(v, el)
		}

	case *MethodDefinition:
		for i := range n.Decorators {
			Walk(v, &n.Decorators[i])
		}
		Walk(v, n.Key)
		Walk(v, n.Value)

	case *PropertyDefinition:
		for i := range n.Decorators {
			Walk(v, &n.Decorators[i])
		}
		Walk(v, n.Key)
		Walk(v, n.TypeAnnotation)
		Walk(v, n.Value)

	case *StaticBlock:
		walkStmts(v, n.Body)

	case *TSClassImplements:
		Walk(v, n.Expression)
		Walk(v, n.TypeArguments)

	case *BlockStatement:
		walkStmts(v, n.Body)

	case *ExpressionStatement:
		Walk(v, n.Expression)

	case *VariableDeclaration:
		for i := range n.Declarations {
			Walk(v, &n.Declarations[i])
		}

	case *VariableDeclarator:
		walkBindingPattern(v, n.ID)
		Walk(v, n.Init)

	case *IfStatement:
		Walk(v, n.Test)
		Walk(v, n.Consequent)
		Walk(v, n.Alternate)

	case *DoWhileStatement:
		Walk(v, n.Body)
		Walk(v, n.Test)

	case *WhileStatement:
		Walk(v, n.Test)
		Walk(v, n.Body)

	case *ForStatement:
		Walk(v, n.Init)
		Walk(v, n.Test)
		Walk(v, n.Update)
		Walk(v, n.Body)

	case *ForInStatement:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)

	case *ForOfStatement:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)

	case *ContinueStatement:
		Walk(v, n.Label)

	case *BreakStatement:
		Walk(v, n.Label)

	case *ReturnStatement:
		Walk(v, n.Argument)

	case *WithStatement:
		Walk(v, n.Object)
		Walk(v, n.Body)

	case *SwitchStatement:
		Walk(v, n.Discriminant)
		for i := range n.Cases {
			Walk(v, &n.Cases[i])
		}

	case *SwitchCase:
		Walk(v, n.Test)
		walkStmts(v, n.Consequent)

	case *LabeledStatement:
		Walk(v, n.Label)
		Walk(v, n.Body)

	case *ThrowStatement:
		Walk(v, n.Argument)

	case *TryStatement:
		Walk(v, n.Block)
		Walk(v, n.Handler)
		Walk(v, n.Finalizer)

	case *CatchClause:
		if n.Param != nil {
			walkBindingPattern(v, *n.Param)
		}
		Walk(v, n.Body)

	case *ImportDeclaration:
		for _, s := range n.Specifiers {
			Walk(v, s)
		}
		Walk(v, n.Source)

	case *ImportSpecifier:
		Walk(v, n.Imported)
		Walk(v, n.Local)

	case *ImportDefaultSpecifier:
		Walk(v, n.Local)

	case *ImportNamespaceSpecifier:
		Walk(v, n.Local)

	case *ExportNamedDeclaration:
		Walk(v, n.Declaration)
		for i := range n.Specifiers {
			Walk(v, &n.Specifiers[i])
		}
		Walk(v, n.Source)

	case *ExportSpecifier:
		Walk(v, n.Local)
		Walk(v, n.Exported)

	case *ExportDefaultDeclaration:
		Walk(v, n.Declaration)

	case *ExportAllDeclaration:
		Walk(v, n.Exported)
		Walk(v, n.Source)

	case *TSTypeAnnotation:
		Walk(v, n.TypeAnnotation)

	case *TSTypeParameterDeclaration:
		for i := range n.Params {
			Walk(v, &n.Params[i])
		}

	case *TSTypeParameter:
		Walk(v, n.Name)
		Walk(v, n.Constraint)
		Walk(v, n.Default)

	case *TSTypeArguments:
		for _, t := range n.Params {
			Walk(v, t)
		}

	case *TSTypeReference:
		Walk(v, n.TypeName)
		Walk(v, n.TypeArguments)

	case *TSQualifiedName:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *TSLiteralType:
		Walk(v, n.Literal)

	case *TSUnionType:
		for _, t := range n.Types {
			Walk(v, t)
		}

	case *TSIntersectionType:
		for _, t := range n.Types {
			Walk(v, t)
		}

	case *TSParenthesizedType:
		Walk(v, n.TypeAnnotation)

	case *TSArrayType:
		Walk(v, n.ElementType)

	case *TSTupleType:
		for _, t := range n.ElementTypes {
			Walk(v, t)
		}

	case *TSNamedTupleMember:
		Walk(v, n.Label)
		Walk(v, n.ElementType)

	case *TSOptionalType:
		Walk(v, n.TypeAnnotation)

	case *TSRestType:
		Walk(v, n.TypeAnnotation)

	case *TSTypeOperator:
		Walk(v, n.TypeAnnotation)

	case *TSTypeQuery:
		Walk(v, n.ExprName)
		Walk(v, n.TypeArguments)

	case *TSIndexedAccessType:
		Walk(v, n.ObjectType)
		Walk(v, n.IndexType)

	case *TSConditionalType:
		Walk(v, n.CheckType)
		Walk(v, n.ExtendsType)
		Walk(v, n.TrueType)
		Walk(v, n.FalseType)

	case *TSInferType:
		Walk(v, n.TypeParameter)

	case *TSFunctionType:
		Walk(v, n.TypeParameters)
		Walk(v, n.ThisParam)
		Walk(v, n.Params)
		Walk(v, n.ReturnType)

	case *TSConstructorType:
		Walk(v, n.TypeParameters)
		Walk(v, n.Params)
		Walk(v, n.ReturnType)

	case *TSTypeLiteral:
		for _, m := range n.Members {
			Walk(v, m)
		}

	case *TSMappedType:
		Walk(v, n.TypeParameter)
		Walk(v, n.NameType)
		Walk(v, n.TypeAnnotation)

	case *TSTemplateLiteralType:
		for i := range n.Quasis {
			Walk(v, &n.Quasis[i])
		}
		for _, t := range n.Types {
			Walk(v, t)
		}

	case *TSTypePredicate:
		Walk(v, n.ParameterName)
		Walk(v, n.TypeAnnotation)

	case *TSPropertySignature:
		Walk(v, n.Key)
		Walk(v, n.TypeAnnotation)

	case *TSMethodSignature:
		Walk(v, n.Key)
		Walk(v, n.TypeParameters)
		Walk(v, n.ThisParam)
		Walk(v, n.Params)
		Walk(v, n.ReturnType)

	case *TSIndexSignature:
		Walk(v, n.Parameter)
		Walk(v, n.TypeAnnotation)

	case *TSIndexSignatureName:
		Walk(v, n.TypeAnnotation)

	case *TSCallSignatureDeclaration:
		Walk(v, n.TypeParameters)
		Walk(v, n.ThisParam)
		Walk(v, n.Params)
		Walk(v, n.ReturnType)

	case *TSConstructSignatureDeclaration:
		Walk(v, n.TypeParameters)
		Walk(v, n.Params)
		Walk(v, n.ReturnType)

	case *TSInterfaceDeclaration:
		Walk(v, n.ID)
		Walk(v, n.TypeParameters)
		for i := range n.Extends {
			Walk(v, &n.Extends[i])
		}
		Walk(v, n.Body)

	case *TSInterfaceHeritage:
		Walk(v, n.Expression)
		Walk(v, n.TypeArguments)

	case *TSInterfaceBody:
		for _, m := range n.Body {
			Walk(v, m)
		}

	case *TSTypeAliasDeclaration:
		Walk(v, n.ID)
		Walk(v, n.TypeParameters)
		Walk(v, n.TypeAnnotation)

	case *TSEnumDeclaration:
		Walk(v, n.ID)
		for i := range n.Members {
			Walk(v, &n.Members[i])
		}

	case *TSEnumMember:
		Walk(v, n.ID)
		Walk(v, n.Initializer)

	case *TSModuleDeclaration:
		Walk(v, n.ID)
		Walk(v, n.Body)

	case *TSModuleBlock:
		walkStmts(v, n.Body)
	}
}

func walkExprs(v Visitor, list []Expr) {
	for _, e := range list {
		Walk(v, e)
	}
}

func walkStmts(v Visitor, list []Stmt) {
	for _, s := range list {
		Walk(v, s)
	}
}

func walkBindingPattern(v Visitor, p BindingPattern) {
	Walk(v, p.Kind)
	Walk(v, p.TypeAnnotation)
}

// isNilPtr guards against typed-nil interface values, which occur when
// an optional node field of concrete pointer type is passed as a Node.
func isNilPtr(n Node) bool {
	switch t := n.(type) {
	case *BindingIdentifier:
		return t == nil
	case *IdentifierName:
		return t == nil
	case *TSTypeAnnotation:
		return t == nil
	case *TSTypeParameterDeclaration:
		return t == nil
	case *TSTypeArguments:
		return t == nil
	case *TSThisParameter:
		return t == nil
	case *FunctionBody:
		return t == nil
	case *FormalParameters:
		return t == nil
	case *BindingRestElement:
		return t == nil
	case *StringLiteral:
		return t == nil
	case *CatchClause:
		return t == nil
	case *BlockStatement:
		return t == nil
	case *TSTypeParameter:
		return t == nil
	case *TSInterfaceBody:
		return t == nil
	case *TSModuleBlock:
		return t == nil
	case *ClassBody:
		return t == nil
	case *TemplateLiteral:
		return t == nil
	}
	return false
}
