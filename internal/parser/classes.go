package parser

import (
	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/lexer"
)

// parseDecorators reads a run of `@expr` annotations.
func (p *Parser) parseDecorators() []ast.Decorator {
	var decorators []ast.Decorator
	for p.at(lexer.TokenAt) {
		start := p.start()
		p.bump()
		saved := p.ctx
		p.ctx = p.ctx.WithDecorator(true)
		expr := p.parseLHSExpression()
		p.ctx = saved
		decorators = append(decorators, ast.Decorator{
			Loc:        p.finish(start),
			Expression: expr,
		})
	}
	return decorators
}

// parseDecoratedDeclaration handles decorators in statement position;
// only class declarations may follow them.
func (p *Parser) parseDecoratedDeclaration() ast.Stmt {
	decorators := p.parseDecorators()
	mods := p.parseModifiers(false)
	if p.at(lexer.TokenClass) {
		return p.parseClassDeclaration(decorators, mods)
	}
	if p.at(lexer.TokenExport) {
		// `@dec export class` also occurs; reparse through export.
		return p.parseExportDeclarationWithDecorators(decorators)
	}
	p.bag.Add(diagUnexpectedToken(p.cur().Span))
	p.fatal = true
	return p.invalidStmt(p.cur().Span)
}

// parseClassDeclaration parses `class Name ... {}` in statement
// position; decorators and modifiers, if any, were consumed by the
// caller.
func (p *Parser) parseClassDeclaration(decorators []ast.Decorator, mods Modifiers) ast.Stmt {
	cls := p.parseClass(ast.ClassTypeDeclaration, decorators, mods, false)
	if cls == nil {
		return p.invalidStmt(p.cur().Span)
	}
	return cls
}

func (p *Parser) parseClassExpression() ast.Expr {
	cls := p.parseClass(ast.ClassTypeExpression, nil, Modifiers{}, false)
	if cls == nil {
		return p.invalidExpr(p.cur().Span)
	}
	return cls
}

// parseClass is the shared class form. defaultExport relaxes the name
// requirement the same way it does for functions.
func (p *Parser) parseClass(classType ast.ClassType, decorators []ast.Decorator, mods Modifiers, defaultExport bool) *ast.Class {
	start := p.start()
	if len(decorators) > 0 {
		start = decorators[0].Loc.Start
	}
	abstract := mods.Contains(ModifierAbstract)
	declare := mods.ContainsDeclare()
	p.verifyModifiers(&mods, FlagAbstract|FlagDeclare, diagModifierCannotBeUsedHere)
	p.expect(lexer.TokenClass)

	var id *ast.BindingIdentifier
	if p.atIdentifier() && !p.at(lexer.TokenImplements) && !p.at(lexer.TokenExtends) {
		id = p.parseBindingIdentifier()
		p.fatal = false
	}
	if id == nil && classType == ast.ClassTypeDeclaration && !defaultExport {
		p.bag.Add(diagIdentifierExpected(p.cur().Span))
	}

	var typeParams *ast.TSTypeParameterDeclaration
	if p.ts() && p.at(lexer.TokenLt) {
		typeParams = p.parseTypeParameters()
	}

	var superClass ast.Expr
	var superTypeArgs *ast.TSTypeArguments
	if p.eat(lexer.TokenExtends) {
		superClass = p.parseLHSExpression()
		if p.ts() && p.at(lexer.TokenLt) {
			p.tryParse(func() bool {
				ta := p.parseTypeArguments()
				if ta == nil || p.fatal {
					return false
				}
				superTypeArgs = ta
				return true
			})
		}
	}

	var implements []ast.TSClassImplements
	if p.at(lexer.TokenImplements) {
		if !p.ts() {
			p.bag.Add(diagTSSyntaxInJS("'implements' clauses", p.cur().Span))
		}
		p.bump()
		for {
			implements = append(implements, p.parseClassImplements())
			if !p.eat(lexer.TokenComma) {
				break
			}
		}
	}

	body := p.parseClassBody(abstract)
	return p.alloc.Class.Alloc(ast.Class{
		Loc:                p.finish(start),
		Type:               classType,
		Decorators:         decorators,
		ID:                 id,
		TypeParameters:     typeParams,
		SuperClass:         superClass,
		SuperTypeArguments: superTypeArgs,
		Implements:         implements,
		Abstract:           abstract,
		Declare:            declare,
		Body:               body,
	})
}

func (p *Parser) parseClassImplements() ast.TSClassImplements {
	start := p.start()
	var expr ast.Expr
	name := p.parseIdentifierName()
	if name == nil {
		p.fatal = false
		return ast.TSClassImplements{Loc: p.finish(start)}
	}
	expr = p.alloc.IdentifierReference.Alloc(ast.IdentifierReference{Loc: name.Loc, Name: name.Name})
	for p.eat(lexer.TokenDot) {
		expr = p.parseStaticMember(start, expr, false)
	}
	var typeArgs *ast.TSTypeArguments
	if p.at(lexer.TokenLt) {
		typeArgs = p.parseTypeArguments()
	}
	return ast.TSClassImplements{
		Loc:           p.finish(start),
		Expression:    expr,
		TypeArguments: typeArgs,
	}
}

func (p *Parser) parseClassBody(abstractClass bool) *ast.ClassBody {
	start := p.start()
	p.expect(lexer.TokenLBrace)

	var elements []ast.ClassElement
	for !p.at(lexer.TokenRBrace) && !p.at(lexer.TokenEOF) {
		if p.eat(lexer.TokenSemicolon) {
			continue
		}
		element := p.parseClassElement(abstractClass)
		if p.fatal {
			p.fatal = false
			for !p.at(lexer.TokenSemicolon) && !p.at(lexer.TokenRBrace) && !p.at(lexer.TokenEOF) {
				p.bump()
			}
			p.eat(lexer.TokenSemicolon)
			continue
		}
		if element != nil {
			elements = append(elements, element)
		}
	}
	p.expect(lexer.TokenRBrace)
	return p.alloc.ClassBody.Alloc(ast.ClassBody{
		Loc:      p.finish(start),
		Elements: elements,
	})
}

// parseClassElement parses one member: method, accessor, field, index
// signature or static block. Modifier keywords double as member names,
// so each is only taken as a modifier when a key can still follow.
func (p *Parser) parseClassElement(abstractClass bool) ast.ClassElement {
	start := p.start()
	decorators := p.parseDecorators()

	if p.at(lexer.TokenStatic) && p.peek().Type == lexer.TokenLBrace {
		return p.parseStaticBlock(start)
	}

	mods := p.parseModifiers(false)
	static := mods.ContainsStatic()
	abstract := mods.Contains(ModifierAbstract)
	if abstract && !abstractClass {
		p.bag.Add(diagAbstractMemberInNonAbstractClass(mods.Span()))
	}

	async := false
	generator := false
	kind := ast.MethodKindMethod
	if mods.ContainsAsync() {
		async = true
	}
	if p.eat(lexer.TokenStar) {
		generator = true
	}
	if !async && !generator {
		if p.at(lexer.TokenGet) && p.propertyKeyFollows() {
			kind = ast.MethodKindGet
			p.bump()
		} else if p.at(lexer.TokenSet) && p.propertyKeyFollows() {
			kind = ast.MethodKindSet
			p.bump()
		}
	}

	// TS index signature: `[key: string]: T`.
	if p.ts() && p.at(lexer.TokenLBracket) && kind == ast.MethodKindMethod && p.indexSignatureFollows() {
		return p.parseIndexSignatureMember(start, static, mods)
	}

	key, computed := p.parsePropertyKey()
	if key == nil {
		p.fatal = true
		return nil
	}

	optional := false
	if p.at(lexer.TokenQuestion) {
		if !p.ts() {
			p.bag.Add(diagTSSyntaxInJS("Optional class members", p.cur().Span))
		}
		optional = true
		p.bump()
	}

	if p.at(lexer.TokenLParen) || p.at(lexer.TokenLt) || kind != ast.MethodKindMethod {
		return p.parseMethodMember(start, decorators, mods, key, computed, kind, static, abstract, optional, async, generator)
	}
	return p.parsePropertyMember(start, decorators, mods, key, computed, static, abstract, optional)
}

// indexSignatureFollows distinguishes `[key: string]` from a computed
// member name.
func (p *Parser) indexSignatureFollows() bool {
	return p.lookahead(func() bool {
		p.bump() // [
		if !p.atIdentifier() {
			return false
		}
		p.bump()
		return p.at(lexer.TokenColon)
	})
}

func (p *Parser) parseMethodMember(start uint32, decorators []ast.Decorator, mods Modifiers,
	key ast.Expr, computed bool, kind ast.MethodKind, static, abstract, optional, async, generator bool) ast.ClassElement {

	if !computed && kind == ast.MethodKindMethod && !static {
		if isPropertyKeyNamed(key, "constructor") {
			kind = ast.MethodKindConstructor
			if async || generator {
				p.bag.Add(diagConstructorSpecialMethod(key.Span()))
			}
		}
	}
	if kind == ast.MethodKindGet || kind == ast.MethodKindSet {
		if isPropertyKeyNamed(key, "constructor") && !static && !computed {
			p.bag.Add(diagConstructorSpecialMethod(key.Span()))
		}
	}

	p.verifyModifiers(&mods, flagsClassMember&^FlagAccessor, diagModifierCannotBeUsedHere)

	paramKind := ast.UniqueFormalParameters
	if kind == ast.MethodKindConstructor {
		paramKind = ast.FormalParameterList
	}
	value := p.parseMethodFunction(async, generator, methodPropertyKind(kind), paramKind)
	if abstract && value.Body != nil {
		p.bag.Add(diagImplementationInAmbientContext(value.Body.Loc))
	}
	if value.Body == nil {
		p.semicolon()
	}
	return p.alloc.MethodDefinition.Alloc(ast.MethodDefinition{
		Loc:           p.finish(start),
		Decorators:    decorators,
		Key:           key,
		Value:         value,
		Kind:          kind,
		Computed:      computed,
		Static:        static,
		Abstract:      abstract,
		Optional:      optional,
		Override:      mods.Contains(ModifierOverride),
		Accessibility: mods.Accessibility(),
	})
}

// methodPropertyKind bridges the class MethodKind onto the object
// PropertyKind the shared method parser takes.
func methodPropertyKind(kind ast.MethodKind) ast.PropertyKind {
	switch kind {
	case ast.MethodKindGet:
		return ast.PropertyGet
	case ast.MethodKindSet:
		return ast.PropertySet
	default:
		return ast.PropertyInit
	}
}

func (p *Parser) parsePropertyMember(start uint32, decorators []ast.Decorator, mods Modifiers,
	key ast.Expr, computed bool, static, abstract, optional bool) ast.ClassElement {

	p.verifyModifiers(&mods, flagsClassMember, diagModifierCannotBeUsedHere)

	if !computed {
		if static && isPropertyKeyNamed(key, "prototype") {
			p.bag.Add(diagStaticPrototype(key.Span()))
		}
		if isPropertyKeyNamed(key, "constructor") {
			p.bag.Add(diagConstructorClassField(key.Span()))
		}
	}

	definite := false
	if p.ts() && p.at(lexer.TokenBang) && !p.curOnNewLine() {
		if optional {
			p.bag.Add(diagOptionalAndDefinite(p.cur().Span))
		}
		definite = true
		p.bump()
	}

	var annotation *ast.TSTypeAnnotation
	if p.at(lexer.TokenColon) {
		if !p.ts() {
			p.bag.Add(diagTSSyntaxInJS("Type annotations", p.cur().Span))
		}
		annotation = p.parseTypeAnnotation()
	}

	var value ast.Expr
	if p.eat(lexer.TokenAssign) {
		saved := p.ctx
		p.ctx = p.ctx.WithIn(true)
		value = p.parseAssignmentExpressionOrHigher()
		p.ctx = saved
	}
	if definite && value != nil {
		p.bag.Add(diagDefiniteWithInitializer(key.Span()))
	}
	p.semicolon()

	return p.alloc.PropertyDefinition.Alloc(ast.PropertyDefinition{
		Loc:            p.finish(start),
		Decorators:     decorators,
		Key:            key,
		Value:          value,
		TypeAnnotation: annotation,
		Computed:       computed,
		Static:         static,
		Declare:        mods.ContainsDeclare(),
		Abstract:       abstract,
		Readonly:       mods.Contains(ModifierReadonly),
		Optional:       optional,
		Override:       mods.Contains(ModifierOverride),
		Definite:       definite,
		Accessor:       mods.Contains(ModifierAccessor),
		Accessibility:  mods.Accessibility(),
	})
}

func (p *Parser) parseStaticBlock(start uint32) ast.ClassElement {
	p.bump() // static
	p.expect(lexer.TokenLBrace)

	savedCtx := p.ctx
	p.ctx = NewContext(false).WithSuper(true)
	body := p.parseStatementList(lexer.TokenRBrace)
	p.ctx = savedCtx
	p.expect(lexer.TokenRBrace)
	return p.alloc.StaticBlock.Alloc(ast.StaticBlock{
		Loc:  p.finish(start),
		Body: body,
	})
}

// parseIndexSignatureMember parses `[name: KeyType]: ValueType` as a
// class element.
func (p *Parser) parseIndexSignatureMember(start uint32, static bool, mods Modifiers) ast.ClassElement {
	p.verifyModifiers(&mods, FlagStatic|FlagReadonly, diagModifierCannotBeUsedHere)
	sig := p.parseIndexSignature(start, mods.Contains(ModifierReadonly), static)
	if sig == nil {
		p.fatal = true
		return nil
	}
	return sig
}

// isPropertyKeyNamed matches uncomputed identifier and string keys.
func isPropertyKeyNamed(key ast.Expr, name string) bool {
	switch k := key.(type) {
	case *ast.IdentifierReference:
		return k.Name == name
	case *ast.StringLiteral:
		return k.Value == name
	}
	return false
}
