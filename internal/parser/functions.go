package parser

import (
	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/lexer"
)

// functionKind records the grammar position a function form was parsed
// in. The final ast.FunctionType is derived from the kind and whether
// a body was present, never chosen up front.
type functionKind uint8

const (
	functionKindDeclaration functionKind = iota
	functionKindExpression
	functionKindDefaultExport
	functionKindTSDeclare
)

func (k functionKind) idRequired() bool { return k == functionKindDeclaration }

func (k functionKind) isExpression() bool { return k == functionKindExpression }

// atFunctionWithAsync reports whether the statement position starts a
// function declaration, `async function` included. The async keyword
// only counts when `function` follows on the same line; otherwise ASI
// makes `async` an expression statement of its own.
func (p *Parser) atFunctionWithAsync() bool {
	if p.at(lexer.TokenFunction) {
		return true
	}
	if !p.at(lexer.TokenAsync) {
		return false
	}
	next := p.peek()
	return next.Type == lexer.TokenFunction && !next.OnNewLine
}

// parseFunctionDeclaration parses `[async] function [*] name(...)`.
// singleStatement marks the restricted positions (if/else branches,
// loop bodies, labels) where declarations need a post-hoc diagnostic.
func (p *Parser) parseFunctionDeclaration(singleStatement bool) ast.Stmt {
	start := p.start()
	async := p.eat(lexer.TokenAsync)
	p.expect(lexer.TokenFunction)
	generator := p.eat(lexer.TokenStar)

	fn := p.parseFunctionImpl(start, functionKindDeclaration, async, generator, Modifiers{})
	if fn == nil {
		return p.invalidStmt(p.finish(start))
	}

	if singleStatement {
		switch {
		case async:
			p.bag.Add(diagAsyncFunctionDeclaration(fn.Loc))
		case generator:
			p.bag.Add(diagGeneratorFunctionDeclaration(fn.Loc))
		case p.module():
			// Annex B allows the plain form in sloppy scripts.
			p.bag.Add(diagFunctionDeclarationStrict(fn.Loc))
		}
	}
	return fn
}

// parseFunctionExpression parses a `function` form in expression
// position. The caller has already classified any leading `async`.
func (p *Parser) parseFunctionExpression(async bool) ast.Expr {
	start := p.start()
	if async {
		p.bump()
	}
	p.expect(lexer.TokenFunction)
	generator := p.eat(lexer.TokenStar)
	fn := p.parseFunctionImpl(start, functionKindExpression, async, generator, Modifiers{})
	if fn == nil {
		return p.invalidExpr(p.finish(start))
	}
	return fn
}

// parseFunctionImpl is the common tail of every `function` form: name,
// type parameters, parameter list, return type, and maybe a body. The
// grammar context for the signature and body derives solely from this
// function's own async/generator flags.
func (p *Parser) parseFunctionImpl(start uint32, kind functionKind, async, generator bool, mods Modifiers) *ast.Function {
	id := p.parseFunctionID(kind, async, generator)
	if p.fatal {
		return nil
	}

	savedCtx := p.ctx
	p.ctx = savedCtx.ForFunction(async, generator)
	defer func() { p.ctx = savedCtx }()

	var typeParams *ast.TSTypeParameterDeclaration
	if p.ts() && p.at(lexer.TokenLt) {
		typeParams = p.parseTypeParameters()
	}

	thisParam, params := p.parseFormalParameters(ast.FormalParameterList)
	if p.fatal {
		return nil
	}

	var returnType *ast.TSTypeAnnotation
	if p.at(lexer.TokenColon) {
		if !p.ts() {
			p.bag.Add(diagTSSyntaxInJS("Type annotations", p.cur().Span))
		}
		returnType = p.parseReturnTypeAnnotation()
	}

	var body *ast.FunctionBody
	if p.at(lexer.TokenLBrace) {
		body = p.parseFunctionBody()
	} else if !p.ts() && kind != functionKindTSDeclare {
		p.bag.Add(diagMissingFunctionBody(p.cur().Span))
		p.fatal = true
		return nil
	}

	fnType := deriveFunctionType(kind, body != nil)
	if fnType == ast.TSDeclareFunction || fnType == ast.TSEmptyBodyFunctionExpression {
		p.semicolon()
	}
	declare := mods.ContainsDeclare()
	if declare && body != nil {
		p.bag.Add(diagImplementationInAmbientContext(body.Loc))
	}
	p.verifyModifiers(&mods, flagsFunction, diagModifierCannotBeUsedHere)

	return p.alloc.Function.Alloc(ast.Function{
		Loc:            p.finish(start),
		Type:           fnType,
		ID:             id,
		Generator:      generator,
		Async:          async,
		Declare:        declare,
		TypeParameters: typeParams,
		ThisParam:      thisParam,
		Params:         params,
		ReturnType:     returnType,
		Body:           body,
	})
}

// deriveFunctionType maps parse-site kind and body presence onto the
// four function node types.
func deriveFunctionType(kind functionKind, hasBody bool) ast.FunctionType {
	switch {
	case kind == functionKindTSDeclare:
		return ast.TSDeclareFunction
	case !hasBody && kind.isExpression():
		return ast.TSEmptyBodyFunctionExpression
	case !hasBody:
		return ast.TSDeclareFunction
	case kind.isExpression():
		return ast.FunctionTypeExpression
	default:
		return ast.FunctionTypeDeclaration
	}
}

// parseFunctionID reads the optional function name. Expression names
// bind under the function's own async/generator context, so
// `(function yield() {})` is fine outside generators while
// `function* yield() {}` is not. When a required name is missing the
// diagnostic distinguishes "forgot the name" from "used a keyword".
func (p *Parser) parseFunctionID(kind functionKind, async, generator bool) *ast.BindingIdentifier {
	savedCtx := p.ctx
	if kind.isExpression() {
		p.ctx = p.ctx.WithAwait(async).WithYield(generator)
	}
	var id *ast.BindingIdentifier
	if p.atIdentifier() {
		id = p.parseBindingIdentifier()
		p.fatal = false
	}
	p.ctx = savedCtx

	if id == nil && kind.idRequired() {
		tok := p.cur()
		switch {
		case tok.Type == lexer.TokenLParen:
			p.bag.Add(diagExpectFunctionName(tok.Span))
		case tok.Type.IsReservedKeyword():
			// Diagnose without consuming; the keyword may well open
			// the next statement.
			p.bag.Add(diagExpectToken(lexer.TokenIdent.String(), tok.Type.String(), tok.Span))
		}
	}
	return id
}

// parseFormalParameters reads `( ... )` for any function form. A
// leading `this` parameter is split out; rest parameters must come
// last and cannot have initializers.
func (p *Parser) parseFormalParameters(kind ast.FormalParameterKind) (*ast.TSThisParameter, *ast.FormalParameters) {
	start := p.start()
	if !p.expect(lexer.TokenLParen) {
		p.fatal = true
		return nil, nil
	}

	var thisParam *ast.TSThisParameter
	if p.ts() && p.at(lexer.TokenThis) {
		thisParam = p.parseThisParameter()
		if !p.at(lexer.TokenRParen) {
			p.expect(lexer.TokenComma)
		}
	}

	var items []ast.FormalParameter
	var rest *ast.BindingRestElement
	for !p.at(lexer.TokenRParen) && !p.at(lexer.TokenEOF) {
		if p.at(lexer.TokenEllipsis) {
			r := p.parseRestParameter()
			if rest == nil {
				rest = r
			}
			if p.at(lexer.TokenComma) {
				p.bag.Add(diagRestParameterLast(r.Loc))
				p.bump()
				continue
			}
			break
		}
		items = append(items, p.parseFormalParameter(kind))
		if p.fatal {
			p.fatal = false
			for !p.at(lexer.TokenComma) && !p.at(lexer.TokenRParen) && !p.at(lexer.TokenEOF) {
				p.bump()
			}
		}
		if !p.eat(lexer.TokenComma) {
			break
		}
	}
	if !p.expect(lexer.TokenRParen) {
		p.fatal = true
		return thisParam, nil
	}

	return thisParam, p.alloc.FormalParameters.Alloc(ast.FormalParameters{
		Loc:   p.finish(start),
		Kind:  kind,
		Items: items,
		Rest:  rest,
	})
}

func (p *Parser) parseThisParameter() *ast.TSThisParameter {
	start := p.start()
	p.bump() // this
	var annotation *ast.TSTypeAnnotation
	if p.at(lexer.TokenColon) {
		annotation = p.parseTypeAnnotation()
	}
	return p.alloc.TSThisParameter.Alloc(ast.TSThisParameter{
		Loc:            p.finish(start),
		TypeAnnotation: annotation,
	})
}

// parseFormalParameter reads one parameter: decorators, parameter
// property modifiers, then the binding. Modifiers a parameter cannot
// carry are kept on the node and diagnosed, not dropped.
func (p *Parser) parseFormalParameter(kind ast.FormalParameterKind) ast.FormalParameter {
	start := p.start()
	decorators := p.parseDecorators()
	mods := p.parseModifiers(false)
	p.verifyModifiers(&mods, flagsParameter, diagCannotAppearOnAParameter)
	if !mods.IsEmpty() && kind != ast.FormalParameterList {
		p.bag.Add(diagParameterPropertyOutsideConstructor(mods.Span()))
	}

	pattern := p.parseBindingPatternWithAnnotation(true)
	return ast.FormalParameter{
		Loc:           p.finish(start),
		Decorators:    decorators,
		Pattern:       pattern,
		Accessibility: mods.Accessibility(),
		Readonly:      mods.Contains(ModifierReadonly),
		Override:      mods.Contains(ModifierOverride),
	}
}

func (p *Parser) parseRestParameter() *ast.BindingRestElement {
	start := p.start()
	p.bump() // ...
	pattern := p.parseBindingPatternWithAnnotation(false)
	if p.at(lexer.TokenAssign) {
		p.bag.Add(diagRestParameterInitializer(p.cur().Span))
		p.bump()
		p.parseAssignmentExpressionOrHigher()
	}
	return p.alloc.BindingRestElement.Alloc(ast.BindingRestElement{
		Loc:      p.finish(start),
		Argument: pattern,
	})
}

// parseFunctionBody reads `{ directives statements }`. The caller has
// already installed the function's derived context.
func (p *Parser) parseFunctionBody() *ast.FunctionBody {
	start := p.start()
	p.expect(lexer.TokenLBrace)
	directives := p.parseDirectives()
	stmts := p.parseStatementList(lexer.TokenRBrace)
	p.expect(lexer.TokenRBrace)
	return p.alloc.FunctionBody.Alloc(ast.FunctionBody{
		Loc:        p.finish(start),
		Directives: directives,
		Statements: stmts,
	})
}

// --- yield ---

// atYieldExpression decides whether `yield` heads a yield expression.
// Inside generators it always does. In module code yield is a reserved
// word, so treating it as a yield expression there recovers with a
// better tree than an identifier would; `yield*` on one line is
// likewise unambiguous.
func (p *Parser) atYieldExpression() bool {
	if p.ctx.HasYield() {
		return true
	}
	if p.module() {
		return true
	}
	next := p.peek()
	return next.Type == lexer.TokenStar && !next.OnNewLine
}

// parseYieldExpression parses `yield`, `yield expr` and `yield* expr`.
// A line break after `yield` terminates it argument-less; `yield*`
// always requires an argument.
func (p *Parser) parseYieldExpression() ast.Expr {
	start := p.start()
	tok := p.cur()
	p.expect(lexer.TokenYield)
	if !p.ctx.HasYield() {
		p.bag.Add(diagYieldOutsideGenerator(tok.Span))
	}

	delegate := false
	var argument ast.Expr
	if !p.curOnNewLine() {
		delegate = p.eat(lexer.TokenStar)
		if delegate || p.yieldArgumentFollows() {
			// The argument always parses under Yield, even when the
			// surrounding context lost it.
			savedCtx := p.ctx
			p.ctx = savedCtx.WithYield(true)
			argument = p.parseAssignmentExpressionOrHigher()
			p.ctx = savedCtx
		}
	}
	return p.alloc.YieldExpression.Alloc(ast.YieldExpression{
		Loc:      p.finish(start),
		Delegate: delegate,
		Argument: argument,
	})
}

// yieldArgumentFollows excludes the tokens that terminate a bare
// yield; anything else starts the optional operand.
func (p *Parser) yieldArgumentFollows() bool {
	switch p.cur().Type {
	case lexer.TokenSemicolon, lexer.TokenRParen, lexer.TokenRBracket,
		lexer.TokenRBrace, lexer.TokenColon, lexer.TokenComma, lexer.TokenEOF:
		return false
	}
	return true
}

// --- arrow functions ---

// tryParseArrowFunction recognizes every arrow head form. Parenthesized
// heads are parsed speculatively: on failure the tokens and any
// diagnostics are rolled back and the caller re-parses the parenthesis
// as a grouping expression.
func (p *Parser) tryParseArrowFunction() (ast.Expr, bool) {
	switch {
	case p.at(lexer.TokenLParen) || (p.ts() && p.at(lexer.TokenLt)):
		return p.tryParseParenthesizedArrow(false)
	case p.at(lexer.TokenAsync):
		next := p.peek()
		if next.OnNewLine {
			return nil, false
		}
		if next.Type == lexer.TokenLParen || (p.ts() && next.Type == lexer.TokenLt) {
			if arrow, ok := p.tryParseParenthesizedArrow(true); ok {
				return arrow, true
			}
			return nil, false
		}
		if next.Type.IsBindingIdentifier() && p.asyncSimpleArrowFollows() {
			return p.parseSimpleArrow(true), true
		}
		return nil, false
	default:
		if p.atIdentifier() {
			next := p.peek()
			if next.Type == lexer.TokenArrow && !next.OnNewLine {
				return p.parseSimpleArrow(false), true
			}
		}
	}
	return nil, false
}

// asyncSimpleArrowFollows checks for `async x =>` with no intervening
// line breaks.
func (p *Parser) asyncSimpleArrowFollows() bool {
	return p.lookahead(func() bool {
		p.bump() // async
		if !p.atIdentifier() || p.curOnNewLine() {
			return false
		}
		p.bump()
		return p.at(lexer.TokenArrow) && !p.curOnNewLine()
	})
}

// parseSimpleArrow parses `x => body` and `async x => body`.
func (p *Parser) parseSimpleArrow(async bool) ast.Expr {
	start := p.start()
	if async {
		p.bump()
	}

	savedCtx := p.ctx
	p.ctx = savedCtx.ForArrowFunction(async)
	id := p.parseBindingIdentifier()
	if id == nil {
		p.ctx = savedCtx
		return p.invalidExpr(p.finish(start))
	}
	params := p.alloc.FormalParameters.Alloc(ast.FormalParameters{
		Loc:  id.Loc,
		Kind: ast.ArrowFormalParameters,
		Items: []ast.FormalParameter{{
			Loc:     id.Loc,
			Pattern: ast.BindingPattern{Kind: id},
		}},
	})
	arrow := p.parseArrowTail(start, async, nil, params, nil)
	p.ctx = savedCtx
	return arrow
}

// tryParseParenthesizedArrow speculatively parses an arrow head
// starting at `(` or `<`. It commits only when the `=>` is reached.
func (p *Parser) tryParseParenthesizedArrow(async bool) (ast.Expr, bool) {
	var result ast.Expr
	ok := p.tryParse(func() bool {
		start := p.start()
		if async {
			p.bump()
		}

		savedCtx := p.ctx
		p.ctx = savedCtx.ForArrowFunction(async)
		defer func() { p.ctx = savedCtx }()

		var typeParams *ast.TSTypeParameterDeclaration
		if p.ts() && p.at(lexer.TokenLt) {
			typeParams = p.parseTypeParameters()
			if p.fatal || typeParams == nil {
				return false
			}
		}
		if !p.at(lexer.TokenLParen) {
			return false
		}
		_, params := p.parseFormalParameters(ast.ArrowFormalParameters)
		if p.fatal || params == nil {
			return false
		}

		var returnType *ast.TSTypeAnnotation
		if p.ts() && p.at(lexer.TokenColon) {
			returnType = p.parseReturnTypeAnnotation()
			if p.fatal {
				return false
			}
		}
		if !p.at(lexer.TokenArrow) {
			return false
		}
		result = p.parseArrowTail(start, async, typeParams, params, returnType)
		return true
	})
	return result, ok
}

// parseArrowTail consumes `=>` and the body. The arrow context is
// already installed by the caller. A line break before `=>` is a
// recoverable error, the grammar forbids it but intent is clear.
func (p *Parser) parseArrowTail(start uint32, async bool, typeParams *ast.TSTypeParameterDeclaration,
	params *ast.FormalParameters, returnType *ast.TSTypeAnnotation) ast.Expr {
	if p.curOnNewLine() {
		p.bag.Add(diagNewlineAfterArrow(p.cur().Span))
	}
	p.expect(lexer.TokenArrow)

	expression := false
	var body *ast.FunctionBody
	if p.at(lexer.TokenLBrace) {
		body = p.parseFunctionBody()
	} else {
		expression = true
		bodyStart := p.start()
		expr := p.parseAssignmentExpressionOrHigher()
		body = p.alloc.FunctionBody.Alloc(ast.FunctionBody{
			Loc: p.finish(bodyStart),
			Statements: []ast.Stmt{p.alloc.ExpressionStatement.Alloc(ast.ExpressionStatement{
				Loc:        p.finish(bodyStart),
				Expression: expr,
			})},
		})
	}
	return p.alloc.ArrowFunctionExpression.Alloc(ast.ArrowFunctionExpression{
		Loc:            p.finish(start),
		Async:          async,
		Expression:     expression,
		TypeParameters: typeParams,
		Params:         params,
		ReturnType:     returnType,
		Body:           body,
	})
}

// --- methods ---

// parseMethodFunction parses the function value of an object or class
// method, starting after the property key. In TS a missing body turns
// it into an overload signature node.
func (p *Parser) parseMethodFunction(async, generator bool, kind ast.PropertyKind, paramKind ast.FormalParameterKind) *ast.Function {
	start := p.start()

	savedCtx := p.ctx
	p.ctx = savedCtx.ForFunction(async, generator).WithSuper(true)
	defer func() { p.ctx = savedCtx }()

	var typeParams *ast.TSTypeParameterDeclaration
	if p.ts() && p.at(lexer.TokenLt) {
		typeParams = p.parseTypeParameters()
	}

	thisParam, params := p.parseFormalParameters(paramKind)
	if params != nil {
		switch kind {
		case ast.PropertyGet:
			if params.Count() != 0 || thisParam != nil {
				p.bag.Add(diagGetterParameters(params.Loc))
			}
		case ast.PropertySet:
			if params.Rest != nil {
				p.bag.Add(diagSetterRestParameter(params.Rest.Loc))
			} else if params.Count() != 1 {
				p.bag.Add(diagSetterParameters(params.Loc))
			}
		}
	}

	var returnType *ast.TSTypeAnnotation
	if p.at(lexer.TokenColon) {
		if !p.ts() {
			p.bag.Add(diagTSSyntaxInJS("Type annotations", p.cur().Span))
		}
		returnType = p.parseReturnTypeAnnotation()
	}

	var body *ast.FunctionBody
	if p.at(lexer.TokenLBrace) {
		body = p.parseFunctionBody()
	} else if !p.ts() {
		p.bag.Add(diagMissingFunctionBody(p.cur().Span))
	}

	fnType := ast.FunctionTypeExpression
	if body == nil {
		fnType = ast.TSEmptyBodyFunctionExpression
	}
	return p.alloc.Function.Alloc(ast.Function{
		Loc:            p.finish(start),
		Type:           fnType,
		Generator:      generator,
		Async:          async,
		TypeParameters: typeParams,
		ThisParam:      thisParam,
		Params:         params,
		ReturnType:     returnType,
		Body:           body,
	})
}
